package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
)

func TestIsEditable(t *testing.T) {
	assert.True(t, IsEditable(constants.StatusDraft))
	assert.True(t, IsEditable(constants.StatusRefined))
	assert.False(t, IsEditable(constants.StatusPendingRefine))
	assert.False(t, IsEditable(constants.StatusSubmitted))
}

func TestCanReturnToNotes(t *testing.T) {
	assert.True(t, CanReturnToNotes(constants.StatusDraft))
	assert.False(t, CanReturnToNotes(constants.StatusPendingRefine))
	assert.False(t, CanReturnToNotes(constants.StatusRefined))
	assert.False(t, CanReturnToNotes(constants.StatusSubmitted))
}

func TestCanSwitchCaptureModeOnlyInDraft(t *testing.T) {
	r := &entity.Report{Status: constants.StatusRefined, CaptureMode: constants.CaptureFreeform}
	res := CanSwitchCaptureMode(r)
	assert.False(t, res.Allowed)
	assert.Equal(t, ReasonNotDraft, res.Reason)
}

func TestCanSwitchCaptureModeFrozenAfterSync(t *testing.T) {
	r := &entity.Report{
		Status:      constants.StatusDraft,
		CaptureMode: constants.CaptureFreeform,
		FieldNotes: []entity.Entry{
			{LocalID: "e1", Text: "poured footings", RemoteID: "r1"},
		},
	}
	res := CanSwitchCaptureMode(r)
	assert.False(t, res.Allowed)
	assert.Equal(t, ReasonEntriesSynced, res.Reason)
}

func TestCanSwitchCaptureModeCleanDraft(t *testing.T) {
	r := &entity.Report{Status: constants.StatusDraft, CaptureMode: constants.CaptureFreeform}
	res := CanSwitchCaptureMode(r)
	assert.True(t, res.Allowed)
	assert.False(t, res.RequiresMigration)
}

func TestCanSwitchCaptureModeUnsyncedEntriesNeedMigration(t *testing.T) {
	r := &entity.Report{
		Status:      constants.StatusDraft,
		CaptureMode: constants.CaptureGuided,
		GuidedNotes: []entity.Entry{
			{LocalID: "e1", Section: "work", Text: "set forms"},
		},
	}
	res := CanSwitchCaptureMode(r)
	assert.True(t, res.Allowed)
	assert.True(t, res.RequiresMigration)
}
