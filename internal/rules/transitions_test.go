package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldlog/fieldlog/constants"
)

func TestCanTransitionForwardSteps(t *testing.T) {
	cases := []struct {
		current, target constants.ReportStatus
	}{
		{constants.StatusDraft, constants.StatusPendingRefine},
		{constants.StatusPendingRefine, constants.StatusRefined},
		{constants.StatusRefined, constants.StatusSubmitted},
	}
	for _, tc := range cases {
		res := CanTransition(tc.current, tc.target)
		assert.True(t, res.Allowed, "%s -> %s", tc.current, tc.target)
		assert.Empty(t, res.Reason)
	}
}

func TestCanTransitionSameStatusIsNoOp(t *testing.T) {
	for _, s := range constants.StatusOrder {
		res := CanTransition(s, s)
		assert.True(t, res.Allowed, "%s -> %s", s, s)
	}
}

func TestCanTransitionRejectsBackwards(t *testing.T) {
	cases := []struct {
		current, target constants.ReportStatus
	}{
		{constants.StatusPendingRefine, constants.StatusDraft},
		{constants.StatusRefined, constants.StatusDraft},
		{constants.StatusRefined, constants.StatusPendingRefine},
		{constants.StatusSubmitted, constants.StatusRefined},
		{constants.StatusSubmitted, constants.StatusDraft},
	}
	for _, tc := range cases {
		res := CanTransition(tc.current, tc.target)
		assert.False(t, res.Allowed, "%s -> %s", tc.current, tc.target)
		assert.Equal(t, constants.ReasonCannotGoBackwards, res.Reason)
	}
}

func TestCanTransitionRejectsSkips(t *testing.T) {
	cases := []struct {
		current, target constants.ReportStatus
	}{
		{constants.StatusDraft, constants.StatusRefined},
		{constants.StatusDraft, constants.StatusSubmitted},
		{constants.StatusPendingRefine, constants.StatusSubmitted},
	}
	for _, tc := range cases {
		res := CanTransition(tc.current, tc.target)
		assert.False(t, res.Allowed, "%s -> %s", tc.current, tc.target)
		assert.Equal(t, constants.ReasonCannotSkipSteps, res.Reason)
	}
}

func TestCanTransitionRejectsUnknownStatuses(t *testing.T) {
	res := CanTransition("archived", constants.StatusDraft)
	assert.False(t, res.Allowed)
	assert.Equal(t, constants.ReasonInvalidCurrentStatus, res.Reason)

	res = CanTransition(constants.StatusDraft, "archived")
	assert.False(t, res.Allowed)
	assert.Equal(t, constants.ReasonInvalidTargetStatus, res.Reason)
}
