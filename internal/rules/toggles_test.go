package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlog/fieldlog/internal/entity"
)

func TestToggleUnsetIsChangeable(t *testing.T) {
	r := &entity.Report{}
	assert.True(t, CanChangeToggle(r, "safety").Allowed)

	r.Toggles = map[string]*bool{"safety": nil}
	assert.True(t, CanChangeToggle(r, "safety").Allowed)
}

func TestSetToggleLocksPermanently(t *testing.T) {
	r := &entity.Report{}

	res := SetToggle(r, "safety", true)
	require.True(t, res.Allowed)
	require.NotNil(t, res.CurrentValue)
	assert.True(t, *res.CurrentValue)

	// Locked at true: no flip, no re-set of the same value.
	res = SetToggle(r, "safety", false)
	assert.False(t, res.Allowed)
	require.NotNil(t, res.CurrentValue)
	assert.True(t, *res.CurrentValue)

	res = SetToggle(r, "safety", true)
	assert.False(t, res.Allowed)
}

func TestSetToggleFalseAlsoLocks(t *testing.T) {
	r := &entity.Report{}
	SetToggle(r, "delays", false)

	res := CanChangeToggle(r, "delays")
	assert.False(t, res.Allowed)
	require.NotNil(t, res.CurrentValue)
	assert.False(t, *res.CurrentValue)
}

func TestTogglesIndependentPerSection(t *testing.T) {
	r := &entity.Report{}
	SetToggle(r, "safety", true)

	assert.True(t, CanChangeToggle(r, "delays").Allowed)
}
