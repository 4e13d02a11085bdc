package main

import (
	"strings"
	"testing"

	"github.com/milk9111/actionmap/input"
	"github.com/milk9111/actionmap/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadJumpTrace(t *testing.T) (*prefabs.Profile, []*input.DeviceState) {
	t.Helper()
	profile, err := prefabs.LoadProfile("default.yaml")
	require.NoError(t, err)
	frames, err := prefabs.LoadTrace("jump_trace.yaml")
	require.NoError(t, err)
	return profile, frames
}

func TestReplayJumpTrace(t *testing.T) {
	profile, frames := loadJumpTrace(t)

	var out strings.Builder
	require.NoError(t, replay(&out, profile, frames, false))

	assert.Equal(t, strings.Join([]string{
		"frame=0 Started jump 1",
		"frame=0 Active jump 1",
		"frame=0 Started move_x 0.25",
		"frame=0 Active move_x 0.25",
		"frame=1 Continuing jump 1",
		"frame=1 Active jump 1",
		"frame=1 Continuing move_x 0.5",
		"frame=1 Active move_x 0.5",
		"frame=2 Finished jump 1",
		"frame=2 Continuing move_x 1",
		"frame=2 Active move_x 1",
		"frame=3 Continuing move_x 1",
		"frame=3 Active move_x 1",
		"frame=4 Finished move_x 1",
	}, "\n")+"\n", out.String())
}

func TestReplayEdgesOnlyIsDeterministic(t *testing.T) {
	profile, frames := loadJumpTrace(t)

	var first, second strings.Builder
	require.NoError(t, replay(&first, profile, frames, true))
	require.NoError(t, replay(&second, profile, frames, true))

	assert.Equal(t, first.String(), second.String())
	assert.NotContains(t, first.String(), "Active")
	assert.Equal(t, 8, strings.Count(first.String(), "\n"))
}

func TestReplayFinishesActionsHeldAtEnd(t *testing.T) {
	profile, err := prefabs.LoadProfile("default.yaml")
	require.NoError(t, err)
	frames, err := prefabs.DecodeTrace([]byte("frames:\n  - keys: [Space]\n  - keys: [Space]\n"))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, replay(&out, profile, frames, true))

	assert.Equal(t, strings.Join([]string{
		"frame=0 Started jump 1",
		"frame=1 Continuing jump 1",
		"frame=2 Finished jump 1",
	}, "\n")+"\n", out.String())
}

func TestReplayRejectsBadProfile(t *testing.T) {
	bad := &prefabs.Profile{Name: "bad", Keyboard: map[string]string{"Hyper": "jump"}}
	var out strings.Builder
	err := replay(&out, bad, nil, false)
	assert.ErrorIs(t, err, input.ErrUnknownInput)
	assert.Empty(t, out.String())
}
