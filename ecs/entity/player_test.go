package entity

import (
	"testing"

	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
	"github.com/milk9111/actionmap/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerFromEmbeddedSpec(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec()
	require.NoError(t, err)

	w := ecs.NewWorld()
	e, err := NewPlayer(w, spec)
	require.NoError(t, err)

	assert.True(t, ecs.Has(w, e, component.PlayerTagComponent))
	assert.True(t, ecs.Has(w, e, component.InputComponent))

	player, ok := ecs.Get(w, e, component.PlayerComponent)
	require.True(t, ok)
	assert.Equal(t, spec.MoveSpeed, player.MoveSpeed)
	assert.Equal(t, 1.0, player.Facing)

	transform, ok := ecs.Get(w, e, component.TransformComponent)
	require.True(t, ok)
	assert.Equal(t, spec.SpawnX, transform.X)

	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	require.True(t, ok)
	assert.Nil(t, body.Body, "bodies are created by the physics system")
	assert.Equal(t, spec.Height, body.Height)

	aim, ok := ecs.Get(w, e, component.AimTargetComponent)
	require.True(t, ok)
	assert.Equal(t, spec.AimRadius, aim.Radius)
}

func TestNewPlayerAt(t *testing.T) {
	spec := &prefabs.PlayerSpec{Name: "p", SpawnX: 1, SpawnY: 2}
	w := ecs.NewWorld()

	e, err := NewPlayerAt(w, spec, 50, 60)
	require.NoError(t, err)
	transform, _ := ecs.Get(w, e, component.TransformComponent)
	assert.Equal(t, 50.0, transform.X)
	assert.Equal(t, 60.0, transform.Y)
	assert.Equal(t, 1.0, spec.SpawnX, "spec must not be modified")

	_, err = NewPlayer(w, nil)
	assert.ErrorIs(t, err, ErrNilSpec)
	assert.Len(t, ecs.Entities(w), 1)
}
