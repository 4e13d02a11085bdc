package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
	"github.com/milk9111/actionmap/prefabs"
)

var ErrNilSpec = errors.New("entity: nil player spec")

type buildFn func(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error

var playerBuildOrder = []struct {
	name  string
	build buildFn
}{
	{"player_tag", func(w *ecs.World, e ecs.Entity, _ *prefabs.PlayerSpec) error {
		return ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
	}},
	{"player", func(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
		return ecs.Add(w, e, component.PlayerComponent, &component.Player{
			MoveSpeed: spec.MoveSpeed,
			JumpSpeed: spec.JumpSpeed,
			DashSpeed: spec.DashSpeed,
			AimRadius: spec.AimRadius,
			Facing:    1,
		})
	}},
	{"input", func(w *ecs.World, e ecs.Entity, _ *prefabs.PlayerSpec) error {
		return ecs.Add(w, e, component.InputComponent, &component.Input{})
	}},
	{"transform", func(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
		return ecs.Add(w, e, component.TransformComponent, &component.Transform{X: spec.SpawnX, Y: spec.SpawnY})
	}},
	{"physics_body", func(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
		return ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
			Width:  spec.Width,
			Height: spec.Height,
			Mass:   1,
		})
	}},
	{"aim_target", func(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
		return ecs.Add(w, e, component.AimTargetComponent, &component.AimTarget{Radius: spec.AimRadius})
	}},
}

// NewPlayer creates the player entity described by spec. Nothing is left in
// the world when a component fails to attach.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, ErrNilSpec
	}
	e := ecs.CreateEntity(w)
	for _, step := range playerBuildOrder {
		if err := step.build(w, e, spec); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: add %s: %w", step.name, err)
		}
	}
	return e, nil
}

func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, ErrNilSpec
	}
	at := *spec
	at.SpawnX, at.SpawnY = x, y
	return NewPlayer(w, &at)
}
