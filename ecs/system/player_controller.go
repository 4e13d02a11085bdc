package system

import (
	"math"

	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerComponent,
		component.InputComponent,
		component.PhysicsBodyComponent,
	)
	for _, e := range entities {
		player, ok := ecs.Get(w, e, component.PlayerComponent)
		if !ok {
			continue
		}
		in, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || bodyComp.Body == nil {
			continue
		}

		vel := bodyComp.Body.Velocity()
		vel.X = in.MoveX * player.MoveSpeed
		if in.MoveX != 0 {
			player.Facing = math.Copysign(1, in.MoveX)
		} else if player.Facing == 0 {
			player.Facing = 1
		}

		if in.JumpPressed && player.Grounded {
			vel.Y = -player.JumpSpeed
			player.Grounded = false
			player.Jumps++
		}
		// Releasing jump early cuts the rise short.
		if !in.JumpHeld && vel.Y < 0 {
			vel.Y *= 0.5
		}
		if in.DashPressed {
			vel.X = player.Facing * player.DashSpeed
			player.Dashes++
		}

		bodyComp.Body.SetVelocityVector(vel)
		bodyComp.Body.SetAngle(0)
		bodyComp.Body.SetAngularVelocity(0)
	}
}
