package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/actionmap/common"
	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
)

const (
	collisionTypeBody cp.CollisionType = iota + 1
	collisionTypeSolid
)

const groundedEpsilon = 1.0

// PhysicsSystem owns the Chipmunk space. It creates bodies for new
// PhysicsBody components, steps the space and writes positions back into
// transforms.
type PhysicsSystem struct {
	space  *cp.Space
	width  float64
	height float64
	step   float64

	bodies   map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	grounded map[ecs.Entity]bool

	boundsReady   bool
	handlersReady bool
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

func NewPhysicsSystem(width, height float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	return &PhysicsSystem{
		space:    space,
		width:    width,
		height:   height,
		step:     common.FixedStep,
		bodies:   make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
		grounded: make(map[ecs.Entity]bool),
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || ps.space == nil {
		return
	}

	ps.ensureBounds()
	ps.ensureHandlers()
	ps.syncEntities(w)

	clear(ps.grounded)
	ps.space.Step(ps.step)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeBody, collisionTypeSolid)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		e, isA := sys.shapes[shapeA]
		if !isA {
			var okB bool
			e, okB = sys.shapes[shapeB]
			if !okB {
				return true
			}
		}

		n := arb.Normal()
		if !isA {
			n = n.Neg()
		}
		// Ground contacts push back up toward the body (positive Y in
		// screen-down coordinates).
		if n.Y > 0.5 {
			sys.grounded[e] = true
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) ensureBounds() {
	if ps.boundsReady || ps.width <= 0 || ps.height <= 0 {
		return
	}

	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: ps.width, Y: 0}},
		{a: cp.Vector{X: 0, Y: ps.height}, b: cp.Vector{X: ps.width, Y: ps.height}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: ps.height}},
		{a: cp.Vector{X: ps.width, Y: 0}, b: cp.Vector{X: ps.width, Y: ps.height}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
	}

	ps.boundsReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for e, info := range ps.bodies {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		delete(ps.shapes, info.shape)
		ps.space.RemoveShape(info.shape)
		ps.space.RemoveBody(info.body)
		delete(ps.bodies, e)
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if _, ok := ps.bodies[e]; ok {
			return
		}
		ps.createBody(e, bodyComp, transform)
	})
}

func (ps *PhysicsSystem) createBody(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	width := math.Max(bodyComp.Width, 1)
	height := math.Max(bodyComp.Height, 1)

	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeBody)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	bodyComp.Body = body
	bodyComp.Shape = shape
	ps.bodies[e] = &bodyInfo{body: body, shape: shape}
	ps.shapes[shape] = e
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.bodies {
		body := info.body
		if transform, ok := ecs.Get(w, e, component.TransformComponent); ok {
			pos := body.Position()
			transform.X = pos.X
			transform.Y = pos.Y
			transform.Rotation = body.Angle()
		}
		if player, ok := ecs.Get(w, e, component.PlayerComponent); ok {
			player.Grounded = ps.grounded[e] && body.Velocity().Y > -groundedEpsilon
		}
	}
}
