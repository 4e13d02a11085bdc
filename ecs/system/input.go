package system

import (
	"math"

	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
	"github.com/milk9111/actionmap/input"
)

// Action names the systems read from the mapper.
const (
	ActionMoveLeft    = "move_left"
	ActionMoveRight   = "move_right"
	ActionMoveX       = "move_x"
	ActionJump        = "jump"
	ActionDash        = "dash"
	ActionAim         = "aim"
	ActionAimX        = "aim_x"
	ActionAimY        = "aim_y"
	ActionLookX       = "look_x"
	ActionLookY       = "look_y"
	ActionFire        = "fire"
	ActionZoom        = "zoom"
	ActionPause       = "pause"
	ActionQuit        = "quit"
	ActionCopyActions = "copy_actions"
)

const stickDeadzone = 0.2

// InputSystem samples the device source once per frame, runs the mapper's
// frame cycle and copies the resulting action table into every Input
// component. Notifications land in the world's event queue and in any extra
// publishers.
type InputSystem struct {
	source input.Source
	state  *input.DeviceState
	extra  []input.Publisher
}

func NewInputSystem(source input.Source, extra ...input.Publisher) *InputSystem {
	return &InputSystem{
		source: source,
		state:  input.NewDeviceState(),
		extra:  extra,
	}
}

// Subscribe adds a publisher that receives every notification from now on.
func (i *InputSystem) Subscribe(pub input.Publisher) {
	if pub == nil {
		return
	}
	i.extra = append(i.extra, pub)
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := w.Events()
	events.Reset()

	i.state.Clear()
	if i.source != nil {
		i.source.Sample(i.state)
	}

	pubs := make([]input.Publisher, 0, len(i.extra)+1)
	pubs = append(pubs, events)
	pubs = append(pubs, i.extra...)

	m := w.Mapper()
	m.Update(i.state, input.Fanout(pubs...))

	snapshot := readInput(m)
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		*in = snapshot
	})
}

func readInput(m *input.Mapper) component.Input {
	moveX := float64(m.Value(ActionMoveRight) - m.Value(ActionMoveLeft))
	if stick := float64(m.Value(ActionMoveX)); math.Abs(stick) > stickDeadzone {
		moveX = stick
	}

	aimX := finite(float64(m.Value(ActionAimX)))
	aimY := finite(float64(m.Value(ActionAimY)))
	if math.Hypot(aimX, aimY) <= stickDeadzone {
		aimX, aimY = 0, 0
	}

	return component.Input{
		MoveX:       clampUnit(moveX),
		JumpPressed: m.JustStarted(ActionJump),
		JumpHeld:    m.Pressed(ActionJump),
		DashPressed: m.JustStarted(ActionDash),
		AimHeld:     m.Pressed(ActionAim),
		AimX:        aimX,
		AimY:        aimY,
		LookX:       float64(m.Value(ActionLookX)),
		LookY:       float64(m.Value(ActionLookY)),
		Fire:        float64(m.Value(ActionFire)),
		FirePressed: m.JustStarted(ActionFire),
		Zoom:        float64(m.Value(ActionZoom)),
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
