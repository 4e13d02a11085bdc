package system

import (
	"math"
	"testing"

	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
	"github.com/milk9111/actionmap/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInputEntity(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.InputComponent, &component.Input{}))
	return e
}

func TestInputSystemRunsFrameCycle(t *testing.T) {
	w := ecs.NewWorld()
	m := w.Mapper()
	m.Keyboard.Bind(input.KeyD, ActionMoveRight).Bind(input.KeySpace, ActionJump)
	m.GamepadAxes.Bind(input.GamepadAxisLeftStickX, ActionMoveX)
	e := newInputEntity(t, w)

	var extra input.Queue
	sys := NewInputSystem(input.NewScripted(
		input.NewDeviceState().PressKey(input.KeyD, input.KeySpace),
		input.NewDeviceState().PressKey(input.KeySpace).SetGamepadAxis(input.GamepadAxisLeftStickX, -0.1),
		input.NewDeviceState().SetGamepadAxis(input.GamepadAxisLeftStickX, -0.6),
	), &extra)

	sys.Update(w)
	in, ok := ecs.Get(w, e, component.InputComponent)
	require.True(t, ok)
	assert.Equal(t, 1.0, in.MoveX)
	assert.True(t, in.JumpPressed)
	assert.True(t, in.JumpHeld)
	assert.Equal(t, []input.Event{
		{Kind: input.EventStarted, Action: ActionJump, Value: 1},
		{Kind: input.EventActive, Action: ActionJump, Value: 1},
		{Kind: input.EventStarted, Action: ActionMoveRight, Value: 1},
		{Kind: input.EventActive, Action: ActionMoveRight, Value: 1},
	}, w.Events().Events())

	sys.Update(w)
	in, _ = ecs.Get(w, e, component.InputComponent)
	assert.Equal(t, 0.0, in.MoveX, "stick inside the deadzone is ignored")
	assert.False(t, in.JumpPressed)
	assert.True(t, in.JumpHeld)
	assert.Equal(t, []input.Event{
		{Kind: input.EventContinuing, Action: ActionJump, Value: 1},
		{Kind: input.EventActive, Action: ActionJump, Value: 1},
		{Kind: input.EventFinished, Action: ActionMoveRight, Value: 1},
		{Kind: input.EventStarted, Action: ActionMoveX, Value: -0.1},
		{Kind: input.EventActive, Action: ActionMoveX, Value: -0.1},
	}, w.Events().Events())

	sys.Update(w)
	in, _ = ecs.Get(w, e, component.InputComponent)
	assert.InDelta(t, -0.6, in.MoveX, 1e-6)
	assert.False(t, in.JumpHeld)

	assert.Equal(t, 4+5+3, extra.Len(), "extra publishers see every frame")
	assert.Equal(t, uint64(3), m.Frame())
}

func TestInputSystemWithoutSource(t *testing.T) {
	w := ecs.NewWorld()
	w.Mapper().Keyboard.Bind(input.KeySpace, ActionJump)
	e := newInputEntity(t, w)

	sys := NewInputSystem(nil)
	sys.Update(w)
	sys.Update(nil)

	in, _ := ecs.Get(w, e, component.InputComponent)
	assert.Equal(t, component.Input{}, *in)
	assert.Equal(t, 0, w.Events().Len())
	assert.Equal(t, uint64(1), w.Mapper().Frame())
}

func TestInputSystemSubscribe(t *testing.T) {
	w := ecs.NewWorld()
	w.Mapper().MouseButtons.Bind(input.MouseButtonLeft, ActionFire)

	var started []string
	var bus input.Bus
	bus.On(input.EventStarted, "", func(evt input.Event) { started = append(started, evt.Action) })

	sys := NewInputSystem(input.SourceFunc(func(s *input.DeviceState) {
		s.PressMouseButton(input.MouseButtonLeft)
	}))
	sys.Subscribe(nil)
	sys.Subscribe(&bus)
	sys.Update(w)
	sys.Update(w)

	assert.Equal(t, []string{ActionFire}, started)
}

func TestReadInputSanitizesAnalogValues(t *testing.T) {
	m := input.NewMapper()
	m.GamepadAxes.Bind(input.GamepadAxisLeftStickX, ActionMoveX)
	m.GamepadAxes.Bind(input.GamepadAxisRightStickX, ActionAimX)
	m.GamepadAxes.Bind(input.GamepadAxisRightStickY, ActionAimY)
	m.MouseAxes.Bind(input.MouseAxisWheelY, ActionZoom)

	cases := []struct {
		name  string
		state *input.DeviceState
		check func(t *testing.T, in component.Input)
	}{
		{
			name:  "move_clamped",
			state: input.NewDeviceState().SetGamepadAxis(input.GamepadAxisLeftStickX, 3),
			check: func(t *testing.T, in component.Input) { assert.Equal(t, 1.0, in.MoveX) },
		},
		{
			name:  "move_nan_dropped",
			state: input.NewDeviceState().SetGamepadAxis(input.GamepadAxisLeftStickX, float32(math.NaN())),
			check: func(t *testing.T, in component.Input) { assert.Equal(t, 0.0, in.MoveX) },
		},
		{
			name: "aim_inside_deadzone",
			state: input.NewDeviceState().
				SetGamepadAxis(input.GamepadAxisRightStickX, 0.1).
				SetGamepadAxis(input.GamepadAxisRightStickY, 0.1),
			check: func(t *testing.T, in component.Input) {
				assert.Zero(t, in.AimX)
				assert.Zero(t, in.AimY)
			},
		},
		{
			name:  "aim_outside_deadzone",
			state: input.NewDeviceState().SetGamepadAxis(input.GamepadAxisRightStickY, -0.5),
			check: func(t *testing.T, in component.Input) { assert.InDelta(t, -0.5, in.AimY, 1e-6) },
		},
		{
			name:  "zoom_passthrough",
			state: input.NewDeviceState().SetMouseAxis(input.MouseAxisWheelY, 2),
			check: func(t *testing.T, in component.Input) { assert.Equal(t, 2.0, in.Zoom) },
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m.Reset()
			m.Update(c.state, nil)
			c.check(t, readInput(m))
		})
	}
}
