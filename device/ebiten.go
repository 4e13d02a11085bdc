// Package device samples ebiten's keyboard, mouse and gamepad state into
// input.DeviceState.
package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/actionmap/input"
)

var keyTable = buildKeyTable()

// buildKeyTable translates ebiten keys by name. ebiten keys without an
// input.Key counterpart are ignored.
func buildKeyTable() map[ebiten.Key]input.Key {
	table := make(map[ebiten.Key]input.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ik, err := input.ParseKey(k.String()); err == nil {
			table[k] = ik
		}
	}
	return table
}

var mouseButtons = []struct {
	eb ebiten.MouseButton
	in input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseButtonLeft},
	{ebiten.MouseButtonRight, input.MouseButtonRight},
	{ebiten.MouseButtonMiddle, input.MouseButtonMiddle},
	{ebiten.MouseButton3, input.MouseButtonBack},
	{ebiten.MouseButton4, input.MouseButtonForward},
}

var gamepadButtons = []struct {
	eb ebiten.StandardGamepadButton
	in input.GamepadButton
}{
	{ebiten.StandardGamepadButtonRightBottom, input.GamepadButtonSouth},
	{ebiten.StandardGamepadButtonRightRight, input.GamepadButtonEast},
	{ebiten.StandardGamepadButtonRightLeft, input.GamepadButtonWest},
	{ebiten.StandardGamepadButtonRightTop, input.GamepadButtonNorth},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.GamepadButtonLeftBumper},
	{ebiten.StandardGamepadButtonFrontTopRight, input.GamepadButtonRightBumper},
	{ebiten.StandardGamepadButtonFrontBottomLeft, input.GamepadButtonLeftTrigger},
	{ebiten.StandardGamepadButtonFrontBottomRight, input.GamepadButtonRightTrigger},
	{ebiten.StandardGamepadButtonCenterLeft, input.GamepadButtonSelect},
	{ebiten.StandardGamepadButtonCenterRight, input.GamepadButtonStart},
	{ebiten.StandardGamepadButtonLeftStick, input.GamepadButtonLeftThumb},
	{ebiten.StandardGamepadButtonRightStick, input.GamepadButtonRightThumb},
	{ebiten.StandardGamepadButtonLeftTop, input.GamepadButtonDPadUp},
	{ebiten.StandardGamepadButtonLeftBottom, input.GamepadButtonDPadDown},
	{ebiten.StandardGamepadButtonLeftLeft, input.GamepadButtonDPadLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.GamepadButtonDPadRight},
	{ebiten.StandardGamepadButtonCenterCenter, input.GamepadButtonMode},
}

var gamepadSticks = []struct {
	eb ebiten.StandardGamepadAxis
	in input.GamepadAxis
}{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, input.GamepadAxisLeftStickX},
	{ebiten.StandardGamepadAxisLeftStickVertical, input.GamepadAxisLeftStickY},
	{ebiten.StandardGamepadAxisRightStickHorizontal, input.GamepadAxisRightStickX},
	{ebiten.StandardGamepadAxisRightStickVertical, input.GamepadAxisRightStickY},
}

// Ebiten is an input.Source backed by ebiten's polling API. Mouse X/Y are
// cursor deltas since the previous Sample; the first sample reports zero.
// Only the first connected gamepad with a standard layout is read.
type Ebiten struct {
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID

	lastX, lastY int
	hasCursor    bool
}

func NewEbiten() *Ebiten {
	return &Ebiten{}
}

func (e *Ebiten) Sample(state *input.DeviceState) {
	if e == nil || state == nil {
		return
	}
	e.sampleKeyboard(state)
	e.sampleMouse(state)
	e.sampleGamepad(state)
}

func (e *Ebiten) sampleKeyboard(state *input.DeviceState) {
	e.keys = inpututil.AppendPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		if ik, ok := keyTable[k]; ok {
			state.PressKey(ik)
		}
	}
}

func (e *Ebiten) sampleMouse(state *input.DeviceState) {
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.eb) {
			state.PressMouseButton(b.in)
		}
	}

	x, y := ebiten.CursorPosition()
	if e.hasCursor {
		state.SetMouseAxis(input.MouseAxisX, float32(x-e.lastX))
		state.SetMouseAxis(input.MouseAxisY, float32(y-e.lastY))
	}
	e.lastX, e.lastY = x, y
	e.hasCursor = true

	wx, wy := ebiten.Wheel()
	state.SetMouseAxis(input.MouseAxisWheelX, float32(wx))
	state.SetMouseAxis(input.MouseAxisWheelY, float32(wy))
}

func (e *Ebiten) sampleGamepad(state *input.DeviceState) {
	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
	for _, id := range e.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b.eb) {
				state.PressGamepadButton(b.in)
			}
		}
		for _, a := range gamepadSticks {
			state.SetGamepadAxis(a.in, float32(ebiten.StandardGamepadAxisValue(id, a.eb)))
		}
		state.SetGamepadAxis(input.GamepadAxisLeftTrigger,
			float32(ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)))
		state.SetGamepadAxis(input.GamepadAxisRightTrigger,
			float32(ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)))
		return
	}
}
