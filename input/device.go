package input

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownInput = errors.New("input: unknown physical input")

// Key is a keyboard key. Names follow ebiten's Key.String spelling.
type Key uint16

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyMetaLeft
	KeyMetaRight
	KeyCapsLock
	KeyMinus
	KeyEqual
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyComma
	KeyPeriod
	KeySlash
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadEnter

	keyCount
)

var keyNames = newNameTable[Key]("key", []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"Digit0", "Digit1", "Digit2", "Digit3", "Digit4",
	"Digit5", "Digit6", "Digit7", "Digit8", "Digit9",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
	"Space", "Enter", "Escape", "Tab", "Backspace", "Delete", "Insert",
	"Home", "End", "PageUp", "PageDown",
	"ShiftLeft", "ShiftRight", "ControlLeft", "ControlRight",
	"AltLeft", "AltRight", "MetaLeft", "MetaRight", "CapsLock",
	"Minus", "Equal", "BracketLeft", "BracketRight", "Backslash",
	"Semicolon", "Quote", "Backquote", "Comma", "Period", "Slash",
	"Numpad0", "Numpad1", "Numpad2", "Numpad3", "Numpad4",
	"Numpad5", "Numpad6", "Numpad7", "Numpad8", "Numpad9",
	"NumpadAdd", "NumpadSubtract", "NumpadMultiply", "NumpadDivide",
	"NumpadDecimal", "NumpadEnter",
}, keyCount)

// MouseButton is a physical mouse button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward

	mouseButtonCount
)

var mouseButtonNames = newNameTable[MouseButton]("mouse button", []string{
	"Left", "Right", "Middle", "Back", "Forward",
}, mouseButtonCount)

// MouseAxis is a relative mouse motion channel. X and Y are cursor deltas in
// pixels since the previous frame; the wheel axes are scroll deltas.
type MouseAxis uint8

const (
	MouseAxisX MouseAxis = iota
	MouseAxisY
	MouseAxisWheelX
	MouseAxisWheelY

	mouseAxisCount
)

var mouseAxisNames = newNameTable[MouseAxis]("mouse axis", []string{
	"X", "Y", "WheelX", "WheelY",
}, mouseAxisCount)

// GamepadButton is a button on a gamepad with the standard layout.
type GamepadButton uint8

const (
	GamepadButtonSouth GamepadButton = iota
	GamepadButtonEast
	GamepadButtonWest
	GamepadButtonNorth
	GamepadButtonLeftBumper
	GamepadButtonRightBumper
	GamepadButtonLeftTrigger
	GamepadButtonRightTrigger
	GamepadButtonSelect
	GamepadButtonStart
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
	GamepadButtonMode

	gamepadButtonCount
)

var gamepadButtonNames = newNameTable[GamepadButton]("gamepad button", []string{
	"South", "East", "West", "North",
	"LeftBumper", "RightBumper", "LeftTrigger", "RightTrigger",
	"Select", "Start", "LeftThumb", "RightThumb",
	"DPadUp", "DPadDown", "DPadLeft", "DPadRight", "Mode",
}, gamepadButtonCount)

// GamepadAxis is an analog gamepad channel. Sticks read [-1, 1], triggers [0, 1].
type GamepadAxis uint8

const (
	GamepadAxisLeftStickX GamepadAxis = iota
	GamepadAxisLeftStickY
	GamepadAxisRightStickX
	GamepadAxisRightStickY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger

	gamepadAxisCount
)

var gamepadAxisNames = newNameTable[GamepadAxis]("gamepad axis", []string{
	"LeftStickX", "LeftStickY", "RightStickX", "RightStickY",
	"LeftTrigger", "RightTrigger",
}, gamepadAxisCount)

func (k Key) String() string           { return keyNames.name(k) }
func (b MouseButton) String() string   { return mouseButtonNames.name(b) }
func (a MouseAxis) String() string     { return mouseAxisNames.name(a) }
func (b GamepadButton) String() string { return gamepadButtonNames.name(b) }
func (a GamepadAxis) String() string   { return gamepadAxisNames.name(a) }

// ParseKey resolves a key name case-insensitively.
func ParseKey(name string) (Key, error) { return keyNames.parse(name) }

func ParseMouseButton(name string) (MouseButton, error) { return mouseButtonNames.parse(name) }

func ParseMouseAxis(name string) (MouseAxis, error) { return mouseAxisNames.parse(name) }

func ParseGamepadButton(name string) (GamepadButton, error) { return gamepadButtonNames.parse(name) }

func ParseGamepadAxis(name string) (GamepadAxis, error) { return gamepadAxisNames.parse(name) }

func (k Key) MarshalText() ([]byte, error)           { return keyNames.marshal(k) }
func (b MouseButton) MarshalText() ([]byte, error)   { return mouseButtonNames.marshal(b) }
func (a MouseAxis) MarshalText() ([]byte, error)     { return mouseAxisNames.marshal(a) }
func (b GamepadButton) MarshalText() ([]byte, error) { return gamepadButtonNames.marshal(b) }
func (a GamepadAxis) MarshalText() ([]byte, error)   { return gamepadAxisNames.marshal(a) }

func (k *Key) UnmarshalText(text []byte) error           { return keyNames.unmarshal(text, k) }
func (b *MouseButton) UnmarshalText(text []byte) error   { return mouseButtonNames.unmarshal(text, b) }
func (a *MouseAxis) UnmarshalText(text []byte) error     { return mouseAxisNames.unmarshal(text, a) }
func (b *GamepadButton) UnmarshalText(text []byte) error { return gamepadButtonNames.unmarshal(text, b) }
func (a *GamepadAxis) UnmarshalText(text []byte) error   { return gamepadAxisNames.unmarshal(text, a) }

// Keys returns every known key in declaration order.
func Keys() []Key { return keyNames.all() }

func MouseButtons() []MouseButton { return mouseButtonNames.all() }

func MouseAxes() []MouseAxis { return mouseAxisNames.all() }

func GamepadButtons() []GamepadButton { return gamepadButtonNames.all() }

func GamepadAxes() []GamepadAxis { return gamepadAxisNames.all() }

type physical interface {
	~uint8 | ~uint16
}

type nameTable[T physical] struct {
	category string
	names    []string
	lookup   map[string]T
}

func newNameTable[T physical](category string, names []string, count T) *nameTable[T] {
	if len(names) != int(count) {
		panic(fmt.Sprintf("input: %s table has %d names for %d values", category, len(names), count))
	}
	t := &nameTable[T]{
		category: category,
		names:    names,
		lookup:   make(map[string]T, len(names)),
	}
	for i, n := range names {
		t.lookup[strings.ToLower(n)] = T(i)
	}
	return t
}

func (t *nameTable[T]) name(v T) string {
	if int(v) < len(t.names) {
		return t.names[v]
	}
	return fmt.Sprintf("%s(%d)", t.category, v)
}

func (t *nameTable[T]) parse(name string) (T, error) {
	v, ok := t.lookup[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownInput, t.category, name)
	}
	return v, nil
}

func (t *nameTable[T]) marshal(v T) ([]byte, error) {
	if int(v) >= len(t.names) {
		return nil, fmt.Errorf("%w: %s %d", ErrUnknownInput, t.category, v)
	}
	return []byte(t.names[v]), nil
}

func (t *nameTable[T]) unmarshal(text []byte, out *T) error {
	v, err := t.parse(string(text))
	if err != nil {
		return err
	}
	*out = v
	return nil
}

func (t *nameTable[T]) all() []T {
	out := make([]T, len(t.names))
	for i := range out {
		out[i] = T(i)
	}
	return out
}
