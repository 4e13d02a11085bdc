package input

// DeviceState is one frame's sample of raw device state.
type DeviceState struct {
	Keys           map[Key]struct{}
	MouseButtons   map[MouseButton]struct{}
	MouseAxes      map[MouseAxis]float32
	GamepadButtons map[GamepadButton]struct{}
	GamepadAxes    map[GamepadAxis]float32
}

func NewDeviceState() *DeviceState {
	return &DeviceState{
		Keys:           make(map[Key]struct{}),
		MouseButtons:   make(map[MouseButton]struct{}),
		MouseAxes:      make(map[MouseAxis]float32),
		GamepadButtons: make(map[GamepadButton]struct{}),
		GamepadAxes:    make(map[GamepadAxis]float32),
	}
}

// Clear empties the state while keeping its maps allocated.
func (s *DeviceState) Clear() {
	if s == nil {
		return
	}
	clear(s.Keys)
	clear(s.MouseButtons)
	clear(s.MouseAxes)
	clear(s.GamepadButtons)
	clear(s.GamepadAxes)
}

func (s *DeviceState) PressKey(keys ...Key) *DeviceState {
	for _, k := range keys {
		setPressed(&s.Keys, k)
	}
	return s
}

func (s *DeviceState) ReleaseKey(keys ...Key) *DeviceState {
	for _, k := range keys {
		delete(s.Keys, k)
	}
	return s
}

func (s *DeviceState) PressMouseButton(buttons ...MouseButton) *DeviceState {
	for _, b := range buttons {
		setPressed(&s.MouseButtons, b)
	}
	return s
}

func (s *DeviceState) ReleaseMouseButton(buttons ...MouseButton) *DeviceState {
	for _, b := range buttons {
		delete(s.MouseButtons, b)
	}
	return s
}

func (s *DeviceState) PressGamepadButton(buttons ...GamepadButton) *DeviceState {
	for _, b := range buttons {
		setPressed(&s.GamepadButtons, b)
	}
	return s
}

func (s *DeviceState) ReleaseGamepadButton(buttons ...GamepadButton) *DeviceState {
	for _, b := range buttons {
		delete(s.GamepadButtons, b)
	}
	return s
}

func (s *DeviceState) SetMouseAxis(axis MouseAxis, value float32) *DeviceState {
	setAxis(&s.MouseAxes, axis, value)
	return s
}

func (s *DeviceState) SetGamepadAxis(axis GamepadAxis, value float32) *DeviceState {
	setAxis(&s.GamepadAxes, axis, value)
	return s
}

func (s *DeviceState) KeyPressed(k Key) bool {
	if s == nil {
		return false
	}
	_, ok := s.Keys[k]
	return ok
}

func (s *DeviceState) MouseButtonPressed(b MouseButton) bool {
	if s == nil {
		return false
	}
	_, ok := s.MouseButtons[b]
	return ok
}

func (s *DeviceState) GamepadButtonPressed(b GamepadButton) bool {
	if s == nil {
		return false
	}
	_, ok := s.GamepadButtons[b]
	return ok
}

// Clone returns a deep copy of s.
func (s *DeviceState) Clone() *DeviceState {
	out := NewDeviceState()
	if s == nil {
		return out
	}
	for k := range s.Keys {
		out.Keys[k] = struct{}{}
	}
	for b := range s.MouseButtons {
		out.MouseButtons[b] = struct{}{}
	}
	for a, v := range s.MouseAxes {
		out.MouseAxes[a] = v
	}
	for b := range s.GamepadButtons {
		out.GamepadButtons[b] = struct{}{}
	}
	for a, v := range s.GamepadAxes {
		out.GamepadAxes[a] = v
	}
	return out
}

func setPressed[K comparable](m *map[K]struct{}, key K) {
	if *m == nil {
		*m = map[K]struct{}{}
	}
	(*m)[key] = struct{}{}
}

func setAxis[K comparable](m *map[K]float32, key K, value float32) {
	if *m == nil {
		*m = map[K]float32{}
	}
	(*m)[key] = value
}

// Source samples raw device state once per frame. Implementations fill the
// given state, which the caller has already cleared.
type Source interface {
	Sample(state *DeviceState)
}

type SourceFunc func(state *DeviceState)

func (f SourceFunc) Sample(state *DeviceState) {
	f(state)
}

// Scripted replays a fixed sequence of states, one per Sample call. After the
// sequence is exhausted it reports nothing pressed.
type Scripted struct {
	frames []*DeviceState
	next   int
}

func NewScripted(frames ...*DeviceState) *Scripted {
	return &Scripted{frames: frames}
}

func (s *Scripted) Sample(state *DeviceState) {
	if s == nil || state == nil || s.next >= len(s.frames) {
		return
	}
	frame := s.frames[s.next]
	s.next++
	if frame == nil {
		return
	}
	for k := range frame.Keys {
		setPressed(&state.Keys, k)
	}
	for b := range frame.MouseButtons {
		setPressed(&state.MouseButtons, b)
	}
	for a, v := range frame.MouseAxes {
		setAxis(&state.MouseAxes, a, v)
	}
	for b := range frame.GamepadButtons {
		setPressed(&state.GamepadButtons, b)
	}
	for a, v := range frame.GamepadAxes {
		setAxis(&state.GamepadAxes, a, v)
	}
}

// Remaining reports how many frames have not been replayed yet.
func (s *Scripted) Remaining() int {
	if s == nil {
		return 0
	}
	return len(s.frames) - s.next
}
