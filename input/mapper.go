// Package input maps raw device state onto named actions and tracks each
// action's frame-to-frame transitions.
package input

import (
	"fmt"
	"maps"
	"slices"
)

// Mapper owns the binding tables and the per-action values. It is not safe
// for concurrent use; bind, unbind and Update must run on the frame loop.
type Mapper struct {
	Keyboard       Bindings[Key]
	MouseButtons   Bindings[MouseButton]
	MouseAxes      Bindings[MouseAxis]
	GamepadButtons Bindings[GamepadButton]
	GamepadAxes    Bindings[GamepadAxis]

	values   map[string]float32
	previous map[string]float32
	phases   map[string]Phase

	// scratch for a single aggregation pass
	active map[string]float32
	bound  map[string]struct{}
	names  []string

	frame uint64
}

func NewMapper() *Mapper {
	return &Mapper{
		Keyboard:       Bindings[Key]{},
		MouseButtons:   Bindings[MouseButton]{},
		MouseAxes:      Bindings[MouseAxis]{},
		GamepadButtons: Bindings[GamepadButton]{},
		GamepadAxes:    Bindings[GamepadAxis]{},
		values:         make(map[string]float32),
		previous:       make(map[string]float32),
		phases:         make(map[string]Phase),
		active:         make(map[string]float32),
		bound:          make(map[string]struct{}),
	}
}

// Value returns the action's current value, or 0 if the action is absent.
func (m *Mapper) Value(action string) float32 {
	if m == nil {
		return 0
	}
	return m.values[action]
}

// Lookup returns the action's current value and whether it is present.
func (m *Mapper) Lookup(action string) (float32, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m.values[action]
	return v, ok
}

// Previous returns the action's value as of the prior frame.
func (m *Mapper) Previous(action string) float32 {
	if m == nil {
		return 0
	}
	return m.previous[action]
}

// Phase returns the classification computed for action by the last Update.
func (m *Mapper) Phase(action string) Phase {
	if m == nil {
		return PhaseInactive
	}
	return m.phases[action]
}

func (m *Mapper) Pressed(action string) bool {
	return m.Value(action) != 0
}

func (m *Mapper) JustStarted(action string) bool {
	return m.Phase(action) == PhaseStarted
}

func (m *Mapper) JustFinished(action string) bool {
	return m.Phase(action) == PhaseFinished
}

// Actions returns the names present in the value mapping, sorted.
func (m *Mapper) Actions() []string {
	if m == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(m.values))
}

// Frame returns the number of completed Update calls.
func (m *Mapper) Frame() uint64 {
	if m == nil {
		return 0
	}
	return m.frame
}

// Reset forgets all action values and phases. Bindings are kept.
func (m *Mapper) Reset() {
	if m == nil {
		return
	}
	clear(m.values)
	clear(m.previous)
	clear(m.phases)
	m.frame = 0
}

// ClearBindings empties all five binding tables.
func (m *Mapper) ClearBindings() {
	if m == nil {
		return
	}
	m.Keyboard.Clear()
	m.MouseButtons.Clear()
	m.MouseAxes.Clear()
	m.GamepadButtons.Clear()
	m.GamepadAxes.Clear()
}

// BoundActions returns every action name referenced by any binding table.
func (m *Mapper) BoundActions() []string {
	if m == nil {
		return nil
	}
	m.collectBound()
	return slices.Sorted(maps.Keys(m.bound))
}

// Sources describes every physical input bound to action as
// "<category>/<input>" strings in table order.
func (m *Mapper) Sources(action string) []string {
	if m == nil {
		return nil
	}
	var out []string
	out = appendSources(out, "keyboard", m.Keyboard.Inputs(action))
	out = appendSources(out, "mouse", m.MouseButtons.Inputs(action))
	out = appendSources(out, "mouse_axis", m.MouseAxes.Inputs(action))
	out = appendSources(out, "gamepad", m.GamepadButtons.Inputs(action))
	out = appendSources(out, "gamepad_axis", m.GamepadAxes.Inputs(action))
	return out
}

func appendSources[K fmt.Stringer](out []string, category string, ins []K) []string {
	for _, in := range ins {
		out = append(out, category+"/"+in.String())
	}
	return out
}

func (m *Mapper) collectBound() {
	clear(m.bound)
	addActions(m.bound, m.Keyboard)
	addActions(m.bound, m.MouseButtons)
	addActions(m.bound, m.MouseAxes)
	addActions(m.bound, m.GamepadButtons)
	addActions(m.bound, m.GamepadAxes)
}

func addActions[K comparable](set map[string]struct{}, table map[K]string) {
	for _, action := range table {
		set[action] = struct{}{}
	}
}
