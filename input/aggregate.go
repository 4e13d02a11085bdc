package input

import (
	"cmp"
	"maps"
	"slices"
)

// aggregate recomputes the value of every action from state. Categories are
// processed keyboard, mouse buttons, mouse axes, gamepad buttons, gamepad
// axes, and inputs within a category in ascending order. When more than one
// active source drives an action the last one processed wins.
func (m *Mapper) aggregate(state *DeviceState) {
	clear(m.active)
	if state != nil {
		aggregateButtons(state.Keys, m.Keyboard, m.active)
		aggregateButtons(state.MouseButtons, m.MouseButtons, m.active)
		aggregateAxes(state.MouseAxes, m.MouseAxes, m.active)
		aggregateButtons(state.GamepadButtons, m.GamepadButtons, m.active)
		aggregateAxes(state.GamepadAxes, m.GamepadAxes, m.active)
	}

	// An action nobody is holding drops to zero. Actions that were never
	// driven stay absent.
	for action := range m.values {
		if _, ok := m.active[action]; !ok {
			m.values[action] = 0
		}
	}
	maps.Copy(m.values, m.active)

	m.prune()
}

// aggregateButtons sets every bound, pressed input's action to 1.
func aggregateButtons[K cmp.Ordered](pressed map[K]struct{}, table Bindings[K], out map[string]float32) {
	if len(pressed) == 0 || len(table) == 0 {
		return
	}
	for in := range pressed {
		if action, ok := table[in]; ok {
			out[action] = 1
		}
	}
}

// aggregateAxes copies every bound axis reading that is nonzero onto its
// action. Readings are not clamped or filtered. A centred axis is skipped even
// when it sorts after another axis on the same action.
func aggregateAxes[K cmp.Ordered](readings map[K]float32, table Bindings[K], out map[string]float32) {
	if len(readings) == 0 || len(table) == 0 {
		return
	}
	for _, axis := range slices.Sorted(maps.Keys(readings)) {
		action, ok := table[axis]
		if !ok {
			continue
		}
		v := readings[axis]
		if v == 0 {
			continue
		}
		out[action] = v
	}
}

// prune drops actions that have been idle for two frames and are no longer
// referenced by any binding.
func (m *Mapper) prune() {
	var idle bool
	for action, v := range m.values {
		if v == 0 && m.previous[action] == 0 {
			idle = true
			break
		}
	}
	if !idle {
		return
	}
	m.collectBound()
	for action, v := range m.values {
		if v != 0 || m.previous[action] != 0 {
			continue
		}
		if _, ok := m.bound[action]; !ok {
			delete(m.values, action)
		}
	}
}
