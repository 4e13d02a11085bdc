package input

import (
	"maps"
	"slices"
)

// Update runs one frame cycle: snapshot the current values, aggregate state
// into new values, then classify every action and publish its notifications.
// For each action, in name order, the edge event (if any) is published before
// Active. A nil state means nothing is pressed; a nil pub drops notifications.
func (m *Mapper) Update(state *DeviceState, pub Publisher) {
	if m == nil {
		return
	}
	m.snapshot()
	m.aggregate(state)
	m.classify(pub)
	m.frame++
}

func (m *Mapper) snapshot() {
	clear(m.previous)
	maps.Copy(m.previous, m.values)
}

func (m *Mapper) classify(pub Publisher) {
	clear(m.phases)

	m.names = m.names[:0]
	for action := range m.previous {
		m.names = append(m.names, action)
	}
	for action := range m.values {
		if _, ok := m.previous[action]; !ok {
			m.names = append(m.names, action)
		}
	}
	slices.Sort(m.names)

	for _, action := range m.names {
		prev := m.previous[action]
		cur := m.values[action]
		phase := Classify(prev, cur)
		if phase != PhaseInactive {
			m.phases[action] = phase
		}
		if pub == nil {
			continue
		}
		if kind, ok := eventForPhase(phase); ok {
			value := cur
			if phase == PhaseFinished {
				value = prev
			}
			pub.Publish(Event{Kind: kind, Action: action, Value: value})
		}
		if cur != 0 {
			pub.Publish(Event{Kind: EventActive, Action: action, Value: cur})
		}
	}
}
