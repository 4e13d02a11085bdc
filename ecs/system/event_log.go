package system

import (
	"log"

	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/input"
)

// EventLogSystem prints the frame's notifications. Active events are skipped
// unless Verbose is set, since they repeat every frame an action is held.
type EventLogSystem struct {
	Verbose bool
	Logf    func(format string, args ...any)
}

func NewEventLogSystem(verbose bool) *EventLogSystem {
	return &EventLogSystem{Verbose: verbose, Logf: log.Printf}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil || s.Logf == nil {
		return
	}
	frame := w.Mapper().Frame()
	for _, evt := range w.Events().Events() {
		if evt.Kind == input.EventActive && !s.Verbose {
			continue
		}
		s.Logf("input: frame=%d %s", frame, evt)
	}
}
