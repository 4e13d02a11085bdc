package system

import (
	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/input"
)

// PauseSystem toggles on every Started notification for the pause action.
// It reads the world's event queue, so it must run after the input system.
type PauseSystem struct {
	paused   bool
	onChange func(paused bool)
}

func NewPauseSystem(onChange func(paused bool)) *PauseSystem {
	return &PauseSystem{onChange: onChange}
}

func (p *PauseSystem) Paused() bool {
	return p != nil && p.paused
}

func (p *PauseSystem) SetPaused(paused bool) {
	if p == nil || p.paused == paused {
		return
	}
	p.paused = paused
	if p.onChange != nil {
		p.onChange(paused)
	}
}

func (p *PauseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Events() {
		if evt.Kind == input.EventStarted && evt.Action == ActionPause {
			p.SetPaused(!p.paused)
		}
	}
}
