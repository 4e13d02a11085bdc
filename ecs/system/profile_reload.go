package system

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/prefabs"
)

// ProfileReloadSystem drains file change notifications and re-applies the
// active profile or recompiles a hook script. Bindings only change here,
// between frames, never from the watcher goroutine.
type ProfileReloadSystem struct {
	changes <-chan string
	profile string
	scripts *ActionScriptSystem
	// Logf receives reload outcomes.
	Logf func(format string, args ...any)

	onReload func(p *prefabs.Profile)
}

func NewProfileReloadSystem(changes <-chan string, profile string, scripts *ActionScriptSystem) *ProfileReloadSystem {
	return &ProfileReloadSystem{
		changes: changes,
		profile: profile,
		scripts: scripts,
		Logf:    log.Printf,
	}
}

// OnReload registers a callback invoked after a profile is applied.
func (r *ProfileReloadSystem) OnReload(fn func(p *prefabs.Profile)) {
	r.onReload = fn
}

func (r *ProfileReloadSystem) Update(w *ecs.World) {
	if w == nil || r.changes == nil {
		return
	}
	for {
		select {
		case path, ok := <-r.changes:
			if !ok {
				r.changes = nil
				return
			}
			r.handle(w, path)
		default:
			return
		}
	}
}

func (r *ProfileReloadSystem) handle(w *ecs.World, path string) {
	switch {
	case strings.EqualFold(filepath.Base(path), filepath.Base(r.profile)):
		p, err := prefabs.ReadProfileFile(path)
		if err != nil {
			r.logf("reload: profile %s: %v", path, err)
			return
		}
		if err := p.Apply(w.Mapper()); err != nil {
			r.logf("reload: profile %s: %v", path, err)
			return
		}
		r.logf("reload: applied profile %s (%d bindings)", p.Name, p.Len())
		if r.onReload != nil {
			r.onReload(p)
		}
	case strings.EqualFold(filepath.Ext(path), ".tengo") && r.scripts != nil && r.scripts.Has(path):
		data, err := os.ReadFile(path)
		if err != nil {
			r.logf("reload: script %s: %v", path, err)
			return
		}
		if err := r.scripts.AddSource(filepath.Base(path), data); err != nil {
			r.logf("reload: %v", err)
			return
		}
		r.logf("reload: recompiled script %s", filepath.Base(path))
	}
}

func (r *ProfileReloadSystem) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}
