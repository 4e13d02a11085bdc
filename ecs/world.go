package ecs

import (
	"github.com/milk9111/actionmap/ecs/component"
	"github.com/milk9111/actionmap/input"
)

// World owns entities, their components, and the action mapper shared by
// every system.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store

	mapper *input.Mapper
	events input.Queue
}

// NewWorld creates an empty world with its own mapper.
func NewWorld() *World {
	return NewWorldWithMapper(input.NewMapper())
}

// NewWorldWithMapper creates an empty world around an existing mapper.
func NewWorldWithMapper(m *input.Mapper) *World {
	if m == nil {
		m = input.NewMapper()
	}
	return &World{
		stores: make(map[component.ComponentID]store),
		mapper: m,
	}
}

// Mapper returns the action mapper driven by the input system.
func (w *World) Mapper() *input.Mapper {
	if w == nil {
		return nil
	}
	return w.mapper
}

// Events holds the notifications published during the current frame. The
// input system resets it before each update.
func (w *World) Events() *input.Queue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns the live entities that carry every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}

	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.len())
outer:
	for _, id := range smallest.ids() {
		for _, s := range sets {
			if s != smallest && !s.has(id) {
				continue outer
			}
		}
		if e, ok := w.entities.resolve(id); ok {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) removeAll(e Entity) {
	for _, s := range w.stores {
		s.remove(e.id())
	}
}
