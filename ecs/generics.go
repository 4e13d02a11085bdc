package ecs

import "github.com/milk9111/actionmap/ecs/component"

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity drops e and all of its components. It reports false when e
// was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	w.removeAll(e)
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

func Entities(w *World) []Entity {
	return w.entities.all()
}

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	setFor(w, handle).set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	s, ok := lookup(w, handle)
	if !ok {
		return nil, false
	}
	return s.get(e.id())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := Get(w, e, handle)
	return ok
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	s, ok := lookup(w, handle)
	if !ok {
		return false
	}
	return s.remove(e.id())
}

// First returns the first live entity carrying handle, for singletons such
// as the player.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, *T, bool) {
	s, ok := lookup(w, handle)
	if !ok {
		return 0, nil, false
	}
	for i, id := range s.denseIDs {
		if e, ok := w.entities.resolve(id); ok {
			return e, s.denseValues[i], true
		}
	}
	return 0, nil, false
}

func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	s, ok := lookup(w, handle)
	if !ok {
		return
	}
	ids := append([]entityID(nil), s.denseIDs...)
	for _, id := range ids {
		e, ok := w.entities.resolve(id)
		if !ok {
			continue
		}
		if v, ok := s.get(id); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ha, hb) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ha, hb, hc) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		c, okC := Get(w, e, hc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

func setFor[T any](w *World, handle component.ComponentHandle[T]) *sparseSet[T] {
	if s, ok := lookup(w, handle); ok {
		return s
	}
	s := newSparseSet[T]()
	w.stores[handle.ID()] = s
	return s
}

func lookup[T any](w *World, handle component.ComponentHandle[T]) (*sparseSet[T], bool) {
	raw, ok := w.stores[handle.ID()]
	if !ok {
		return nil, false
	}
	s, ok := raw.(*sparseSet[T])
	return s, ok
}
