package input

import (
	"cmp"
	"maps"
	"slices"
)

// Binder is the bind/unbind capability shared by every binding table. Both
// methods return the table itself so calls can be chained.
type Binder[K comparable, Self any] interface {
	Bind(in K, action string) Self
	Unbind(in K) Self
}

// Bindings maps one kind of physical input to action names. An input binds to
// at most one action; many inputs may share an action. When several shared
// inputs are active in a frame the last processed one sets the value. A
// released button or an axis reading exactly 0 is not active, so it never
// overrides another input still driving the action.
type Bindings[K cmp.Ordered] map[K]string

var (
	_ Binder[Key, Bindings[Key]]                     = Bindings[Key](nil)
	_ Binder[MouseButton, Bindings[MouseButton]]     = Bindings[MouseButton](nil)
	_ Binder[MouseAxis, Bindings[MouseAxis]]         = Bindings[MouseAxis](nil)
	_ Binder[GamepadButton, Bindings[GamepadButton]] = Bindings[GamepadButton](nil)
	_ Binder[GamepadAxis, Bindings[GamepadAxis]]     = Bindings[GamepadAxis](nil)
)

// Bind associates in with action, replacing any previous association.
// An empty action name unbinds in.
func (b Bindings[K]) Bind(in K, action string) Bindings[K] {
	if action == "" {
		return b.Unbind(in)
	}
	b[in] = action
	return b
}

// Unbind removes the association for in. Unbinding an unbound input is a no-op.
func (b Bindings[K]) Unbind(in K) Bindings[K] {
	delete(b, in)
	return b
}

// Action returns the action bound to in.
func (b Bindings[K]) Action(in K) (string, bool) {
	action, ok := b[in]
	return action, ok
}

// Inputs returns the inputs bound to action in ascending order.
func (b Bindings[K]) Inputs(action string) []K {
	var out []K
	for in, a := range b {
		if a == action {
			out = append(out, in)
		}
	}
	slices.Sort(out)
	return out
}

// Actions returns the distinct action names in the table, sorted.
func (b Bindings[K]) Actions() []string {
	seen := make(map[string]struct{}, len(b))
	for _, a := range b {
		seen[a] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

func (b Bindings[K]) Len() int {
	return len(b)
}

func (b Bindings[K]) Clear() {
	clear(b)
}

// BindAll binds every input in ins to action on any Binder.
func BindAll[K comparable, B Binder[K, B]](b B, action string, ins ...K) B {
	for _, in := range ins {
		b = b.Bind(in, action)
	}
	return b
}

// UnbindAll removes every input in ins from any Binder.
func UnbindAll[K comparable, B Binder[K, B]](b B, ins ...K) B {
	for _, in := range ins {
		b = b.Unbind(in)
	}
	return b
}
