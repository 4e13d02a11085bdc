package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingsBindUnbind(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b Bindings[Key])
		want   map[Key]string
	}{
		{
			name:   "bind",
			mutate: func(b Bindings[Key]) { b.Bind(KeySpace, "jump") },
			want:   map[Key]string{KeySpace: "jump"},
		},
		{
			name:   "rebind_replaces",
			mutate: func(b Bindings[Key]) { b.Bind(KeySpace, "jump").Bind(KeySpace, "fly") },
			want:   map[Key]string{KeySpace: "fly"},
		},
		{
			name:   "many_to_one",
			mutate: func(b Bindings[Key]) { b.Bind(KeyW, "fwd").Bind(KeyArrowUp, "fwd") },
			want:   map[Key]string{KeyW: "fwd", KeyArrowUp: "fwd"},
		},
		{
			name:   "unbind",
			mutate: func(b Bindings[Key]) { b.Bind(KeyW, "fwd").Unbind(KeyW) },
			want:   map[Key]string{},
		},
		{
			name:   "unbind_unbound_is_noop",
			mutate: func(b Bindings[Key]) { b.Bind(KeyW, "fwd").Unbind(KeyS).Unbind(KeyS) },
			want:   map[Key]string{KeyW: "fwd"},
		},
		{
			name:   "empty_action_unbinds",
			mutate: func(b Bindings[Key]) { b.Bind(KeyW, "fwd").Bind(KeyW, "") },
			want:   map[Key]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bindings[Key]{}
			tc.mutate(b)
			assert.Equal(t, tc.want, map[Key]string(b))
		})
	}
}

func TestBindingsQueries(t *testing.T) {
	b := Bindings[GamepadButton]{}
	BindAll(b, "jump", GamepadButtonSouth, GamepadButtonDPadUp)
	b.Bind(GamepadButtonEast, "dodge")

	action, ok := b.Action(GamepadButtonSouth)
	require.True(t, ok)
	assert.Equal(t, "jump", action)

	_, ok = b.Action(GamepadButtonNorth)
	assert.False(t, ok)

	assert.Equal(t, []GamepadButton{GamepadButtonSouth, GamepadButtonDPadUp}, b.Inputs("jump"))
	assert.Empty(t, b.Inputs("missing"))
	assert.Equal(t, []string{"dodge", "jump"}, b.Actions())
	assert.Equal(t, 3, b.Len())

	UnbindAll(b, GamepadButtonSouth, GamepadButtonDPadUp)
	assert.Equal(t, []string{"dodge"}, b.Actions())

	b.Clear()
	assert.Equal(t, 0, b.Len())
}

// bindThrough exercises the generic capability rather than the concrete table.
func bindThrough[K comparable, B Binder[K, B]](b B, in K, action string) B {
	return b.Bind(in, action)
}

func TestBinderCapability(t *testing.T) {
	axes := Bindings[MouseAxis]{}
	bindThrough(axes, MouseAxisWheelY, "zoom")
	assert.Equal(t, "zoom", axes[MouseAxisWheelY])

	pads := Bindings[GamepadAxis]{}
	bindThrough(pads, GamepadAxisRightTrigger, "accelerate").Unbind(GamepadAxisRightTrigger)
	assert.Equal(t, 0, pads.Len())
}
