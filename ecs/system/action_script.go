package system

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/input"
	"github.com/milk9111/actionmap/prefabs"
)

const actionDispatchScript = `
if __phase == "event" {
	on_event(__engine, __state, __event)
}
`

// ActionScriptSystem runs tengo hook scripts for every edge notification of
// the frame. Each script defines on_event(engine, state, event); state is a
// map that persists across calls until the script is reloaded.
type ActionScriptSystem struct {
	scripts []*actionScript
	// Logf receives engine.log output and script errors.
	Logf func(format string, args ...any)
}

type actionScript struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

func NewActionScriptSystem() *ActionScriptSystem {
	return &ActionScriptSystem{Logf: log.Printf}
}

// Load compiles an embedded or on-disk script by name and adds it.
func (s *ActionScriptSystem) Load(name string) error {
	data, err := prefabs.LoadScript(name)
	if err != nil {
		return fmt.Errorf("script %s: load: %w", name, err)
	}
	return s.AddSource(name, data)
}

// AddSource compiles src under name. A script already registered under the
// same base name is replaced and its state dropped.
func (s *ActionScriptSystem) AddSource(name string, src []byte) error {
	rt, err := compileActionScript(name, src)
	if err != nil {
		return err
	}
	for i, existing := range s.scripts {
		if sameScript(existing.name, name) {
			s.scripts[i] = rt
			return nil
		}
	}
	s.scripts = append(s.scripts, rt)
	return nil
}

// Has reports whether a script with the same base name is loaded.
func (s *ActionScriptSystem) Has(name string) bool {
	for _, rt := range s.scripts {
		if sameScript(rt.name, name) {
			return true
		}
	}
	return false
}

func (s *ActionScriptSystem) Len() int {
	return len(s.scripts)
}

func (s *ActionScriptSystem) Update(w *ecs.World) {
	if w == nil || len(s.scripts) == 0 {
		return
	}
	m := w.Mapper()
	for _, evt := range w.Events().Events() {
		if evt.Kind == input.EventActive {
			continue
		}
		for _, rt := range s.scripts {
			engine := s.buildEngine(rt, m)
			if err := rt.dispatch(engine, evt); err != nil {
				s.logf("script %s: on_event %s: %v", rt.name, evt, err)
			}
		}
	}
}

func compileActionScript(name string, src []byte) (*actionScript, error) {
	full := string(src) + "\n" + actionDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__event", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", name, err)
	}

	rt := &actionScript{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
	// Run once with no phase so top-level statements fail early.
	if err := rt.run("", &tengo.ImmutableMap{Value: map[string]tengo.Object{}}, nil); err != nil {
		return nil, fmt.Errorf("script %s: init: %w", name, err)
	}
	return rt, nil
}

func (rt *actionScript) dispatch(engine *tengo.ImmutableMap, evt input.Event) error {
	event := &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"kind":   &tengo.String{Value: evt.Kind.String()},
		"action": &tengo.String{Value: evt.Action},
		"value":  &tengo.Float{Value: float64(evt.Value)},
	}}
	return rt.run("event", engine, event)
}

func (rt *actionScript) run(phase string, engine, event *tengo.ImmutableMap) error {
	if event == nil {
		event = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	if err := rt.compiled.Set("__event", event); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func (s *ActionScriptSystem) buildEngine(rt *actionScript, m *input.Mapper) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		s.logf("script %s: %s", rt.name, strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	values["frame"] = &tengo.UserFunction{Name: "frame", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(m.Frame())}, nil
	}}

	values["value"] = &tengo.UserFunction{Name: "value", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: float64(m.Value(objectAsString(args[0])))}, nil
	}}

	values["pressed"] = &tengo.UserFunction{Name: "pressed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 || !m.Pressed(objectAsString(args[0])) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["sources"] = &tengo.UserFunction{Name: "sources", Value: func(args ...tengo.Object) (tengo.Object, error) {
		out := &tengo.Array{}
		if len(args) < 1 {
			return out, nil
		}
		for _, src := range m.Sources(objectAsString(args[0])) {
			out.Value = append(out.Value, &tengo.String{Value: src})
		}
		return out, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func (s *ActionScriptSystem) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

func sameScript(a, b string) bool {
	return strings.EqualFold(filepath.Base(a), filepath.Base(b))
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
