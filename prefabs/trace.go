package prefabs

import (
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/actionmap/input"
	"gopkg.in/yaml.v3"
)

// MaxTraceRepeat bounds FrameSpec.Repeat; one hour of frames at 60 per second.
const MaxTraceRepeat = 60 * 60 * 60

var ErrTraceRepeat = errors.New("prefabs: trace repeat out of range")

// FrameSpec is one recorded frame of raw device state. Repeat > 1 replays the
// same state on consecutive frames.
type FrameSpec struct {
	Keys           []string           `yaml:"keys"`
	MouseButtons   []string           `yaml:"mouse_buttons"`
	MouseAxes      map[string]float32 `yaml:"mouse_axes"`
	GamepadButtons []string           `yaml:"gamepad_buttons"`
	GamepadAxes    map[string]float32 `yaml:"gamepad_axes"`
	Repeat         int                `yaml:"repeat"`
}

type TraceSpec struct {
	Frames []FrameSpec `yaml:"frames"`
}

// LoadTrace reads a trace file from path and expands it into device states.
func LoadTrace(path string) ([]*input.DeviceState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load trace %s: %w", path, err)
	}
	return DecodeTrace(data)
}

func DecodeTrace(data []byte) ([]*input.DeviceState, error) {
	var spec TraceSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal trace: %w", err)
	}

	var out []*input.DeviceState
	for i, f := range spec.Frames {
		state, err := f.state()
		if err != nil {
			return nil, fmt.Errorf("prefabs: trace frame %d: %w", i, err)
		}
		if f.Repeat > MaxTraceRepeat {
			return nil, fmt.Errorf("prefabs: trace frame %d: repeat %d: %w", i, f.Repeat, ErrTraceRepeat)
		}
		repeat := max(f.Repeat, 1)
		for range repeat {
			out = append(out, state.Clone())
		}
	}
	return out, nil
}

func (f FrameSpec) state() (*input.DeviceState, error) {
	s := input.NewDeviceState()
	for _, name := range f.Keys {
		k, err := input.ParseKey(name)
		if err != nil {
			return nil, err
		}
		s.PressKey(k)
	}
	for _, name := range f.MouseButtons {
		b, err := input.ParseMouseButton(name)
		if err != nil {
			return nil, err
		}
		s.PressMouseButton(b)
	}
	for name, v := range f.MouseAxes {
		a, err := input.ParseMouseAxis(name)
		if err != nil {
			return nil, err
		}
		s.SetMouseAxis(a, v)
	}
	for _, name := range f.GamepadButtons {
		b, err := input.ParseGamepadButton(name)
		if err != nil {
			return nil, err
		}
		s.PressGamepadButton(b)
	}
	for name, v := range f.GamepadAxes {
		a, err := input.ParseGamepadAxis(name)
		if err != nil {
			return nil, err
		}
		s.SetGamepadAxis(a, v)
	}
	return s, nil
}
