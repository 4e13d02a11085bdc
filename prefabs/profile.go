package prefabs

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/actionmap/input"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("prefabs: unsupported profile format")
	ErrEmptyAction       = errors.New("prefabs: empty action name")
	ErrDuplicateInput    = errors.New("prefabs: input listed twice")
)

// Profile is a named set of bindings. Tables map physical input names (as
// accepted by the input.Parse* functions) to action names.
type Profile struct {
	Name           string            `yaml:"name" toml:"name"`
	Reset          bool              `yaml:"reset" toml:"reset"`
	Keyboard       map[string]string `yaml:"keyboard" toml:"keyboard"`
	MouseButtons   map[string]string `yaml:"mouse_buttons" toml:"mouse_buttons"`
	MouseAxes      map[string]string `yaml:"mouse_axes" toml:"mouse_axes"`
	GamepadButtons map[string]string `yaml:"gamepad_buttons" toml:"gamepad_buttons"`
	GamepadAxes    map[string]string `yaml:"gamepad_axes" toml:"gamepad_axes"`
	Scripts        []string          `yaml:"scripts" toml:"scripts"`
}

// LoadProfile loads and decodes a profile by file name.
func LoadProfile(name string) (*Profile, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	return DecodeProfile(name, data)
}

// ReadProfileFile decodes the profile at an explicit filesystem path,
// bypassing the embedded fallback.
func ReadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	return DecodeProfile(path, data)
}

// DecodeProfile decodes data according to the extension of name.
func DecodeProfile(name string, data []byte) (*Profile, error) {
	var p Profile
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &p); err != nil {
			return nil, fmt.Errorf("prefabs: decode %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if p.Name == "" {
		base := filepath.Base(name)
		p.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &p, nil
}

type profileTables struct {
	keyboard       input.Bindings[input.Key]
	mouseButtons   input.Bindings[input.MouseButton]
	mouseAxes      input.Bindings[input.MouseAxis]
	gamepadButtons input.Bindings[input.GamepadButton]
	gamepadAxes    input.Bindings[input.GamepadAxis]
}

func (p *Profile) resolve() (*profileTables, error) {
	var (
		t   profileTables
		err error
	)
	if t.keyboard, err = resolveTable(p.Name, "keyboard", p.Keyboard, input.ParseKey); err != nil {
		return nil, err
	}
	if t.mouseButtons, err = resolveTable(p.Name, "mouse_buttons", p.MouseButtons, input.ParseMouseButton); err != nil {
		return nil, err
	}
	if t.mouseAxes, err = resolveTable(p.Name, "mouse_axes", p.MouseAxes, input.ParseMouseAxis); err != nil {
		return nil, err
	}
	if t.gamepadButtons, err = resolveTable(p.Name, "gamepad_buttons", p.GamepadButtons, input.ParseGamepadButton); err != nil {
		return nil, err
	}
	if t.gamepadAxes, err = resolveTable(p.Name, "gamepad_axes", p.GamepadAxes, input.ParseGamepadAxis); err != nil {
		return nil, err
	}
	return &t, nil
}

// resolveTable parses src in sorted name order. Two spellings of the same
// input are rejected since names are case-insensitive.
func resolveTable[K cmp.Ordered](profile, section string, src map[string]string, parse func(string) (K, error)) (input.Bindings[K], error) {
	out := make(input.Bindings[K], len(src))
	seen := make(map[K]string, len(src))
	for _, name := range slices.Sorted(maps.Keys(src)) {
		in, err := parse(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: profile %s: %s: %w", profile, section, err)
		}
		if prev, dup := seen[in]; dup {
			return nil, fmt.Errorf("prefabs: profile %s: %s %q and %q: %w", profile, section, prev, name, ErrDuplicateInput)
		}
		seen[in] = name
		action := strings.TrimSpace(src[name])
		if action == "" {
			return nil, fmt.Errorf("prefabs: profile %s: %s %q: %w", profile, section, name, ErrEmptyAction)
		}
		out.Bind(in, action)
	}
	return out, nil
}

// Validate reports the first unknown input name or empty action.
func (p *Profile) Validate() error {
	if p == nil {
		return nil
	}
	_, err := p.resolve()
	return err
}

// Apply replaces every binding table of m with the profile's bindings. When
// the profile is invalid m is left untouched.
func (p *Profile) Apply(m *input.Mapper) error {
	if p == nil || m == nil {
		return nil
	}
	t, err := p.resolve()
	if err != nil {
		return err
	}
	m.ClearBindings()
	maps.Copy(m.Keyboard, t.keyboard)
	maps.Copy(m.MouseButtons, t.mouseButtons)
	maps.Copy(m.MouseAxes, t.mouseAxes)
	maps.Copy(m.GamepadButtons, t.gamepadButtons)
	maps.Copy(m.GamepadAxes, t.gamepadAxes)
	if p.Reset {
		m.Reset()
	}
	return nil
}

// Len is the total number of bindings in the profile.
func (p *Profile) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Keyboard) + len(p.MouseButtons) + len(p.MouseAxes) + len(p.GamepadButtons) + len(p.GamepadAxes)
}
