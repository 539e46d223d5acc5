package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"small": withCube(DefaultConfig(), CubeConfig{
		X: -20, Y: -20, Z: -20, Width: 40, Height: 40, Depth: 40,
	}),
	"slab": withCube(DefaultConfig(), CubeConfig{
		X: -60, Y: -10, Z: -40, Width: 120, Height: 20, Depth: 80,
	}),
	"tilted": withCamera(DefaultConfig(), CameraConfig{X: 1, Y: 1, Z: 1}),
	"slow":   withClock(DefaultConfig(), ClockConfig{Start: DefaultStart, Step: 0.002}),
}

func withCube(c *Config, cube CubeConfig) *Config    { c.Cube = cube; return c }
func withCamera(c *Config, cam CameraConfig) *Config { c.Camera = cam; return c }
func withClock(c *Config, clock ClockConfig) *Config { c.Clock = clock; return c }

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
