package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCubeOrigin = -50.0
	DefaultCubeSize   = 100.0
	DefaultStart      = 1.0
	DefaultStep       = 0.01
	DefaultFPS        = 60
	DefaultWidth      = 80
	DefaultHeight     = 24
	DefaultTheme      = "retro"
	DefaultBackend    = "raylib"
)

// ErrInvalidConfig indicates a config that cannot drive a scene.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Cube   CubeConfig   `yaml:"cube"`
	Camera CameraConfig `yaml:"camera"`
	Clock  ClockConfig  `yaml:"clock"`
	Render RenderConfig `yaml:"render"`
}

// CubeConfig is the origin corner and extent of the box.
type CubeConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

// CameraConfig is the viewing direction.
type CameraConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type ClockConfig struct {
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step"`
}

type RenderConfig struct {
	FPS     int     `yaml:"fps"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Scale   float64 `yaml:"scale"`
	Theme   string  `yaml:"theme"`
	Backend string  `yaml:"backend"`
}

func DefaultConfig() *Config {
	return &Config{
		Cube: CubeConfig{
			X: DefaultCubeOrigin, Y: DefaultCubeOrigin, Z: DefaultCubeOrigin,
			Width: DefaultCubeSize, Height: DefaultCubeSize, Depth: DefaultCubeSize,
		},
		Camera: CameraConfig{Z: 1},
		Clock:  ClockConfig{Start: DefaultStart, Step: DefaultStep},
		Render: RenderConfig{
			FPS:     DefaultFPS,
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Theme:   DefaultTheme,
			Backend: DefaultBackend,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configs that would fail on every frame.
func (c *Config) Validate() error {
	switch {
	case c.Camera.X == 0 && c.Camera.Y == 0 && c.Camera.Z == 0:
		return fmt.Errorf("%w: camera direction is zero", ErrInvalidConfig)
	case c.Clock.Step <= 0:
		return fmt.Errorf("%w: clock step must be positive, got %g", ErrInvalidConfig, c.Clock.Step)
	case c.Clock.Start < 0:
		// AngleY takes the square root of time.
		return fmt.Errorf("%w: clock start must be >= 0, got %g", ErrInvalidConfig, c.Clock.Start)
	case c.Render.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.Render.FPS)
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Render.Width, c.Render.Height)
	case c.Render.Scale < 0:
		return fmt.Errorf("%w: scale must be >= 0, got %g", ErrInvalidConfig, c.Render.Scale)
	}
	return nil
}

// Args returns the CreateCube arguments in order.
func (c *CubeConfig) Args() (x, y, z, w, h, d float64) {
	return c.X, c.Y, c.Z, c.Width, c.Height, c.Depth
}
