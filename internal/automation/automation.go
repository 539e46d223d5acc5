// Package automation records a scripted sequence of runs from a YAML file.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/wirecube/internal/camera"
	"github.com/san-kum/wirecube/internal/config"
	"github.com/san-kum/wirecube/internal/metrics"
	"github.com/san-kum/wirecube/internal/scene"
	"github.com/san-kum/wirecube/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of recordings
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single recording. Unset sections keep the preset's values.
type ScenarioStep struct {
	Preset string               `yaml:"preset"`
	Cube   *config.CubeConfig   `yaml:"cube"`
	Camera *config.CameraConfig `yaml:"camera"`
	Clock  *config.ClockConfig  `yaml:"clock"`
	Frames int                  `yaml:"frames"`
}

// StepResult is the outcome of one recorded step.
type StepResult struct {
	RunID   string
	Frames  int
	Skipped int
	Metrics map[string]float64
}

const defaultFrames = 300

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%s: scenario has no steps", path)
	}

	return &scenario, nil
}

// Config resolves the step against its preset.
func (s ScenarioStep) Config() (*config.Config, error) {
	name := s.Preset
	if name == "" {
		name = "classic"
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	if s.Cube != nil {
		cfg.Cube = *s.Cube
	}
	if s.Camera != nil {
		cfg.Camera = *s.Camera
	}
	if s.Clock != nil {
		cfg.Clock = *s.Clock
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario records every step into st. It stops between steps when ctx
// is cancelled and returns the steps completed so far.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, log *slog.Logger) ([]StepResult, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := st.Init(); err != nil {
		return nil, err
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		log.Info("running step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Steps), "preset", step.Preset)

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		n := step.Frames
		if n <= 0 {
			n = defaultFrames
		}
		cube := scene.CreateCube(cfg.Cube.Args())
		cam := camera.New(cfg.Camera.X, cfg.Camera.Y, cfg.Camera.Z)
		p := scene.NewPlayer(scene.New(cube, cam), scene.NewClock(cfg.Clock.Start, cfg.Clock.Step), log)
		frames := p.Frames(n)

		c := cfg.Cube
		meta := storage.RunMetadata{
			Preset:  step.Preset,
			Cube:    [6]float64{c.X, c.Y, c.Z, c.Width, c.Height, c.Depth},
			Camera:  [3]float64{cfg.Camera.X, cfg.Camera.Y, cfg.Camera.Z},
			Start:   cfg.Clock.Start,
			Step:    cfg.Clock.Step,
			Skipped: p.Skipped(),
			Metrics: metrics.Collect(metrics.Defaults(cube), frames),
		}
		runID, err := st.Save(meta, frames)
		if err != nil {
			return results, fmt.Errorf("step %d save: %w", i+1, err)
		}

		results = append(results, StepResult{
			RunID:   runID,
			Frames:  len(frames),
			Skipped: p.Skipped(),
			Metrics: meta.Metrics,
		})
	}

	return results, nil
}
