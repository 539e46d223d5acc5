package automation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/wirecube/internal/config"
	"github.com/san-kum/wirecube/internal/storage"
)

const scenarioYAML = `
name: tour
description: two presets and an override
steps:
  - preset: small
    frames: 5
  - preset: classic
    camera: {x: 1, y: 0, z: 0}
    clock: {start: 2, step: 0.1}
    frames: 3
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "tour" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	if sc.Steps[1].Camera == nil || sc.Steps[1].Camera.X != 1 {
		t.Error("camera override not parsed")
	}
	if sc.Steps[0].Camera != nil {
		t.Error("absent section should stay nil")
	}

	if _, err := LoadScenario(writeScenario(t, "name: empty\n")); err == nil {
		t.Error("expected error for a scenario without steps")
	}
}

func TestStepConfig(t *testing.T) {
	cfg, err := ScenarioStep{Clock: &config.ClockConfig{Start: 3, Step: 0.5}}.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Clock.Start != 3 || cfg.Cube.Width != config.DefaultCubeSize {
		t.Errorf("unexpected config %+v", cfg)
	}

	if _, err := (ScenarioStep{Preset: "nope"}).Config(); err == nil {
		t.Error("expected error for unknown preset")
	}

	_, err = ScenarioStep{Camera: &config.CameraConfig{}}.Config()
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	st := storage.New(t.TempDir())

	results, err := RunScenario(context.Background(), sc, st, quietLogger())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 2 || results[0].Frames != 5 || results[1].Frames != 3 {
		t.Fatalf("unexpected results %+v", results)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 saved runs, got %d", len(runs))
	}
	meta, err := st.Load(results[1].RunID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Camera != [3]float64{1, 0, 0} || meta.Start != 2 {
		t.Errorf("override not recorded: %+v", meta)
	}
	if meta.Metrics["bounded"] != 1 {
		t.Errorf("expected bounded 1, got %v", meta.Metrics)
	}
}

func TestRunScenarioCancelled(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := RunScenario(ctx, sc, storage.New(t.TempDir()), quietLogger())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
