package viz

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/wirecube/internal/camera"
	"github.com/san-kum/wirecube/internal/scene"
)

func newTestModel(cam *camera.Camera) Model {
	s := scene.New(scene.CreateCube(-50, -50, -50, 100, 100, 100), cam)
	p := scene.NewPlayer(s, scene.NewClock(1, 0.01), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewModel(p, Options{Width: 40, Height: 12, FPS: 30, Theme: "paper"})
}

func TestModelTickAdvancesPlayer(t *testing.T) {
	m := newTestModel(camera.New(0, 0, 1))

	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m = next.(Model)
	if !m.hasFrame {
		t.Fatal("expected a frame after one tick")
	}
	if got := m.player.Clock().Now(); got < 1.0099 || got > 1.0101 {
		t.Errorf("expected clock at 1.01, got %f", got)
	}
	if len(m.widths) != 1 {
		t.Errorf("expected 1 width sample, got %d", len(m.widths))
	}
	if !strings.Contains(m.View(), "WIRECUBE") {
		t.Error("view is missing the header")
	}
}

func TestModelPauseStopsClock(t *testing.T) {
	m := newTestModel(camera.New(0, 0, 1))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	if m.running {
		t.Fatal("space should pause")
	}
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.hasFrame || m.player.Clock().Now() != 1 {
		t.Error("paused model should not advance")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the paused state")
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(camera.New(0, 0, 1))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if next.(Model).theme.Name == m.theme.Name {
		t.Error("t should cycle the theme")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(camera.New(0, 0, 1))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.canvas.Width != 120-panelWidth-4 || m.canvas.Height != 38 {
		t.Errorf("unexpected canvas size %dx%d", m.canvas.Width, m.canvas.Height)
	}

	// too small: keep the previous size
	next, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 1})
	if next.(Model).canvas.Width != 120-panelWidth-4 {
		t.Error("tiny window should not shrink the canvas")
	}
}

func TestModelKeepsLastFrameOnFailure(t *testing.T) {
	m := newTestModel(camera.New(0, 0, 0))
	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.hasFrame {
		t.Error("degenerate camera should not produce a frame")
	}
	if m.player.Skipped() != 1 {
		t.Errorf("expected 1 skipped frame, got %d", m.player.Skipped())
	}
	if !strings.Contains(m.View(), "Skipped") {
		t.Error("view should report skipped frames")
	}
}
