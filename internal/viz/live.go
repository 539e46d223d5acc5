package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wirecube/internal/scene"
)

const (
	historyCapacity = 240
	panelWidth      = 44
)

type TickMsg time.Time

// Options configures the live view.
type Options struct {
	Width, Height int
	FPS           int
	Scale         float64 // dots per scene unit; <= 0 fits the cube to the canvas
	Theme         string
}

// Model is the bubbletea model for the live cube view.
type Model struct {
	player    *scene.Player
	canvas    *Canvas
	opts      Options
	theme     Theme
	styles    styles
	frame     scene.Frame
	hasFrame  bool
	running   bool
	widths    []float64
	frameRate time.Duration
}

func NewModel(p *scene.Player, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	theme := GetTheme(opts.Theme)
	return Model{
		player:    p,
		canvas:    NewCanvas(opts.Width, opts.Height),
		opts:      opts,
		theme:     theme,
		styles:    newStyles(theme),
		running:   true,
		widths:    make([]float64, 0, historyCapacity),
		frameRate: time.Second / time.Duration(opts.FPS),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		}
	case tea.WindowSizeMsg:
		w := msg.Width - panelWidth - 4
		h := msg.Height - 2
		if w > 0 && h > 0 {
			m.canvas.Resize(w, h)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the scene by one frame. A failed frame leaves the previous
// picture on screen.
func (m *Model) step() {
	f, ok := m.player.Next()
	if !ok {
		return
	}
	m.frame, m.hasFrame = f, true
	m.widths = append(m.widths, f.Width())
	if len(m.widths) > historyCapacity {
		m.widths = m.widths[1:]
	}
}

func (m Model) viewport() Viewport {
	scale := m.opts.Scale
	if scale <= 0 {
		scale = FitScale(m.canvas, m.player.Scene().Cube())
	}
	return NewViewport(m.canvas, scale)
}

// View renders the canvas and the stats panel.
func (m Model) View() string {
	m.canvas.Clear()
	DrawAxes(m.canvas)
	if m.hasFrame {
		DrawFrame(m.canvas, m.frame, m.viewport())
	}
	canvasView := m.styles.canvas.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(m.styles.header.Render("WIRECUBE") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(m.styles.row("Time", fmt.Sprintf("%.2f", m.player.Clock().Now())))
	s.WriteString(m.styles.row("Step", fmt.Sprintf("%g", m.player.Clock().Step())))
	if m.hasFrame {
		s.WriteString(m.styles.row("Width", fmt.Sprintf("%.1f", m.frame.Width())))
	}
	if n := m.player.Skipped(); n > 0 {
		s.WriteString(m.styles.label.Render("Skipped") + m.styles.warning.Render(fmt.Sprintf("%d", n)) + "\n")
	}
	s.WriteString(m.styles.row("Theme", m.theme.Name))

	if len(m.widths) > 1 {
		chart := asciigraph.Plot(m.widths, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("projected width"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString(Separator(panelWidth-6, m.theme) + "\n")
	s.WriteString(m.styles.help.Render("SP:Pause T:Theme Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.panel.Render(s.String()))
}

// RunLive runs the live view until the user quits.
func RunLive(p *scene.Player, opts Options) error {
	_, err := tea.NewProgram(NewModel(p, opts), tea.WithAltScreen()).Run()
	return err
}
