// Package window shows the cube in a desktop window. Both hosts need cgo
// and bundle their own GLFW, so only one is linked into a binary: raylib by
// default, ebiten when built with -tags ebiten.
package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/wirecube/internal/linalg"
	"github.com/san-kum/wirecube/internal/scene"
)

var (
	ErrNoWindow       = errors.New("window: backend not in this build (needs CGO_ENABLED=1; ebiten also needs -tags ebiten)")
	ErrUnknownBackend = errors.New("window: unknown backend")
)

type Options struct {
	Width, Height int
	FPS           int
	Scale         float64 // pixels per scene unit; <= 0 fits the cube to the window
	Title         string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.Title == "" {
		o.Title = "wirecube"
	}
	return o
}

// Run opens the window for backend and blocks until it is closed.
func Run(backend string, p *scene.Player, opts Options) error {
	opts = opts.withDefaults()
	switch backend {
	case "raylib":
		return RunRaylib(p, opts)
	case "ebiten":
		return RunEbiten(p, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

const (
	strokeWidth = 1.5
	pointRadius = 3
)

// Segment is a line in window pixels.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Plan is a frame laid out on a width x height window, origin at the centre.
type Plan struct {
	Axes   [2]Segment
	Edges  [len(scene.Edges)]Segment
	Points [scene.Corners][2]float64
}

// Layout places f on a width x height window at scale pixels per unit.
func Layout(f scene.Frame, width, height int, scale float64) Plan {
	cx, cy := float64(width)/2, float64(height)/2
	pl := Plan{Axes: axes(width, height)}
	for i, p := range f.Points {
		pl.Points[i] = [2]float64{cx + p.X*scale, cy + p.Y*scale}
	}
	for i, e := range f.Edges {
		a, b := pl.Points[e[0]], pl.Points[e[1]]
		pl.Edges[i] = Segment{a[0], a[1], b[0], b[1]}
	}
	return pl
}

// axes returns the horizontal and vertical lines through the centre.
func axes(width, height int) [2]Segment {
	cx, cy := float64(width)/2, float64(height)/2
	return [2]Segment{
		{0, cy, float64(width), cy},
		{cx, 0, cx, float64(height)},
	}
}

// FitScale keeps the cube inside a width x height window for any rotation.
func FitScale(width, height int, cube [scene.Corners]linalg.Vector3) float64 {
	radius := 0.0
	for _, v := range cube {
		radius = math.Max(radius, v.Mag())
	}
	if radius == 0 {
		return 1
	}
	return float64(min(width, height)) / (2.2 * radius)
}

// host holds what both backends share: the player, pause state and the
// frame on screen.
type host struct {
	player   *scene.Player
	opts     Options
	paused   bool
	frame    scene.Frame
	hasFrame bool
}

// advance steps the player unless paused. A failed frame keeps the previous
// one on screen.
func (h *host) advance() {
	if h.paused {
		return
	}
	if f, ok := h.player.Next(); ok {
		h.frame, h.hasFrame = f, true
		return
	}
	if f, ok := h.player.Last(); ok {
		h.frame, h.hasFrame = f, true
	}
}

// plan lays out the current frame. The axes are always filled in; the
// result is false while there is no frame to draw on top of them.
func (h *host) plan(width, height int) (Plan, bool) {
	if !h.hasFrame {
		return Plan{Axes: axes(width, height)}, false
	}
	scale := h.opts.Scale
	if scale <= 0 {
		scale = FitScale(width, height, h.player.Scene().Cube())
	}
	return Layout(h.frame, width, height, scale), true
}
