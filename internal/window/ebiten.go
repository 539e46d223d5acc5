//go:build cgo && ebiten

package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/wirecube/internal/scene"
)

// RunEbiten opens a resizable ebiten window and draws until it is closed.
// Space pauses, Q quits.
func RunEbiten(p *scene.Player, opts Options) error {
	opts = opts.withDefaults()
	g := &cubeGame{host: host{player: p, opts: opts}}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.FPS)
	return ebiten.RunGame(g)
}

type cubeGame struct {
	host
	width, height int
}

func (g *cubeGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	g.advance()
	return nil
}

func (g *cubeGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	pl, ok := g.plan(g.width, g.height)
	for _, s := range pl.Axes {
		vector.StrokeLine(screen, float32(s.X1), float32(s.Y1), float32(s.X2), float32(s.Y2), 1, color.Black, true)
	}
	if !ok {
		return
	}
	for _, s := range pl.Edges {
		vector.StrokeLine(screen, float32(s.X1), float32(s.Y1), float32(s.X2), float32(s.Y2), strokeWidth, color.Black, true)
	}
	for _, pt := range pl.Points {
		vector.DrawFilledCircle(screen, float32(pt[0]), float32(pt[1]), pointRadius, color.Black, true)
	}
}

// Layout follows the window size so resizing re-centres the cube.
func (g *cubeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
