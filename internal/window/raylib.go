//go:build cgo && !ebiten

package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/wirecube/internal/scene"
)

func vec(x, y float64) rl.Vector2 { return rl.NewVector2(float32(x), float32(y)) }

// RunRaylib opens a resizable raylib window and draws until it is closed.
// Space pauses, Q quits.
func RunRaylib(p *scene.Player, opts Options) error {
	opts = opts.withDefaults()
	h := &host{player: p, opts: opts}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			break
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			h.paused = !h.paused
		}
		h.advance()

		rl.BeginDrawing()
		rl.ClearBackground(rl.White)
		pl, ok := h.plan(rl.GetScreenWidth(), rl.GetScreenHeight())
		for _, s := range pl.Axes {
			rl.DrawLineEx(vec(s.X1, s.Y1), vec(s.X2, s.Y2), 1, rl.Black)
		}
		if ok {
			for _, s := range pl.Edges {
				rl.DrawLineEx(vec(s.X1, s.Y1), vec(s.X2, s.Y2), strokeWidth, rl.Black)
			}
			for _, pt := range pl.Points {
				rl.DrawCircleV(vec(pt[0], pt[1]), pointRadius, rl.Black)
			}
		}
		rl.EndDrawing()
	}
	return nil
}
