package viz

import (
	"math"

	"github.com/san-kum/wirecube/internal/linalg"
	"github.com/san-kum/wirecube/internal/scene"
)

// Viewport maps scene units to canvas dots with the scene origin at the
// canvas centre. Screen y grows downwards, as in the scene.
type Viewport struct {
	CX, CY int
	Scale  float64
}

// NewViewport centres on c. A scale <= 0 means 1 dot per scene unit.
func NewViewport(c *Canvas, scale float64) Viewport {
	if scale <= 0 {
		scale = 1
	}
	w, h := c.PixelSize()
	return Viewport{CX: w / 2, CY: h / 2, Scale: scale}
}

func (v Viewport) Map(p scene.Point) (int, int) {
	return v.CX + int(math.Round(p.X*v.Scale)), v.CY + int(math.Round(p.Y*v.Scale))
}

// FitScale returns the scale at which the cube stays inside c for any
// rotation, with a small margin.
func FitScale(c *Canvas, cube [scene.Corners]linalg.Vector3) float64 {
	radius := 0.0
	for _, v := range cube {
		radius = math.Max(radius, v.Mag())
	}
	if radius == 0 {
		return 1
	}
	w, h := c.PixelSize()
	return float64(min(w, h)) / (2.2 * radius)
}

// DrawAxes draws the horizontal and vertical lines through the centre.
func DrawAxes(c *Canvas) {
	w, h := c.PixelSize()
	c.DrawLine(0, h/2, w-1, h/2)
	c.DrawLine(w/2, 0, w/2, h-1)
}

// DrawFrame draws the corner points and the twelve edges of f.
func DrawFrame(c *Canvas, f scene.Frame, vp Viewport) {
	var px [scene.Corners][2]int
	for i, p := range f.Points {
		x, y := vp.Map(p)
		px[i] = [2]int{x, y}
		c.DrawDot(x, y)
	}
	for _, e := range f.Edges {
		a, b := px[e[0]], px[e[1]]
		c.DrawLine(a[0], a[1], b[0], b[1])
	}
}

// Render clears c and draws the axes followed by f.
func Render(c *Canvas, f scene.Frame, vp Viewport) {
	c.Clear()
	DrawAxes(c)
	DrawFrame(c, f, vp)
}
