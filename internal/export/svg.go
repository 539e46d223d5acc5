package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/wirecube/internal/scene"
	"github.com/san-kum/wirecube/internal/viz"
)

// FrameToSVG draws f as vector lines on a white width x height page: the two
// centre axes, the twelve edges and a dot per corner. A scale <= 0 fits the
// frame to the page.
func FrameToSVG(f scene.Frame, width, height int, scale float64) string {
	if scale <= 0 {
		scale = fitScale(f, width, height)
	}
	cx, cy := float64(width)/2, float64(height)/2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g stroke="#000000" stroke-width="1">
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f"/>
<line x1="%.1f" y1="0" x2="%.1f" y2="%d"/>
`, cy, width, cy, cx, cx, height))

	for _, e := range f.Edges {
		a, b := f.Points[e[0]], f.Points[e[1]]
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, cx+a.X*scale, cy+a.Y*scale, cx+b.X*scale, cy+b.Y*scale))
	}
	sb.WriteString("</g>\n<g fill=\"#000000\">\n")

	for _, p := range f.Points {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2"/>
`, cx+p.X*scale, cy+p.Y*scale))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func fitScale(f scene.Frame, width, height int) float64 {
	extent := 0.0
	for _, p := range f.Points {
		extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	if extent == 0 {
		return 1
	}
	return float64(min(width, height)) / (2.2 * extent)
}

// CanvasToSVG converts a Braille canvas to SVG format, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	pw, ph := canvas.PixelSize()
	width := float64(pw) * scale
	height := float64(ph) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	dotRadius := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
