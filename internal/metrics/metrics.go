// Package metrics summarises a run of frames into named scalars.
package metrics

import (
	"github.com/san-kum/wirecube/internal/linalg"
	"github.com/san-kum/wirecube/internal/scene"
)

type Metric interface {
	Name() string
	Observe(f scene.Frame)
	Value() float64
	Reset()
}

// Defaults returns the metrics recorded with every run of cube.
func Defaults(cube [scene.Corners]linalg.Vector3) []Metric {
	return []Metric{
		NewMeanWidth(),
		NewEdgeLength(),
		NewBounded(Radius(cube)),
	}
}

// Collect feeds frames to every metric and returns the values by name.
func Collect(ms []Metric, frames []scene.Frame) map[string]float64 {
	for _, f := range frames {
		for _, m := range ms {
			m.Observe(f)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Radius is the distance from the origin to the farthest corner.
func Radius(cube [scene.Corners]linalg.Vector3) float64 {
	r := 0.0
	for _, v := range cube {
		r = max(r, v.Mag())
	}
	return r
}
