package metrics

import (
	"math"

	"github.com/san-kum/wirecube/internal/scene"
)

// EdgeLength is the mean on-screen length of an edge.
type EdgeLength struct {
	name    string
	sum     float64
	samples int
}

func NewEdgeLength() *EdgeLength {
	return &EdgeLength{name: "edge_length"}
}

func (e *EdgeLength) Name() string {
	return e.name
}

func (e *EdgeLength) Observe(f scene.Frame) {
	for _, edge := range f.Edges {
		a, b := f.Points[edge[0]], f.Points[edge[1]]
		e.sum += math.Hypot(b.X-a.X, b.Y-a.Y)
		e.samples++
	}
}

func (e *EdgeLength) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *EdgeLength) Reset() {
	e.sum = 0
	e.samples = 0
}
