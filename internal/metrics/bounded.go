package metrics

import (
	"math"

	"github.com/san-kum/wirecube/internal/scene"
)

// Bounded is the fraction of frames whose points all lie within radius of
// the origin. Rotation and projection never lengthen a vector, so anything
// below 1 means the pipeline is broken.
type Bounded struct {
	name       string
	radius     float64
	violations int
	samples    int
}

func NewBounded(radius float64) *Bounded {
	return &Bounded{
		name:   "bounded",
		radius: radius,
	}
}

func (b *Bounded) Name() string {
	return b.name
}

func (b *Bounded) Observe(f scene.Frame) {
	b.samples++
	for _, p := range f.Points {
		if math.Hypot(p.X, p.Y) > b.radius+1e-9 {
			b.violations++
			break
		}
	}
}

func (b *Bounded) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bounded) Reset() {
	b.violations = 0
	b.samples = 0
}
