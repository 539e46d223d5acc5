package scene

import (
	"math"

	"github.com/san-kum/wirecube/internal/camera"
	"github.com/san-kum/wirecube/internal/linalg"
	"github.com/san-kum/wirecube/internal/transform"
)

// Rotation angles as functions of scene time.
func AngleX(t float64) float64 { return t * math.Pi }
func AngleY(t float64) float64 { return math.Sqrt(t) }
func AngleZ(t float64) float64 { return t }

// DefaultPipeline rotates about Y, then Z, then X.
func DefaultPipeline() transform.Pipeline {
	return transform.Pipeline{
		transform.RotateY(AngleY),
		transform.RotateZ(AngleZ),
		transform.RotateX(AngleX),
	}
}

// Point is a projected corner in scene units, origin at the canvas centre.
type Point struct {
	X, Y float64
}

// Frame is everything a host needs to draw one picture.
type Frame struct {
	Time    float64
	Corners [Corners]linalg.Vector3
	Points  [Corners]Point
	Edges   [12][2]int
}

// Bounds returns the bounding box of the projected points.
func (f Frame) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range f.Points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return
}

// Width is the horizontal extent of the projected cube.
func (f Frame) Width() float64 {
	minX, _, maxX, _ := f.Bounds()
	return maxX - minX
}

type Scene struct {
	cube     [Corners]linalg.Vector3
	pipeline transform.Pipeline
	cam      *camera.Camera
}

// New builds a scene with DefaultPipeline.
func New(cube [Corners]linalg.Vector3, cam *camera.Camera) *Scene {
	return NewWithPipeline(cube, cam, DefaultPipeline())
}

func NewWithPipeline(cube [Corners]linalg.Vector3, cam *camera.Camera, p transform.Pipeline) *Scene {
	return &Scene{cube: cube, pipeline: p, cam: cam}
}

func (s *Scene) Cube() [Corners]linalg.Vector3 { return s.cube }
func (s *Scene) Camera() *camera.Camera        { return s.cam }

// Frame rotates and projects every corner at time t.
func (s *Scene) Frame(t float64) (Frame, error) {
	f := Frame{Time: t, Edges: Edges}
	for i, corner := range s.cube {
		rotated := s.pipeline.Apply(corner, t)
		projected, err := s.cam.ToProjected(rotated)
		if err != nil {
			return Frame{}, &FrameError{Time: t, Corner: i, Wrapped: err}
		}
		if !projected.IsFinite() {
			return Frame{}, &FrameError{Time: t, Corner: i, Wrapped: ErrNonFinite}
		}
		f.Corners[i] = projected
		f.Points[i] = Point{X: projected.X(), Y: projected.Y()}
	}
	return f, nil
}
