package transform

import "github.com/san-kum/wirecube/internal/linalg"

// AngleFunc maps time to a rotation angle in radians.
type AngleFunc func(t float64) float64

func cosOf(angle AngleFunc) Cell { return Timed(func(t float64) float64 { return cos(angle(t)) }) }
func sinOf(angle AngleFunc) Cell { return Timed(func(t float64) float64 { return sin(angle(t)) }) }
func negSinOf(angle AngleFunc) Cell {
	return Timed(func(t float64) float64 { return -sin(angle(t)) })
}

// RotateX rotates about the x axis.
func RotateX(angle AngleFunc) *Matrix {
	return FromCells([size][size]Cell{
		{Const(1), Const(0), Const(0)},
		{Const(0), cosOf(angle), negSinOf(angle)},
		{Const(0), sinOf(angle), cosOf(angle)},
	})
}

// RotateY rotates about the y axis.
func RotateY(angle AngleFunc) *Matrix {
	return FromCells([size][size]Cell{
		{cosOf(angle), Const(0), sinOf(angle)},
		{Const(0), Const(1), Const(0)},
		{negSinOf(angle), Const(0), cosOf(angle)},
	})
}

// RotateZ rotates about the z axis.
func RotateZ(angle AngleFunc) *Matrix {
	return FromCells([size][size]Cell{
		{cosOf(angle), negSinOf(angle), Const(0)},
		{sinOf(angle), cosOf(angle), Const(0)},
		{Const(0), Const(0), Const(1)},
	})
}

// Pipeline applies matrices in order.
type Pipeline []*Matrix

func (p Pipeline) Apply(v linalg.Vector3, t float64) linalg.Vector3 {
	for _, m := range p {
		v = m.Transform(v, t)
	}
	return v
}
