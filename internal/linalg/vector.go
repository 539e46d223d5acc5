package linalg

import (
	"fmt"
	"math"
)

// Vector3 is an immutable 3D vector.
type Vector3 struct {
	x, y, z float64
}

func NewVector3(x, y, z float64) Vector3 { return Vector3{x, y, z} }

func (v Vector3) X() float64 { return v.x }
func (v Vector3) Y() float64 { return v.y }
func (v Vector3) Z() float64 { return v.z }

// At returns component i (0=x, 1=y, 2=z).
func (v Vector3) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.x, nil
	case 1:
		return v.y, nil
	case 2:
		return v.z, nil
	}
	return 0, fmt.Errorf("Vector3.At(%d): %w", i, ErrIndexOutOfBounds)
}

func (v Vector3) Add(o Vector3) Vector3   { return Vector3{v.x + o.x, v.y + o.y, v.z + o.z} }
func (v Vector3) Sub(o Vector3) Vector3   { return Vector3{v.x - o.x, v.y - o.y, v.z - o.z} }
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.x * s, v.y * s, v.z * s} }
func (v Vector3) Dot(o Vector3) float64   { return v.x*o.x + v.y*o.y + v.z*o.z }
func (v Vector3) Mag() float64            { return math.Sqrt(v.Dot(v)) }
func (v Vector3) Components() [3]float64  { return [3]float64{v.x, v.y, v.z} }

// Equal compares componentwise within tol.
func (v Vector3) Equal(o Vector3, tol float64) bool {
	return math.Abs(v.x-o.x) <= tol && math.Abs(v.y-o.y) <= tol && math.Abs(v.z-o.z) <= tol
}

// IsFinite reports whether no component is NaN or Inf.
func (v Vector3) IsFinite() bool {
	for _, c := range v.Components() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Unit returns v scaled to magnitude 1.
func (v Vector3) Unit() (Vector3, error) {
	mag := v.Mag()
	if mag == 0 {
		return Vector3{}, fmt.Errorf("Vector3.Unit(%v): %w", v, ErrDegenerateVector)
	}
	return v.Scale(1 / mag), nil
}

// ProjectedSize returns the signed length of v projected onto o.
func (v Vector3) ProjectedSize(o Vector3) (float64, error) {
	mag := o.Mag()
	if mag == 0 {
		return 0, fmt.Errorf("Vector3.ProjectedSize(%v): %w", o, ErrDegenerateVector)
	}
	return v.Dot(o) / mag, nil
}

// Matrix returns v as a 3x1 column matrix.
func (v Vector3) Matrix() *Matrix {
	m := newZero(3, 1)
	m.data[0][0], m.data[1][0], m.data[2][0] = v.x, v.y, v.z
	return m
}

// Vector3FromMatrix reads a 3x1 column matrix.
func Vector3FromMatrix(m *Matrix) (Vector3, error) {
	if m.rows != 3 || m.cols != 1 {
		return Vector3{}, shapeErrorf("Vector3FromMatrix", 3, 1, m.rows, m.cols)
	}
	return Vector3{m.data[0][0], m.data[1][0], m.data[2][0]}, nil
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.x, v.y, v.z)
}
