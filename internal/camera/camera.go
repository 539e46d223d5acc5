// Package camera projects vectors onto the plane orthogonal to a viewing
// direction (orthographic projection).
package camera

import (
	"fmt"

	"github.com/san-kum/wirecube/internal/linalg"
)

// Camera looks along a fixed direction. Its magnitude is irrelevant, but it
// must be non-zero for projection to succeed.
type Camera struct {
	dir linalg.Vector3
}

func New(x, y, z float64) *Camera { return &Camera{dir: linalg.NewVector3(x, y, z)} }

func FromVector(dir linalg.Vector3) *Camera { return &Camera{dir: dir} }

func (c *Camera) Direction() linalg.Vector3 { return c.dir }

// ToProjected removes the component of v along the camera direction.
// A zero direction fails with linalg.ErrDegenerateVector.
func (c *Camera) ToProjected(v linalg.Vector3) (linalg.Vector3, error) {
	length, err := v.ProjectedSize(c.dir)
	if err != nil {
		return linalg.Vector3{}, fmt.Errorf("camera: %w", err)
	}
	unit, err := c.dir.Unit()
	if err != nil {
		return linalg.Vector3{}, fmt.Errorf("camera: %w", err)
	}
	return v.Sub(unit.Scale(length)), nil
}
