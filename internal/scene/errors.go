package scene

import (
	"errors"
	"fmt"
)

// ErrNonFinite indicates a corner that rotated or projected to NaN or Inf.
var ErrNonFinite = errors.New("scene: non-finite coordinate")

// FrameError wraps a failure with the frame context it happened in.
type FrameError struct {
	Time    float64
	Corner  int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame t=%.4f corner %d: %v", e.Time, e.Corner, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
