// Package linalg provides the small fixed-purpose linear algebra used by the
// cube renderer.
//
//   - [Matrix]: resizable row-major float64 grid with element, row and column
//     access, transpose, elementwise add/sub, scaling and matrix product
//   - [Vector3]: immutable 3D vector with magnitude, unit vector, dot product
//     and scalar projection
//
// Operations on [Matrix] return a new matrix. The InPlace variants commit the
// result to the receiver and are the only way a matrix changes after
// construction, apart from the explicit setters.
//
// # Errors
//
// Precondition violations are reported with the sentinels [ErrIndexOutOfBounds],
// [ErrDimensionMismatch], [ErrDegenerateVector] and [ErrInvalidDimensions],
// wrapped with the failing call, so callers match them with errors.Is.
package linalg
