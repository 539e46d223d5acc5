// Package transform implements 3x3 transformation matrices whose cells are
// evaluated lazily, either as constants or as functions of time.
//
// Time is passed explicitly to every read, so a matrix built once at startup
// produces the rotation for any frame without being rebuilt:
//
//	rz := transform.RotateZ(func(t float64) float64 { return t })
//	v2 := rz.Transform(v, 0.25)
//
// Vectors are treated as rows: Transform computes v·M.
package transform

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCell indicates a table entry that is neither a number nor a
// supported function.
var ErrUnsupportedCell = errors.New("transform: unsupported cell value")

type cellKind uint8

const (
	constCell cellKind = iota
	timedCell
	thunkCell
)

// Cell is one lazily evaluated matrix entry.
type Cell struct {
	kind  cellKind
	value float64
	timed func(t float64) float64
	thunk func() float64
}

// Const returns a cell that always evaluates to v.
func Const(v float64) Cell { return Cell{kind: constCell, value: v} }

// Timed returns a cell evaluated as fn(t) at read time.
func Timed(fn func(t float64) float64) Cell { return Cell{kind: timedCell, timed: fn} }

// Thunk returns a cell evaluated as fn() at read time. It ignores the time
// argument; whatever state fn closes over decides its value.
func Thunk(fn func() float64) Cell { return Cell{kind: thunkCell, thunk: fn} }

// Eval returns the current value of the cell.
func (c Cell) Eval(t float64) float64 {
	switch c.kind {
	case timedCell:
		return c.timed(t)
	case thunkCell:
		return c.thunk()
	}
	return c.value
}

// IsConst reports whether the cell is a plain number.
func (c Cell) IsConst() bool { return c.kind == constCell }

// CellOf normalizes a table entry into a Cell. Numbers become constant cells,
// func(float64) float64 becomes a timed cell and func() float64 a thunk.
func CellOf(v any) (Cell, error) {
	switch x := v.(type) {
	case Cell:
		if (x.kind == timedCell && x.timed == nil) || (x.kind == thunkCell && x.thunk == nil) {
			return Cell{}, fmt.Errorf("CellOf(nil func): %w", ErrUnsupportedCell)
		}
		return x, nil
	case float64:
		return Const(x), nil
	case float32:
		return Const(float64(x)), nil
	case int:
		return Const(float64(x)), nil
	case int8:
		return Const(float64(x)), nil
	case int16:
		return Const(float64(x)), nil
	case int32:
		return Const(float64(x)), nil
	case int64:
		return Const(float64(x)), nil
	case uint:
		return Const(float64(x)), nil
	case uint8:
		return Const(float64(x)), nil
	case uint16:
		return Const(float64(x)), nil
	case uint32:
		return Const(float64(x)), nil
	case uint64:
		return Const(float64(x)), nil
	case func(float64) float64:
		if x == nil {
			return Cell{}, fmt.Errorf("CellOf(nil func): %w", ErrUnsupportedCell)
		}
		return Timed(x), nil
	case func() float64:
		if x == nil {
			return Cell{}, fmt.Errorf("CellOf(nil func): %w", ErrUnsupportedCell)
		}
		return Thunk(x), nil
	}
	return Cell{}, fmt.Errorf("CellOf(%T): %w", v, ErrUnsupportedCell)
}
