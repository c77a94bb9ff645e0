package cornertable

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateTetrahedron is returned when a tetrahedron has no
	// positive orientation, or when two of its positions resolve to the
	// same vertex.
	ErrDegenerateTetrahedron = errors.New("degenerate tetrahedron")

	// ErrArity is returned when the number of positions passed to Insert
	// does not match the table's arity.
	ErrArity = errors.New("wrong number of positions")

	// ErrInvalidEpsilon is returned for a non-positive or non-finite
	// vertex matching tolerance.
	ErrInvalidEpsilon = errors.New("epsilon must be positive and finite")
)

// OrientationError reports a rejected tetrahedron insertion.
//
// It unwraps to ErrDegenerateTetrahedron.
type OrientationError struct {
	// Volume is the signed volume (times six) in input order.
	Volume float64
	// SwappedVolume is the signed volume (times six) with the second and
	// third vertices swapped.
	SwappedVolume float64
}

func (e *OrientationError) Error() string {
	return fmt.Sprintf("%v: signed volume %g, %g after swap", ErrDegenerateTetrahedron, e.Volume, e.SwappedVolume)
}

func (e *OrientationError) Unwrap() error { return ErrDegenerateTetrahedron }

// ArityError indicates a position count that does not match the simplex
// arity.
//
// It unwraps to ErrArity.
type ArityError struct {
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%v: expected %d, got %d", ErrArity, e.Expected, e.Actual)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// CoincidentVertexError reports a tetrahedron with two positions that
// resolve to the same vertex within the table's tolerance.
//
// It unwraps to ErrDegenerateTetrahedron.
type CoincidentVertexError struct {
	// First and Second are the input slots (0 to 3) that coincide.
	First  int
	Second int
	// Vertex is the vertex id both would map to.
	Vertex int
}

func (e *CoincidentVertexError) Error() string {
	return fmt.Sprintf("%v: positions %d and %d map to vertex %d", ErrDegenerateTetrahedron, e.First, e.Second, e.Vertex)
}

func (e *CoincidentVertexError) Unwrap() error { return ErrDegenerateTetrahedron }
