// Package corner provides the index arithmetic of a corner table.
//
// A simplex of arity k owns the k consecutive corners starting at
// simplex*k, so every relationship between corners of the same simplex is
// derived from the corner index alone. Nothing here touches table state:
// callers pass the arity (Triangle or Tetrahedron) and are responsible for
// keeping indices in range.
package corner

const (
	// None marks a corner without an opposite corner (mesh boundary).
	None = -1

	// Triangle is the arity of a 2D corner table.
	Triangle = 3

	// Tetrahedron is the arity of a 3D corner table.
	Tetrahedron = 4
)

// Next returns the corner following c inside its simplex.
func Next(c, k int) int {
	return (c/k)*k + (c+1)%k
}

// Prev returns the corner preceding c inside its simplex.
func Prev(c, k int) int {
	return (c/k)*k + (c+k-1)%k
}

// Simplex returns the index of the simplex owning c.
func Simplex(c, k int) int {
	return c / k
}

// Local returns the slot of c inside its simplex, in [0, k).
func Local(c, k int) int {
	return c % k
}

// First returns the first corner of simplex s.
func First(s, k int) int {
	return s * k
}

// Nth returns the j-th corner of the simplex owning c.
func Nth(c, k, j int) int {
	return (c/k)*k + j
}
