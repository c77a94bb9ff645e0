// Package table implements the corner store shared by the 2D and 3D corner
// tables: the dense corner and opposite-corner arrays, the vertex registry
// they reference, and the compaction logic that keeps both dense.
package table

import (
	"github.com/golang/geo/r3"
	"github.com/lmreia/cornertable/corner"
	"github.com/lmreia/cornertable/internal/adjacency"
	"github.com/lmreia/cornertable/internal/registry"
)

// Compile-time check
var _ adjacency.Mesh = (*Store)(nil)

// Store is a corner table of fixed arity. It is not safe for concurrent
// use.
type Store struct {
	arity    int
	cv       []int // vertex id per corner
	co       []int // opposite corner per corner, corner.None if unmatched
	vertices *registry.Registry
	resolver adjacency.Resolver
}

// New creates an empty store whose arity is taken from the resolver.
func New(eps float64, resolver adjacency.Resolver) *Store {
	return &Store{
		arity:    resolver.Arity(),
		vertices: registry.New(eps),
		resolver: resolver,
	}
}

// Arity returns the number of corners per simplex.
func (s *Store) Arity() int { return s.arity }

// NumSimplices returns the number of live simplices.
func (s *Store) NumSimplices() int { return len(s.cv) / s.arity }

// NumCorners returns the number of live corners.
func (s *Store) NumCorners() int { return len(s.cv) }

// NumVertices returns the number of live vertices.
func (s *Store) NumVertices() int { return s.vertices.Len() }

// Vertex returns the vertex id of corner c.
func (s *Store) Vertex(c int) int { return s.cv[c] }

// Opposite returns the corner facing c, or corner.None.
func (s *Store) Opposite(c int) int { return s.co[c] }

// Incident returns the corners referencing vertex v. The slice is shared
// with the store.
func (s *Store) Incident(v int) []int { return s.vertices.Incident(v) }

// IncidentCorners returns a copy of the corners referencing vertex v.
func (s *Store) IncidentCorners(v int) []int {
	return append([]int(nil), s.vertices.Incident(v)...)
}

// Position returns the position of vertex v.
func (s *Store) Position(v int) r3.Vector { return s.vertices.Position(v) }

// Positions returns a copy of all vertex positions.
func (s *Store) Positions() []r3.Vector { return s.vertices.Positions() }

// Find returns the vertex matching p within tolerance.
func (s *Store) Find(p r3.Vector) (int, bool) { return s.vertices.Find(p) }

// Link makes a and b mutual opposites. Any other partner either of them
// had is unlinked first, so links stay symmetric on non-manifold input.
func (s *Store) Link(a, b int) {
	if a == b {
		return
	}
	s.unlink(a, b)
	s.unlink(b, a)
	s.co[a] = b
	s.co[b] = a
}

// unlink clears the link of c unless it already points to keep.
func (s *Store) unlink(c, keep int) {
	if o := s.co[c]; o != corner.None && o != keep {
		s.co[o] = corner.None
	}
}

// Simplex returns the vertex ids of simplex i in stored order.
func (s *Store) Simplex(i int) []int {
	base := corner.First(i, s.arity)
	out := make([]int, s.arity)
	copy(out, s.cv[base:base+s.arity])
	return out
}

// Lookup returns the vertex ids Append would assign to positions, without
// registering anything.
func (s *Store) Lookup(positions []r3.Vector) []int {
	return s.vertices.Lookup(positions)
}

// Append adds a simplex from exactly Arity() positions and resolves its
// adjacency. Orientation must already have been checked by the caller.
func (s *Store) Append(positions []r3.Vector) {
	base := len(s.cv)
	ids := make([]int, s.arity)
	for j, p := range positions[:s.arity] {
		ids[j] = s.vertices.InsertOrReuse(p, base+j)
	}
	for _, v := range ids {
		s.cv = append(s.cv, v)
		s.co = append(s.co, corner.None)
	}
	for _, v := range ids {
		s.resolver.Resolve(s, v)
	}
}
