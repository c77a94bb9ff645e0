// Package adjacency computes opposite-corner links for newly inserted
// simplices. Matching is driven entirely by vertex incidence lists: two
// simplices are neighbours when a vertex they share carries an edge (2D)
// or face (3D) that both traverse in opposite directions.
package adjacency

import "github.com/lmreia/cornertable/corner"

// Mesh is the view of a corner table a Resolver works on.
type Mesh interface {
	// Vertex returns the vertex id of corner c.
	Vertex(c int) int
	// Incident returns the corners referencing vertex v.
	Incident(v int) []int
	// Link makes a and b mutual opposites.
	Link(a, b int)
}

// Resolver patches opposite links around one vertex of a freshly inserted
// simplex. It is run for every vertex of that simplex.
type Resolver interface {
	Resolve(m Mesh, v int)
	Arity() int
}

// Edges resolves triangle adjacency.
type Edges struct{}

// Arity implements Resolver.
func (Edges) Arity() int { return corner.Triangle }

// Resolve links every pair of corners around v whose trailing and leading
// edges coincide with reversed orientation. Already linked pairs are
// rewritten with the same values. Corners of the same triangle are never
// paired, so a triangle with a repeated vertex stays unlinked internally.
func (Edges) Resolve(m Mesh, v int) {
	const k = corner.Triangle

	incident := m.Incident(v)
	for _, c1 := range incident {
		for _, c2 := range incident {
			if corner.Simplex(c1, k) == corner.Simplex(c2, k) {
				continue
			}
			if m.Vertex(corner.Next(c1, k)) == m.Vertex(corner.Prev(c2, k)) {
				m.Link(corner.Prev(c1, k), corner.Next(c2, k))
			}
		}
	}
}
