// Package cornertable provides corner tables for triangle (2D) and
// tetrahedron (3D) meshes.
//
// A corner table stores a simplicial mesh as a flat array of corners. Each
// corner records the vertex it touches and the opposite corner across the
// shared edge (triangles) or face (tetrahedra), or corner.None at the
// boundary. Everything else (next, previous, owning simplex) is derived from
// the corner index; see package corner.
//
// # Quick Start
//
//	tt, _ := cornertable.NewTriangleTable()
//	tt.InsertTriangle(r3.Vector{X: 0}, r3.Vector{X: 1}, r3.Vector{Y: 1})
//	tt.InsertTriangle(r3.Vector{X: 0}, r3.Vector{Y: 1}, r3.Vector{Z: 1})
//	for _, row := range tt.FullCornerTable() {
//	    fmt.Println(row)
//	}
//
// # Adjacency
//
// Adjacency is discovered on insertion from the incidence lists of the new
// simplex's vertices; no edge or face hashing is involved. Triangles must be
// wound consistently (counter-clockwise) to be linked. Tetrahedra are
// reoriented on insertion so that AB . (AC x AD) > 0; a tetrahedron that is
// flat in both orders is rejected with ErrDegenerateTetrahedron.
//
// # Removal
//
// RemoveSimplices and RemoveVertex keep every array dense by moving the last
// simplex (or vertex) into each freed slot. Vertices left without corners
// are removed as well. Consequently simplex and vertex indices are only
// stable between removals.
//
// # Concurrency
//
// Tables are not safe for concurrent use. Independent tables may be used
// from different goroutines.
package cornertable
