package adjacency

import "github.com/lmreia/cornertable/corner"

// faceLUT lists, for each local corner, the three faces containing it. Each
// face is given by the other two local corners in the order they follow the
// corner when the face is seen from outside a positively oriented
// tetrahedron.
var faceLUT = [4][3][2]int{
	{{2, 1}, {1, 3}, {3, 2}},
	{{3, 0}, {0, 2}, {2, 3}},
	{{1, 0}, {0, 3}, {3, 1}},
	{{1, 2}, {2, 0}, {0, 1}},
}

// oppositeLUT gives the local corner facing each entry of faceLUT.
var oppositeLUT = [4][3]int{
	{3, 2, 1},
	{2, 3, 0},
	{3, 1, 0},
	{0, 1, 2},
}

// Faces resolves tetrahedron adjacency. It relies on every tetrahedron
// being positively oriented, so a face shared by two tetrahedra is listed
// with reversed vertex pairs.
type Faces struct{}

// Arity implements Resolver.
func (Faces) Arity() int { return corner.Tetrahedron }

// Resolve compares the three faces of every incident corner of v against
// those of every incident corner of another tetrahedron and links the
// corners standing opposite each matching pair.
func (Faces) Resolve(m Mesh, v int) {
	const k = corner.Tetrahedron

	incident := m.Incident(v)
	for _, c1 := range incident {
		base1, l1 := corner.First(corner.Simplex(c1, k), k), corner.Local(c1, k)
		for _, c2 := range incident {
			base2, l2 := corner.First(corner.Simplex(c2, k), k), corner.Local(c2, k)
			if base1 == base2 {
				continue
			}
			for f1, e1 := range faceLUT[l1] {
				for f2, e2 := range faceLUT[l2] {
					if m.Vertex(base1+e1[0]) == m.Vertex(base2+e2[1]) &&
						m.Vertex(base1+e1[1]) == m.Vertex(base2+e2[0]) {
						m.Link(base1+oppositeLUT[l1][f1], base2+oppositeLUT[l2][f2])
					}
				}
			}
		}
	}
}
