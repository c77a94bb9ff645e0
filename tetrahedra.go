package cornertable

import (
	"io"
	"time"

	"github.com/golang/geo/r3"
	"github.com/lmreia/cornertable/codec"
	"github.com/lmreia/cornertable/corner"
	"github.com/lmreia/cornertable/internal/adjacency"
	"github.com/lmreia/cornertable/internal/geom"
)

// TetrahedronTable is a corner table over tetrahedra. Every stored
// tetrahedron (A, B, C, D) satisfies AB . (AC x AD) > 0.
type TetrahedronTable struct {
	mesh
}

// TetrahedronRow is one line of the full corner table of a
// TetrahedronTable. A to D are the four corners of the owning tetrahedron.
type TetrahedronRow struct {
	Corner      int `json:"c"`
	Vertex      int `json:"v"`
	Tetrahedron int `json:"t"`
	Next        int `json:"n"`
	Prev        int `json:"p"`
	Opposite    int `json:"o"`
	A           int `json:"a"`
	B           int `json:"b"`
	C           int `json:"cc"`
	D           int `json:"d"`
}

// NewTetrahedronTable creates an empty tetrahedron corner table.
func NewTetrahedronTable(optFns ...Option) (*TetrahedronTable, error) {
	m, err := newMesh(adjacency.Faces{}, optFns)
	if err != nil {
		return nil, err
	}
	return &TetrahedronTable{mesh: m}, nil
}

// InsertTetrahedron adds the tetrahedron (a, b, c, d) and links it to the
// tetrahedra it shares faces with. If the signed volume in the given order
// is not positive, b and c are swapped. If that does not help either, an
// *OrientationError is returned; if two positions resolve to the same
// vertex, a *CoincidentVertexError. Rejected tetrahedra leave the table
// unchanged.
func (t *TetrahedronTable) InsertTetrahedron(a, b, c, d r3.Vector) error {
	return t.insert(time.Now(), [4]r3.Vector{a, b, c, d})
}

// Insert implements Table. It requires exactly four positions.
func (t *TetrahedronTable) Insert(positions ...r3.Vector) error {
	start := time.Now()
	if len(positions) != corner.Tetrahedron {
		return t.reject(start, &ArityError{Expected: corner.Tetrahedron, Actual: len(positions)})
	}
	return t.insert(start, [4]r3.Vector(positions))
}

func (t *TetrahedronTable) insert(start time.Time, p [4]r3.Vector) error {
	oriented, vol, swapped, ok := geom.Orient(p)
	if !ok {
		return t.reject(start, &OrientationError{Volume: vol, SwappedVolume: swapped})
	}
	if err := t.checkDistinct(p); err != nil {
		return t.reject(start, err)
	}
	t.appendSimplex(start, oriented[:])
	return nil
}

// checkDistinct fails if two of the input positions would be merged into
// one vertex.
func (t *TetrahedronTable) checkDistinct(p [4]r3.Vector) error {
	ids := t.store.Lookup(p[:])
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return &CoincidentVertexError{First: i, Second: j, Vertex: ids[i]}
			}
		}
	}
	return nil
}

// NumTetrahedra returns the number of live tetrahedra.
func (t *TetrahedronTable) NumTetrahedra() int { return t.NumSimplices() }

// RemoveTetrahedra is RemoveSimplices.
func (t *TetrahedronTable) RemoveTetrahedra(indices ...int) Removal {
	return t.RemoveSimplices(indices...)
}

// A returns the first corner of c's tetrahedron.
func (t *TetrahedronTable) A(c int) int { return corner.Nth(c, corner.Tetrahedron, 0) }

// B returns the second corner of c's tetrahedron.
func (t *TetrahedronTable) B(c int) int { return corner.Nth(c, corner.Tetrahedron, 1) }

// C returns the third corner of c's tetrahedron.
func (t *TetrahedronTable) C(c int) int { return corner.Nth(c, corner.Tetrahedron, 2) }

// D returns the fourth corner of c's tetrahedron.
func (t *TetrahedronTable) D(c int) int { return corner.Nth(c, corner.Tetrahedron, 3) }

// FullCornerTable returns one row per live corner, in corner order.
func (t *TetrahedronTable) FullCornerTable() []TetrahedronRow {
	const k = corner.Tetrahedron

	rows := make([]TetrahedronRow, t.NumCorners())
	for c := range rows {
		rows[c] = TetrahedronRow{
			Corner:      c,
			Vertex:      t.Vertex(c),
			Tetrahedron: corner.Simplex(c, k),
			Next:        corner.Next(c, k),
			Prev:        corner.Prev(c, k),
			Opposite:    t.Opposite(c),
			A:           t.A(c),
			B:           t.B(c),
			C:           t.C(c),
			D:           t.D(c),
		}
	}
	return rows
}

// MarshalCornerTable encodes FullCornerTable with c, or codec.Default when
// c is nil.
func (t *TetrahedronTable) MarshalCornerTable(c codec.Codec) ([]byte, error) {
	return marshalRows(c, t.FullCornerTable())
}

// WriteCornerTable streams FullCornerTable to w with c, or codec.Default
// when c is nil.
func (t *TetrahedronTable) WriteCornerTable(w io.Writer, c codec.Codec) error {
	return writeRows(w, c, t.FullCornerTable())
}
