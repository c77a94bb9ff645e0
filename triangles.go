package cornertable

import (
	"io"
	"time"

	"github.com/golang/geo/r3"
	"github.com/lmreia/cornertable/codec"
	"github.com/lmreia/cornertable/corner"
	"github.com/lmreia/cornertable/internal/adjacency"
)

// TriangleTable is a corner table over triangles. Triangles are expected in
// counter-clockwise order; two triangles are linked across an edge only if
// they traverse it in opposite directions.
type TriangleTable struct {
	mesh
}

// TriangleRow is one line of the full corner table of a TriangleTable.
type TriangleRow struct {
	Corner   int `json:"c"`
	Vertex   int `json:"v"`
	Triangle int `json:"t"`
	Next     int `json:"n"`
	Prev     int `json:"p"`
	Opposite int `json:"o"`
	Left     int `json:"l"`
	Right    int `json:"r"`
}

// NewTriangleTable creates an empty triangle corner table.
func NewTriangleTable(optFns ...Option) (*TriangleTable, error) {
	m, err := newMesh(adjacency.Edges{}, optFns)
	if err != nil {
		return nil, err
	}
	return &TriangleTable{mesh: m}, nil
}

// InsertTriangle adds the triangle (a, b, c), reusing existing vertices
// within tolerance, and links it to the triangles it shares edges with.
func (t *TriangleTable) InsertTriangle(a, b, c r3.Vector) {
	t.appendSimplex(time.Now(), []r3.Vector{a, b, c})
}

// Insert implements Table. It requires exactly three positions.
func (t *TriangleTable) Insert(positions ...r3.Vector) error {
	start := time.Now()
	if len(positions) != corner.Triangle {
		return t.reject(start, &ArityError{Expected: corner.Triangle, Actual: len(positions)})
	}
	t.appendSimplex(start, positions)
	return nil
}

// NumTriangles returns the number of live triangles.
func (t *TriangleTable) NumTriangles() int { return t.NumSimplices() }

// RemoveTriangles is RemoveSimplices.
func (t *TriangleTable) RemoveTriangles(indices ...int) Removal {
	return t.RemoveSimplices(indices...)
}

// Left returns the corner opposite the edge to the left of c's vertex,
// i.e. the opposite of Next(c).
func (t *TriangleTable) Left(c int) int {
	return t.Opposite(corner.Next(c, corner.Triangle))
}

// Right returns the opposite of Prev(c).
func (t *TriangleTable) Right(c int) int {
	return t.Opposite(corner.Prev(c, corner.Triangle))
}

// FullCornerTable returns one row per live corner, in corner order.
func (t *TriangleTable) FullCornerTable() []TriangleRow {
	const k = corner.Triangle

	rows := make([]TriangleRow, t.NumCorners())
	for c := range rows {
		rows[c] = TriangleRow{
			Corner:   c,
			Vertex:   t.Vertex(c),
			Triangle: corner.Simplex(c, k),
			Next:     corner.Next(c, k),
			Prev:     corner.Prev(c, k),
			Opposite: t.Opposite(c),
			Left:     t.Left(c),
			Right:    t.Right(c),
		}
	}
	return rows
}

// MarshalCornerTable encodes FullCornerTable with c, or codec.Default when
// c is nil.
func (t *TriangleTable) MarshalCornerTable(c codec.Codec) ([]byte, error) {
	return marshalRows(c, t.FullCornerTable())
}

// WriteCornerTable streams FullCornerTable to w with c, or codec.Default
// when c is nil.
func (t *TriangleTable) WriteCornerTable(w io.Writer, c codec.Codec) error {
	return writeRows(w, c, t.FullCornerTable())
}
