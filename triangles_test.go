package cornertable

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/lmreia/cornertable/codec"
	"github.com/lmreia/cornertable/corner"
	"github.com/lmreia/cornertable/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(x, y, z float64) r3.Vector { return r3.Vector{X: x, Y: y, Z: z} }

// columns flattens a table into its vertex and opposite columns.
func columns(tbl Table) (cv, co []int) {
	for c := 0; c < tbl.NumCorners(); c++ {
		cv = append(cv, tbl.Vertex(c))
		co = append(co, tbl.Opposite(c))
	}
	return cv, co
}

func newTriangleTable(t *testing.T, tris [][3]r3.Vector, optFns ...Option) *TriangleTable {
	t.Helper()
	tt, err := NewTriangleTable(optFns...)
	require.NoError(t, err)
	for _, tri := range tris {
		tt.InsertTriangle(tri[0], tri[1], tri[2])
	}
	return tt
}

// unitGrid triangulates an nx by ny grid of unit cells at z = 0, two
// counter-clockwise triangles per cell.
func unitGrid(nx, ny int) [][3]r3.Vector {
	var tris [][3]r3.Vector
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x, y := float64(i), float64(j)
			tris = append(tris,
				[3]r3.Vector{vec(x, y, 0), vec(x+1, y, 0), vec(x+1, y+1, 0)},
				[3]r3.Vector{vec(x, y, 0), vec(x+1, y+1, 0), vec(x, y+1, 0)},
			)
		}
	}
	return tris
}

func TestTriangleTableSharedEdge(t *testing.T) {
	tt := newTriangleTable(t, [][3]r3.Vector{
		{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)},
		{vec(0, 0, 0), vec(0, 1, 0), vec(0, 0, 1)},
	})

	assert.Equal(t, 2, tt.NumTriangles())
	assert.Equal(t, 6, tt.NumCorners())
	assert.Equal(t, 4, tt.NumVertices())
	assert.Equal(t, corner.Triangle, tt.Arity())

	cv, co := columns(tt)
	assert.Equal(t, []int{0, 1, 2, 0, 2, 3}, cv)
	assert.Equal(t, []int{-1, 5, -1, -1, -1, 1}, co)

	assert.Equal(t, 5, tt.Left(0))
	assert.Equal(t, corner.None, tt.Right(0))
	assert.Equal(t, 5, tt.Right(2))
	assert.Equal(t, 1, tt.Right(3))
	assert.Equal(t, 1, tt.Left(4))

	testutil.CheckInvariants(t, tt)
}

func TestTriangleTableFullCornerTable(t *testing.T) {
	tt := newTriangleTable(t, [][3]r3.Vector{
		{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)},
		{vec(0, 0, 0), vec(0, 1, 0), vec(0, 0, 1)},
	})

	want := []TriangleRow{
		{Corner: 0, Vertex: 0, Triangle: 0, Next: 1, Prev: 2, Opposite: -1, Left: 5, Right: -1},
		{Corner: 1, Vertex: 1, Triangle: 0, Next: 2, Prev: 0, Opposite: 5, Left: -1, Right: -1},
		{Corner: 2, Vertex: 2, Triangle: 0, Next: 0, Prev: 1, Opposite: -1, Left: -1, Right: 5},
		{Corner: 3, Vertex: 0, Triangle: 1, Next: 4, Prev: 5, Opposite: -1, Left: -1, Right: 1},
		{Corner: 4, Vertex: 2, Triangle: 1, Next: 5, Prev: 3, Opposite: -1, Left: 1, Right: -1},
		{Corner: 5, Vertex: 3, Triangle: 1, Next: 3, Prev: 4, Opposite: 1, Left: -1, Right: -1},
	}
	assert.Equal(t, want, tt.FullCornerTable())
}

func TestTriangleTableSameWindingNotLinked(t *testing.T) {
	tt := newTriangleTable(t, [][3]r3.Vector{
		{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)},
		{vec(0, 0, 0), vec(1, 0, 0), vec(0, -1, 0)},
	})

	_, co := columns(tt)
	for c, o := range co {
		assert.Equal(t, corner.None, o, "corner %d", c)
	}
}

func TestTriangleTableVertexTolerance(t *testing.T) {
	tt := newTriangleTable(t, [][3]r3.Vector{
		{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)},
		{vec(1e-12, 0, 0), vec(0, 1, 0), vec(-1, 0, 0)},
	})
	assert.Equal(t, 4, tt.NumVertices())

	coarse := newTriangleTable(t, [][3]r3.Vector{
		{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)},
		{vec(0.01, 0, 0), vec(0, 1, 0), vec(-1, 0, 0)},
	}, WithEpsilon(0.1))
	assert.Equal(t, 4, coarse.NumVertices())

	// A difference of exactly eps is a distinct vertex.
	strict := newTriangleTable(t, [][3]r3.Vector{
		{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)},
		{vec(0.5, 0, 0), vec(0, 1, 0), vec(-1, 0, 0)},
	}, WithEpsilon(0.5))
	assert.Equal(t, 5, strict.NumVertices())
}

func TestTriangleTableGridGolden(t *testing.T) {
	tt := newTriangleTable(t, unitGrid(3, 2))
	require.Equal(t, 12, tt.NumTriangles())
	require.Equal(t, 12, tt.NumVertices())

	cv, co := columns(tt)
	assert.Equal(t, []int{
		0, 1, 2, 0, 2, 3, 1, 4, 5, 1, 5, 2, 4, 6, 7, 4, 7, 5,
		3, 2, 8, 3, 8, 9, 2, 5, 10, 2, 10, 8, 5, 7, 11, 5, 11, 10,
	}, cv)
	assert.Equal(t, []int{
		10, 5, -1, 20, -1, 1, 16, 11, -1, 26, 0, 7, -1, 17, -1, 32, 6, 13,
		28, 23, 3, -1, -1, 19, 34, 29, 9, -1, 18, 25, -1, 35, 15, -1, 24, 31,
	}, co)
	testutil.CheckInvariants(t, tt)

	res := tt.RemoveTriangles(5, 2, 7)
	assert.Equal(t, Removal{Simplices: 3, Vertices: 1}, res)
	cv, co = columns(tt)
	assert.Equal(t, []int{
		0, 1, 2, 0, 2, 3, 2, 10, 8, 1, 5, 2, 4, 6, 7, 5, 7, 9,
		3, 2, 8, 5, 9, 10, 2, 5, 10,
	}, cv)
	assert.Equal(t, []int{
		10, 5, -1, 20, -1, 1, -1, 18, 25, 26, 0, -1, -1, -1, -1, -1, 23, -1,
		7, -1, 3, -1, 24, 16, 22, 8, 9,
	}, co)
	assert.Equal(t, vec(3, 2, 0), tt.Position(9))
	testutil.CheckInvariants(t, tt)

	res = tt.RemoveVertex(vec(3, 2, 0))
	assert.Equal(t, Removal{Simplices: 2, Vertices: 1}, res)
	cv, co = columns(tt)
	assert.Equal(t, []int{0, 1, 2, 0, 2, 3, 2, 9, 8, 1, 5, 2, 4, 6, 7, 2, 5, 9, 3, 2, 8}, cv)
	assert.Equal(t, []int{10, 5, -1, 20, -1, 1, -1, 18, 16, 17, 0, -1, -1, -1, -1, -1, 8, 9, 7, -1, 3}, co)
	assert.Equal(t, 10, tt.NumVertices())
	assert.Equal(t, vec(2, 2, 0), tt.Position(9))
	testutil.CheckInvariants(t, tt)
}

func TestTriangleTableGridLinkCount(t *testing.T) {
	const nx, ny = 6, 5
	tt := newTriangleTable(t, testutil.NewRNG(3).Grid(nx, ny, 0.25))

	linked := 0
	_, co := columns(tt)
	for _, o := range co {
		if o != corner.None {
			linked++
		}
	}
	assert.Equal(t, 2*(3*nx*ny-nx-ny), linked)
	assert.Equal(t, (nx+1)*(ny+1), tt.NumVertices())
	testutil.CheckInvariants(t, tt)
}

func TestTriangleTableInsertionOrderIndependent(t *testing.T) {
	rng := testutil.NewRNG(11)
	tris := rng.Grid(4, 4, 0.5)
	want := testutil.Canonical(newTriangleTable(t, tris))

	for i := 0; i < 5; i++ {
		got := newTriangleTable(t, rng.Shuffle(tris))
		assert.Equal(t, want, testutil.Canonical(got))
		testutil.CheckInvariants(t, got)
	}
}

func TestTriangleTableRemoveFanVertex(t *testing.T) {
	tt := newTriangleTable(t, testutil.Fan(5, 1))
	require.Equal(t, 6, tt.NumVertices())

	res := tt.RemoveVertex(vec(0, 0, 0))

	assert.Equal(t, Removal{Simplices: 5, Vertices: 6}, res)
	assert.Zero(t, tt.NumTriangles())
	assert.Zero(t, tt.NumVertices())
	assert.Empty(t, tt.FullCornerTable())
}

func TestTriangleTableRemoveUnknownVertex(t *testing.T) {
	tt := newTriangleTable(t, testutil.Fan(4, 1))
	before := tt.FullCornerTable()

	res := tt.RemoveVertex(vec(7, 7, 7))

	assert.Equal(t, Removal{}, res)
	assert.Equal(t, before, tt.FullCornerTable())
}

func TestTriangleTableBatchOrderIndependent(t *testing.T) {
	tris := testutil.NewRNG(5).Grid(4, 3, 0.1)
	a := newTriangleTable(t, tris)
	b := newTriangleTable(t, tris)

	resA := a.RemoveTriangles(5, 2, 7)
	resB := b.RemoveTriangles(7, 5, 2, 5)

	assert.Equal(t, resA, resB)
	assert.Equal(t, a.FullCornerTable(), b.FullCornerTable())
	assert.Equal(t, a.Positions(), b.Positions())
	testutil.CheckInvariants(t, a)
}

func TestTriangleTableRemoveOutOfRange(t *testing.T) {
	tt := newTriangleTable(t, testutil.Fan(4, 1))
	before := tt.FullCornerTable()
	n := tt.NumTriangles()

	res := tt.RemoveTriangles(n, n+10, -1)

	assert.Equal(t, Removal{}, res)
	assert.Equal(t, before, tt.FullCornerTable())

	res = tt.RemoveTriangles()
	assert.Equal(t, Removal{}, res)
}

func TestTriangleTableRemoveReinsert(t *testing.T) {
	tris := testutil.NewRNG(9).Grid(3, 3, 0.2)
	tt := newTriangleTable(t, tris)
	want := testutil.Canonical(tt)

	rng := testutil.NewRNG(21)
	idx := rng.Sample(tt.NumTriangles(), 6)
	var removed [][]r3.Vector
	for _, s := range idx {
		var tri []r3.Vector
		for _, v := range tt.Simplices()[s] {
			tri = append(tri, tt.Position(v))
		}
		removed = append(removed, tri)
	}

	tt.RemoveTriangles(idx...)
	testutil.CheckInvariants(t, tt)
	require.Equal(t, len(tris)-len(idx), tt.NumTriangles())

	for _, tri := range removed {
		require.NoError(t, tt.Insert(tri...))
	}
	assert.Equal(t, want, testutil.Canonical(tt))
	testutil.CheckInvariants(t, tt)
}

func TestTriangleTableRandomRemovals(t *testing.T) {
	rng := testutil.NewRNG(42)
	tt := newTriangleTable(t, rng.Grid(8, 8, 0.3))

	for tt.NumTriangles() > 0 {
		n := tt.NumTriangles()
		if rng.Intn(3) == 0 {
			v := rng.Intn(tt.NumVertices())
			res := tt.RemoveVertex(tt.Position(v))
			assert.Positive(t, res.Vertices)
		} else {
			count := 1 + rng.Intn(min(n, 4))
			res := tt.RemoveTriangles(rng.Sample(n, count)...)
			assert.Equal(t, count, res.Simplices)
		}
		testutil.CheckInvariants(t, tt)
	}
	assert.Zero(t, tt.NumVertices())
}

func TestTriangleTableInsertArity(t *testing.T) {
	tt := newTriangleTable(t, nil)

	err := tt.Insert(vec(0, 0, 0), vec(1, 0, 0))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArity))
	var ae *ArityError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 3, ae.Expected)
	assert.Equal(t, 2, ae.Actual)
	assert.Zero(t, tt.NumTriangles())
	assert.Zero(t, tt.NumVertices())
}

func TestTriangleTableMarshalCornerTable(t *testing.T) {
	tt := newTriangleTable(t, [][3]r3.Vector{
		{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)},
		{vec(0, 0, 0), vec(0, 1, 0), vec(0, 0, 1)},
	})

	for _, c := range []codec.Codec{nil, codec.JSON{}, codec.GoJSON{}} {
		data, err := tt.MarshalCornerTable(c)
		require.NoError(t, err)

		var rows []TriangleRow
		require.NoError(t, json.Unmarshal(data, &rows))
		assert.Equal(t, tt.FullCornerTable(), rows)
	}

	data, err := tt.MarshalCornerTable(nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"o":5`)
}

func TestTriangleTableWriteCornerTable(t *testing.T) {
	tt := newTriangleTable(t, testutil.Fan(3, 1))

	var buf bytes.Buffer
	require.NoError(t, tt.WriteCornerTable(&buf, codec.JSON{}))

	want, err := tt.MarshalCornerTable(codec.JSON{})
	require.NoError(t, err)
	assert.JSONEq(t, string(want), buf.String())
}

func TestTriangleTableRepeatedVertex(t *testing.T) {
	a, b := vec(0, 0, 0), vec(1, 0, 0)
	tt := newTriangleTable(t, [][3]r3.Vector{
		{a, a, b},
		{a, vec(1e-12, 0, 0), b},
		{a, b, vec(0, 1, 0)},
	})

	assert.Equal(t, 3, tt.NumTriangles())
	assert.Equal(t, 3, tt.NumVertices())
	testutil.CheckInvariants(t, tt)
	_, co := columns(tt)
	for c, o := range co {
		if o != corner.None {
			assert.NotEqual(t, c/3, o/3, "corner %d linked inside its own triangle", c)
		}
	}

	tt.RemoveTriangles(1)
	testutil.CheckInvariants(t, tt)
}
