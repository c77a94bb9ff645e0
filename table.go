package cornertable

import (
	"time"

	"github.com/golang/geo/r3"
	"github.com/lmreia/cornertable/internal/adjacency"
	"github.com/lmreia/cornertable/internal/table"
)

// Table is the arity-independent surface shared by TriangleTable and
// TetrahedronTable. Mesh importers and viewers can be written against it.
type Table interface {
	// Arity returns the number of corners per simplex.
	Arity() int
	// Insert adds one simplex from exactly Arity() positions.
	Insert(positions ...r3.Vector) error
	// RemoveVertex deletes the vertex at p, its simplices and any vertex
	// they orphan. Unknown positions are ignored.
	RemoveVertex(p r3.Vector) Removal
	// RemoveSimplices deletes simplices by index. Indices outside
	// [0, NumSimplices()) are ignored.
	RemoveSimplices(indices ...int) Removal

	NumSimplices() int
	NumCorners() int
	NumVertices() int
	Vertex(c int) int
	Opposite(c int) int
	Position(v int) r3.Vector
	IncidentCorners(v int) []int
	Simplices() [][]int
	Positions() []r3.Vector
}

// Compile-time checks
var _ Table = (*TriangleTable)(nil)
var _ Table = (*TetrahedronTable)(nil)

// Removal summarizes the effect of a removal call.
type Removal struct {
	// Simplices is the number of simplices deleted.
	Simplices int
	// Vertices is the number of vertices deleted, cascades included.
	Vertices int
}

// mesh holds the state and operations common to both arities.
type mesh struct {
	store   *table.Store
	logger  *Logger
	metrics MetricsCollector
}

func newMesh(resolver adjacency.Resolver, optFns []Option) (mesh, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return mesh{}, err
	}
	return mesh{
		store:   table.New(o.epsilon, resolver),
		logger:  o.logger.WithArity(resolver.Arity()),
		metrics: o.metricsCollector,
	}, nil
}

// Arity returns the number of corners per simplex.
func (m *mesh) Arity() int { return m.store.Arity() }

// NumSimplices returns the number of live simplices.
func (m *mesh) NumSimplices() int { return m.store.NumSimplices() }

// NumCorners returns the number of live corners.
func (m *mesh) NumCorners() int { return m.store.NumCorners() }

// NumVertices returns the number of live vertices.
func (m *mesh) NumVertices() int { return m.store.NumVertices() }

// Vertex returns the vertex id of corner c.
func (m *mesh) Vertex(c int) int { return m.store.Vertex(c) }

// Opposite returns the corner facing c across an edge or face, or
// corner.None.
func (m *mesh) Opposite(c int) int { return m.store.Opposite(c) }

// Position returns the position of vertex v.
func (m *mesh) Position(v int) r3.Vector { return m.store.Position(v) }

// Positions returns a copy of all vertex positions, indexed by vertex id.
func (m *mesh) Positions() []r3.Vector { return m.store.Positions() }

// IncidentCorners returns a copy of the corners referencing vertex v.
func (m *mesh) IncidentCorners(v int) []int { return m.store.IncidentCorners(v) }

// FindVertex returns the id of the first vertex within tolerance of p.
func (m *mesh) FindVertex(p r3.Vector) (int, bool) { return m.store.Find(p) }

// Simplices returns the vertex ids of every simplex in stored order.
func (m *mesh) Simplices() [][]int {
	out := make([][]int, m.store.NumSimplices())
	for i := range out {
		out[i] = m.store.Simplex(i)
	}
	return out
}

// RemoveVertex deletes the vertex at p together with every simplex using
// it, then every vertex left without corners. A position matching no
// vertex is a no-op.
func (m *mesh) RemoveVertex(p r3.Vector) Removal {
	start := time.Now()
	res := Removal(m.store.RemoveVertex(p))
	m.metrics.RecordRemoveVertex(res.Vertices > 0, res, time.Since(start))
	m.logger.LogRemoveVertex(p, res)
	return res
}

// RemoveSimplices deletes the given simplices in one pass. Indices outside
// [0, NumSimplices()) are ignored and the result does not depend on their
// order. Vertices left without corners are deleted as well.
func (m *mesh) RemoveSimplices(indices ...int) Removal {
	start := time.Now()
	res := Removal(m.store.RemoveSimplices(indices))
	m.metrics.RecordRemoveSimplices(len(indices), res, time.Since(start))
	m.logger.LogRemoveSimplices(len(indices), res)
	return res
}

// appendSimplex stores validated positions and reports the insertion.
func (m *mesh) appendSimplex(start time.Time, positions []r3.Vector) {
	m.store.Append(positions)
	m.metrics.RecordInsert(time.Since(start), nil)
	m.logger.LogInsert(m.store.NumSimplices()-1, nil)
}

func (m *mesh) reject(start time.Time, err error) error {
	m.metrics.RecordInsert(time.Since(start), err)
	m.logger.LogInsert(-1, err)
	return err
}
