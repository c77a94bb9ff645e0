// Package registry deduplicates vertex positions and tracks, for every
// vertex, the corners that currently reference it.
package registry

import (
	"math"

	"github.com/golang/geo/r3"
)

// Registry owns the vertex position array and the per-vertex incident
// corner lists. Indices are dense: removing a vertex moves the last one
// into its slot.
type Registry struct {
	eps       float64
	positions []r3.Vector
	incident  [][]int
}

// New creates an empty registry matching positions within eps on every
// coordinate.
func New(eps float64) *Registry {
	return &Registry{eps: eps}
}

// Len returns the number of live vertices.
func (r *Registry) Len() int { return len(r.positions) }

// Epsilon returns the per-coordinate match tolerance.
func (r *Registry) Epsilon() float64 { return r.eps }

// Position returns the position of vertex v.
func (r *Registry) Position(v int) r3.Vector { return r.positions[v] }

// Incident returns the incident corner list of vertex v.
// The slice is owned by the registry and must not be modified.
func (r *Registry) Incident(v int) []int { return r.incident[v] }

func (r *Registry) matches(p, q r3.Vector) bool {
	return math.Abs(q.X-p.X) < r.eps && math.Abs(q.Y-p.Y) < r.eps && math.Abs(q.Z-p.Z) < r.eps
}

// Find returns the first vertex within eps of p on all three coordinates.
func (r *Registry) Find(p r3.Vector) (int, bool) {
	for i, q := range r.positions {
		if r.matches(p, q) {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns the ids that successive InsertOrReuse calls for ps would
// return, leaving the registry unchanged.
func (r *Registry) Lookup(ps []r3.Vector) []int {
	ids := make([]int, len(ps))
	var pending []r3.Vector
	for i, p := range ps {
		if v, ok := r.Find(p); ok {
			ids[i] = v
			continue
		}
		ids[i] = -1
		for j, q := range pending {
			if r.matches(p, q) {
				ids[i] = len(r.positions) + j
				break
			}
		}
		if ids[i] < 0 {
			pending = append(pending, p)
			ids[i] = len(r.positions) + len(pending) - 1
		}
	}
	return ids
}

// InsertOrReuse registers corner c at position p. An existing vertex within
// tolerance gets c appended to its incident list; otherwise a new vertex is
// created. The vertex index is returned.
func (r *Registry) InsertOrReuse(p r3.Vector, c int) int {
	if v, ok := r.Find(p); ok {
		r.incident[v] = append(r.incident[v], c)
		return v
	}
	r.positions = append(r.positions, p)
	r.incident = append(r.incident, []int{c})
	return len(r.positions) - 1
}

// Detach removes corner c from the incident list of v, keeping the order of
// the remaining entries. It reports whether the list is now empty.
func (r *Registry) Detach(v, c int) bool {
	list := r.incident[v]
	for i, ic := range list {
		if ic == c {
			r.incident[v] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return len(r.incident[v]) == 0
}

// Rewrite replaces the entry oldCorner in the incident list of v with
// newCorner.
func (r *Registry) Rewrite(v, oldCorner, newCorner int) {
	for i, ic := range r.incident[v] {
		if ic == oldCorner {
			r.incident[v][i] = newCorner
			return
		}
	}
}

// SwapRemove deletes vertex v by moving the last vertex into its slot.
// It returns the former index of the moved vertex, or -1 when v was last.
// Callers must rewrite the corners listed in Incident(v) afterwards.
func (r *Registry) SwapRemove(v int) int {
	last := len(r.positions) - 1
	moved := -1
	if v != last {
		r.positions[v] = r.positions[last]
		r.incident[v] = r.incident[last]
		moved = last
	}
	r.positions[last] = r3.Vector{}
	r.incident[last] = nil
	r.positions = r.positions[:last]
	r.incident = r.incident[:last]
	return moved
}

// Positions returns a copy of all vertex positions in index order.
func (r *Registry) Positions() []r3.Vector {
	out := make([]r3.Vector, len(r.positions))
	copy(out, r.positions)
	return out
}
