package table

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/golang/geo/r3"
	"github.com/lmreia/cornertable/corner"
	"github.com/lmreia/cornertable/internal/conv"
)

// Removal summarizes what a removal call deleted, cascades included.
type Removal struct {
	Simplices int
	Vertices  int
}

func (r *Removal) add(o Removal) {
	r.Simplices += o.Simplices
	r.Vertices += o.Vertices
}

// RemoveSimplices deletes the given simplices. Indices outside
// [0, NumSimplices()) are ignored and duplicates collapse. Vertices left
// without incident corners are removed afterwards.
func (s *Store) RemoveSimplices(indices []int) Removal {
	n := s.NumSimplices()
	targets := roaring.New()
	for _, i := range indices {
		if i < 0 || i >= n {
			continue
		}
		id, err := conv.IntToUint32(i)
		if err != nil {
			continue
		}
		targets.Add(id)
	}

	var orphans []r3.Vector
	res := s.removeSet(targets, &orphans)
	res.add(s.drain(orphans))
	return res
}

// RemoveVertex deletes the vertex at p together with every simplex using
// it, then every vertex orphaned by that. A position with no vertex is a
// no-op.
func (s *Store) RemoveVertex(p r3.Vector) Removal {
	return s.drain([]r3.Vector{p})
}

// drain removes the vertices at the queued positions. Orphans discovered on
// the way are appended to the queue, so cascades never recurse. Positions
// no longer present are skipped.
func (s *Store) drain(queue []r3.Vector) Removal {
	var res Removal
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		v, ok := s.vertices.Find(p)
		if !ok {
			continue
		}

		targets := roaring.New()
		for _, c := range s.vertices.Incident(v) {
			id, err := conv.IntToUint32(corner.Simplex(c, s.arity))
			if err != nil {
				continue
			}
			targets.Add(id)
		}
		res.add(s.removeSet(targets, &queue))

		// Simplex removal never renumbers vertices, so v is still valid.
		s.removeVertexSlot(v)
		res.Vertices++
	}
	return res
}

// removeSet deletes the simplices in targets from the highest index down,
// recording the position of every vertex whose incident list empties.
func (s *Store) removeSet(targets *roaring.Bitmap, orphans *[]r3.Vector) Removal {
	var res Removal
	it := targets.ReverseIterator()
	for it.HasNext() {
		i, err := conv.Uint32ToInt(it.Next())
		if err != nil || i >= s.NumSimplices() {
			continue
		}
		s.removeSimplex(i, orphans)
		res.Simplices++
	}
	return res
}

// removeSimplex deletes simplex i by moving the last simplex into its
// slot. Descending processing guarantees the moved simplex is never a
// pending target.
func (s *Store) removeSimplex(i int, orphans *[]r3.Vector) {
	k := s.arity
	base := corner.First(i, k)
	lastBase := len(s.cv) - k

	for c := base; c < base+k; c++ {
		v := s.cv[c]
		if s.vertices.Detach(v, c) {
			*orphans = append(*orphans, s.vertices.Position(v))
		}
	}

	if base != lastBase {
		for j := 0; j < k; j++ {
			s.vertices.Rewrite(s.cv[lastBase+j], lastBase+j, base+j)
		}
	}

	for c := base; c < base+k; c++ {
		if o := s.co[c]; o != corner.None {
			s.co[o] = corner.None
			s.co[c] = corner.None
		}
	}

	if base != lastBase {
		for j := 0; j < k; j++ {
			o := s.co[lastBase+j]
			if o >= lastBase {
				o = base + (o - lastBase)
			}
			s.cv[base+j] = s.cv[lastBase+j]
			s.co[base+j] = o
		}
		for c := base; c < base+k; c++ {
			if o := s.co[c]; o != corner.None {
				s.co[o] = c
			}
		}
	}

	s.cv = s.cv[:lastBase]
	s.co = s.co[:lastBase]
}

// removeVertexSlot deletes vertex v, which must have no incident corners,
// and renumbers the corners of the vertex moved into its slot.
func (s *Store) removeVertexSlot(v int) {
	if s.vertices.SwapRemove(v) < 0 {
		return
	}
	for _, c := range s.vertices.Incident(v) {
		s.cv[c] = v
	}
}
