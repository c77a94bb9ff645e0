package testutil

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
)

// none mirrors corner.None without importing the library under test.
const none = -1

// Inspector is the read-only view of a corner table that the helpers in
// this package need.
type Inspector interface {
	Arity() int
	NumSimplices() int
	NumCorners() int
	NumVertices() int
	Vertex(c int) int
	Opposite(c int) int
	IncidentCorners(v int) []int
	Position(v int) r3.Vector
}

// CheckInvariants fails t unless m is dense, its opposite links are
// symmetric and never self-referencing, and every vertex lists exactly the
// corners that reference it.
func CheckInvariants(t testing.TB, m Inspector) {
	t.Helper()

	k := m.Arity()
	n := m.NumCorners()
	if n != m.NumSimplices()*k {
		t.Fatalf("density: %d corners for %d simplices of arity %d", n, m.NumSimplices(), k)
	}

	want := make([][]int, m.NumVertices())
	for c := 0; c < n; c++ {
		v := m.Vertex(c)
		if v < 0 || v >= m.NumVertices() {
			t.Fatalf("corner %d references vertex %d of %d", c, v, m.NumVertices())
		}
		want[v] = append(want[v], c)

		o := m.Opposite(c)
		switch {
		case o == none:
		case o == c:
			t.Errorf("corner %d is its own opposite", c)
		case o < 0 || o >= n:
			t.Errorf("corner %d has opposite %d out of range", c, o)
		case m.Opposite(o) != c:
			t.Errorf("asymmetric link: co(%d)=%d but co(%d)=%d", c, o, o, m.Opposite(o))
		}
	}

	for v := range want {
		got := append([]int(nil), m.IncidentCorners(v)...)
		sort.Ints(got)
		if len(got) == 0 {
			t.Errorf("vertex %d has no incident corners", v)
			continue
		}
		if fmt.Sprint(got) != fmt.Sprint(want[v]) {
			t.Errorf("vertex %d incident corners %v, want %v", v, got, want[v])
		}
	}
}

// Canonical describes m as a sorted list of simplices, each listing its
// corners' positions and the positions of their opposite corners. Two
// tables with the same geometry and adjacency produce the same result
// regardless of simplex and vertex numbering.
func Canonical(m Inspector) []string {
	k := m.Arity()
	out := make([]string, 0, m.NumSimplices())
	for s := 0; s < m.NumSimplices(); s++ {
		var b strings.Builder
		for j := 0; j < k; j++ {
			c := s*k + j
			fmt.Fprintf(&b, "%v", m.Position(m.Vertex(c)))
			if o := m.Opposite(c); o != none {
				fmt.Fprintf(&b, "->%v", m.Position(m.Vertex(o)))
			}
			b.WriteString(";")
		}
		out = append(out, b.String())
	}
	sort.Strings(out)
	return out
}
