package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/golang/geo/r3"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Sample returns count distinct values from [0,n) in random order.
func (r *RNG) Sample(n, count int) []int {
	p := r.Perm(n)
	if count > n {
		count = n
	}
	return p[:count]
}

// Grid triangulates an nx by ny grid of unit cells in counter-clockwise
// order. Every grid point gets a random z offset in [-jitter, jitter),
// shared by all triangles touching it, so the mesh stays connected.
func (r *RNG) Grid(nx, ny int, jitter float64) [][3]r3.Vector {
	r.mu.Lock()
	z := make([]float64, (nx+1)*(ny+1))
	for i := range z {
		z[i] = (r.rand.Float64()*2 - 1) * jitter
	}
	r.mu.Unlock()

	pt := func(i, j int) r3.Vector {
		return r3.Vector{X: float64(i), Y: float64(j), Z: z[j*(nx+1)+i]}
	}

	tris := make([][3]r3.Vector, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			tris = append(tris,
				[3]r3.Vector{pt(i, j), pt(i+1, j), pt(i+1, j+1)},
				[3]r3.Vector{pt(i, j), pt(i+1, j+1), pt(i, j+1)},
			)
		}
	}
	return tris
}

// Shuffle returns tris in a random order.
func (r *RNG) Shuffle(tris [][3]r3.Vector) [][3]r3.Vector {
	out := make([][3]r3.Vector, len(tris))
	for i, p := range r.Perm(len(tris)) {
		out[i] = tris[p]
	}
	return out
}

// Fan returns n counter-clockwise triangles sharing the origin, with rim
// vertices on a circle of the given radius. The fan is closed for n >= 3.
func Fan(n int, radius float64) [][3]r3.Vector {
	rim := make([]r3.Vector, n)
	for i := range rim {
		a := 2 * math.Pi * float64(i) / float64(n)
		rim[i] = r3.Vector{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	tris := make([][3]r3.Vector, n)
	for i := range tris {
		tris[i] = [3]r3.Vector{{}, rim[i], rim[(i+1)%n]}
	}
	return tris
}

// kuhn lists the six tetrahedra of the Kuhn subdivision of a unit cube as
// paths from corner 0 to corner 7 (corner bits are x, y, z).
var kuhn = [6][4]int{
	{0, 1, 3, 7},
	{0, 1, 5, 7},
	{0, 2, 3, 7},
	{0, 2, 6, 7},
	{0, 4, 5, 7},
	{0, 4, 6, 7},
}

// CubeTetrahedra splits an nx by ny by nz block of unit cubes into
// tetrahedra. The vertex order is not oriented; corner tables fix it on
// insertion.
func CubeTetrahedra(nx, ny, nz int) [][4]r3.Vector {
	tets := make([][4]r3.Vector, 0, 6*nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				for _, path := range kuhn {
					var t [4]r3.Vector
					for n, bits := range path {
						t[n] = r3.Vector{
							X: float64(i + bits&1),
							Y: float64(j + (bits>>1)&1),
							Z: float64(k + (bits>>2)&1),
						}
					}
					tets = append(tets, t)
				}
			}
		}
	}
	return tets
}
