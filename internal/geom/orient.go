// Package geom holds the orientation predicates used when inserting
// tetrahedra.
package geom

import "github.com/golang/geo/r3"

// SignedVolume returns AB . (AC x AD), six times the signed volume of the
// tetrahedron (a, b, c, d). It is positive when the triangle (a, c, b) faces
// away from d.
func SignedVolume(a, b, c, d r3.Vector) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	return ab.Dot(ac.Cross(ad))
}

// Orient returns the tetrahedron in an order with strictly positive signed
// volume. When the input order is not positive, the second and third
// vertices are swapped. ok is false if neither order is positive; the two
// computed volumes are always returned.
func Orient(p [4]r3.Vector) (oriented [4]r3.Vector, volume, swapped float64, ok bool) {
	volume = SignedVolume(p[0], p[1], p[2], p[3])
	if volume > 0 {
		return p, volume, volume, true
	}
	p[1], p[2] = p[2], p[1]
	swapped = SignedVolume(p[0], p[1], p[2], p[3])
	return p, volume, swapped, swapped > 0
}
