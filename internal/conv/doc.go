// Package conv provides checked integer conversions at the boundary
// between corner table indices (int) and the 32-bit ids stored in roaring
// bitmaps.
package conv
