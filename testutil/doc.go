// Package testutil provides testing utilities for cornertable.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating meshes, checking the structural
// invariants of a corner table, and comparing tables independently of
// simplex numbering.
//
// # Mesh Generation
//
//	rng := testutil.NewRNG(seed)
//	tris := rng.Grid(4, 3, 0.1)        // jittered triangulated grid
//	fan := testutil.Fan(5, 1)          // triangles around the origin
//	tets := testutil.CubeTetrahedra(2, 2, 2)
//
// # Invariant Checks
//
//	testutil.CheckInvariants(t, table)
//
// # Structural Comparison
//
//	assert.Equal(t, testutil.Canonical(a), testutil.Canonical(b))
package testutil
