// Package testutil provides testing utilities for cliffgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that draws angles, vectors,
// random multivectors and clamped unit directions.
//
// # Usage
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(3)                           // grade 1, coords in [-1, 1)
//	m := rng.Multivector(4, 6)                   // 6 random blades over e₁..e₄
//	d := rng.Direction(testutil.FullBounds())    // unit [x, y, z]
package testutil
