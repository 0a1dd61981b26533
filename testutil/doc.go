// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded RNG for generating reproducible random bit
// patterns:
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bools(100)   // random []bool
//	w := rng.Uint64()        // random word
package testutil
