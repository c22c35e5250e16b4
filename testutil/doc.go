// Package testutil provides testing utilities for enumbits.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe random source for generating
// bit positions, raw storage values, and membership patterns.
//
// # Random Bit Positions
//
//	rng := testutil.NewRNG(seed)
//	positions := rng.Positions(1000, 8) // 1000 positions in [0, 8)
//
// # Raw Storage Values
//
//	raw := rng.RawBits(8) // uint64 confined to the low 8 bits
//
// # Determinism
//
//	rng.Reset() // replay the same sequence
package testutil
