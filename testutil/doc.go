// Package testutil provides shared helpers for bitvec tests:
// a deterministic seeded RNG and a fault-injecting allocator for
// exercising allocation-failure paths.
package testutil
