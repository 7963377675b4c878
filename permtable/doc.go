// SPDX-License-Identifier: MIT

// Package permtable builds the seeded permutation table that makes every
// lattice-based noise primitive deterministic, and hashes integer lattice
// coordinates through it.
//
// 🚀 What is a permutation table?
//
//	A shuffled copy of the bytes 0..255. Looking up a coordinate's low byte,
//	adding the next coordinate's low byte, and looking up again folds any
//	integer lattice point into a single pseudo-random byte:
//
//	  hash(x, y)    = P[P[x&0xFF] + y&0xFF]
//	  hash(x, y, z) = P[P[P[x&0xFF] + y&0xFF] + z&0xFF]
//
//	The table is stored doubled (512 entries) so the "+" never needs a mask.
//
// ✨ Contract:
//   - Determinism: the shuffle is driven by xorshift32, whose exact sequence is
//     part of the output contract. Same seed ⇒ same table on every platform.
//   - Negative coordinates hash by their two's-complement low byte.
//   - A *Table is immutable after New and safe for concurrent use.
//
// ⚙️ Usage:
//
//	t := permtable.New(42)
//	h := t.Hash3(x, y, z) // uint8
//
// The Hasher interface lets kernels accept any hashing strategy; tests use it
// to inject fixed hash values.
package permtable
