// SPDX-License-Identifier: MIT
// Package permtable - PRNG used to shuffle the permutation table.
//
// Goals:
//   - Determinism: the step function is fixed and endianness-free (pure uint32
//     arithmetic), so the same seed yields the same table everywhere.
//   - Encapsulation: a single generator type; no math/rand, no time-based sources.
//
// Concurrency:
//   - xorshift32 carries mutable state; it is only used inside New and never
//     escapes, so tables stay immutable.

package permtable

// seedMix is XOR-ed into the user seed before the first step. xorshift32 has
// a fixed point at zero, and seed 0 is the library default, so the raw seed
// cannot be used verbatim. The value is the 32-bit golden-ratio constant.
const seedMix uint32 = 0x9E3779B9

// xorshift32 is Marsaglia's 32-bit xorshift generator with triple (13, 17, 5).
type xorshift32 struct {
	state uint32
}

// newXorshift32 seeds a generator.
// Policy: state = seed ^ seedMix; a zero state (seed == seedMix) is replaced
// by seedMix itself.
//
// Complexity: O(1).
func newXorshift32(seed uint32) xorshift32 {
	s := seed ^ seedMix
	if s == 0 {
		s = seedMix
	}

	return xorshift32{state: s}
}

// next advances the generator and returns the new state.
//
// Complexity: O(1).
func (x *xorshift32) next() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s

	return s
}

// shuffleInPlace performs a Fisher–Yates shuffle of p driven by r.
// Index selection is next() % (i+1); the modulo bias over 256 entries is
// accepted as part of the fixed contract.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(p []uint8, r *xorshift32) {
	var (
		i int
		j int
	)
	for i = len(p) - 1; i > 0; i-- {
		j = int(r.next() % uint32(i+1))
		p[i], p[j] = p[j], p[i]
	}
}
