// SPDX-License-Identifier: MIT

package permtable

// Size is the number of distinct entries in a permutation table.
const Size = 256

// mask keeps the low byte of a lattice coordinate.
const mask = Size - 1

// Hasher folds integer lattice coordinates into a byte. Kernels depend on this
// interface rather than on *Table so alternative hashing (or fixed values in
// tests) can be injected.
type Hasher interface {
	Hash2(x, y int) uint8
	Hash3(x, y, z int) uint8
	Hash4(x, y, z, w int) uint8
}

// Table is a seeded permutation of 0..255 stored twice in a row.
// The zero value is NOT usable; construct with New.
type Table struct {
	seed   uint32
	values [2 * Size]uint8
}

// New builds the permutation table for seed.
//
// Implementation:
//   - Stage 1: identity P[i] = i for i in 0..255.
//   - Stage 2: Fisher–Yates with xorshift32 seeded by seed (see xorshift.go).
//   - Stage 3: duplicate into P[256..512) so hashing never masks the sum.
//
// Complexity: O(Size) time, 512 bytes.
func New(seed uint32) *Table {
	t := &Table{seed: seed}

	var i int
	for i = 0; i < Size; i++ {
		t.values[i] = uint8(i)
	}

	r := newXorshift32(seed)
	shuffleInPlace(t.values[:Size], &r)
	copy(t.values[Size:], t.values[:Size])

	return t
}

// Seed returns the seed the table was built from.
func (t *Table) Seed() uint32 {
	return t.seed
}

// Values returns a copy of the 256-entry permutation.
func (t *Table) Values() [Size]uint8 {
	var out [Size]uint8
	copy(out[:], t.values[:Size])

	return out
}

// At returns P[i & 0xFF].
func (t *Table) At(i int) uint8 {
	return t.values[i&mask]
}

// Hash2 returns P[P[x&0xFF] + y&0xFF].
func (t *Table) Hash2(x, y int) uint8 {
	return t.values[int(t.values[x&mask])+(y&mask)]
}

// Hash3 extends Hash2 by one more fold with z.
func (t *Table) Hash3(x, y, z int) uint8 {
	h := int(t.values[x&mask]) + (y & mask)
	h = int(t.values[h]) + (z & mask)

	return t.values[h]
}

// Hash4 extends Hash3 by one more fold with w.
func (t *Table) Hash4(x, y, z, w int) uint8 {
	h := int(t.values[x&mask]) + (y & mask)
	h = int(t.values[h]) + (z & mask)
	h = int(t.values[h]) + (w & mask)

	return t.values[h]
}

// Hash folds an arbitrary number of coordinates with the same left fold as
// Hash2..Hash4. With no coordinates it returns P[0]; with one, P[x&0xFF].
//
// Complexity: O(len(coords)).
func (t *Table) Hash(coords ...int) uint8 {
	if len(coords) == 0 {
		return t.values[0]
	}

	h := coords[0] & mask
	for _, c := range coords[1:] {
		h = int(t.values[h]) + (c & mask)
	}

	return t.values[h]
}
