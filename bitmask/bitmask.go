// Package bitmask provides a packed bit-set over node identifiers.
//
// It is the visited-tracking primitive used by tour.Walker during incremental
// construction: O(1) set/test/clear of a single bit and O(n/64) bulk reset.
// Storage is a fixed-size word-packed bitmap (github.com/bits-and-blooms/bitset);
// this package adapts it to the int node-identifier domain used everywhere
// else in antour and pins down the reuse semantics (Resize reuses storage).
//
// Design:
//   - Hot-path methods (Set/Unset/Get) perform no bounds checks beyond the
//     backing store's own; indices are a caller contract: 0 ≤ i < Len().
//   - The zero value is an empty mask of length 0; Resize makes it usable.
//   - No logging, no panics on user input, no locking (single-owner value).
package bitmask

import "github.com/bits-and-blooms/bitset"

// Bitmask is a fixed-size packed bit-set indexed by node identifier.
// The zero value is empty; call Resize (or use New) before Set/Get.
type Bitmask struct {
	bits *bitset.BitSet
}

// New returns a Bitmask able to track identifiers in [0, n).
// Negative n is treated as 0.
//
// Complexity: O(n/64) time and space.
func New(n int) *Bitmask {
	b := &Bitmask{}
	b.Resize(n)
	return b
}

// Resize makes the mask track identifiers in [0, n) and clears every bit.
// When the requested length matches the current one the backing storage is
// reused, so a Walker reset across iterations does not reallocate.
//
// Complexity: O(n/64).
func (b *Bitmask) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if b.bits == nil || int(b.bits.Len()) != n {
		b.bits = bitset.New(uint(n))
		return
	}
	b.bits.ClearAll()
}

// Set marks identifier i. Contract: 0 ≤ i < Len().
func (b *Bitmask) Set(i int) { b.bits.Set(uint(i)) }

// Unset clears identifier i. Contract: 0 ≤ i < Len().
func (b *Bitmask) Unset(i int) { b.bits.Clear(uint(i)) }

// Get reports whether identifier i is marked. Contract: 0 ≤ i < Len().
func (b *Bitmask) Get(i int) bool { return b.bits.Test(uint(i)) }

// Reset clears every bit without changing the tracked length.
//
// Complexity: O(Len()/64).
func (b *Bitmask) Reset() {
	if b.bits != nil {
		b.bits.ClearAll()
	}
}

// Len returns the number of identifiers the mask tracks.
func (b *Bitmask) Len() int {
	if b.bits == nil {
		return 0
	}
	return int(b.bits.Len())
}

// Count returns the number of marked identifiers.
//
// Complexity: O(Len()/64).
func (b *Bitmask) Count() int {
	if b.bits == nil {
		return 0
	}
	return int(b.bits.Count())
}
