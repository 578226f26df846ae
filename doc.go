// Package bitvec provides a dynamically resizable bit vector for Go.
//
// A Bitset packs boolean flags eight per byte (LSB-first within a byte)
// and supports single-bit access, ranged clearing, bulk bit-sequence
// copies at arbitrary, non-byte-aligned offsets, and growth/shrinkage
// with optional zero-fill of newly exposed bits.
//
// # Quick Start
//
//	bs, _ := bitvec.New(128)
//	defer bs.Close()
//
//	_ = bs.Set(42, true)
//	on, _ := bs.Get(42) // true
//
//	// Copy 12 bits into the vector starting at bit 3.
//	bs.Write(3, []byte{0b10110011, 0b00001111}, 12)
//
// # Checked vs. Unchecked Access
//
// The exported methods validate indices and ranges and return
// structured errors on misuse. Every checked method has an *Unchecked
// twin (GetUnchecked, SetUnchecked, WriteUnchecked, ...) that skips
// validation for hot paths such as allocator free-bit maps. Callers of
// the unchecked variants are responsible for staying inside
// [0, Cap()).
//
// # Size and Capacity
//
// Len() is the logical bit count; Cap() is the total addressable bits
// given the current allocation, always a multiple of 8 and always
// exactly ceil(Len()/8) bytes after a resize. Resize and ResizeZero
// return the change in size as old minus new: positive on shrink,
// negative on growth.
//
// # Allocators
//
// Buffer memory is obtained through the alloc.Allocator interface.
// The default is the Go heap (always zeroed); alloc.Pooled recycles
// buffers without clearing them, which is what makes NewUninitialized
// observable, and alloc.Limited enforces a hard byte budget so that
// allocation failure (ErrOutOfMemory) becomes a real, testable
// outcome.
//
// # Concurrency
//
// A Bitset is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own mutual exclusion.
package bitvec
