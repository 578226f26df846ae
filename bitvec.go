package bitvec

import "github.com/hupe1980/bitvec/alloc"

const (
	bitsPerByte = 8
	byteShift   = 3   // index >> byteShift == index / 8
	bitMask     = 0x7 // index & bitMask == index % 8
)

// bytesFor returns the number of bytes needed to hold n bits.
func bytesFor(n int) int {
	return (n + bitsPerByte - 1) >> byteShift
}

// Bitset is a dense, resizable array of bits packed eight per byte.
//
// Bit i lives in byte i/8 at position i%8, LSB-first: bit 0 of a byte
// is its value 1, bit 7 its value 128. The byte buffer is exclusively
// owned by the Bitset; capacity is always 8 * len(buffer).
//
// A Bitset is not safe for concurrent use.
type Bitset struct {
	data      []byte
	capacity  int // total addressable bits, multiple of 8
	size      int // logical bit count, size <= capacity
	allocator alloc.Allocator
}

// NewEmpty creates a Bitset with size and capacity zero and no backing
// buffer. It never fails; the first Resize allocates.
func NewEmpty(optFns ...Option) *Bitset {
	o := applyOptions(optFns...)

	return &Bitset{
		allocator: o.allocator,
	}
}

// New creates a Bitset holding numBits bits, all zero.
func New(numBits int, optFns ...Option) (*Bitset, error) {
	return newBitset(numBits, true, optFns...)
}

// NewUninitialized creates a Bitset holding numBits bits without
// clearing the buffer. The initial bit values are unspecified when the
// allocator recycles memory (e.g. alloc.Pooled); callers must write
// before reading. This is the explicit escape hatch for hot paths that
// fully overwrite the vector anyway.
func NewUninitialized(numBits int, optFns ...Option) (*Bitset, error) {
	return newBitset(numBits, false, optFns...)
}

func newBitset(numBits int, zeroed bool, optFns ...Option) (*Bitset, error) {
	if numBits < 0 {
		return nil, ErrInvalidSize
	}

	o := applyOptions(optFns...)

	numBytes := bytesFor(numBits)

	data, err := o.allocator.Alloc(numBytes, zeroed)
	if err != nil {
		return nil, translateAllocError(err)
	}

	return &Bitset{
		data:      data,
		capacity:  numBytes * bitsPerByte,
		size:      numBits,
		allocator: o.allocator,
	}, nil
}

// Len returns the logical number of bits.
func (s *Bitset) Len() int {
	return s.size
}

// Cap returns the total number of addressable bits, always a multiple
// of 8.
func (s *Bitset) Cap() int {
	return s.capacity
}

// ByteLen returns the number of bytes backing the vector, Cap()/8.
func (s *Bitset) ByteLen() int {
	return s.capacity / bitsPerByte
}

// Get reports whether bit index is set.
func (s *Bitset) Get(index int) (bool, error) {
	if uint(index) >= uint(s.capacity) {
		return false, &ErrIndexOutOfRange{Index: index, Capacity: s.capacity}
	}

	return s.GetUnchecked(index), nil
}

// GetUnchecked reports whether bit index is set, without bounds
// validation.
func (s *Bitset) GetUnchecked(index int) bool {
	return s.data[index>>byteShift]&(1<<(index&bitMask)) != 0
}

// Set writes bit index to value, leaving every other bit untouched.
func (s *Bitset) Set(index int, value bool) error {
	if uint(index) >= uint(s.capacity) {
		return &ErrIndexOutOfRange{Index: index, Capacity: s.capacity}
	}

	s.SetUnchecked(index, value)

	return nil
}

// SetUnchecked writes bit index to value without bounds validation.
func (s *Bitset) SetUnchecked(index int, value bool) {
	var v byte
	if value {
		v = 0xFF
	}

	// Branch-free merge: flips the target bit only where it differs
	// from v, never touching the other seven bits.
	entry := &s.data[index>>byteShift]
	*entry ^= (v ^ *entry) & (1 << (index & bitMask))
}

// Clone returns a deep, fully independent copy sharing no buffer with
// the original. The copy is allocated through the same allocator.
func (s *Bitset) Clone() (*Bitset, error) {
	data, err := s.allocator.Alloc(len(s.data), false)
	if err != nil {
		return nil, translateAllocError(err)
	}
	copy(data, s.data)

	return &Bitset{
		data:      data,
		capacity:  s.capacity,
		size:      s.size,
		allocator: s.allocator,
	}, nil
}

// Close releases the backing buffer to the allocator. The Bitset must
// not be used afterwards.
func (s *Bitset) Close() error {
	if s.data != nil {
		s.allocator.Free(s.data)
		s.data = nil
	}
	s.capacity = 0
	s.size = 0

	return nil
}
