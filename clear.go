package bitvec

// ClearRange sets every bit in [begin, end) to zero and returns the
// number of bits cleared, end - begin. Bits outside the range are left
// untouched.
func (s *Bitset) ClearRange(begin, end int) (int, error) {
	if begin < 0 || end < begin || end > s.capacity {
		return 0, &ErrInvalidRange{Begin: begin, End: end, Capacity: s.capacity}
	}

	return s.ClearRangeUnchecked(begin, end), nil
}

// ClearRangeUnchecked is ClearRange without range validation. The
// caller must guarantee 0 <= begin <= end <= Cap().
func (s *Bitset) ClearRangeUnchecked(begin, end int) int {
	if begin == end {
		return 0
	}

	beginShift := begin & bitMask
	endShift := end & bitMask
	bi := begin >> byteShift
	ei := end >> byteShift

	if bi == ei {
		// Both endpoints fall in one byte: zero exactly end-begin bits
		// starting at beginShift.
		s.data[bi] &^= byte(^(^uint(0)<<(end-begin))) << beginShift
		return end - begin
	}

	// Whole bytes strictly between the partial begin byte and the end
	// byte. When begin is byte-aligned there is no partial begin byte
	// and the bulk zero starts at bi itself.
	first := bi
	if beginShift != 0 {
		first++
	}
	if first < ei {
		clear(s.data[first:ei])
	}

	if beginShift != 0 {
		// Keep the bits below beginShift, zero the rest of the byte.
		s.data[bi] &^= 0xFF << beginShift
	}

	// The end byte holds bits [end - endShift, end); when end is
	// byte-aligned it lies fully outside the range and is not touched.
	if endShift != 0 {
		s.data[ei] &= 0xFF << endShift
	}

	return end - begin
}

// ClearN sets the n bits starting at index to zero and returns n.
func (s *Bitset) ClearN(index, n int) (int, error) {
	return s.ClearRange(index, index+n)
}

// ClearAll sets every bit to zero and returns the logical size. It
// zeroes all capacity bytes in one pass; clearing the slack bits
// beyond Len() is harmless since they carry no logical value.
func (s *Bitset) ClearAll() int {
	clear(s.data)
	return s.size
}
