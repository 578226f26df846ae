package bitvec

// Write copies count bits from the byte-packed sequence seq into the
// vector starting at bit index, and returns count.
//
// seq is read LSB-first from its own bit 0: bit k of the sequence is
// seq[k/8] >> (k%8) & 1. Bits of the vector outside [index,
// index+count) are left untouched. seq must hold at least
// ceil(count/8) bytes.
func (s *Bitset) Write(index int, seq []byte, count int) (int, error) {
	if index < 0 || count < 0 || index+count > s.capacity {
		return 0, &ErrInvalidRange{Begin: index, End: index + count, Capacity: s.capacity}
	}
	if need := bytesFor(count); len(seq) < need {
		return 0, &ErrShortBuffer{Need: need, Have: len(seq)}
	}

	return s.WriteUnchecked(index, seq, count), nil
}

// WriteUnchecked is Write without validation. The caller must
// guarantee index+count <= Cap() and len(seq) >= ceil(count/8).
//
// The sequence is byte-aligned at its own position 0 while the
// destination starts at a sub-byte offset shift = index % 8, so each
// source byte is split: its low 8-shift bits land in the current
// destination byte (shifted up by shift), its high shift bits in the
// low bits of the next one. Masks preserve destination bits outside
// the range. The working mask is kept wider than a byte so that the
// right shift in the partial tail pulls ones down from above instead
// of shifting zeros in; this is what keeps the tail mask correct when
// the final bits straddle a byte boundary.
func (s *Bitset) WriteUnchecked(index int, seq []byte, count int) int {
	shift := uint(index) & bitMask
	mask := ^uint(0) << shift
	ei := index >> byteShift
	si := 0

	size := count
	for ; size >= bitsPerByte; size -= bitsPerByte {
		s.data[ei] &^= byte(mask)
		s.data[ei] |= seq[si] << shift
		ei++

		if shift != 0 {
			s.data[ei] &= byte(mask)
			s.data[ei] |= (seq[si] >> (bitsPerByte - shift)) &^ byte(mask)
		}

		si++
	}

	if size > 0 {
		end := shift + uint(size)
		if end < bitsPerByte {
			// Tail fits below the byte boundary: narrow the mask to
			// exactly size bits so higher destination bits survive.
			mask = ^(^uint(0) << size) << shift
		}

		s.data[ei] &^= byte(mask)
		s.data[ei] |= (seq[si] << shift) & byte(mask)

		if end > bitsPerByte {
			ei++
			mask >>= bitsPerByte - uint(size) // shifts ones down, not zeros

			s.data[ei] &= byte(mask)
			s.data[ei] |= (seq[si] >> (bitsPerByte - shift)) &^ byte(mask)
		}
	}

	return count
}

// Read copies count bits from the vector starting at bit index into
// the byte-packed destination dst, and returns count.
//
// Extracted bits are OR-merged into dst at its bit 0 onward, so the
// low count bits of dst must be zero beforehand for an exact copy;
// bits of dst beyond count are never touched. dst must hold at least
// ceil(count/8) bytes.
func (s *Bitset) Read(index int, dst []byte, count int) (int, error) {
	if index < 0 || count < 0 || index+count > s.capacity {
		return 0, &ErrInvalidRange{Begin: index, End: index + count, Capacity: s.capacity}
	}
	if need := bytesFor(count); len(dst) < need {
		return 0, &ErrShortBuffer{Need: need, Have: len(dst)}
	}

	return s.ReadUnchecked(index, dst, count), nil
}

// ReadUnchecked is Read without validation; structurally the mirror of
// WriteUnchecked with the masks oriented to extract rather than
// overwrite. Each destination byte is assembled from the high bits of
// the current source byte and, when shift != 0, the low bits of the
// next one.
func (s *Bitset) ReadUnchecked(index int, dst []byte, count int) int {
	shift := uint(index) & bitMask
	mask := ^uint(0) << shift
	ei := index >> byteShift
	di := 0

	size := count
	for ; size >= bitsPerByte; size -= bitsPerByte {
		dst[di] |= (s.data[ei] & byte(mask)) >> shift
		ei++

		if shift != 0 {
			dst[di] |= (s.data[ei] &^ byte(mask)) << (bitsPerByte - shift)
		}

		di++
	}

	if size > 0 {
		end := shift + uint(size)
		if end < bitsPerByte {
			mask = ^(^uint(0) << size) << shift
		}

		dst[di] |= (s.data[ei] & byte(mask)) >> shift

		if end > bitsPerByte {
			ei++
			mask >>= bitsPerByte - uint(size) // shifts ones down, not zeros

			dst[di] |= (s.data[ei] &^ byte(mask)) << (bitsPerByte - shift)
		}
	}

	return count
}
