package bitvec

// Resize changes the logical size to newSize bits, reallocating the
// backing buffer to exactly ceil(newSize/8) bytes and updating the
// capacity to match.
//
// The returned delta is old size minus new size: positive on shrink,
// negative on growth. Bits exposed by growth are NOT cleared; growth
// through a recycling allocator may surface stale buffer content. Use
// ResizeZero when newly exposed bits must read as zero.
//
// On allocation failure the Bitset is left completely unmodified: old
// buffer, size and capacity all survive.
func (s *Bitset) Resize(newSize int) (int, error) {
	if newSize < 0 {
		return 0, ErrInvalidSize
	}

	numBytes := bytesFor(newSize)

	data, err := s.allocator.Realloc(s.data, numBytes)
	if err != nil {
		return 0, translateAllocError(err)
	}

	diff := s.size - newSize
	s.data = data
	s.capacity = numBytes * bitsPerByte
	s.size = newSize

	return diff, nil
}

// ResizeZero is Resize with zero-fill of growth: when newSize exceeds
// the old size, the newly exposed range [old, newSize) is cleared
// after reallocation. Shrinking (or equal size) behaves exactly like
// Resize, since shrink never exposes new bits.
func (s *Bitset) ResizeZero(newSize int) (int, error) {
	oldSize := s.size

	diff, err := s.Resize(newSize)
	if err != nil {
		return diff, err
	}

	if newSize > oldSize {
		s.ClearRangeUnchecked(oldSize, newSize)
	}

	return diff, nil
}
