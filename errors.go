package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is returned when the backing allocator cannot
	// satisfy an allocation or reallocation request. The Bitset is
	// left in its prior valid state.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrInvalidSize is returned when a negative bit count is passed
	// to a constructor or resize operation.
	ErrInvalidSize = errors.New("size must be non-negative")
)

// ErrIndexOutOfRange indicates a bit index outside [0, Cap()).
//
// The unchecked method variants skip this validation entirely.
type ErrIndexOutOfRange struct {
	Index    int
	Capacity int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index out of range: %d (capacity %d)", e.Index, e.Capacity)
}

// ErrInvalidRange indicates a bit range that is malformed or extends
// beyond [0, Cap()).
type ErrInvalidRange struct {
	Begin    int
	End      int
	Capacity int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid bit range: [%d, %d) (capacity %d)", e.Begin, e.End, e.Capacity)
}

// ErrShortBuffer indicates an external byte sequence too small to hold
// the requested number of bits.
type ErrShortBuffer struct {
	Need int
	Have int
}

func (e *ErrShortBuffer) Error() string {
	return fmt.Sprintf("buffer too short: need %d bytes, have %d", e.Need, e.Have)
}

// translateAllocError unifies allocator failures under the
// ErrOutOfMemory contract while keeping the cause inspectable via
// errors.Is/As.
func translateAllocError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
}
