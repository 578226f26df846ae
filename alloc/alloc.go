package alloc

// Allocator provides the byte buffers backing a bit vector.
type Allocator interface {
	// Alloc returns a buffer of exactly n bytes. If zeroed is false
	// the contents are unspecified: implementations are free to hand
	// out recycled memory without clearing it.
	Alloc(n int, zeroed bool) ([]byte, error)

	// Realloc resizes buf to exactly n bytes, preserving the common
	// prefix. The content of any grown region is unspecified. On
	// error the original buf remains valid and untouched.
	Realloc(buf []byte, n int) ([]byte, error)

	// Free returns buf to the allocator. buf must not be used
	// afterwards.
	Free(buf []byte)
}

// Heap allocates from the Go heap. The runtime zeroes every fresh
// allocation, so the zeroed flag has no observable effect here.
type Heap struct{}

var _ Allocator = Heap{}

// Alloc returns a fresh, zeroed buffer of n bytes.
func (Heap) Alloc(n int, _ bool) ([]byte, error) {
	return make([]byte, n), nil
}

// Realloc resizes buf in place when the backing array allows it and
// copies otherwise.
func (Heap) Realloc(buf []byte, n int) ([]byte, error) {
	if n <= cap(buf) {
		return buf[:n], nil
	}

	next := make([]byte, n)
	copy(next, buf)

	return next, nil
}

// Free is a no-op; the garbage collector reclaims the buffer.
func (Heap) Free([]byte) {}
