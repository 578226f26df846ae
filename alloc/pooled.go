package alloc

import "sync"

// Pooled recycles buffers through a sync.Pool. Recycled buffers keep
// their previous content unless the caller asks for zeroed memory,
// which is what makes uninitialized construction observable. This
// reduces allocations for workloads that create and close many
// short-lived bit vectors of similar size.
type Pooled struct {
	pool sync.Pool
}

var _ Allocator = (*Pooled)(nil)

// NewPooled creates a new pooled allocator.
func NewPooled() *Pooled {
	return &Pooled{}
}

// Alloc returns a buffer of n bytes, reusing a pooled buffer when a
// large enough one is available.
func (p *Pooled) Alloc(n int, zeroed bool) ([]byte, error) {
	if v := p.pool.Get(); v != nil {
		buf := v.([]byte)
		if cap(buf) >= n {
			buf = buf[:n]
			if zeroed {
				clear(buf)
			}
			return buf, nil
		}
		// Too small for this request; drop it and allocate fresh.
	}

	return make([]byte, n), nil
}

// Realloc resizes buf, recycling through the pool when a copy is
// needed.
func (p *Pooled) Realloc(buf []byte, n int) ([]byte, error) {
	if n <= cap(buf) {
		return buf[:n], nil
	}

	next, err := p.Alloc(n, false)
	if err != nil {
		return nil, err
	}
	copy(next, buf)
	p.Free(buf)

	return next, nil
}

// Free returns buf to the pool for reuse without clearing it.
func (p *Pooled) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	p.pool.Put(buf[:cap(buf)]) // nolint staticcheck
}
