package testutil

import (
	"errors"

	"github.com/hupe1980/bitvec/alloc"
)

// ErrFaultInjected is the default error surfaced by a failing
// FaultyAllocator.
var ErrFaultInjected = errors.New("fault injected")

// FaultyAllocator wraps an alloc.Allocator and fails on demand. It is
// used to exercise allocation-failure paths: arm it with FailNext or
// FailAfter and every Alloc/Realloc beyond the allowance returns Err
// without touching the inner allocator.
//
// Not safe for concurrent use; tests drive it from a single goroutine.
type FaultyAllocator struct {
	// Err is the error returned once armed. Defaults to
	// ErrFaultInjected.
	Err error

	inner     alloc.Allocator
	armed     bool
	remaining int // successful calls left before failing
}

var _ alloc.Allocator = (*FaultyAllocator)(nil)

// NewFaultyAllocator creates a fault-injecting allocator around inner.
// If inner is nil, the Go heap is used. It passes everything through
// until armed.
func NewFaultyAllocator(inner alloc.Allocator) *FaultyAllocator {
	if inner == nil {
		inner = alloc.Heap{}
	}
	return &FaultyAllocator{inner: inner}
}

// FailNext makes the next Alloc or Realloc fail.
func (f *FaultyAllocator) FailNext() {
	f.FailAfter(0)
}

// FailAfter allows n more successful Alloc/Realloc calls, then fails
// every one after that until Reset is called.
func (f *FaultyAllocator) FailAfter(n int) {
	f.armed = true
	f.remaining = n
}

// Reset disarms the allocator; subsequent calls pass through again.
func (f *FaultyAllocator) Reset() {
	f.armed = false
}

func (f *FaultyAllocator) fail() error {
	if !f.armed {
		return nil
	}
	if f.remaining > 0 {
		f.remaining--
		return nil
	}
	if f.Err != nil {
		return f.Err
	}
	return ErrFaultInjected
}

// Alloc delegates to the inner allocator unless a fault is armed.
func (f *FaultyAllocator) Alloc(n int, zeroed bool) ([]byte, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.inner.Alloc(n, zeroed)
}

// Realloc delegates to the inner allocator unless a fault is armed.
// On an injected fault the caller's buffer is left untouched.
func (f *FaultyAllocator) Realloc(buf []byte, n int) ([]byte, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.inner.Realloc(buf, n)
}

// Free always passes through; releasing memory cannot fail.
func (f *FaultyAllocator) Free(buf []byte) {
	f.inner.Free(buf)
}
