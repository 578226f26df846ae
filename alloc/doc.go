// Package alloc provides the buffer allocators backing bitvec.
//
// Allocator is the interface for obtaining, resizing and releasing the
// byte buffers a Bitset owns. Implementations must surface allocation
// failure as an error, distinct from logic errors.
//
// # Built-in Implementations
//
//   - Heap: Go heap allocation, always zeroed by the runtime
//   - Pooled: sync.Pool recycling; recycled buffers are NOT cleared
//     unless requested, so uninitialized allocation is observable
//   - Limited: hard byte budget on top of another allocator, making
//     out-of-memory a real, testable outcome
//
// # Custom Implementations
//
// Implement the Allocator interface to plug in arena or
// instrumentation allocators:
//
//	type Allocator interface {
//	    Alloc(n int, zeroed bool) ([]byte, error)
//	    Realloc(buf []byte, n int) ([]byte, error)
//	    Free(buf []byte)
//	}
//
// Realloc must leave the caller's buffer valid and untouched when it
// fails; a failed resize never discards live data.
package alloc
