package bitvec

import "github.com/hupe1980/bitvec/alloc"

type options struct {
	allocator alloc.Allocator
}

// Option configures Bitset construction.
type Option func(*options)

// WithAllocator sets the allocator backing the bit vector's buffer.
//
// If nil is passed, the default Go heap allocator is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = alloc.Heap{}
		}
		o.allocator = a
	}
}

func applyOptions(optFns ...Option) options {
	o := options{
		allocator: alloc.Heap{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
