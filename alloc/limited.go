package alloc

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrBudgetExceeded is returned when an allocation would exceed the
// configured byte budget.
var ErrBudgetExceeded = errors.New("allocation budget exceeded")

// Limited wraps an Allocator with a hard byte budget. Requests that
// would push usage past the budget fail with ErrBudgetExceeded instead
// of blocking; the Go runtime itself never fails small allocations, so
// this is how out-of-memory becomes an enforceable, testable condition
// for bit vectors.
//
// Limited is safe for concurrent use.
type Limited struct {
	inner  Allocator
	sem    *semaphore.Weighted
	used   atomic.Int64
	logger *slog.Logger
}

var _ Allocator = (*Limited)(nil)

// LimitedOption configures a Limited allocator.
type LimitedOption func(*Limited)

// WithLogger enables debug logging of rejected allocations.
func WithLogger(logger *slog.Logger) LimitedOption {
	return func(l *Limited) {
		l.logger = logger
	}
}

// NewLimited creates a budget-enforcing allocator on top of inner.
// If inner is nil, the Go heap is used.
func NewLimited(inner Allocator, budgetBytes int64, optFns ...LimitedOption) *Limited {
	if inner == nil {
		inner = Heap{}
	}

	l := &Limited{
		inner: inner,
		sem:   semaphore.NewWeighted(budgetBytes),
	}

	for _, fn := range optFns {
		fn(l)
	}

	return l
}

// Alloc reserves n bytes against the budget before delegating to the
// inner allocator.
func (l *Limited) Alloc(n int, zeroed bool) ([]byte, error) {
	if !l.sem.TryAcquire(int64(n)) {
		l.logReject("alloc", n)
		return nil, ErrBudgetExceeded
	}

	buf, err := l.inner.Alloc(n, zeroed)
	if err != nil {
		l.sem.Release(int64(n))
		return nil, err
	}

	l.used.Add(int64(n))

	return buf, nil
}

// Realloc adjusts the reservation by the size delta. Growth is
// reserved before the inner reallocation runs, so a failed resize
// leaves both the accounting and the caller's buffer intact; shrink
// releases budget only after the inner allocator succeeded.
func (l *Limited) Realloc(buf []byte, n int) ([]byte, error) {
	delta := int64(n - len(buf))

	if delta > 0 && !l.sem.TryAcquire(delta) {
		l.logReject("realloc", n)
		return nil, ErrBudgetExceeded
	}

	next, err := l.inner.Realloc(buf, n)
	if err != nil {
		if delta > 0 {
			l.sem.Release(delta)
		}
		return nil, err
	}

	if delta < 0 {
		l.sem.Release(-delta)
	}

	l.used.Add(delta)

	return next, nil
}

// Free releases buf's reservation and hands it back to the inner
// allocator.
func (l *Limited) Free(buf []byte) {
	n := int64(len(buf))

	l.inner.Free(buf)

	if n > 0 {
		l.sem.Release(n)
		l.used.Add(-n)
	}
}

// Usage returns the number of reserved bytes.
func (l *Limited) Usage() int64 {
	return l.used.Load()
}

func (l *Limited) logReject(op string, n int) {
	if l.logger != nil {
		l.logger.Debug("allocation rejected",
			"op", op,
			"bytes", n,
			"used", l.used.Load(),
		)
	}
}
