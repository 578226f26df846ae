package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_Alloc(t *testing.T) {
	h := Heap{}

	buf, err := h.Alloc(16, false)
	require.NoError(t, err)
	assert.Len(t, buf, 16)

	// The Go runtime zeroes fresh memory regardless of the flag.
	for i, b := range buf {
		assert.Zero(t, b, "byte %d", i)
	}
}

func TestHeap_Realloc(t *testing.T) {
	h := Heap{}

	buf, err := h.Alloc(4, true)
	require.NoError(t, err)
	copy(buf, []byte{1, 2, 3, 4})

	grown, err := h.Realloc(buf, 100)
	require.NoError(t, err)
	assert.Len(t, grown, 100)
	assert.Equal(t, []byte{1, 2, 3, 4}, grown[:4])

	shrunk, err := h.Realloc(grown, 2)
	require.NoError(t, err)
	assert.Len(t, shrunk, 2)
	assert.Equal(t, []byte{1, 2}, shrunk)

	empty, err := h.Realloc(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPooled_RecyclesWithoutClearing(t *testing.T) {
	p := NewPooled()

	buf, err := p.Alloc(8, true)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = 0xAA
	}
	p.Free(buf)

	// Same-size request gets the recycled buffer back, dirty.
	dirty, err := p.Alloc(8, false)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), dirty[0])

	p.Free(dirty)

	// Asking for zeroed memory clears the recycled buffer.
	clean, err := p.Alloc(8, true)
	require.NoError(t, err)
	for i, b := range clean {
		assert.Zero(t, b, "byte %d", i)
	}
}

func TestPooled_Realloc(t *testing.T) {
	p := NewPooled()

	buf, err := p.Alloc(4, true)
	require.NoError(t, err)
	copy(buf, []byte{9, 8, 7, 6})

	grown, err := p.Realloc(buf, 64)
	require.NoError(t, err)
	assert.Len(t, grown, 64)
	assert.Equal(t, []byte{9, 8, 7, 6}, grown[:4])

	shrunk, err := p.Realloc(grown, 8)
	require.NoError(t, err)
	assert.Len(t, shrunk, 8)
	assert.Equal(t, []byte{9, 8, 7, 6}, shrunk[:4])
}
