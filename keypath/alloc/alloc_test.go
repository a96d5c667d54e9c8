package alloc

import (
	"testing"

	"github.com/joshuapare/pathkit/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCapacity(t *testing.T) {
	assert.Equal(t, format.SlotHeadroom, SlotCapacity(0), "zero depth still reserves headroom")
	assert.Equal(t, 7, SlotCapacity(2))
	assert.Equal(t, format.MaxSubscripts, SlotCapacity(format.MaxSubscripts),
		"capacity never exceeds MaxSubscripts")
	assert.Equal(t, format.MaxSubscripts, SlotCapacity(format.MaxSubscripts-1))
}

func TestByteCapacity(t *testing.T) {
	headroom := format.SlotHeadroom * format.TypicalSubLen
	assert.Equal(t, headroom, ByteCapacity(0))
	assert.Equal(t, 100+headroom, ByteCapacity(100))
	assert.Equal(t, format.MaxPathBytes, ByteCapacity(format.MaxPathBytes),
		"capacity is capped at MaxPathBytes")
}

func TestHeapArenaAlloc(t *testing.T) {
	b := Heap.Alloc(64)
	assert.Len(t, b, 0)
	assert.GreaterOrEqual(t, cap(b), 64)
}

func TestScratchArenaBump(t *testing.T) {
	s := NewScratch(64)

	a := s.Alloc(16)
	b := s.Alloc(16)
	require.Equal(t, 32, s.Remaining())

	// Both slices come from the same region, at distinct offsets.
	a = append(a, 0xAA)
	b = append(b, 0xBB)
	assert.Equal(t, byte(0xAA), s.region[0])
	assert.Equal(t, byte(0xBB), s.region[16])

	// A full-capacity append must not cross into the next allocation.
	a = a[:0]
	for i := 0; i < 16; i++ {
		a = append(a, 0x11)
	}
	assert.Equal(t, byte(0xBB), s.region[16], "neighbouring allocation intact")
}

func TestScratchArenaSpill(t *testing.T) {
	s := NewScratch(32)

	_ = s.Alloc(24)
	assert.Zero(t, s.Spilled())

	// Does not fit the remaining 8 bytes: falls back to the heap.
	b := s.Alloc(16)
	assert.GreaterOrEqual(t, cap(b), 16)
	assert.Equal(t, 1, s.Spilled())
	assert.Equal(t, 8, s.Remaining(), "region untouched by spilled request")
}

func TestScratchArenaReset(t *testing.T) {
	s := NewScratch(32)
	_ = s.Alloc(32)
	_ = s.Alloc(1) // spills
	require.Zero(t, s.Remaining())

	s.Reset()
	assert.Equal(t, 32, s.Remaining())
	assert.Zero(t, s.Spilled())
}

func TestScratchArenaDefaultSize(t *testing.T) {
	s := NewScratch(0)
	assert.Equal(t, ScratchRegionSize, s.Remaining())
}

func TestMappedScratch(t *testing.T) {
	s, err := NewMappedScratch(4096)
	require.NoError(t, err)

	b := s.Alloc(128)
	b = append(b, []byte("subscript bytes")...)
	assert.Equal(t, []byte("subscript bytes"), b)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "double close is a no-op")
}
