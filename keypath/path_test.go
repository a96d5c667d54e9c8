package keypath

import (
	"strings"
	"testing"

	"github.com/joshuapare/pathkit/internal/format"
	"github.com/joshuapare/pathkit/keypath/alloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBareVarname(t *testing.T) {
	p, err := New("^hello")
	require.NoError(t, err)

	assert.Equal(t, 0, p.Depth())
	assert.Equal(t, []byte("^hello"), p.Varname())
	assert.False(t, p.IsMutable())
	assert.False(t, p.IsView())
}

func TestNewWithSubscripts(t *testing.T) {
	p, err := New("^orders", []byte("2024"), []byte("17"))
	require.NoError(t, err)

	require.Equal(t, 2, p.Depth())
	s0, err := p.Subscript(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("2024"), s0)
	s1, err := p.Subscript(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("17"), s1)
}

func TestNewCopiesInput(t *testing.T) {
	sub := []byte("mutate-me")
	p, err := New("x", sub)
	require.NoError(t, err)

	sub[0] = 'X'
	got, err := p.Subscript(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("mutate-me"), got, "buffer must own its bytes")
}

func TestNewReservesHeadroom(t *testing.T) {
	p, err := New("^g", []byte("a"))
	require.NoError(t, err)

	assert.Equal(t, alloc.SlotCapacity(1), cap(p.buf.slots))
	assert.GreaterOrEqual(t, cap(p.buf.arena), len(p.buf.arena)+format.SlotHeadroom*format.TypicalSubLen)
}

func TestNewVarnameValidation(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrInvalidVarname)

	_, err = New("^")
	assert.ErrorIs(t, err, ErrInvalidVarname, "bare circumflex has no name")

	// Exactly at the limit, with and without the global marker.
	long := strings.Repeat("a", format.MaxVarnameLen)
	_, err = New(long)
	assert.NoError(t, err)
	_, err = New("^" + long)
	assert.NoError(t, err)

	_, err = New(long + "a")
	assert.ErrorIs(t, err, ErrInvalidVarname)
}

func TestNewDepthLimit(t *testing.T) {
	subs := make([][]byte, format.MaxSubscripts)
	for i := range subs {
		subs[i] = []byte{byte('a' + i%26)}
	}
	p, err := New("^deep", subs...)
	require.NoError(t, err)
	assert.Equal(t, format.MaxSubscripts, p.Depth())

	_, err = New("^deep", append(subs, []byte("one-more"))...)
	assert.ErrorIs(t, err, ErrTooManySubscripts)
}

func TestNewSubscriptLengthLimit(t *testing.T) {
	ok := make([]byte, format.MaxSubscriptLen)
	_, err := New("x", ok)
	assert.NoError(t, err)

	_, err = New("x", make([]byte, format.MaxSubscriptLen+1))
	assert.ErrorIs(t, err, ErrSubscriptTooLong)
}

func TestFromStrings(t *testing.T) {
	p, err := FromStrings("^hello", "cowboy", "ranches")
	require.NoError(t, err)

	require.Equal(t, 2, p.Depth())
	s, err := p.Subscript(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("ranches"), s)
}

func TestValuesCoercion(t *testing.T) {
	p, err := Values("^v", "str", []byte{0x00, 0xFF}, 42, int64(-7), uint16(9), 3.5, 2.0)
	require.NoError(t, err)

	want := [][]byte{
		[]byte("str"),
		{0x00, 0xFF},
		[]byte("42"),
		[]byte("-7"),
		[]byte("9"),
		[]byte("3.5"),
		[]byte("2"), // integral float renders without a decimal point
	}
	assert.Equal(t, want, p.Subs())
}

func TestValuesRejectsOtherTypes(t *testing.T) {
	_, err := Values("^v", struct{}{})
	assert.ErrorIs(t, err, ErrInvalidSubscriptType)

	_, err = Values("^v", nil)
	assert.ErrorIs(t, err, ErrInvalidSubscriptType)
}

func TestSubscriptNegativeIndex(t *testing.T) {
	p, err := FromStrings("^n", "a", "b", "c")
	require.NoError(t, err)

	last, err := p.Subscript(-1)
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), last)

	first, err := p.Subscript(-3)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), first)

	_, err = p.Subscript(3)
	assert.ErrorIs(t, err, ErrInvalidDepth)
	_, err = p.Subscript(-4)
	assert.ErrorIs(t, err, ErrInvalidDepth)
}

func TestDeriveCopies(t *testing.T) {
	p, err := FromStrings("^d", "a")
	require.NoError(t, err)

	c, err := Derive(p, []byte("b"), []byte("c"))
	require.NoError(t, err)

	assert.NotSame(t, p.buf, c.buf, "Derive never shares storage")
	assert.Equal(t, 3, c.Depth())
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, c.Subs())
	assert.Equal(t, 1, p.Depth())
	assert.False(t, p.IsView(), "parent untouched")
}

func TestDeriveDepthLimit(t *testing.T) {
	subs := make([][]byte, format.MaxSubscripts)
	for i := range subs {
		subs[i] = []byte("s")
	}
	p, err := New("^d", subs...)
	require.NoError(t, err)

	_, err = Derive(p, []byte("over"))
	assert.ErrorIs(t, err, ErrTooManySubscripts)
}

func TestNewInScratch(t *testing.T) {
	scratch := alloc.NewScratch(0)
	p, err := NewIn(scratch, "^tmp", []byte("a"), []byte("b"))
	require.NoError(t, err)

	// Identical logical contract to a heap path.
	assert.Equal(t, 2, p.Depth())
	assert.Equal(t, []byte("^tmp"), p.Varname())
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, p.Subs())
	assert.Zero(t, scratch.Spilled())

	// Derivations draw from the same scratch source.
	c, err := Derive(p, []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Depth())
	assert.Zero(t, scratch.Spilled())
}
