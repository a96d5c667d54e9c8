package keypath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pathkit/internal/testutil"
)

// Builds paths from randomized subscript data, including raw binary, and
// checks every accessor reads back exactly what went in.
func TestRandomizedRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		depth := r.Intn(8) + 1
		subs := testutil.RandomSubscripts(r, depth, 40)

		p, err := New("^rnd", subs...)
		require.NoError(t, err)
		require.Equal(t, depth, p.Depth())
		assert.Equal(t, []byte("^rnd"), p.Varname())

		got := p.Subs()
		require.Len(t, got, depth)
		for i := range subs {
			assert.Equal(t, subs[i], got[i], "trial %d subscript %d", trial, i)

			byIndex, err := p.Subscript(i)
			require.NoError(t, err)
			assert.Equal(t, subs[i], byIndex)
		}

		// A tight mutable copy reads back identically.
		m := p.ToMutable()
		assert.Equal(t, subs, m.Subs())
	}
}

// Appending one random subscript at a time must read back the same as
// building the whole path at once.
func TestRandomizedIncrementalAppend(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for trial := 0; trial < 100; trial++ {
		depth := r.Intn(10) + 1
		subs := testutil.RandomSubscripts(r, depth, 24)

		p, err := New("loc")
		require.NoError(t, err)
		for _, s := range subs {
			p, err = p.Append(s)
			require.NoError(t, err)
		}

		whole, err := New("loc", subs...)
		require.NoError(t, err)
		assert.Equal(t, whole.Subs(), p.Subs(), "trial %d", trial)
	}
}
