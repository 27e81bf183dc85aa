package seqlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_sentinels(t *testing.T) {
	l := newList(c1, c2)

	end := l.End()
	end.Next()
	assert.True(t, end.PastEnd(), "Next past the end stays past the end")

	before := l.BeforeFirst()
	before.Prev()
	assert.True(t, before.BeforeStart(), "Prev before the start stays before the start")

	before.Next()
	assert.True(t, before.Equal(l.Begin()))

	end.Prev()
	assert.True(t, end.Equal(l.Last()))

	c := l.Last()
	c.Next()
	assert.True(t, c.Equal(l.End()))

	c = l.Begin()
	c.Prev()
	assert.True(t, c.Equal(l.BeforeFirst()))
}

func TestCursor_emptyList(t *testing.T) {
	l := New()

	before := l.BeforeFirst()
	before.Next()
	assert.True(t, before.PastEnd())

	end := l.End()
	end.Prev()
	assert.True(t, end.BeforeStart())

	_, ok := l.At(l.Begin())
	assert.False(t, ok)
}

func TestCursor_zeroValue(t *testing.T) {
	var c Cursor
	assert.True(t, c.Unbound())
	assert.False(t, c.PastEnd())
	assert.False(t, c.BeforeStart())

	c.Next()
	c.Prev()
	assert.True(t, c.Unbound())
	assert.True(t, c.Equal(Cursor{}))
}

func TestCursor_Equal(t *testing.T) {
	a := newList(c1, c2)
	b := newList(c1, c2)

	assert.True(t, a.Begin().Equal(a.Begin()))
	assert.False(t, a.Begin().Equal(a.Last()))
	assert.False(t, a.End().Equal(a.BeforeFirst()))

	// the same position in different lists
	assert.False(t, a.Begin().Equal(b.Begin()))
	assert.False(t, a.End().Equal(b.End()))
	assert.False(t, a.BeforeFirst().Equal(b.BeforeFirst()))

	// removed cursors of one list are equal to each other
	first, second := a.Begin(), a.Begin()
	require.True(t, a.Remove(&first))
	assert.True(t, first.Equal(second))
	assert.False(t, first.Equal(a.Begin()))
}

func TestCursor_walk(t *testing.T) {
	l := newList(c1, c2, c3, c4)

	c := l.Begin()
	for i := 0; i < 2; i++ {
		c.Next()
	}
	s, ok := l.At(c)
	require.True(t, ok)
	assert.Equal(t, "AGTCAA", s.Seq())

	c.Prev()
	s, ok = l.At(c)
	require.True(t, ok)
	assert.Equal(t, "GATATC", s.Seq())

	// removing a neighbor doesn't move the cursor
	neighbor := c
	neighbor.Next()
	require.True(t, l.Remove(&neighbor))
	s, _ = l.At(c)
	assert.Equal(t, "GATATC", s.Seq())
	c.Next()
	s, _ = l.At(c)
	assert.Equal(t, "GATGAT", s.Seq())
}
