package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Size 13 matches the bitmap face, so each glyph is 7 pixels wide.
var face13 = Font{Size: 13}

func TestBasicShaperMeasures(t *testing.T) {
	s := NewBasicShaper()
	l := s.Shape("hello", face13, NoWrap, 1)
	require.Len(t, l.Lines, 1)
	assert.Equal(t, 35.0, l.Size.Width)
	assert.Equal(t, 13.0, l.Size.Height)
	assert.Equal(t, 11.0, l.Ascent)
	assert.Equal(t, 35.0, s.Measure("hello", face13))
}

func TestBasicShaperScalesWithFontSize(t *testing.T) {
	l := NewBasicShaper().Shape("ab", Font{Size: 26}, NoWrap, 1)
	assert.Equal(t, 28.0, l.Size.Width)
	assert.Equal(t, 26.0, l.Size.Height)
}

func TestBasicShaperWraps(t *testing.T) {
	l := NewBasicShaper().Shape("aaa bbb ccc", face13, 50, 1)
	require.Len(t, l.Lines, 2)
	assert.Equal(t, "aaa bbb", l.Lines[0].Text)
	assert.Equal(t, "ccc", l.Lines[1].Text)
	assert.Equal(t, 49.0, l.Size.Width)
	assert.Equal(t, 26.0, l.Size.Height)
	assert.Equal(t, 13.0, l.LineHeight())
}

func TestBasicShaperNewlinesAndEmpty(t *testing.T) {
	l := NewBasicShaper().Shape("a\n\nbb", face13, NoWrap, 1)
	require.Len(t, l.Lines, 3)
	assert.Equal(t, 14.0, l.Size.Width)

	empty := NewBasicShaper().Shape("", face13, 100, 1)
	require.Len(t, empty.Lines, 1)
	assert.Equal(t, 13.0, empty.Size.Height)
	assert.Equal(t, 0.0, empty.Size.Width)
}

// A changed scale is a cache miss so text is shaped again for the new scale.
func TestCachedShaper(t *testing.T) {
	c, err := NewCachedShaper(NewBasicShaper(), 2)
	require.NoError(t, err)

	a := c.Shape("x", face13, NoWrap, 1)
	b := c.Shape("x", face13, NoWrap, 1)
	assert.Same(t, a, b)

	scaled := c.Shape("x", face13, NoWrap, 2)
	assert.NotSame(t, a, scaled)
	assert.Equal(t, 2.0, scaled.Scale)

	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, misses)

	c.Shape("y", face13, NoWrap, 1)
	assert.Equal(t, 2, c.Len())
	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestDropLastGrapheme(t *testing.T) {
	assert.Equal(t, "", DropLastGrapheme(""))
	assert.Equal(t, "ab", DropLastGrapheme("abc"))
	assert.Equal(t, "a", DropLastGrapheme("aé"))
	assert.Equal(t, "hi ", DropLastGrapheme("hi 👍🏽"))
	assert.Equal(t, 4, GraphemeCount("hi 👍🏽"))
	assert.Equal(t, []string{"h", "i", " ", "👍🏽"}, Graphemes("hi 👍🏽"))
	assert.Empty(t, Graphemes(""))
}
