package heuristic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	c := New()

	assert.Equal(t, 0, c.Count(""))
	assert.Equal(t, 1, c.Count("abc"))
	assert.Equal(t, 1, c.Count("abcd"))
	assert.Equal(t, 2, c.Count("abcde"))
	assert.Equal(t, 25, c.Count(strings.Repeat("a", 100)))
}

func TestTruncate_FitsUnchanged(t *testing.T) {
	c := New()

	text := "short text"
	assert.Equal(t, text, c.Truncate(text, 10))
}

func TestTruncate_CutsWithMarker(t *testing.T) {
	c := New()

	text := strings.Repeat("a", 100)
	got := c.Truncate(text, 5)

	assert.True(t, strings.HasSuffix(got, "…"), "truncated text carries the marker")
	trimmed := strings.TrimSuffix(got, "…")
	assert.LessOrEqual(t, c.Count(trimmed), 5)
	assert.True(t, strings.HasPrefix(text, trimmed))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	c := New()

	text := strings.Repeat("ä", 50) // two bytes per rune
	got := c.Truncate(text, 3)

	trimmed := strings.TrimSuffix(got, "…")
	for _, r := range trimmed {
		assert.Equal(t, 'ä', r, "no split runes")
	}
}

func TestTruncate_ZeroBudget(t *testing.T) {
	c := New()

	assert.Equal(t, "…", c.Truncate("anything", 0))
	assert.Equal(t, "", c.Truncate("", 0))
}
