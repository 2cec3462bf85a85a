package prefixcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(c *Cache[int], word string) {
	for i := 0; i < len(word); i++ {
		c.Append(word[i], i+1)
	}
}

func TestEmptyCache(t *testing.T) {
	var c Cache[int]

	n, v, ok := c.Lookup("anything")
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.Zero(t, v)
	assert.Zero(t, c.Len())
}

func TestLookupTruncates(t *testing.T) {
	var c Cache[int]
	fill(&c, "burner")
	require.Equal(t, 6, c.Len())

	n, v, ok := c.Lookup("burning")
	require.True(t, ok)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, v)
	assert.Equal(t, 4, c.Len(), "cache keeps only the shared prefix")

	c.Append('i', 50)
	n, v, ok = c.Lookup("burni")
	require.True(t, ok)
	assert.Equal(t, 5, n)
	assert.Equal(t, 50, v)
}

func TestLookupShorterWord(t *testing.T) {
	var c Cache[int]
	fill(&c, "zoological")

	n, v, ok := c.Lookup("zoo")
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, v)
}

func TestLookupNothingShared(t *testing.T) {
	var c Cache[int]
	fill(&c, "abc")

	_, _, ok := c.Lookup("xyz")
	assert.False(t, ok)
	assert.Zero(t, c.Len())

	fill(&c, "abc")
	_, _, ok = c.Lookup("")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestReset(t *testing.T) {
	var c Cache[*int]
	x := 1
	c.Append('a', &x)
	c.Reset()
	assert.Zero(t, c.Len())
	_, v, ok := c.Lookup("a")
	assert.False(t, ok)
	assert.Nil(t, v)
}
