// Package prefixcache remembers the search state reached after each byte of
// the previous key, so that a search for a key sharing a prefix with it can
// resume from the deepest shared position instead of starting over.
//
// Grid solving queries arrive in bursts of the same stem followed by each
// surrounding letter, which is exactly the pattern this helps.
package prefixcache

// Cache maps each prefix length of the last key to a value, such as a node
// reached in a trie after consuming that many bytes.
//
// The zero value is an empty cache ready to use. A Cache is not safe for
// concurrent use.
type Cache[V any] struct {
	keys   []byte
	values []V
}

// Lookup returns the number of leading bytes word shares with the cached
// key, and the value stored for that prefix length. The cache is truncated
// to the shared prefix, so values for the rest of word should be added with
// Append as the caller searches on. If nothing is shared ok is false.
func (c *Cache[V]) Lookup(word string) (consumed int, value V, ok bool) {
	n := len(c.keys)
	if len(word) < n {
		n = len(word)
	}

	for consumed < n && c.keys[consumed] == word[consumed] {
		consumed++
	}

	c.keys = c.keys[:consumed]
	c.values = c.values[:consumed]
	if consumed == 0 {
		return 0, value, false
	}
	return consumed, c.values[consumed-1], true
}

// Append records value as the state reached after consuming key at the end
// of the current cached prefix.
func (c *Cache[V]) Append(key byte, value V) {
	c.keys = append(c.keys, key)
	c.values = append(c.values, value)
}

// Len returns the length of the cached prefix.
func (c *Cache[V]) Len() int {
	return len(c.keys)
}

// Reset empties the cache.
func (c *Cache[V]) Reset() {
	c.keys = c.keys[:0]
	var zero V
	for i := range c.values {
		c.values[i] = zero
	}
	c.values = c.values[:0]
}
