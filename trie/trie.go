// Package trie implements a pointer style trie whose nodes live in a single
// arena and refer to their children by index.
//
// Each node holds its outgoing edges sorted by letter, so looking up a child
// is a binary search over at most 26 edges, and a flag telling whether a
// word ends at the node. Lookup of a word of length m is O(m log 26).
//
// Unlike the compact trie, words may be inserted after construction and in
// any order.
package trie

import (
	"sort"

	"github.com/milden6/wordsearch/dictionary"
	"github.com/milden6/wordsearch/prefixcache"
)

// root is the arena index of the root node. No edge ever points at the root,
// so it doubles as the "no child" value.
const root uint32 = 0

type edge struct {
	ch    byte
	child uint32
}

type node struct {
	edges []edge
	final bool
}

// child returns the index of the node reached from n by ch, or root if there
// is no such edge.
func (n *node) child(ch byte) uint32 {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].ch >= ch })
	if i < len(n.edges) && n.edges[i].ch == ch {
		return n.edges[i].child
	}
	return root
}

// Trie is an insertable trie over the letters a-z.
//
// Queries on a Trie do not modify it, so they may run concurrently with
// each other but not with Insert.
type Trie struct {
	nodes []node
	size  int
}

// New returns a Trie holding words. Words may be unsorted and repeated.
// It fails if any word holds a byte outside a-z.
func New(words []string) (*Trie, error) {
	t := &Trie{nodes: make([]node, 1, len(words)+1)}
	for _, word := range words {
		if _, err := t.Insert(word); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Insert adds word to the trie and reports whether it was not present
// before. Node indexes never change once created, so sessions stay valid
// across inserts.
func (t *Trie) Insert(word string) (bool, error) {
	if err := dictionary.Validate(word); err != nil {
		return false, err
	}
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{})
	}

	p := root
	for i := 0; i < len(word); i++ {
		p = t.addChar(p, word[i])
	}

	if t.nodes[p].final {
		return false, nil
	}
	t.nodes[p].final = true
	t.size++
	return true, nil
}

// addChar returns the child of p for ch, creating it in its sorted position
// if it does not exist.
func (t *Trie) addChar(p uint32, ch byte) uint32 {
	edges := t.nodes[p].edges
	i := sort.Search(len(edges), func(i int) bool { return edges[i].ch >= ch })
	if i < len(edges) && edges[i].ch == ch {
		return edges[i].child
	}

	child := uint32(len(t.nodes))
	t.nodes = append(t.nodes, node{})

	edges = append(edges, edge{})
	copy(edges[i+1:], edges[i:])
	edges[i] = edge{ch: ch, child: child}
	t.nodes[p].edges = edges

	return child
}

// walk follows word from node p as far as it goes. It returns the node
// reached and the number of bytes consumed.
func (t *Trie) walk(p uint32, word string) (uint32, int) {
	for i := 0; i < len(word); i++ {
		next := t.nodes[p].child(word[i])
		if next == root {
			return p, i
		}
		p = next
	}
	return p, len(word)
}

// search returns the node for word, if any.
func (t *Trie) search(word string) (uint32, bool) {
	if len(t.nodes) == 0 {
		return root, false
	}
	p, n := t.walk(root, word)
	return p, n == len(word)
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	p, ok := t.search(word)
	return ok && t.nodes[p].final
}

// Further reports whether the node for word has any children.
func (t *Trie) Further(word string) bool {
	p, ok := t.search(word)
	return ok && len(t.nodes[p].edges) > 0
}

// ContainsFurther tests every byte of suffixes against the node for stem.
func (t *Trie) ContainsFurther(stem, suffixes string, out []dictionary.Result) []dictionary.Result {
	p, ok := t.search(stem)
	return t.containsFurther(p, ok, suffixes, out)
}

func (t *Trie) containsFurther(p uint32, ok bool, suffixes string, out []dictionary.Result) []dictionary.Result {
	for i := 0; i < len(suffixes); i++ {
		var r dictionary.Result
		if ok {
			if c := t.nodes[p].child(suffixes[i]); c != root {
				r.Contains = t.nodes[c].final
				r.Further = len(t.nodes[c].edges) > 0
			}
		}
		out = append(out, r)
	}
	return out
}

// Size returns the number of distinct words inserted.
func (t *Trie) Size() int {
	return t.size
}

// Empty reports whether no word was inserted.
func (t *Trie) Empty() bool {
	return t.size == 0
}

// NumNodes returns the number of nodes, including the root.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

// Clone returns a deep copy of the trie.
func (t *Trie) Clone() *Trie {
	c := &Trie{
		nodes: make([]node, len(t.nodes)),
		size:  t.size,
	}
	for i, n := range t.nodes {
		c.nodes[i] = node{
			edges: append([]edge(nil), n.edges...),
			final: n.final,
		}
	}
	return c
}

// NewSession returns a query session that remembers the nodes reached by
// the previous query.
func (t *Trie) NewSession() dictionary.Dictionary {
	return &Session{t: t}
}

// Session answers queries against a Trie, resuming each search from the
// deepest node of the previous query's path that the new query shares.
// A Session is not safe for concurrent use.
type Session struct {
	t     *Trie
	cache prefixcache.Cache[uint32]
}

func (s *Session) search(word string) (uint32, bool) {
	t := s.t
	if len(t.nodes) == 0 {
		return root, false
	}

	p := root
	i, cached, ok := s.cache.Lookup(word)
	if ok {
		p = cached
	}

	for ; i < len(word); i++ {
		next := t.nodes[p].child(word[i])
		if next == root {
			return p, false
		}
		p = next
		s.cache.Append(word[i], p)
	}
	return p, true
}

// Contains is Trie.Contains through the session cache.
func (s *Session) Contains(word string) bool {
	p, ok := s.search(word)
	return ok && s.t.nodes[p].final
}

// Further is Trie.Further through the session cache.
func (s *Session) Further(word string) bool {
	p, ok := s.search(word)
	return ok && len(s.t.nodes[p].edges) > 0
}

// ContainsFurther is Trie.ContainsFurther through the session cache.
func (s *Session) ContainsFurther(stem, suffixes string, out []dictionary.Result) []dictionary.Result {
	p, ok := s.search(stem)
	return s.t.containsFurther(p, ok, suffixes, out)
}

func (s *Session) Size() int { return s.t.Size() }

func (s *Session) Empty() bool { return s.t.Empty() }

// Reset empties the session cache.
func (s *Session) Reset() {
	s.cache.Reset()
}

var (
	_ dictionary.Dictionary      = (*Trie)(nil)
	_ dictionary.SessionProvider = (*Trie)(nil)
	_ dictionary.Dictionary      = (*Session)(nil)
)
