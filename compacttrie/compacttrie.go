// Package compacttrie implements an immutable trie packed into one flat byte
// buffer, with integer offsets in place of pointers.
//
// Nodes are grouped in rows: row k holds one node per distinct prefix of
// length k, in sorted order. A node does not store where each child lives.
// It stores the offset of its first child within the next row, a bitset of
// its child letters, and the distance from the first child to each of the
// others. Finding the child for a letter is a bit test, a popcount of the
// lower bits, and an addition. Leaves take a single byte.
//
// The format of a node is described at the top of node.go, and the file
// format at the top of disk.go.
package compacttrie

import (
	"github.com/milden6/wordsearch/dictionary"
	"github.com/milden6/wordsearch/prefixcache"
)

// CompactTrie is an immutable trie over the letters a-z. It is safe for
// concurrent use.
type CompactTrie struct {
	data []byte
	// rows[k] is the offset of row k in data. The last entry is len(data).
	rows []uint32
	size int
}

// position is a node offset in data and the row holding it.
type position struct {
	pos uint32
	row int
}

// New returns a CompactTrie holding words. Words may be unsorted and
// repeated. It fails if a word holds a byte outside a-z or if the dictionary
// does not fit the node format.
func New(words []string) (*CompactTrie, error) {
	sorted, err := dictionary.Prepare(words)
	if err != nil {
		return nil, err
	}

	b := NewBuilder()
	for _, word := range sorted {
		if err := b.Add(word); err != nil {
			return nil, err
		}
	}
	return b.Finish()
}

func (t *CompactTrie) view(p position) nodeView {
	return nodeView(t.data[p.pos:])
}

// step moves from the node at p to its child for c.
func (t *CompactTrie) step(p position, c byte) (position, bool) {
	letter, ok := dictionary.Index(c)
	if !ok {
		return p, false
	}

	n := t.view(p)
	if n.kind() == emptyNode {
		return p, false
	}

	letters := n.letters()
	if !letters.has(letter) {
		return p, false
	}

	return position{
		pos: t.rows[p.row+1] + n.childOffset(letters.rank(letter)),
		row: p.row + 1,
	}, true
}

// search follows word from p, whose node is reached by the first consumed
// bytes of word, as far as it goes. It returns the number of bytes of word
// consumed and the node reached.
func (t *CompactTrie) search(word string, p position, consumed int) (int, position) {
	for ; consumed < len(word); consumed++ {
		next, ok := t.step(p, word[consumed])
		if !ok {
			break
		}
		p = next
	}
	return consumed, p
}

func (t *CompactTrie) find(word string) (position, bool) {
	if t.size == 0 {
		return position{}, false
	}
	n, p := t.search(word, position{}, 0)
	return p, n == len(word)
}

// Contains reports whether word is in the trie.
func (t *CompactTrie) Contains(word string) bool {
	p, ok := t.find(word)
	return ok && t.view(p).isEndOfWord()
}

// Further reports whether the node for word has any children.
func (t *CompactTrie) Further(word string) bool {
	p, ok := t.find(word)
	return ok && t.view(p).kind() == fullNode
}

// ContainsFurther searches for stem once, then takes one step from its node
// for each byte of suffixes.
func (t *CompactTrie) ContainsFurther(stem, suffixes string, out []dictionary.Result) []dictionary.Result {
	p, ok := t.find(stem)
	return t.containsFurther(p, ok, suffixes, out)
}

func (t *CompactTrie) containsFurther(p position, ok bool, suffixes string, out []dictionary.Result) []dictionary.Result {
	for i := 0; i < len(suffixes); i++ {
		var r dictionary.Result
		if ok {
			if c, found := t.step(p, suffixes[i]); found {
				n := t.view(c)
				r.Contains = n.isEndOfWord()
				r.Further = n.kind() == fullNode
			}
		}
		out = append(out, r)
	}
	return out
}

// Size returns the number of words.
func (t *CompactTrie) Size() int {
	return t.size
}

// Empty reports whether the trie holds no words.
func (t *CompactTrie) Empty() bool {
	return t.size == 0
}

// DataSize returns the size of the node buffer in bytes.
func (t *CompactTrie) DataSize() int {
	return len(t.data)
}

// NumRows returns the number of rows, one more than the longest word.
func (t *CompactTrie) NumRows() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows) - 1
}

// NewSession returns a query session that remembers the nodes reached by
// the previous query.
func (t *CompactTrie) NewSession() dictionary.Dictionary {
	return &Session{t: t}
}

// Session answers queries against a CompactTrie, resuming each search from
// the deepest node of the previous query's path that the new query shares.
// A Session is not safe for concurrent use.
type Session struct {
	t     *CompactTrie
	cache prefixcache.Cache[position]
}

func (s *Session) find(word string) (position, bool) {
	t := s.t
	if t.size == 0 {
		return position{}, false
	}

	i, p, _ := s.cache.Lookup(word)
	for ; i < len(word); i++ {
		next, ok := t.step(p, word[i])
		if !ok {
			return p, false
		}
		p = next
		s.cache.Append(word[i], p)
	}
	return p, true
}

// Contains is CompactTrie.Contains through the session cache.
func (s *Session) Contains(word string) bool {
	p, ok := s.find(word)
	return ok && s.t.view(p).isEndOfWord()
}

// Further is CompactTrie.Further through the session cache.
func (s *Session) Further(word string) bool {
	p, ok := s.find(word)
	return ok && s.t.view(p).kind() == fullNode
}

// ContainsFurther is CompactTrie.ContainsFurther through the session cache.
func (s *Session) ContainsFurther(stem, suffixes string, out []dictionary.Result) []dictionary.Result {
	p, ok := s.find(stem)
	return s.t.containsFurther(p, ok, suffixes, out)
}

func (s *Session) Size() int { return s.t.Size() }

func (s *Session) Empty() bool { return s.t.Empty() }

// Reset empties the session cache.
func (s *Session) Reset() {
	s.cache.Reset()
}

var (
	_ dictionary.Dictionary      = (*CompactTrie)(nil)
	_ dictionary.SessionProvider = (*CompactTrie)(nil)
	_ dictionary.Dictionary      = (*Session)(nil)
)
