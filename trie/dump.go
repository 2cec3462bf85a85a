package trie

import (
	"bufio"
	"fmt"
	"io"

	"github.com/milden6/wordsearch/dictionary"
)

// Enumerate calls fn for every node in depth first order, children in
// ascending letter order. Return Continue to continue enumeration, Skip to
// skip the node's children, or Stop to stop enumeration.
func (t *Trie) Enumerate(fn dictionary.EnumFn) {
	if len(t.nodes) == 0 {
		return
	}
	t.enumerate(root, nil, fn)
}

func (t *Trie) enumerate(p uint32, word []byte, fn dictionary.EnumFn) dictionary.EnumerationResult {
	n := &t.nodes[p]

	result := fn(word, n.final)
	if result != dictionary.Continue {
		return result
	}

	l := len(word)
	word = append(word, 0)
	for _, e := range n.edges {
		word[l] = e.ch
		if t.enumerate(e.child, word, fn) == dictionary.Stop {
			return dictionary.Stop
		}
	}
	return dictionary.Continue
}

// Dump writes the trie to w one row per line, where row k holds the nodes
// reached by k letters. Each node prints as its edge letters followed by
// '|' if a word ends there.
func (t *Trie) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Size: %d\n", t.size)

	row := []uint32{root}
	if len(t.nodes) == 0 {
		row = nil
	}
	for len(row) > 0 {
		var next []uint32
		for _, p := range row {
			n := &t.nodes[p]
			bw.WriteByte('{')
			for _, e := range n.edges {
				bw.WriteByte(e.ch)
				next = append(next, e.child)
			}
			if n.final {
				bw.WriteByte('|')
			} else {
				bw.WriteByte(' ')
			}
			bw.WriteByte('}')
		}
		bw.WriteByte('\n')
		row = next
	}
	return bw.Flush()
}
