package compacttrie

import (
	"bufio"
	"fmt"
	"io"

	"github.com/milden6/wordsearch/dictionary"
)

// Enumerate calls fn for every node in depth first order, children in
// ascending letter order. Return Continue to continue enumeration, Skip to
// skip the node's children, or Stop to stop enumeration.
func (t *CompactTrie) Enumerate(fn dictionary.EnumFn) {
	if t.size == 0 {
		return
	}
	t.enumerate(position{}, nil, fn)
}

func (t *CompactTrie) enumerate(p position, word []byte, fn dictionary.EnumFn) dictionary.EnumerationResult {
	n := t.view(p)

	result := fn(word, n.isEndOfWord())
	if result != dictionary.Continue || n.kind() == emptyNode {
		return result
	}

	l := len(word)
	word = append(word, 0)
	letters := n.letters()
	r := 0
	for i, ok := letters.next(0); ok; i, ok = letters.next(i + 1) {
		word[l] = dictionary.Letter(i)
		child := position{pos: t.rows[p.row+1] + n.childOffset(r), row: p.row + 1}
		if t.enumerate(child, word, fn) == dictionary.Stop {
			return dictionary.Stop
		}
		r++
	}
	return dictionary.Continue
}

// Words returns every word in ascending order.
func (t *CompactTrie) Words() []string {
	return dictionary.Words(t)
}

// Dump writes every row and node of the trie to w, each line starting with
// the node's offset in the buffer.
func (t *CompactTrie) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Size=%d words, %d rows, %d bytes\n", t.size, t.NumRows(), len(t.data))

	for row := 0; row < t.NumRows(); row++ {
		fmt.Fprintf(bw, "[%08x] Row %d\n", t.rows[row], row)
		for pos := t.rows[row]; pos < t.rows[row+1]; {
			n := t.view(position{pos: pos, row: row})
			fmt.Fprintf(bw, "[%08x]   %s\n", pos, n)
			pos += uint32(n.size())
		}
	}
	return bw.Flush()
}
