package compacttrie

import (
	"errors"
	"fmt"
)

// Verify checks the structure of the trie: that the rows are ordered and
// hold whole nodes, that every full node links to the node boundaries of
// the next row in order, and that the number of word ends matches Size.
// Tries read from disk are verified before use.
func (t *CompactTrie) Verify() error {
	if len(t.rows) == 0 {
		if len(t.data) != 0 || t.size != 0 {
			return errors.New("no rows but non empty buffer or size")
		}
		return nil
	}
	if len(t.rows) < 2 {
		return errors.New("row index holds no rows")
	}
	if t.rows[0] != 0 || int(t.rows[len(t.rows)-1]) != len(t.data) {
		return fmt.Errorf("rows span [%d, %d), buffer holds %d bytes",
			t.rows[0], t.rows[len(t.rows)-1], len(t.data))
	}
	for k := 1; k < len(t.rows); k++ {
		if t.rows[k] <= t.rows[k-1] {
			return fmt.Errorf("row %d starts at %d, before row %d at %d", k, t.rows[k], k-1, t.rows[k-1])
		}
	}

	// walk each row, collecting node boundaries and the child offsets the
	// row above expects
	ends := 0
	var expected []uint32 // child offsets within the current row
	for row := 0; row < t.NumRows(); row++ {
		start, end := t.rows[row], t.rows[row+1]
		last := row == t.NumRows()-1

		var children []uint32
		nodes := 0
		for pos := start; pos < end; nodes++ {
			if row > 0 {
				if nodes >= len(expected) {
					return fmt.Errorf("row %d holds more nodes than its parents own", row)
				}
				if expected[nodes] != pos-start {
					return fmt.Errorf("row %d node %d at offset %d, parent expects %d", row, nodes, pos-start, expected[nodes])
				}
			}

			n := nodeView(t.data[pos:end])
			count := n.dataSize()
			if count > 26 {
				return fmt.Errorf("[%08x] node has %d children", pos, count)
			}
			if int(pos)+n.size() > int(end) {
				return fmt.Errorf("[%08x] node crosses end of row %d", pos, row)
			}
			if n.isEndOfWord() {
				ends++
			}

			if n.kind() == fullNode {
				if last {
					return fmt.Errorf("[%08x] node in last row has children", pos)
				}
				letters := n.letters()
				if letters&^validLetters != 0 || letters.count() != count {
					return fmt.Errorf("[%08x] letter set %032b does not hold %d letters", pos, uint32(letters), count)
				}
				for r := 0; r < count; r++ {
					children = append(children, n.childOffset(r))
				}
			}
			pos += uint32(n.size())
		}

		if row == 0 && nodes != 1 {
			return fmt.Errorf("root row holds %d nodes", nodes)
		}
		if row > 0 && nodes != len(expected) {
			return fmt.Errorf("row %d holds %d nodes, parents own %d", row, nodes, len(expected))
		}
		expected = children
	}

	if ends != t.size {
		return fmt.Errorf("%d word ends, size is %d", ends, t.size)
	}
	return nil
}
