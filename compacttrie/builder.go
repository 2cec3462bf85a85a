package compacttrie

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/milden6/wordsearch/dictionary"
)

var (
	// ErrNotSorted is returned when a word is added out of order.
	ErrNotSorted = errors.New("words not in strictly increasing order")

	// ErrFinished is returned when a finished Builder is used again.
	ErrFinished = errors.New("builder already finished")
)

// maxRowOffset bounds next row offsets. Tests lower it to reach the limit
// with small dictionaries.
var maxRowOffset uint32 = maxNextRowOffset

// pendingNode is a node whose children are known but not yet placed.
type pendingNode struct {
	letters letterSet
	final   bool
}

func (n pendingNode) size() int {
	return nodeSize(n.letters.count())
}

// Builder creates a CompactTrie from words added in increasing order.
//
// rows[k] holds one pending node per distinct prefix of length k seen so
// far, in the order the prefixes were first seen. Since words arrive sorted,
// the last node of each row is the prefix of the previous word, and the
// children of a node are consecutive in the next row.
type Builder struct {
	lastWord []byte
	numAdded int
	finished bool
	rows     [][]pendingNode
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		rows: [][]pendingNode{{{}}},
	}
}

// CanAdd will return true if the word can be added to the Builder.
// Words must be added in alphabetical order.
func (b *Builder) CanAdd(word string) bool {
	return !b.finished &&
		(b.numAdded == 0 || word > string(b.lastWord)) &&
		dictionary.Validate(word) == nil
}

// Add adds a word to the structure. Words must be strictly greater than the
// previous one and hold only the letters a-z.
func (b *Builder) Add(word string) error {
	if b.finished {
		return ErrFinished
	}
	if b.numAdded > 0 && word <= string(b.lastWord) {
		return fmt.Errorf("%w: %q after %q", ErrNotSorted, word, b.lastWord)
	}
	if err := dictionary.Validate(word); err != nil {
		return err
	}

	// find common prefix between word and previous word
	commonPrefix := 0
	for commonPrefix < len(word) && commonPrefix < len(b.lastWord) &&
		word[commonPrefix] == b.lastWord[commonPrefix] {
		commonPrefix++
	}

	// The node for word[:commonPrefix] is the last one of its row. Open one
	// node per remaining letter below it.
	for i := commonPrefix; i < len(word); i++ {
		row := b.rows[i]
		letter, _ := dictionary.Index(word[i])
		row[len(row)-1].letters = row[len(row)-1].letters.with(letter)

		if len(b.rows) == i+1 {
			b.rows = append(b.rows, nil)
		}
		b.rows[i+1] = append(b.rows[i+1], pendingNode{})
	}

	row := b.rows[len(word)]
	row[len(row)-1].final = true

	b.lastWord = append(b.lastWord[:0], word...)
	b.numAdded++
	return nil
}

// NumAdded returns the number of words added.
func (b *Builder) NumAdded() int {
	return b.numAdded
}

// Finish lays the rows out in one buffer and links every node to its
// children. The Builder cannot be used afterwards.
func (b *Builder) Finish() (*CompactTrie, error) {
	if b.finished {
		return nil, ErrFinished
	}
	b.finished = true

	pending := b.rows
	b.rows = nil
	b.lastWord = nil

	t := &CompactTrie{size: b.numAdded}
	if b.numAdded == 0 {
		return t, nil
	}

	rows := make([]uint32, len(pending)+1)
	total := 0
	for k, row := range pending {
		rows[k] = uint32(total)
		for _, n := range row {
			total += n.size()
		}
		if uint64(total) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: buffer exceeds %d bytes", dictionary.ErrTooLarge, uint32(math.MaxUint32))
		}
	}
	rows[len(pending)] = uint32(total)

	data := make([]byte, total)
	for k, row := range pending {
		pos := rows[k]
		for _, n := range row {
			pos += uint32(putNode(data[pos:], n.letters, n.final))
		}
	}

	for k := 0; k+1 < len(pending); k++ {
		if err := link(data[rows[k]:rows[k+1]], pending[k], pending[k+1]); err != nil {
			return nil, fmt.Errorf("row %d: %w", k, err)
		}
	}

	t.data = data
	t.rows = rows

	log.Debug().
		Int("words", t.size).
		Int("rows", t.NumRows()).
		Int("bytes", len(t.data)).
		Msg("compact trie built")

	return t, nil
}

// link sets the next row offset and mini offsets of every full node in the
// encoded parent row. children is the next row in construction order, which
// is the order parents consume it.
func link(row []byte, parents, children []pendingNode) error {
	var cursor uint32 // from the start of the child row
	next := 0
	pos := 0

	for _, parent := range parents {
		view := nodeView(row[pos:])
		pos += parent.size()

		n := parent.letters.count()
		if n == 0 {
			// empty nodes own nothing in the next row
			continue
		}

		if cursor > maxRowOffset {
			return fmt.Errorf("%w: next row offset %d exceeds %d", dictionary.ErrTooLarge, cursor, maxRowOffset)
		}
		view.setNextRowOffset(cursor)

		first := cursor
		cursor += uint32(children[next].size())
		next++

		for i := 1; i < n; i++ {
			mini := cursor - first
			// siblings are contiguous and a node is at most 58 bytes, so
			// mini stays below 25*58 and this cannot trigger
			if mini > maxMiniOffset {
				return fmt.Errorf("%w: mini offset %d exceeds %d", dictionary.ErrTooLarge, mini, maxMiniOffset)
			}
			view.setMiniOffset(i-1, uint16(mini))
			cursor += uint32(children[next].size())
			next++
		}
	}

	if next != len(children) {
		return fmt.Errorf("parents own %d children, next row holds %d", next, len(children))
	}
	return nil
}
