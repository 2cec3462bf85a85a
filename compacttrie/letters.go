package compacttrie

import (
	"math/bits"
	"strings"

	"github.com/milden6/wordsearch/dictionary"
)

// letterSet has bit i set if the node has a child for letter 'a'+i.
type letterSet uint32

// validLetters masks the bits that can be set.
const validLetters letterSet = 1<<dictionary.AlphabetSize - 1

// has reports whether bit i is set. Indexes past the alphabet are never set.
func (s letterSet) has(i uint) bool {
	return i < dictionary.AlphabetSize && s&(1<<i) != 0
}

func (s letterSet) with(i uint) letterSet {
	return s | 1<<i
}

// rank returns the number of set bits below bit i, which is the position of
// letter i among the node's children.
func (s letterSet) rank(i uint) int {
	return bits.OnesCount32(uint32(s & (1<<i - 1)))
}

func (s letterSet) count() int {
	return bits.OnesCount32(uint32(s))
}

// next returns the lowest set bit at or above i.
func (s letterSet) next(i uint) (uint, bool) {
	if i >= dictionary.AlphabetSize {
		return 0, false
	}
	rest := s >> i
	if rest == 0 {
		return 0, false
	}
	return i + uint(bits.TrailingZeros32(uint32(rest))), true
}

func (s letterSet) String() string {
	var b strings.Builder
	for i, ok := s.next(0); ok; i, ok = s.next(i + 1) {
		b.WriteByte(dictionary.Letter(i))
	}
	return b.String()
}
