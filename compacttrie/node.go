package compacttrie

import (
	"encoding/binary"
	"fmt"
)

/* NODE FORMAT

Nodes are variable sized. The first byte tells the two kinds apart.

Empty node, 1 byte:
	- 0x00. No children. Always the end of a word.

Full node with n children, 6 + 2n bytes:
	- 1 byte: n, 1 to 26
	- 3 bytes: little endian. Low 23 bits are the offset of the first child
	  from the start of the next row. Bit 23 is set if a word ends here.
	- 4 bytes: little endian letter set, bit i for letter 'a'+i
	- (n-1) * 2 bytes: little endian mini offsets. Mini offset i-1 is the
	  distance in bytes from the first child to child i in the next row.

The child for letter c is found by testing bit c in the letter set. Its
rank r among the set bits selects the child: the first child for r == 0,
otherwise the first child plus mini offset r-1.
*/

const (
	// fullHeaderSize is the size of a full node before its mini offsets.
	fullHeaderSize = 8

	endOfWordBit = 0x80

	// maxNextRowOffset is the largest value the 23 bit offset field holds.
	maxNextRowOffset = 1<<23 - 1

	maxMiniOffset = 1<<16 - 1
)

type nodeKind uint8

const (
	emptyNode nodeKind = iota
	fullNode
)

// nodeView reads the node starting at its first byte. It is a slice of the
// trie's buffer and must not outlive it.
type nodeView []byte

func (n nodeView) kind() nodeKind {
	if n[0] == 0 {
		return emptyNode
	}
	return fullNode
}

// dataSize is the number of children.
func (n nodeView) dataSize() int {
	return int(n[0])
}

// size returns the size of the node in bytes.
func (n nodeView) size() int {
	return nodeSize(int(n[0]))
}

// nodeSize returns the size in bytes of a node with children children.
func nodeSize(children int) int {
	if children == 0 {
		return 1
	}
	return fullHeaderSize + 2*(children-1)
}

func (n nodeView) isEndOfWord() bool {
	if n.kind() == emptyNode {
		return true
	}
	return n[3]&endOfWordBit != 0
}

// The accessors below are only valid on full nodes.

func (n nodeView) nextRowOffset() uint32 {
	return uint32(n[1]) | uint32(n[2])<<8 | uint32(n[3]&^endOfWordBit)<<16
}

func (n nodeView) letters() letterSet {
	return letterSet(binary.LittleEndian.Uint32(n[4:8]))
}

func (n nodeView) miniOffset(i int) uint32 {
	return uint32(binary.LittleEndian.Uint16(n[fullHeaderSize+2*i:]))
}

// childOffset returns the offset from the start of the next row of the
// child at rank r.
func (n nodeView) childOffset(r int) uint32 {
	off := n.nextRowOffset()
	if r > 0 {
		off += n.miniOffset(r - 1)
	}
	return off
}

// putNode encodes a node with no offsets set into b and returns its size.
func putNode(b []byte, letters letterSet, final bool) int {
	children := letters.count()
	if children == 0 {
		b[0] = 0
		return 1
	}

	size := nodeSize(children)
	b[0] = byte(children)
	b[1], b[2], b[3] = 0, 0, 0
	if final {
		b[3] = endOfWordBit
	}
	binary.LittleEndian.PutUint32(b[4:8], uint32(letters))
	for i := fullHeaderSize; i < size; i++ {
		b[i] = 0
	}
	return size
}

func (n nodeView) setNextRowOffset(off uint32) {
	n[1] = byte(off)
	n[2] = byte(off >> 8)
	n[3] = n[3]&endOfWordBit | byte(off>>16)&^endOfWordBit
}

func (n nodeView) setMiniOffset(i int, off uint16) {
	binary.LittleEndian.PutUint16(n[fullHeaderSize+2*i:], off)
}

func (n nodeView) String() string {
	if n.kind() == emptyNode {
		return "EmptyNode"
	}

	minis := make([]uint32, n.dataSize()-1)
	for i := range minis {
		minis[i] = n.miniOffset(i)
	}
	return fmt.Sprintf("FullNode{size: %d, end: %v, next: %d, letters: %s, mini: %v}",
		n.size(), n.isEndOfWord(), n.nextRowOffset(), n.letters(), minis)
}
