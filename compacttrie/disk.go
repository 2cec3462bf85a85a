package compacttrie

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/mmap"
)

/* FILE FORMAT
- 4 bytes: big endian total size of the trie in bytes, these 4 included
- 4 bytes: magic "WSCT"
- 1 byte: format version
- 7code: number of words
- 7code: number of row index entries, 0 for an empty trie, else rows + 1
- 7code: each row index entry, the last one being the buffer length
- 7code: buffer length
- the node buffer

We define 7code to be an unsigned that can be read the following way:

result = 0
for {
	data = next 8 bits
	result = result << 7 | data & 0x7f
	if data & 0x80 == 0 break
}
*/

const (
	magic         = "WSCT"
	formatVersion = 1
	headerSize    = 4 + len(magic) + 1
)

// ErrCorrupt is returned when a saved trie cannot be decoded or fails
// verification.
var ErrCorrupt = errors.New("corrupt compact trie")

// Save writes the trie to a file. Returns the number of bytes written.
func (t *CompactTrie) Save(filename string) (int64, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}

	n, err := t.Write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// Write writes the trie to an io.Writer. Returns the number of bytes written.
func (t *CompactTrie) Write(w io.Writer) (int64, error) {
	header := make([]byte, headerSize, headerSize+16+5*len(t.rows))
	copy(header[4:], magic)
	header[4+len(magic)] = formatVersion

	header = appendUnsigned(header, uint64(t.size))
	header = appendUnsigned(header, uint64(len(t.rows)))
	for _, r := range t.rows {
		header = appendUnsigned(header, uint64(r))
	}
	header = appendUnsigned(header, uint64(len(t.data)))

	total := uint64(len(header)) + uint64(len(t.data))
	if total > math.MaxUint32 {
		return 0, fmt.Errorf("%d bytes: %w", total, errFileTooLarge)
	}
	binary.BigEndian.PutUint32(header, uint32(total))

	n, err := w.Write(header)
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(t.data)
	return int64(n + m), err
}

var errFileTooLarge = errors.New("trie exceeds 4GiB file limit")

// Load reads a trie saved with Save. The file is memory mapped while it is
// decoded.
func Load(filename string) (*CompactTrie, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	log.Debug().
		Str("file", filename).
		Int("words", t.size).
		Int("bytes", len(t.data)).
		Msg("compact trie loaded")
	return t, nil
}

// Read decodes a trie written with Write, starting at offset in r. The
// returned trie owns a copy of the data and is verified.
func Read(r io.ReaderAt, offset int64) (*CompactTrie, error) {
	var sizeBuf [4]byte
	if err := readFull(r, sizeBuf[:], offset); err != nil {
		return nil, fmt.Errorf("%w: reading size: %v", ErrCorrupt, err)
	}
	size := binary.BigEndian.Uint32(sizeBuf[:])
	if int(size) < headerSize {
		return nil, fmt.Errorf("%w: size %d smaller than header", ErrCorrupt, size)
	}

	buf, err := readPayload(r, offset, size)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %d bytes: %v", ErrCorrupt, size, err)
	}

	if string(buf[4:4+len(magic)]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, buf[4:4+len(magic)])
	}
	if v := buf[4+len(magic)]; v != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, v)
	}

	d := decoder{buf: buf, pos: headerSize}
	numWords := d.unsigned()
	numRows := d.unsigned()
	if d.err == nil && numRows > uint64(len(buf)) {
		return nil, fmt.Errorf("%w: %d row entries in %d bytes", ErrCorrupt, numRows, len(buf))
	}

	var rows []uint32
	if numRows > 0 {
		rows = make([]uint32, numRows)
	}
	for i := range rows {
		v := d.unsigned()
		if v > math.MaxUint32 {
			d.fail("row offset %d overflows", v)
		}
		rows[i] = uint32(v)
	}

	dataLen := d.unsigned()
	if d.err != nil {
		return nil, d.err
	}
	if dataLen != uint64(len(buf)-d.pos) {
		return nil, fmt.Errorf("%w: buffer length %d, %d bytes remain", ErrCorrupt, dataLen, len(buf)-d.pos)
	}
	if numWords > uint64(math.MaxInt32) {
		return nil, fmt.Errorf("%w: word count %d", ErrCorrupt, numWords)
	}

	t := &CompactTrie{
		data: buf[d.pos:],
		rows: rows,
		size: int(numWords),
	}
	if len(t.data) == 0 {
		t.data = nil
	}
	if err := t.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return t, nil
}

// readPayload reads the size bytes starting at off. The size comes from the
// file, so it is checked against the source length before anything that
// large is allocated. Sources of unknown length are read incrementally.
func readPayload(r io.ReaderAt, off int64, size uint32) ([]byte, error) {
	length := int64(-1)
	switch src := r.(type) {
	case interface{ Size() int64 }:
		length = src.Size()
	case interface{ Len() int }:
		length = int64(src.Len())
	}

	if length >= 0 {
		if off+int64(size) > length {
			return nil, fmt.Errorf("source holds %d bytes past offset %d", length-off, off)
		}
		buf := make([]byte, size)
		if err := readFull(r, buf, off); err != nil {
			return nil, err
		}
		return buf, nil
	}

	buf, err := io.ReadAll(io.NewSectionReader(r, off, int64(size)))
	if err != nil {
		return nil, err
	}
	if len(buf) != int(size) {
		return nil, io.ErrUnexpectedEOF
	}
	return buf, nil
}

// readFull fills b from r at off. A reader may report io.EOF along with a
// full read at the end of its input.
func readFull(r io.ReaderAt, b []byte, off int64) error {
	n, err := r.ReadAt(b, off)
	if n == len(b) {
		return nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	buf []byte
	pos int
	err error
}

func (d *decoder) fail(format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: "+format, append([]any{ErrCorrupt}, args...)...)
	}
}

func (d *decoder) unsigned() uint64 {
	if d.err != nil {
		return 0
	}
	v, n := readUnsigned(d.buf[d.pos:])
	if n == 0 {
		d.fail("bad 7code at %d", d.pos)
		return 0
	}
	d.pos += n
	return v
}

func appendUnsigned(b []byte, n uint64) []byte {
	var tmp [10]byte
	i := len(tmp) - 1
	tmp[i] = byte(n & 0x7f)
	for n >>= 7; n != 0; n >>= 7 {
		i--
		tmp[i] = byte(n&0x7f) | 0x80
	}
	return append(b, tmp[i:]...)
}

// readUnsigned decodes a 7code from the start of b. It returns the value
// and the number of bytes read, or 0 bytes if b is truncated or the value
// overflows.
func readUnsigned(b []byte) (uint64, int) {
	var result uint64
	for i, d := range b {
		if result>>57 != 0 {
			return 0, 0
		}
		result = result<<7 | uint64(d&0x7f)
		if d&0x80 == 0 {
			return result, i + 1
		}
	}
	return 0, 0
}

func unsignedLength(n uint64) int {
	l := 1
	for n >>= 7; n != 0; n >>= 7 {
		l++
	}
	return l
}

// DumpFile decodes the trie at the start of r and prints its header fields
// and nodes to w, each line starting with its offset in the file.
func DumpFile(r io.ReaderAt, w io.Writer) error {
	t, err := Read(r, 0)
	if err != nil {
		return err
	}

	pos := 0
	field := func(n int, format string, args ...any) {
		fmt.Fprintf(w, "[%08x] %s\n", pos, fmt.Sprintf(format, args...))
		pos += n
	}

	total := headerSize + len(t.data) + unsignedLength(uint64(t.size)) +
		unsignedLength(uint64(len(t.rows))) + unsignedLength(uint64(len(t.data)))
	for _, r := range t.rows {
		total += unsignedLength(uint64(r))
	}

	field(4, "Size=%v bytes", total)
	field(len(magic), "Magic=%q", magic)
	field(1, "Version=%d", formatVersion)
	field(unsignedLength(uint64(t.size)), "WordCount=%v", t.size)
	field(unsignedLength(uint64(len(t.rows))), "RowIndexEntries=%v", len(t.rows))
	for i, r := range t.rows {
		field(unsignedLength(uint64(r)), "RowStart[%d]=%d", i, r)
	}
	field(unsignedLength(uint64(len(t.data))), "DataLength=%v", len(t.data))

	fmt.Fprintf(w, "[%08x] Data\n", pos)
	return t.Dump(w)
}
