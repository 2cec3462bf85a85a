package solver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// hole marks a cell no path may enter. It is outside the alphabet, so it
// never matches a dictionary letter either.
const hole = 0

// ErrInvalidCell is returned when a grid line holds a byte that is neither
// a letter nor a space.
var ErrInvalidCell = errors.New("grid cell is not a letter or space")

// Position is a cell of a grid.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Path is a sequence of adjacent cells spelling a word.
type Path []Position

// Grid is a rectangle of lowercase letters. Spaces and the padding of short
// lines are holes.
type Grid struct {
	rows, cols int
	cells      []byte
}

// NewGrid builds a grid from lines of letters. Letters are lowercased and
// spaces become holes. Lines shorter than the longest are padded with holes.
func NewGrid(lines []string) (*Grid, error) {
	g := &Grid{rows: len(lines)}
	for _, line := range lines {
		if len(line) > g.cols {
			g.cols = len(line)
		}
	}

	g.cells = make([]byte, g.rows*g.cols)
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			b := line[c]
			switch {
			case b >= 'a' && b <= 'z':
			case b >= 'A' && b <= 'Z':
				b += 'a' - 'A'
			case b == ' ':
				b = hole
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrInvalidCell, b, r+1, c+1)
			}
			g.cells[r*g.cols+c] = b
		}
	}
	return g, nil
}

// ParseGrid reads a grid from r, one row per line. Blank lines are skipped.
func ParseGrid(r io.Reader) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewGrid(lines)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the letter at p, or 0 for a hole or a position outside the
// grid.
func (g *Grid) At(p Position) byte {
	if !g.Contains(p) {
		return hole
	}
	return g.cells[p.Row*g.cols+p.Col]
}

// Spell returns the word traced by path.
func (g *Grid) Spell(path Path) string {
	b := make([]byte, len(path))
	for i, p := range path {
		b[i] = g.At(p)
	}
	return string(b)
}

// String returns the grid one row per line with holes as spaces.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for _, c := range g.cells[r*g.cols : (r+1)*g.cols] {
			if c == hole {
				c = ' '
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
