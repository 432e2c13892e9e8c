package transposition

import "strings"

// Empty marks a grid cell that holds no data. It only appears in the short
// final row of an incomplete grid and is distinct from a pad character.
// Decoding a string never yields a negative rune, so no text can contain it.
const Empty rune = -1

// Grid is a rows x cols table of characters stored row-major.
type Grid struct {
	rows  int
	cols  int
	cells []rune
}

// newGrid returns a grid with every cell Empty.
func newGrid(rows, cols int) *Grid {
	cells := make([]rune, rows*cols)
	for i := range cells {
		cells[i] = Empty
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// rowsFor returns ceil(length/n), never less than 1.
func rowsFor(length, n int) int {
	rows := (length + n - 1) / n
	if rows < 1 {
		rows = 1
	}
	return rows
}

// BuildGrid lays text into a grid of n columns, row by row.
//
// The grid has ceil(len/n) rows (at least 1). In complete mode the cells after
// the text are filled with pad so the grid is a full rectangle. In incomplete
// mode they stay Empty.
func BuildGrid(text string, n int, pad rune, complete bool) (*Grid, error) {
	if n < 1 {
		return nil, ErrInvalidColumnCount
	}
	chars := []rune(text)
	length := len(chars)
	g := newGrid(rowsFor(length, n), n)

	total := length
	if complete {
		total = len(g.cells)
	}
	for i := 0; i < total; i++ {
		if i < length {
			g.cells[i] = chars[i]
		} else {
			g.cells[i] = pad
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the character at row r, column c.
// The second result is false for Empty cells and out-of-range positions.
func (g *Grid) At(r, c int) (rune, bool) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return Empty, false
	}
	ch := g.cells[r*g.cols+c]
	return ch, ch != Empty
}

// Column returns the non-empty cells of column c from top to bottom.
func (g *Grid) Column(c int) []rune {
	out := make([]rune, 0, g.rows)
	for r := 0; r < g.rows; r++ {
		if ch, ok := g.At(r, c); ok {
			out = append(out, ch)
		}
	}
	return out
}

// Count returns how many cells hold ch.
func (g *Grid) Count(ch rune) int {
	n := 0
	for _, c := range g.cells {
		if c == ch {
			n++
		}
	}
	return n
}

// Reordered returns a copy of the grid with its columns rearranged into key
// order: column k of the result is column k.Order[k] of g. Reading the result
// top to bottom, left to right column by column gives the ciphertext.
func (g *Grid) Reordered(k *KeyOrder) (*Grid, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if k.N != g.cols {
		return nil, ErrKeyMismatch
	}
	out := newGrid(g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		for dst, src := range k.Order {
			out.cells[r*g.cols+dst] = g.cells[r*g.cols+src]
		}
	}
	return out, nil
}

// readRows concatenates every non-empty cell in row-major order.
func (g *Grid) readRows() string {
	var sb strings.Builder
	sb.Grow(len(g.cells))
	for _, ch := range g.cells {
		if ch != Empty {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// String renders the grid one row per line with Empty cells shown as '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if ch, ok := g.At(r, c); ok {
				sb.WriteRune(ch)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
