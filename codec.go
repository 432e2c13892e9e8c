package transposition

import "strings"

// Decoded is the output of Decode.
type Decoded struct {
	Plaintext string // recovered text, pad-stripped if requested
	Grid      *Grid  // reassembled grid before stripping
	Stripped  int    // number of trailing pad characters removed
}

// Encode reads the grid column by column in key order and returns the
// ciphertext. Empty cells are skipped.
//
// Returns ErrInvalidKeyOrder if k is not a valid permutation and
// ErrKeyMismatch if the grid width differs from k.N.
func Encode(g *Grid, k *KeyOrder) (string, error) {
	if g == nil {
		return "", ErrInvalidKeyOrder
	}
	if err := k.Validate(); err != nil {
		return "", err
	}
	if g.cols != k.N {
		return "", ErrKeyMismatch
	}

	var sb strings.Builder
	sb.Grow(len(g.cells))
	for _, origIdx := range k.Order {
		for r := 0; r < g.rows; r++ {
			if ch := g.cells[r*g.cols+origIdx]; ch != Empty {
				sb.WriteRune(ch)
			}
		}
	}
	return sb.String(), nil
}

// ColumnHeights returns the height of each original column for a ciphertext
// of length characters spread over n columns.
//
// A complete grid is rectangular. In an incomplete grid the final row holds
// length mod n characters, so that many leftmost original columns are one
// row taller than the rest. Key order plays no part: the grid was filled
// left to right.
func ColumnHeights(length, n int, complete bool) []int {
	if n < 1 {
		return nil
	}
	rows := rowsFor(length, n)
	heights := make([]int, n)
	fullCols := length % n
	for c := range heights {
		heights[c] = rows
		if !complete && fullCols > 0 && c >= fullCols {
			heights[c] = rows - 1
		}
	}
	return heights
}

// Decode reverses Encode.
//
// The ciphertext is cut into one segment per column, taken in key order with
// the heights from ColumnHeights, and the grid is read back row by row. With
// complete and autoStrip set, the trailing run of pad is removed from the
// result; plaintext that itself ends in pad loses those characters too.
//
// A ciphertext whose length does not fit the grid yields a best-effort
// result rather than an error. The only error is an invalid key order.
func Decode(ciphertext string, k *KeyOrder, complete bool, pad rune, autoStrip bool) (*Decoded, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}

	chars := []rune(ciphertext)
	length := len(chars)
	heights := ColumnHeights(length, k.N, complete)
	g := newGrid(rowsFor(length, k.N), k.N)

	pos := 0
	for _, origIdx := range k.Order {
		end := min(pos+heights[origIdx], length)
		for r, ch := range chars[pos:end] {
			g.cells[r*g.cols+origIdx] = ch
		}
		pos = end
	}

	plain := g.readRows()
	stripped := 0
	if complete && autoStrip {
		trimmed := strings.TrimRight(plain, string(pad))
		stripped = len([]rune(plain)) - len([]rune(trimmed))
		plain = trimmed
	}

	return &Decoded{Plaintext: plain, Grid: g, Stripped: stripped}, nil
}
