package transposition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildGrid_Complete(t *testing.T) {
	g, err := BuildGrid("WEAREDISCOVEREDFLEEATONCE", 6, 'X', true)
	require.NoError(t, err)
	require.Equal(t, 5, g.Rows())
	require.Equal(t, 6, g.Cols())
	require.Equal(t, "WEARED\nISCOVE\nREDFLE\nEATONC\nEXXXXX", g.String())
	require.Equal(t, 5, g.Count('X'))
}

func TestBuildGrid_Incomplete(t *testing.T) {
	g, err := BuildGrid("WEAREDISCOVEREDFLEEATONCE", 6, 'X', false)
	require.NoError(t, err)
	require.Equal(t, 5, g.Rows())
	require.Equal(t, "WEARED\nISCOVE\nREDFLE\nEATONC\nE.....", g.String())
	require.Equal(t, 0, g.Count('X'))
	require.Equal(t, 5, g.Count(Empty))

	ch, ok := g.At(4, 0)
	require.True(t, ok)
	require.Equal(t, 'E', ch)

	ch, ok = g.At(4, 1)
	require.False(t, ok)
	require.Equal(t, Empty, ch)
}

func TestBuildGrid_Dimensions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		n        int
		complete bool
		rows     int
		render   string
	}{
		{"exact fit", "ABCDEF", 3, true, 2, "ABC\nDEF"},
		{"exact fit incomplete", "ABCDEF", 3, false, 2, "ABC\nDEF"},
		{"one over", "ABCDEFG", 3, true, 3, "ABC\nDEF\nGXX"},
		{"one over incomplete", "ABCDEFG", 3, false, 3, "ABC\nDEF\nG.."},
		{"shorter than key", "AB", 5, true, 1, "ABXXX"},
		{"shorter than key incomplete", "AB", 5, false, 1, "AB..."},
		{"empty text", "", 3, true, 1, "XXX"},
		{"empty text incomplete", "", 3, false, 1, "..."},
		{"single column", "ABC", 1, true, 3, "A\nB\nC"},
		{"multibyte", "ÄÖÜ", 2, true, 2, "ÄÖ\nÜX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGrid(tt.text, tt.n, 'X', tt.complete)
			require.NoError(t, err)
			require.Equal(t, tt.rows, g.Rows())
			require.Equal(t, tt.n, g.Cols())
			require.Equal(t, tt.render, g.String())
		})
	}
}

func TestBuildGrid_InvalidColumns(t *testing.T) {
	_, err := BuildGrid("ABC", 0, 'X', true)
	require.ErrorIs(t, err, ErrInvalidColumnCount)
}

func TestGrid_PadDistinctFromEmpty(t *testing.T) {
	// A text containing the pad character keeps it as data.
	g, err := BuildGrid("AXB", 2, 'X', false)
	require.NoError(t, err)
	ch, ok := g.At(0, 1)
	require.True(t, ok)
	require.Equal(t, 'X', ch)
	_, ok = g.At(1, 1)
	require.False(t, ok)
}

func TestGrid_NULIsData(t *testing.T) {
	g, err := BuildGrid("A\x00B", 2, 'X', false)
	require.NoError(t, err)
	ch, ok := g.At(0, 1)
	require.True(t, ok)
	require.Equal(t, '\x00', ch)
	require.Equal(t, []rune("\x00"), g.Column(1))
	require.Equal(t, 1, g.Count(Empty))
	require.Equal(t, "A\x00\nB.", g.String())
}

func TestGrid_Column(t *testing.T) {
	g, err := BuildGrid("ABCDEFG", 3, 'X', false)
	require.NoError(t, err)
	require.Equal(t, []rune("ADG"), g.Column(0))
	require.Equal(t, []rune("BE"), g.Column(1))
	require.Equal(t, []rune("CF"), g.Column(2))
}

func TestGrid_AtOutOfRange(t *testing.T) {
	g, err := BuildGrid("ABCD", 2, 'X', true)
	require.NoError(t, err)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, ok := g.At(pos[0], pos[1])
		require.False(t, ok, "position %v", pos)
	}
}

func TestGrid_Reordered(t *testing.T) {
	g, err := BuildGrid("WEAREDISCOVEREDFLEEATONCE", 6, 'X', true)
	require.NoError(t, err)
	k, err := KeywordOrder("ZEBRAS")
	require.NoError(t, err)

	r, err := g.Reordered(k)
	require.NoError(t, err)
	// columns A B E R S Z
	require.Equal(t, "EAERDW\nVCSOEI\nLDEFER\nNTAOCE\nXXXXXE", r.String())

	// reading the reordered grid column by column gives the ciphertext
	identity, err := IdentityOrder(6)
	require.NoError(t, err)
	ct, err := Encode(r, identity)
	require.NoError(t, err)
	require.Equal(t, "EVLNXACDTXESEAXROFOXDEECXWIREE", ct)
}

func TestGrid_ReorderedMismatch(t *testing.T) {
	g, err := BuildGrid("ABCDEF", 3, 'X', true)
	require.NoError(t, err)
	k, err := KeywordOrder("ZEBRAS")
	require.NoError(t, err)

	_, err = g.Reordered(k)
	require.ErrorIs(t, err, ErrKeyMismatch)

	_, err = g.Reordered(nil)
	require.ErrorIs(t, err, ErrInvalidKeyOrder)
}
