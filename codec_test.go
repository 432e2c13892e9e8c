package transposition

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	zebrasPlain  = "WEAREDISCOVEREDFLEEATONCE"
	zebrasPadded = "WEAREDISCOVEREDFLEEATONCEXXXXX"
	zebrasCipher = "EVLNXACDTXESEAXROFOXDEECXWIREE"
)

func zebrasKey(t testing.TB) *KeyOrder {
	k, err := KeywordOrder("ZEBRAS")
	require.NoError(t, err)
	return k
}

func encodeText(t *testing.T, text string, k *KeyOrder, pad rune, complete bool) string {
	t.Helper()
	g, err := BuildGrid(text, k.N, pad, complete)
	require.NoError(t, err)
	ct, err := Encode(g, k)
	require.NoError(t, err)
	return ct
}

func TestEncode_TextbookZebras(t *testing.T) {
	ct := encodeText(t, zebrasPlain, zebrasKey(t), 'X', true)
	require.Equal(t, zebrasCipher, ct)
	require.Len(t, ct, 30)
}

func TestDecode_TextbookZebras(t *testing.T) {
	k := zebrasKey(t)

	dec, err := Decode(zebrasCipher, k, true, 'X', false)
	require.NoError(t, err)
	require.Equal(t, zebrasPadded, dec.Plaintext)
	require.Equal(t, 0, dec.Stripped)

	dec, err = Decode(zebrasCipher, k, true, 'X', true)
	require.NoError(t, err)
	require.Equal(t, zebrasPlain, dec.Plaintext)
	require.Equal(t, 5, dec.Stripped)
	require.Equal(t, "WEARED\nISCOVE\nREDFLE\nEATONC\nEXXXXX", dec.Grid.String())
}

func TestEncode_IncompleteSkipsEmptyCells(t *testing.T) {
	k := zebrasKey(t)
	ct := encodeText(t, zebrasPlain, k, 'X', false)
	require.Equal(t, "EVLNACDTESEAROFODEECWIREE", ct)
	require.NotContains(t, ct, "X")

	dec, err := Decode(ct, k, false, 'X', true)
	require.NoError(t, err)
	require.Equal(t, zebrasPlain, dec.Plaintext)
	require.Equal(t, "WEARED\nISCOVE\nREDFLE\nEATONC\nE.....", dec.Grid.String())
}

func TestEncode_NumericKey(t *testing.T) {
	k, err := NumericOrder("3 1 4 2")
	require.NoError(t, err)
	// ATTA
	// CKAT
	// DAWN
	ct := encodeText(t, "ATTACKATDAWN", k, 'X', true)
	require.Equal(t, "TKAATNACDTAW", ct)
}

func TestEncode_Errors(t *testing.T) {
	g, err := BuildGrid("ABCDEF", 3, 'X', true)
	require.NoError(t, err)

	_, err = Encode(g, nil)
	require.ErrorIs(t, err, ErrInvalidKeyOrder)

	_, err = Encode(nil, zebrasKey(t))
	require.ErrorIs(t, err, ErrInvalidKeyOrder)

	_, err = Encode(g, zebrasKey(t))
	require.ErrorIs(t, err, ErrKeyMismatch)
}

func TestColumnHeights(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		n        int
		complete bool
		heights  []int
	}{
		{"incomplete 7 over 3", 7, 3, false, []int{3, 2, 2}},
		{"incomplete 8 over 3", 8, 3, false, []int{3, 3, 2}},
		{"incomplete exact", 9, 3, false, []int{3, 3, 3}},
		{"complete", 7, 3, true, []int{3, 3, 3}},
		{"incomplete shorter than key", 2, 5, false, []int{1, 1, 0, 0, 0}},
		{"empty", 0, 3, false, []int{1, 1, 1}},
		{"zero columns", 5, 0, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.heights, ColumnHeights(tt.length, tt.n, tt.complete))
		})
	}
}

func TestDecode_HeightsFollowColumnIndexNotRank(t *testing.T) {
	// Length 7, 3 columns: column 0 is tall whatever its rank.
	for _, spec := range []string{"1 2 3", "3 2 1", "2 3 1", "3 1 2"} {
		t.Run(spec, func(t *testing.T) {
			k, err := NumericOrder(spec)
			require.NoError(t, err)

			ct := encodeText(t, "ABCDEFG", k, 'X', false)
			dec, err := Decode(ct, k, false, 'X', false)
			require.NoError(t, err)
			require.Equal(t, 3, dec.Grid.Rows())
			require.Equal(t, "ABCDEFG", dec.Plaintext)
			require.Len(t, dec.Grid.Column(0), 3)
			require.Len(t, dec.Grid.Column(1), 2)
			require.Len(t, dec.Grid.Column(2), 2)
		})
	}
}

func TestDecode_AutoStripOnlyInCompleteMode(t *testing.T) {
	k, err := IdentityOrder(2)
	require.NoError(t, err)

	// "ABXX" written in two columns reads "AXBX".
	dec, err := Decode("AXBX", k, false, 'X', true)
	require.NoError(t, err)
	require.Equal(t, "ABXX", dec.Plaintext)
	require.Equal(t, 0, dec.Stripped)
}

func TestDecode_AutoStripRemovesGenuineTrailingPad(t *testing.T) {
	k := zebrasKey(t)
	ct := encodeText(t, "RELAX", k, 'X', true)

	dec, err := Decode(ct, k, true, 'X', true)
	require.NoError(t, err)
	require.Equal(t, "RELA", dec.Plaintext)
	require.Equal(t, 2, dec.Stripped)

	dec, err = Decode(ct, k, true, 'X', false)
	require.NoError(t, err)
	require.Equal(t, "RELAXX", dec.Plaintext)
}

func TestDecode_MalformedLengthIsBestEffort(t *testing.T) {
	k := zebrasKey(t)

	// Complete mode expects a multiple of 6; 7 characters still decode.
	dec, err := Decode("ABCDEFG", k, true, 'X', false)
	require.NoError(t, err)
	require.Equal(t, 2, dec.Grid.Rows())
	require.Len(t, []rune(dec.Plaintext), 7)

	dec, err = Decode("", k, true, 'X', true)
	require.NoError(t, err)
	require.Equal(t, "", dec.Plaintext)
	require.Equal(t, 1, dec.Grid.Rows())
}

func TestDecode_InvalidKey(t *testing.T) {
	_, err := Decode("ABC", nil, true, 'X', true)
	require.ErrorIs(t, err, ErrInvalidKeyOrder)

	_, err = Decode("ABC", &KeyOrder{N: 0}, true, 'X', true)
	require.ErrorIs(t, err, ErrInvalidKeyOrder)
}

func TestDecode_Multibyte(t *testing.T) {
	k, err := NumericOrder("2 1")
	require.NoError(t, err)
	ct := encodeText(t, "ÄBÖ", k, 'X', false)
	require.Equal(t, "BÄÖ", ct)

	dec, err := Decode(ct, k, false, 'X', false)
	require.NoError(t, err)
	require.Equal(t, "ÄBÖ", dec.Plaintext)
}

func TestCodec_RoundTripProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWYZ" // no 'X'

	for i := 0; i < 300; i++ {
		length := 1 + rng.IntN(80)
		var sb strings.Builder
		for j := 0; j < length; j++ {
			sb.WriteByte(alphabet[rng.IntN(len(alphabet))])
		}
		text := sb.String()

		n := 2 + rng.IntN(19)
		var k *KeyOrder
		var err error
		if i%2 == 0 {
			word := make([]byte, n)
			for j := range word {
				word[j] = alphabet[rng.IntN(len(alphabet))]
			}
			k, err = KeywordOrder(string(word))
		} else {
			k, err = NumericOrder(permSpec(rng.Perm(n)))
		}
		require.NoError(t, err)

		// complete mode with auto-strip cancels the padding
		ct := encodeText(t, text, k, 'X', true)
		require.Len(t, ct, rowsFor(length, n)*n)
		dec, err := Decode(ct, k, true, 'X', true)
		require.NoError(t, err)
		require.Equal(t, text, dec.Plaintext, "key %v", k.Order)

		// incomplete mode is exact without stripping
		ct = encodeText(t, text, k, 'X', false)
		require.Len(t, ct, length)
		dec, err = Decode(ct, k, false, 'X', false)
		require.NoError(t, err)
		require.Equal(t, text, dec.Plaintext, "key %v", k.Order)
	}
}

func permSpec(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v + 1)
	}
	return strings.Join(parts, ",")
}
