package transposition

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCollatorFunc(t *testing.T) {
	reverse := CollatorFunc(func(a, b rune) int { return CodepointCollation.Compare(b, a) })
	k, err := KeywordOrderCollated("ABC", reverse)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, k.Order)
}

func TestCodepointCollation(t *testing.T) {
	require.Negative(t, CodepointCollation.Compare('A', 'B'))
	require.Positive(t, CodepointCollation.Compare('b', 'a'))
	require.Zero(t, CodepointCollation.Compare('Q', 'Q'))
	require.Negative(t, CodepointCollation.Compare('Z', 'a'))
}

func TestLocaleCollation(t *testing.T) {
	coll := NewLocaleCollation(language.German)
	require.Negative(t, coll.Compare('a', 'B'))
	require.Negative(t, coll.Compare('ä', 'b'))
	require.Zero(t, coll.Compare('k', 'k'))
}

func TestLocaleCollation_ConcurrentUse(t *testing.T) {
	coll := NewLocaleCollation(language.Japanese)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				k, err := KeywordOrderCollated("ZEBRAS", coll)
				if assert.NoError(t, err) {
					assert.Equal(t, []int{4, 2, 1, 3, 5, 0}, k.Order)
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseCollation(t *testing.T) {
	coll, err := ParseCollation("")
	require.NoError(t, err)
	require.Equal(t, CodepointCollation, coll)

	coll, err = ParseCollation("codepoint")
	require.NoError(t, err)
	require.Equal(t, CodepointCollation, coll)

	coll, err = ParseCollation("ja")
	require.NoError(t, err)
	require.IsType(t, &localeCollation{}, coll)

	_, err = ParseCollation("not a tag!")
	require.Error(t, err)
}
