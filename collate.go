package transposition

import (
	"cmp"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares two keyword characters.
// Compare returns a negative number if a sorts before b, zero if they are
// equal, and a positive number otherwise.
type Collator interface {
	Compare(a, b rune) int
}

// CollatorFunc adapts an ordinary function to the Collator interface.
type CollatorFunc func(a, b rune) int

// Compare implements Collator.
func (f CollatorFunc) Compare(a, b rune) int {
	return f(a, b)
}

// CodepointCollation orders characters by Unicode codepoint, case-sensitive.
// It is the default for keyword ordering and gives the same order on every
// platform: 'A' < 'Z' < 'a'.
var CodepointCollation Collator = codepointCollation{}

type codepointCollation struct{}

// Compare implements Collator.
func (codepointCollation) Compare(a, b rune) int {
	return cmp.Compare(a, b)
}

// localeCollation orders characters using the Unicode Collation Algorithm
// tailored for a language.
type localeCollation struct {
	mu   sync.Mutex // collate.Collator reuses internal buffers
	coll *collate.Collator
}

// NewLocaleCollation returns a Collator that compares characters the way
// the given language sorts them, so accented letters and letter variants
// fall next to their base letters.
//
// Example:
//
//	order, err := transposition.KeywordOrderCollated("été", transposition.NewLocaleCollation(language.French))
func NewLocaleCollation(tag language.Tag) Collator {
	return &localeCollation{coll: collate.New(tag)}
}

// Compare implements Collator.
func (l *localeCollation) Compare(a, b rune) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.coll.CompareString(string(a), string(b))
}

// ParseCollation resolves a collation name: "" or "codepoint" selects
// CodepointCollation, anything else is parsed as a BCP 47 language tag.
func ParseCollation(name string) (Collator, error) {
	if name == "" || name == "codepoint" {
		return CodepointCollation, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, err
	}
	return NewLocaleCollation(tag), nil
}
