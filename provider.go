package transposition

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// KeySource produces the column order for a cipher.
// Implement this interface to derive orders from other key formats.
type KeySource interface {
	// KeyOrder derives the column order, or returns a validation error.
	KeyOrder() (*KeyOrder, error)

	// String describes the key for logging.
	String() string
}

// Keyword is a KeySource for an alphabetic keyword such as "ZEBRAS".
type Keyword struct {
	Text     string
	Collator Collator // nil means CodepointCollation
}

// KeyOrder implements KeySource.
// The keyword must be at least 2 characters and contain letters only.
func (k Keyword) KeyOrder() (*KeyOrder, error) {
	if k.Text == "" {
		return nil, ErrEmptyKeyword
	}
	if utf8.RuneCountInString(k.Text) < 2 {
		return nil, ErrInvalidKeyword
	}
	for _, r := range k.Text {
		if !unicode.IsLetter(r) {
			return nil, ErrInvalidKeyword
		}
	}
	return KeywordOrderCollated(k.Text, k.Collator)
}

// String implements KeySource.
func (k Keyword) String() string {
	return "keyword " + strconv.Quote(k.Text)
}

// Numeric is a KeySource for a numeric permutation such as "3 1 4 2".
type Numeric struct {
	Spec string
}

// KeyOrder implements KeySource.
func (n Numeric) KeyOrder() (*KeyOrder, error) {
	return NumericOrder(n.Spec)
}

// String implements KeySource.
func (n Numeric) String() string {
	return "numeric " + strconv.Quote(n.Spec)
}

// Columns is a KeySource for keyless operation: N columns read left to right.
type Columns struct {
	N int
}

// KeyOrder implements KeySource.
// N must be within [MinColumns, MaxColumns].
func (c Columns) KeyOrder() (*KeyOrder, error) {
	if err := ValidateColumnCount(c.N); err != nil {
		return nil, err
	}
	return IdentityOrder(c.N)
}

// String implements KeySource.
func (c Columns) String() string {
	return strconv.Itoa(c.N) + " columns"
}
