package transposition

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKeyword indicates a keyword with no characters.
	ErrEmptyKeyword = errors.New("transposition: empty keyword")

	// ErrInvalidKeyword indicates a keyword that is not letters only or shorter than 2 characters.
	ErrInvalidKeyword = errors.New("transposition: keyword must be at least 2 letters")

	// ErrEmptyKeySequence indicates a numeric key with no values after parsing.
	ErrEmptyKeySequence = errors.New("transposition: empty key sequence")

	// ErrNonPositiveValue indicates a numeric key value below 1 or not an integer.
	ErrNonPositiveValue = errors.New("transposition: values must be positive integers")

	// ErrDuplicateValue indicates a numeric key that repeats a value.
	ErrDuplicateValue = errors.New("transposition: duplicate values not allowed")

	// ErrNonContiguous indicates a numeric key whose values are not exactly 1..n.
	// Returned wrapped in a *RangeError.
	ErrNonContiguous = errors.New("transposition: key values must be contiguous from 1")

	// ErrInvalidColumnCount indicates a column count outside the accepted range.
	ErrInvalidColumnCount = errors.New("transposition: invalid column count")

	// ErrInvalidKeyOrder indicates a nil key order or one that is not a permutation.
	ErrInvalidKeyOrder = errors.New("transposition: invalid key order")

	// ErrKeyMismatch indicates the grid width differs from the key length.
	ErrKeyMismatch = errors.New("transposition: grid width does not match key length")

	// ErrInvalidPadding indicates a pad character that is not a single ASCII letter.
	ErrInvalidPadding = errors.New("transposition: padding must be a single ASCII letter")

	// ErrEmptyText indicates plaintext or ciphertext that is empty after normalization.
	ErrEmptyText = errors.New("transposition: text is empty after normalization")

	// ErrNoKey indicates no key source was provided to the cipher.
	ErrNoKey = errors.New("transposition: no key provided")
)

// RangeError reports a numeric key whose distinct positive values do not form 1..N.
// It matches ErrNonContiguous with errors.Is.
type RangeError struct {
	N       int // number of values supplied
	Max     int // largest value supplied
	Missing int // smallest value in 1..N that is absent
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("transposition: key values must be 1..%d, missing %d", e.N, e.Missing)
}

// Is reports whether target is ErrNonContiguous.
func (e *RangeError) Is(target error) bool {
	return target == ErrNonContiguous
}
