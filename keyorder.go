package transposition

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Column count bounds accepted for keyless (identity order) encryption.
const (
	MinColumns = 2
	MaxColumns = 20
)

// KeyOrder is the column ordering derived from a key.
//
// Order lists original column indexes by ascending key rank: Order[k] is the
// column read k-th during encoding. Rank is the inverse permutation: Rank[i]
// is the 0-based rank of original column i.
type KeyOrder struct {
	N     int
	Order []int
	Rank  []int
}

// newKeyOrder builds a KeyOrder from an already sorted list of column indexes.
func newKeyOrder(order []int) *KeyOrder {
	rank := make([]int, len(order))
	for k, idx := range order {
		rank[idx] = k
	}
	return &KeyOrder{N: len(order), Order: order, Rank: rank}
}

// KeywordOrder derives the column order of a keyword using CodepointCollation.
// Equal letters keep their left-to-right order, so "AAB" yields [0 1 2].
// Returns ErrEmptyKeyword if keyword is "".
func KeywordOrder(keyword string) (*KeyOrder, error) {
	return KeywordOrderCollated(keyword, CodepointCollation)
}

// KeywordOrderCollated derives the column order of a keyword, comparing
// characters with coll. A nil coll falls back to CodepointCollation.
//
// Each rune of keyword is one column. Columns are ranked by coll; ties are
// broken by ascending original position.
func KeywordOrderCollated(keyword string, coll Collator) (*KeyOrder, error) {
	chars := []rune(keyword)
	if len(chars) == 0 {
		return nil, ErrEmptyKeyword
	}
	if coll == nil {
		coll = CodepointCollation
	}

	order := seq(len(chars))
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Or(coll.Compare(chars[a], chars[b]), cmp.Compare(a, b))
	})
	return newKeyOrder(order), nil
}

// NumericOrder derives the column order of a numeric key such as "3 1 4 2",
// "3,1,4,2" or "3142". A string containing a comma or whitespace is split into
// tokens; otherwise every character is a single-digit value.
//
// The values must be exactly 1..n in any arrangement. Failures are reported,
// in this order, as ErrEmptyKeySequence, ErrNonPositiveValue, ErrDuplicateValue,
// and a *RangeError matching ErrNonContiguous.
func NumericOrder(spec string) (*KeyOrder, error) {
	values, err := parseKeyValues(spec)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyKeySequence
	}

	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			return nil, ErrDuplicateValue
		}
		seen[v] = struct{}{}
	}

	n := len(values)
	maxValue := slices.Max(values)
	for want := 1; want <= n; want++ {
		if _, ok := seen[want]; !ok {
			return nil, &RangeError{N: n, Max: maxValue, Missing: want}
		}
	}
	// n distinct values covering 1..n imply maxValue == n.

	order := seq(n)
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Or(cmp.Compare(values[a], values[b]), cmp.Compare(a, b))
	})
	return newKeyOrder(order), nil
}

// parseKeyValues splits a numeric key into integers. Every token must be a
// positive integer; "2.0" is accepted as 2.
func parseKeyValues(spec string) ([]int, error) {
	var tokens []string
	if strings.ContainsFunc(spec, isKeySeparator) {
		tokens = strings.FieldsFunc(spec, isKeySeparator)
	} else {
		for _, r := range spec {
			tokens = append(tokens, string(r))
		}
	}

	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, ok := parsePositiveInt(tok)
		if !ok {
			return nil, ErrNonPositiveValue
		}
		values = append(values, v)
	}
	return values, nil
}

func isKeySeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func parsePositiveInt(tok string) (int, bool) {
	if v, err := strconv.Atoi(tok); err == nil {
		return v, v >= 1
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// IdentityOrder returns the key order used when no key is given: columns are
// read left to right. Returns ErrInvalidColumnCount if n < 1.
func IdentityOrder(n int) (*KeyOrder, error) {
	if n < 1 {
		return nil, ErrInvalidColumnCount
	}
	return &KeyOrder{N: n, Order: seq(n), Rank: seq(n)}, nil
}

// ValidateColumnCount reports ErrInvalidColumnCount unless n is within
// [MinColumns, MaxColumns].
func ValidateColumnCount(n int) error {
	if n < MinColumns || n > MaxColumns {
		return ErrInvalidColumnCount
	}
	return nil
}

// Validate checks that Order and Rank are mutually inverse permutations of [0, N).
func (k *KeyOrder) Validate() error {
	if k == nil || k.N < 1 || len(k.Order) != k.N || len(k.Rank) != k.N {
		return ErrInvalidKeyOrder
	}
	for i := 0; i < k.N; i++ {
		o, r := k.Order[i], k.Rank[i]
		if o < 0 || o >= k.N || r < 0 || r >= k.N {
			return ErrInvalidKeyOrder
		}
		if k.Rank[o] != i || k.Order[r] != i {
			return ErrInvalidKeyOrder
		}
	}
	return nil
}

// DisplayRanks returns the 1-based rank of every original column, left to right.
// For the keyword "ZEBRAS" it returns [6 3 2 4 1 5].
func (k *KeyOrder) DisplayRanks() []int {
	out := make([]int, k.N)
	for i, r := range k.Rank {
		out[i] = r + 1
	}
	return out
}

// Clone returns a deep copy of k.
func (k *KeyOrder) Clone() *KeyOrder {
	return &KeyOrder{N: k.N, Order: slices.Clone(k.Order), Rank: slices.Clone(k.Rank)}
}

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
