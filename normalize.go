package transposition

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer transforms raw input into the form the engine operates on.
//
// IMPORTANT: Encrypt and decrypt sides must agree on normalization, or the
// recovered text will not match what was written.
type Normalizer func(string) string

// NormalizeNone is an identity normalizer that returns the input unchanged.
var NormalizeNone Normalizer = func(s string) string {
	return s
}

// StripSpace removes every whitespace character.
//
// Example: "WE ARE\tDISCOVERED" -> "WEAREDISCOVERED"
var StripSpace Normalizer = func(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// StripSymbols keeps only ASCII letters, digits and underscore.
//
// Example: "Who killed Cock Robin?" -> "WhokilledCockRobin"
var StripSymbols Normalizer = func(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		if isWordChar(r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// Uppercase converts letters to upper case using language-neutral rules.
var Uppercase Normalizer = func(s string) string {
	// A Caser holds state and must not be shared between goroutines.
	return cases.Upper(language.Und).String(s)
}

// Chain returns a Normalizer applying each of norms in order.
func Chain(norms ...Normalizer) Normalizer {
	return func(s string) string {
		for _, n := range norms {
			s = n(s)
		}
		return s
	}
}

// NormalizePlaintext is the default plaintext normalizer: strip whitespace,
// strip symbols, then upper-case.
//
// Example: "We are discovered!" -> "WEAREDISCOVERED"
var NormalizePlaintext = Chain(StripSpace, StripSymbols, Uppercase)

// NormalizeCiphertext strips whitespace only, so grouped ciphertext such as
// "EVLNX ACDTX" decodes as one run.
var NormalizeCiphertext = StripSpace

func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '_'
}

// isASCIILetter reports whether r is in [A-Za-z].
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
