package transposition

import "github.com/charmbracelet/log"

// Option is a functional option for configuring a Cipher.
type Option func(*config)

// WithKey sets the key source. The last key option wins.
func WithKey(src KeySource) Option {
	return func(c *config) {
		c.key = src
	}
}

// WithKeyword keys the cipher with an alphabetic keyword, ordered by codepoint.
func WithKeyword(keyword string) Option {
	return WithKey(Keyword{Text: keyword})
}

// WithNumericKey keys the cipher with a numeric permutation such as "3 1 4 2".
func WithNumericKey(spec string) Option {
	return WithKey(Numeric{Spec: spec})
}

// WithColumns runs the cipher without a key: n columns read left to right.
// n must be within [MinColumns, MaxColumns].
func WithColumns(n int) Option {
	return WithKey(Columns{N: n})
}

// WithPadding sets the character that fills the last row in complete mode.
// Default is 'X'. Must be a single ASCII letter.
func WithPadding(pad rune) Option {
	return func(c *config) {
		c.pad = pad
	}
}

// WithIncomplete disables padding: the last grid row is left short.
// By default the grid is completed with the pad character.
func WithIncomplete() Option {
	return func(c *config) {
		c.complete = false
	}
}

// WithoutAutoStrip keeps trailing pad characters in decrypted text.
// By default a complete-mode decryption removes them.
func WithoutAutoStrip() Option {
	return func(c *config) {
		c.autoStrip = false
	}
}

// WithNormalizer sets the plaintext normalizer applied by Encrypt.
// Default is NormalizePlaintext.
func WithNormalizer(norm Normalizer) Option {
	return func(c *config) {
		c.normalize = norm
	}
}

// WithLogger routes diagnostics to logger. By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
