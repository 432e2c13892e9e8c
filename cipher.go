package transposition

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultPadding is the pad character used when none is configured.
const DefaultPadding = 'X'

// Cipher encrypts and decrypts with a fixed key and grid policy.
// It holds no mutable state and is safe for concurrent use.
type Cipher struct {
	key    *KeyOrder
	source KeySource
	config *config
}

// config holds cipher configuration options.
type config struct {
	key       KeySource
	pad       rune
	complete  bool
	autoStrip bool
	normalize Normalizer
	logger    *log.Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		pad:       DefaultPadding,
		complete:  true,
		autoStrip: true,
		normalize: NormalizePlaintext,
	}
}

// New creates a Cipher with the given options.
// A key must be provided via WithKey, WithKeyword, WithNumericKey or WithColumns.
//
// Example:
//
//	c, err := transposition.New(
//	    transposition.WithKeyword("ZEBRAS"),
//	    transposition.WithPadding('X'),
//	)
func New(opts ...Option) (*Cipher, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.key == nil {
		return nil, ErrNoKey
	}
	if cfg.complete && !isASCIILetter(cfg.pad) {
		return nil, ErrInvalidPadding
	}
	if cfg.normalize == nil {
		cfg.normalize = NormalizeNone
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	key, err := cfg.key.KeyOrder()
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("derived key order", "key", cfg.key, "order", key.Order, "ranks", key.DisplayRanks())

	return &Cipher{key: key, source: cfg.key, config: cfg}, nil
}

// Encrypt normalizes plaintext, lays it into the grid and reads the columns
// in key order.
//
// Returns ErrEmptyText if nothing is left after normalization.
func (c *Cipher) Encrypt(plaintext string) (*Encryption, error) {
	text := c.config.normalize(plaintext)
	length := len([]rune(text))
	if length == 0 {
		return nil, ErrEmptyText
	}
	if c.key.N > length {
		c.config.logger.Warn("key is longer than the text", "columns", c.key.N, "length", length)
	}

	grid, err := BuildGrid(text, c.key.N, c.config.pad, c.config.complete)
	if err != nil {
		return nil, err
	}
	ciphertext, err := Encode(grid, c.key)
	if err != nil {
		return nil, err
	}

	padCount := 0
	if c.config.complete {
		padCount = grid.Rows()*grid.Cols() - length
	}
	c.config.logger.Debug("encrypted", "length", length, "rows", grid.Rows(), "pad", padCount)

	return &Encryption{
		Plaintext:  text,
		Ciphertext: ciphertext,
		Grid:       grid,
		Key:        c.key.Clone(),
		PadCount:   padCount,
	}, nil
}

// Decrypt removes whitespace from ciphertext and reverses Encrypt.
// In complete mode with auto-strip enabled the trailing pad run is removed.
//
// Returns ErrEmptyText if ciphertext holds no characters.
func (c *Cipher) Decrypt(ciphertext string) (*Decryption, error) {
	text := NormalizeCiphertext(ciphertext)
	length := len([]rune(text))
	if length == 0 {
		return nil, ErrEmptyText
	}
	if !c.config.complete && length%c.key.N == 0 {
		c.config.logger.Warn("incomplete mode but ciphertext length is a multiple of the key length; it may have been padded",
			"columns", c.key.N, "length", length)
	}

	dec, err := Decode(text, c.key, c.config.complete, c.config.pad, c.config.autoStrip)
	if err != nil {
		return nil, err
	}
	c.config.logger.Debug("decrypted", "length", length, "rows", dec.Grid.Rows(), "stripped", dec.Stripped)

	return &Decryption{
		Ciphertext: text,
		Plaintext:  dec.Plaintext,
		Grid:       dec.Grid,
		Key:        c.key.Clone(),
		Stripped:   dec.Stripped,
	}, nil
}

// Key returns a copy of the derived column order.
func (c *Cipher) Key() *KeyOrder {
	return c.key.Clone()
}

// Source returns the key source the cipher was built from.
func (c *Cipher) Source() KeySource {
	return c.source
}

// Columns returns the grid width.
func (c *Cipher) Columns() int {
	return c.key.N
}

// Padding returns the pad character.
func (c *Cipher) Padding() rune {
	return c.config.pad
}

// Complete reports whether grids are padded to full rectangles.
func (c *Cipher) Complete() bool {
	return c.config.complete
}
