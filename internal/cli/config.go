package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/ai8future/transposition"
)

// Config holds the defaults a TOML file may set. Command-line flags always
// win over file values.
//
//	pad          = "X"
//	complete     = true
//	auto_strip   = true
//	columns      = 0
//	collation    = "codepoint"
//	keep_spaces  = false
//	keep_symbols = false
//	keep_case    = false
type Config struct {
	Pad         string `toml:"pad"`
	Complete    bool   `toml:"complete"`
	AutoStrip   bool   `toml:"auto_strip"`
	Columns     int    `toml:"columns"`
	Collation   string `toml:"collation"`
	KeepSpaces  bool   `toml:"keep_spaces"`
	KeepSymbols bool   `toml:"keep_symbols"`
	KeepCase    bool   `toml:"keep_case"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Pad:       string(transposition.DefaultPadding),
		Complete:  true,
		AutoStrip: true,
		Collation: "codepoint",
	}
}

// LoadConfig reads the TOML file at path over the defaults. An empty path
// falls back to the user config file, which may be absent.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that can be checked without a key.
func (c *Config) Validate() error {
	if _, err := parsePad(c.Pad); err != nil {
		return err
	}
	if c.Columns != 0 {
		if err := transposition.ValidateColumnCount(c.Columns); err != nil {
			return err
		}
	}
	if _, err := transposition.ParseCollation(c.Collation); err != nil {
		return err
	}
	return nil
}

// Normalizer returns the plaintext normalizer selected by the keep_* settings.
func (c *Config) Normalizer() transposition.Normalizer {
	var steps []transposition.Normalizer
	if !c.KeepSpaces {
		steps = append(steps, transposition.StripSpace)
	}
	if !c.KeepSymbols {
		steps = append(steps, transposition.StripSymbols)
	}
	if !c.KeepCase {
		steps = append(steps, transposition.Uppercase)
	}
	return transposition.Chain(steps...)
}

func parsePad(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", transposition.ErrInvalidPadding, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.toml")
}

func defaultConfigHint() string {
	if p := defaultConfigPath(); p != "" {
		return p
	}
	return "none"
}
