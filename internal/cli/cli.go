// Package cli implements the columnar command-line interface.
//
// The CLI wraps the transposition engine with cobra commands:
//   - encrypt: normalize text and encrypt it with a keyword, numeric key or column count
//   - decrypt: decrypt ciphertext with the same key settings
//   - order: show the column order a key produces
//
// Defaults for padding, grid mode and normalization can be kept in a TOML
// file passed with --config. Logging uses charmbracelet/log; --verbose
// switches to debug level.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used for directories and display.
const appName = "columnar"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in         io.Reader
	out        io.Writer
	readSecret func(ctx context.Context, prompt string) (string, error)
	configPath string
	config     *Config
}

// New creates a CLI reading input from in and writing results to out.
// Log output goes to logw.
func New(in io.Reader, out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:     newLogger(logw, level),
		in:         in,
		out:        out,
		readSecret: readTerminalSecret,
		config:     DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Columnar transposition cipher",
		Long:         `columnar encrypts and decrypts text with the classical columnar transposition cipher, keyed by a keyword, a numeric permutation or a plain column count.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML defaults file (default "+defaultConfigHint()+")")

	root.AddCommand(c.encryptCommand())
	root.AddCommand(c.decryptCommand())
	root.AddCommand(c.orderCommand())

	return root
}

// readText returns the command arguments joined by spaces, or all of stdin
// when there are none. Cancelling ctx abandons a blocked read.
func (c *CLI) readText(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := interruptible(ctx, func() ([]byte, error) {
		return io.ReadAll(c.in)
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// interruptible runs fn in its own goroutine and returns ctx.Err() as soon as
// ctx is done. The goroutine is left to finish on its own; blocking reads on
// stdin or a terminal cannot be cancelled any other way.
func interruptible[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
