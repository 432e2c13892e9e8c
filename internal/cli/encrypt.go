package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ai8future/transposition"
)

type encryptOpts struct {
	key         keyFlags
	grid        gridFlags
	keepSpaces  bool
	keepSymbols bool
	keepCase    bool
	showGrid    bool
	showRead    bool
}

func (c *CLI) encryptCommand() *cobra.Command {
	var opts encryptOpts

	cmd := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Encrypt text",
		Long: `Encrypt text with a columnar transposition.

Text comes from the arguments or, when none are given, from stdin. By default
whitespace and symbols are removed and letters are upper-cased before the text
is written into the grid.`,
		Example: `  columnar encrypt -k ZEBRAS "We are discovered. Flee at once!"
  echo "attack at dawn" | columnar encrypt -n "3 1 4 2" --grid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEncrypt(cmd, args, &opts)
		},
	}

	opts.key.register(cmd)
	opts.grid.register(cmd)
	cmd.Flags().BoolVar(&opts.keepSpaces, "keep-spaces", false, "keep whitespace in the plaintext")
	cmd.Flags().BoolVar(&opts.keepSymbols, "keep-symbols", false, "keep punctuation and other symbols in the plaintext")
	cmd.Flags().BoolVar(&opts.keepCase, "keep-case", false, "do not upper-case the plaintext")
	cmd.Flags().BoolVar(&opts.showGrid, "grid", false, "print the grid as written")
	cmd.Flags().BoolVar(&opts.showRead, "reordered", false, "print the grid with columns in reading order")

	return cmd
}

func (c *CLI) runEncrypt(cmd *cobra.Command, args []string, opts *encryptOpts) error {
	text, err := c.readText(cmd.Context(), args)
	if err != nil {
		return err
	}

	src, err := c.source(cmd.Context(), &opts.key, true)
	if err != nil {
		return err
	}
	cipherOpts, err := c.options(cmd, src, &opts.grid)
	if err != nil {
		return err
	}
	cipherOpts = append(cipherOpts, transposition.WithNormalizer(c.plaintextNormalizer(cmd, opts)))

	ci, err := transposition.New(cipherOpts...)
	if err != nil {
		return err
	}

	c.Logger.Debug("encrypting", "key", src, "columns", ci.Columns(), "complete", ci.Complete())
	enc, err := ci.Encrypt(text)
	if err != nil {
		return err
	}

	filled := utf8.RuneCountInString(enc.Plaintext)
	if opts.showGrid {
		fmt.Fprintln(c.out, writtenView(enc.Grid, enc.Key, filled).render())
	}
	if opts.showRead {
		v, err := readView(enc.Grid, enc.Key, filled)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, v.render())
	}
	fmt.Fprintln(c.out, enc.Ciphertext)
	return nil
}

// plaintextNormalizer merges the keep-* flags over the configured defaults.
func (c *CLI) plaintextNormalizer(cmd *cobra.Command, opts *encryptOpts) transposition.Normalizer {
	cfg := *c.config
	if cmd.Flags().Changed("keep-spaces") {
		cfg.KeepSpaces = opts.keepSpaces
	}
	if cmd.Flags().Changed("keep-symbols") {
		cfg.KeepSymbols = opts.keepSymbols
	}
	if cmd.Flags().Changed("keep-case") {
		cfg.KeepCase = opts.keepCase
	}
	return cfg.Normalizer()
}
