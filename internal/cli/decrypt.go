package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ai8future/transposition"
)

type decryptOpts struct {
	key      keyFlags
	grid     gridFlags
	noStrip  bool
	showGrid bool
}

func (c *CLI) decryptCommand() *cobra.Command {
	var opts decryptOpts

	cmd := &cobra.Command{
		Use:   "decrypt [text]",
		Short: "Decrypt ciphertext",
		Long: `Decrypt ciphertext produced with the same key and grid mode.

Whitespace in the ciphertext is ignored, so grouped output decodes as one run.
In complete mode trailing padding characters are removed unless --no-strip is
set; a plaintext that really ended in the padding character loses those
characters too.`,
		Example: `  columnar decrypt -k ZEBRAS EVLNXACDTXESEAXROFOXDEECXWIREE
  columnar decrypt -k ZEBRAS --incomplete --grid EVLNACDTESEAROFODEECWIREE`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDecrypt(cmd, args, &opts)
		},
	}

	opts.key.register(cmd)
	opts.grid.register(cmd)
	cmd.Flags().BoolVar(&opts.noStrip, "no-strip", false, "keep trailing padding characters")
	cmd.Flags().BoolVar(&opts.showGrid, "grid", false, "print the recovered grid")

	return cmd
}

func (c *CLI) runDecrypt(cmd *cobra.Command, args []string, opts *decryptOpts) error {
	text, err := c.readText(cmd.Context(), args)
	if err != nil {
		return err
	}

	src, err := c.source(cmd.Context(), &opts.key, false)
	if err != nil {
		return err
	}
	cipherOpts, err := c.options(cmd, src, &opts.grid)
	if err != nil {
		return err
	}

	autoStrip := c.config.AutoStrip
	if cmd.Flags().Changed("no-strip") {
		autoStrip = !opts.noStrip
	}
	if !autoStrip {
		cipherOpts = append(cipherOpts, transposition.WithoutAutoStrip())
	}

	ci, err := transposition.New(cipherOpts...)
	if err != nil {
		return err
	}

	c.Logger.Debug("decrypting", "key", src, "columns", ci.Columns(), "complete", ci.Complete())
	dec, err := ci.Decrypt(text)
	if err != nil {
		return err
	}

	if opts.showGrid {
		filled := textCells(dec, ci.Complete(), ci.Padding())
		fmt.Fprintln(c.out, writtenView(dec.Grid, dec.Key, filled).render())
	}
	fmt.Fprintln(c.out, dec.Plaintext)
	return nil
}

// textCells returns how many leading cells of a decrypted grid hold text.
// In complete mode the trailing run of pad counts as padding whether or not
// it was stripped from the plaintext.
func textCells(dec *transposition.Decryption, complete bool, pad rune) int {
	if !complete {
		return utf8.RuneCountInString(dec.Plaintext)
	}
	return utf8.RuneCountInString(strings.TrimRight(dec.Padded(), string(pad)))
}
