package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ai8future/transposition"
)

// keyFlags holds the key selection flags shared by encrypt and decrypt.
type keyFlags struct {
	keyword   string
	numeric   string
	columns   int
	prompt    bool
	collation string
}

func (f *keyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.keyword, "keyword", "k", "", "keyword whose letter order sets the column order")
	cmd.Flags().StringVarP(&f.numeric, "numeric", "n", "", `numeric key such as "3 1 4 2" or "3142"`)
	cmd.Flags().IntVarP(&f.columns, "columns", "c", 0, "plain column count, read left to right")
	cmd.Flags().BoolVar(&f.prompt, "prompt", false, "read the keyword from the terminal without echo")
	cmd.Flags().StringVar(&f.collation, "collation", "", `keyword letter ordering: "codepoint" or a BCP 47 tag such as "fr"`)
	cmd.MarkFlagsMutuallyExclusive("keyword", "numeric", "columns", "prompt")
}

// source resolves the flags into a key source. A configured column count is
// the fallback when no key flag is set.
func (c *CLI) source(ctx context.Context, f *keyFlags, confirm bool) (transposition.KeySource, error) {
	collation := f.collation
	if collation == "" {
		collation = c.config.Collation
	}

	keyword := f.keyword
	if f.prompt {
		kw, err := c.promptKeyword(ctx, confirm)
		if err != nil {
			return nil, err
		}
		keyword = kw
	}

	switch {
	case keyword != "":
		coll, err := transposition.ParseCollation(collation)
		if err != nil {
			return nil, err
		}
		return transposition.Keyword{Text: keyword, Collator: coll}, nil
	case f.numeric != "":
		return transposition.Numeric{Spec: f.numeric}, nil
	case f.columns != 0:
		return transposition.Columns{N: f.columns}, nil
	case c.config.Columns != 0:
		return transposition.Columns{N: c.config.Columns}, nil
	}
	return nil, fmt.Errorf("%w: use --keyword, --numeric, --columns or --prompt", transposition.ErrNoKey)
}

func (c *CLI) promptKeyword(ctx context.Context, confirm bool) (string, error) {
	ask := func(prompt string) (string, error) {
		return interruptible(ctx, func() (string, error) {
			return c.readSecret(ctx, prompt)
		})
	}

	kw, err := ask("Enter keyword: ")
	if err != nil {
		return "", err
	}
	if !confirm {
		return kw, nil
	}
	again, err := ask("Re-enter keyword: ")
	if err != nil {
		return "", err
	}
	if kw != again {
		return "", errors.New("keywords do not match")
	}
	return kw, nil
}

// gridFlags holds the padding and grid mode flags.
type gridFlags struct {
	pad        string
	incomplete bool
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pad, "pad", "", "padding character for complete grids (default from config, else X)")
	cmd.Flags().BoolVar(&f.incomplete, "incomplete", false, "leave the last row short instead of padding it")
}

// options builds the cipher options shared by both directions.
func (c *CLI) options(cmd *cobra.Command, src transposition.KeySource, f *gridFlags) ([]transposition.Option, error) {
	padText := c.config.Pad
	if cmd.Flags().Changed("pad") {
		padText = f.pad
	}
	pad, err := parsePad(padText)
	if err != nil {
		return nil, err
	}

	complete := c.config.Complete
	if cmd.Flags().Changed("incomplete") {
		complete = !f.incomplete
	}

	opts := []transposition.Option{
		transposition.WithKey(src),
		transposition.WithPadding(pad),
		transposition.WithLogger(c.Logger),
	}
	if !complete {
		opts = append(opts, transposition.WithIncomplete())
	}
	return opts, nil
}
