package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ai8future/transposition"
)

func (c *CLI) orderCommand() *cobra.Command {
	var collation string

	cmd := &cobra.Command{
		Use:   "order <keyword|numbers>",
		Short: "Show the column order a key produces",
		Long: `Show the rank of every column and the order columns are read in.

An argument made only of digits and separators is read as a numeric key;
anything else is a keyword.`,
		Example: `  columnar order ZEBRAS
  columnar order "3 1 4 2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if collation == "" {
				collation = c.config.Collation
			}
			return c.runOrder(strings.Join(args, " "), collation)
		},
	}

	cmd.Flags().StringVar(&collation, "collation", "", `keyword letter ordering: "codepoint" or a BCP 47 tag such as "fr"`)

	return cmd
}

func (c *CLI) runOrder(arg, collation string) error {
	var (
		src    transposition.KeySource
		labels []string
	)
	if isNumericKey(arg) {
		src = transposition.Numeric{Spec: arg}
	} else {
		coll, err := transposition.ParseCollation(collation)
		if err != nil {
			return err
		}
		src = transposition.Keyword{Text: arg, Collator: coll}
		for _, r := range arg {
			labels = append(labels, string(r))
		}
	}

	key, err := src.KeyOrder()
	if err != nil {
		return err
	}
	c.Logger.Debug("derived key order", "key", src, "order", key.Order)

	fmt.Fprintln(c.out, renderOrder(key, labels))
	read := make([]string, key.N)
	for i, col := range key.Order {
		read[i] = strconv.Itoa(col + 1)
	}
	fmt.Fprintf(c.out, "read order: %s\n", strings.Join(read, " "))
	return nil
}

// isNumericKey reports whether s holds only digits, separators and decimal
// points, with at least one digit.
func isNumericKey(s string) bool {
	digits := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == ',' || r == '.' || unicode.IsSpace(r):
		default:
			return false
		}
	}
	return digits
}

func renderOrder(key *transposition.KeyOrder, labels []string) string {
	headers := []string{"column"}
	for i := range key.N {
		headers = append(headers, strconv.Itoa(i+1))
	}

	var rows [][]string
	if labels != nil {
		rows = append(rows, append([]string{"letter"}, labels...))
	}
	rankRow := []string{"rank"}
	for _, r := range key.DisplayRanks() {
		rankRow = append(rankRow, strconv.Itoa(r))
	}
	rows = append(rows, rankRow)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow || col == 0:
				return styleHeader.Padding(0, 1)
			case row == len(rows)-1:
				return styleRank.Padding(0, 1)
			}
			return styleCell.Padding(0, 1)
		}).
		Render()
}
