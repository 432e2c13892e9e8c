package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ai8future/transposition"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - key ranks
	colorYellow = lipgloss.Color("220") // Amber - padding
	colorGray   = lipgloss.Color("245") // Gray - headers
	colorDim    = lipgloss.Color("240") // Dim gray - borders and empty cells
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleRank   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	stylePad    = lipgloss.NewStyle().Foreground(colorYellow)
	styleEmpty  = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel  = lipgloss.NewStyle().Foreground(colorDim)
	styleCell   = lipgloss.NewStyle()
)

// emptyMark is drawn for cells an incomplete grid leaves unfilled.
const emptyMark = "·"

// gridView describes one drawing of a grid. source maps each drawn column to
// its column in the written grid, which decides which cells are padding.
type gridView struct {
	grid   *transposition.Grid
	header []string
	ranks  []int
	source []int
	filled int
}

// writtenView draws the grid as written: columns in text order, with the
// key rank of each column above it. filled is the number of text symbols;
// any later non-empty cell is padding.
func writtenView(g *transposition.Grid, key *transposition.KeyOrder, filled int) gridView {
	v := gridView{grid: g, ranks: key.DisplayRanks(), filled: filled}
	for c := range g.Cols() {
		v.header = append(v.header, strconv.Itoa(c+1))
		v.source = append(v.source, c)
	}
	return v
}

// readView draws the grid with columns in reading order, labelled with their
// written column numbers.
func readView(g *transposition.Grid, key *transposition.KeyOrder, filled int) (gridView, error) {
	reordered, err := g.Reordered(key)
	if err != nil {
		return gridView{}, err
	}
	v := gridView{grid: reordered, source: key.Order, filled: filled}
	for i, c := range key.Order {
		v.header = append(v.header, strconv.Itoa(c+1))
		v.ranks = append(v.ranks, i+1)
	}
	return v, nil
}

func (v gridView) isPad(r, c int) bool {
	return r*v.grid.Cols()+v.source[c] >= v.filled
}

// render draws the view as a bordered table. The first body row holds the
// key ranks and every following row is one grid row.
func (v gridView) render() string {
	g := v.grid
	rows := make([][]string, 0, g.Rows()+1)

	rankRow := []string{"key"}
	for _, r := range v.ranks {
		rankRow = append(rankRow, strconv.Itoa(r))
	}
	rows = append(rows, rankRow)

	for r := range g.Rows() {
		row := []string{strconv.Itoa(r + 1)}
		for c := range g.Cols() {
			ch, _ := g.At(r, c)
			if ch == transposition.Empty {
				row = append(row, emptyMark)
				continue
			}
			row = append(row, string(ch))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(append([]string{""}, v.header...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return styleLabel.Padding(0, 1)
			case row == 0:
				return styleRank.Padding(0, 1)
			}
			r, c := row-1, col-1
			ch, _ := g.At(r, c)
			switch {
			case ch == transposition.Empty:
				return styleEmpty.Padding(0, 1)
			case v.isPad(r, c):
				return stylePad.Padding(0, 1)
			}
			return styleCell.Padding(0, 1)
		})

	return t.Render()
}
