package analytics

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align is the horizontal alignment of a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column.
type Column struct {
	Title string
	Align Align
}

// Left returns a left-aligned column.
func Left(title string) Column {
	return Column{Title: title}
}

// Right returns a right-aligned column, used for numbers.
func Right(title string) Column {
	return Column{Title: title, Align: AlignRight}
}

// FormatTable lays rows out under cols, header line first. Widths are measured in
// terminal cells, cells past the last column are dropped, trailing blanks are trimmed.
func FormatTable(cols []Column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	header := make([]string, len(cols))
	widths := make([]int, len(cols))
	for i, c := range cols {
		header[i] = c.Title
		widths[i] = runewidth.StringWidth(c.Title)
	}
	for _, row := range rows {
		for i := range cols {
			widths[i] = max(widths[i], runewidth.StringWidth(cellAt(row, i)))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, joinCells(cols, widths, header))
	for _, row := range rows {
		lines = append(lines, joinCells(cols, widths, row))
	}
	return lines
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func joinCells(cols []Column, widths []int, row []string) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		if c.Align == AlignRight {
			cells[i] = runewidth.FillLeft(cellAt(row, i), widths[i])
		} else {
			cells[i] = runewidth.FillRight(cellAt(row, i), widths[i])
		}
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}
