// Package columns lays out a list of strings in terminal-style
// columns. Items are filled column-major: reading down the first
// column and continuing at the top of the next reproduces the input
// order.
package columns

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Gutter is the spacing between columns, included in column widths
const Gutter = 2

// DefaultWidth is the target width used when no terminal width is known
const DefaultWidth = 80

// Layout picks a column count fitting targetWidth and computes
// per-column widths (longest item in the column plus the gutter).
// A non-positive targetWidth falls back to DefaultWidth.
func Layout(items []string, targetWidth int) (int, []int) {
	if len(items) == 0 {
		return 1, nil
	}
	if targetWidth <= 0 {
		targetWidth = DefaultWidth
	}

	maxLen := 0
	for _, item := range items {
		if len(item) > maxLen {
			maxLen = len(item)
		}
	}

	ncols := targetWidth / (maxLen + Gutter)
	if ncols < 1 {
		ncols = 1
	}
	if ncols > len(items) {
		ncols = len(items)
	}

	rows := RowCount(len(items), ncols)
	widths := make([]int, ncols)
	for c := 0; c < ncols; c++ {
		for r := 0; r < rows; r++ {
			i := c*rows + r
			if i < len(items) && len(items[i])+Gutter > widths[c] {
				widths[c] = len(items[i]) + Gutter
			}
		}
	}

	return ncols, widths
}

// RowCount returns ceil(n / ncols)
func RowCount(n, ncols int) int {
	if ncols <= 0 {
		return 0
	}
	return (n + ncols - 1) / ncols
}

// Rows yields the items as fixed-length rows of ncols cells, filled
// column-major: the item at row r, column c is items[c*rowCount+r].
// Missing trailing cells are empty strings. The sequence is lazy and
// restartable.
func Rows(items []string, ncols int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		rows := RowCount(len(items), ncols)
		for r := 0; r < rows; r++ {
			row := make([]string, ncols)
			for c := 0; c < ncols; c++ {
				if i := c*rows + r; i < len(items) {
					row[c] = items[i]
				}
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Render writes the items as left-justified columns, one row per
// line, with trailing whitespace trimmed.
func Render(w io.Writer, items []string, ncols int, widths []int) error {
	for row := range Rows(items, ncols) {
		var b strings.Builder
		for c, cell := range row {
			b.WriteString(cell)
			if c < len(row)-1 && row[c+1] != "" {
				b.WriteString(strings.Repeat(" ", widths[c]-len(cell)))
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
