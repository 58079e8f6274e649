// Package table lays out rows of text cells as a boxed terminal table.
package table

import (
	"strings"

	"github.com/armando2002/blackjack/ansi"
)

type Alignment int

const (
	Left Alignment = iota
	Right
)

// Boxed returns the lines of rows drawn inside a square box, with a
// vertical bar between columns and one space of padding around each
// cell. There must be one alignment per column and every row must have
// that many cells. Widths are screen columns, so colored cells line up.
func Boxed(alignment []Alignment, rows [][]string) []string {
	widths := make([]int, len(alignment))
	for _, row := range rows {
		if len(row) != len(alignment) {
			panic("inconsistent number of columns in table")
		}
		for j, cell := range row {
			widths[j] = max(widths[j], ansi.ScreenWidth(cell))
		}
	}
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, border(widths, ansi.SquareTopLeft, ansi.TopT, ansi.SquareTopRight))
	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		sb.WriteString(ansi.Vertical)
		for j, cell := range row {
			pad := strings.Repeat(" ", widths[j]-ansi.ScreenWidth(cell))
			sb.WriteByte(' ')
			if alignment[j] == Right {
				sb.WriteString(pad)
				sb.WriteString(cell)
			} else {
				sb.WriteString(cell)
				sb.WriteString(pad)
			}
			sb.WriteByte(' ')
			sb.WriteString(ansi.Vertical)
		}
		lines = append(lines, sb.String())
	}
	return append(lines, border(widths, ansi.SquareBottomLeft, ansi.BottomT, ansi.SquareBottomRight))
}

func border(widths []int, left, middle, right string) string {
	parts := make([]string, len(widths))
	for j, w := range widths {
		parts[j] = strings.Repeat(ansi.Horizontal, w+2)
	}
	return left + strings.Join(parts, middle) + right
}
