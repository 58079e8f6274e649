package ansi

import (
	"strings"
)

// BoxLines returns the (multi line) text surrounded by a round box, one
// space of margin on each side. Lines are left aligned.
func BoxLines(text string) []string {
	lines := strings.Split(text, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, ScreenWidth(l))
	}
	res := make([]string, 0, len(lines)+2)
	bar := strings.Repeat(Horizontal, width+2)
	res = append(res, RoundTopLeft+bar+RoundTopRight)
	for _, l := range lines {
		res = append(res, Vertical+" "+PadRight(l, width)+" "+Vertical)
	}
	res = append(res, RoundBottomLeft+bar+RoundBottomRight)
	return res
}
