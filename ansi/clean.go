package ansi

import (
	"strings"

	"github.com/rivo/uniseg"
)

const esc = 0x1b

// AnsiClean returns the input with all ansi escape sequences removed.
// Unterminated sequences at the end are dropped too. The input is
// not modified, a new slice is only allocated if something is removed.
func AnsiClean(str []byte) []byte {
	first := -1
	for i, c := range str {
		if c == esc {
			first = i
			break
		}
	}
	if first == -1 {
		return str
	}
	res := make([]byte, first, len(str))
	copy(res, str[:first])
	for i := first; i < len(str); i++ {
		c := str[i]
		if c != esc {
			res = append(res, c)
			continue
		}
		i++
		if i >= len(str) {
			break
		}
		if str[i] != '[' {
			// 2 bytes sequence like ESC 7, skip its second byte.
			continue
		}
		// CSI: parameter and intermediate bytes until a final byte in @..~
		for i++; i < len(str); i++ {
			if str[i] >= '@' && str[i] <= '~' {
				break
			}
		}
	}
	return res
}

// CleanString is AnsiClean for strings.
func CleanString(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return string(AnsiClean([]byte(s)))
}

// ScreenWidth is the number of terminal columns s occupies once escape
// sequences are removed (wide runes like emojis count as 2).
func ScreenWidth(s string) int {
	return uniseg.StringWidth(CleanString(s))
}

// PadRight pads s with spaces up to width screen columns.
func PadRight(s string, width int) string {
	delta := width - ScreenWidth(s)
	if delta <= 0 {
		return s
	}
	return s + strings.Repeat(" ", delta)
}
