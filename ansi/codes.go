// Package ansi has the escape codes, box characters and width helpers
// used to draw the game on an ansi/v100 style terminal.
package ansi

// Ansi codes.
const (
	Bold  = "\x1b[1m"
	Red   = "\033[31m"
	Reset = "\033[0m"
)

// Color wraps s in the given code when enabled is true.
func Color(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return code + s + Reset
}
