package tui

import "strings"

// clockGlyphs maps the characters of a clock string (digits and colon)
// to a 5-line block rendering, 3 cells wide per digit.
var clockGlyphs = map[rune][5]string{
	'0': {"▄▀▀▄", "█  █", "█  █", "█  █", " ▀▀ "},
	'1': {"  █ ", " ▀█ ", "  █ ", "  █ ", " ▀▀▀"},
	'2': {"▄▀▀▄", "   █", " ▄▀ ", "▄▀  ", "▀▀▀▀"},
	'3': {"▄▀▀▄", "   █", " ▀▀▄", "   █", "▀▄▄▀"},
	'4': {"█  █", "█  █", "▀▀▀█", "   █", "   █"},
	'5': {"█▀▀▀", "█   ", "▀▀▀▄", "   █", "▀▄▄▀"},
	'6': {"▄▀▀ ", "█   ", "█▀▀▄", "█  █", " ▀▀ "},
	'7': {"▀▀▀█", "   █", "  █ ", " █  ", " █  "},
	'8': {"▄▀▀▄", "█  █", "▄▀▀▄", "█  █", " ▀▀ "},
	'9': {"▄▀▀▄", "█  █", " ▀▀█", "   █", " ▄▄▀"},
	':': {" ", "▀", " ", "▀", " "},
}

// renderBigClock renders a clock string like "24:59" using block glyphs.
func renderBigClock(clock string) string {
	var lines [5]strings.Builder
	for i, r := range clock {
		glyph, ok := clockGlyphs[r]
		if !ok {
			continue
		}
		for row := 0; row < 5; row++ {
			if i > 0 {
				lines[row].WriteString(" ")
			}
			lines[row].WriteString(glyph[row])
		}
	}
	out := make([]string, 5)
	for row := 0; row < 5; row++ {
		out[row] = lines[row].String()
	}
	return strings.Join(out, "\n")
}
