package display

import "strings"

// DigitHeight is the row count of a big glyph
const DigitHeight = 5

// bigDigits is a 3x5 block font for the countdown
var bigDigits = [10][DigitHeight]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

// BigText renders a numeric string as DigitHeight rows
// Non-digit runes render as blanks
func BigText(s string) []string {
	rows := make([]string, DigitHeight)
	for i, r := range s {
		for row := 0; row < DigitHeight; row++ {
			if i > 0 {
				rows[row] += " "
			}
			if r >= '0' && r <= '9' {
				rows[row] += bigDigits[r-'0'][row]
			} else {
				rows[row] += "   "
			}
		}
	}
	return rows
}

// BigWidth returns the column width of BigText(s)
func BigWidth(s string) int {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return n*3 + n - 1
}

// Center pads s to width, left-biased
func Center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
