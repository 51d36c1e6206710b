package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text renders text at position, truncates at region edge
// Returns the number of columns advanced
func (r Region) Text(x, y int, s string, st Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	for _, ch := range s {
		if x+col >= r.W {
			break
		}
		if x+col < 0 {
			col += runewidth.RuneWidth(ch)
			continue
		}
		col += r.Put(x+col, y, ch, st)
	}
	return col
}

// Width returns display width in cells (wide runes count twice)
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxW cells
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if Width(s) <= maxW {
		return s
	}
	return runewidth.Truncate(s, maxW, "…")
}

// WrapText wraps text at word boundaries to fit width
// Newlines force a break. Each returned line is at most width cells
// unless a single rune is wider than width
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine([]rune(para), width)...)
	}
	return lines
}

func wrapLine(runes []rune, width int) []string {
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	lineStart := 0
	lineW := 0
	lastSpace := -1

	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		rw := runewidth.RuneWidth(ch)

		if lineW+rw > width && i > lineStart {
			wrapAt := i
			if ch != ' ' && lastSpace > lineStart {
				// Wrap at last space
				wrapAt = lastSpace
			}
			lines = append(lines, string(runes[lineStart:wrapAt]))

			// Skip space at wrap point
			lineStart = wrapAt
			if runes[lineStart] == ' ' {
				lineStart++
			}
			lastSpace = -1
			if lineStart > i {
				lineW = 0
				continue
			}
			lineW = runewidth.StringWidth(string(runes[lineStart:i]))
		}

		if ch == ' ' {
			lastSpace = i
		}
		lineW += rw
	}

	if lineStart < len(runes) || len(lines) == 0 {
		lines = append(lines, string(runes[lineStart:]))
	}
	return lines
}
