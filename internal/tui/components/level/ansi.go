package level

import (
	"strings"
	"unicode"
)

const ansiEscape rune = '\x1b'

// overlay writes the visible span of each foreground line over the
// background, keeping background cells on either side.
func overlay(background, foreground string) string {
	var (
		bgLines = strings.Split(background, "\n")
		fgLines = strings.Split(foreground, "\n")
		result  = make([]string, max(len(bgLines), len(fgLines)))
	)

	for i := range result {
		var bg, fg string
		if i < len(bgLines) {
			bg = bgLines[i]
		}
		if i < len(fgLines) {
			fg = fgLines[i]
		}

		start, end := -1, -1
		for idx, r := range []rune(stripAnsi(fg)) {
			if r != ' ' {
				if start == -1 {
					start = idx
				}
				end = idx + 1
			}
		}
		if start == -1 {
			result[i] = bg
			continue
		}

		bgWidth := len([]rune(stripAnsi(bg)))

		var sb strings.Builder
		sb.WriteString(segment(bg, 0, min(start, bgWidth)))
		for range start - bgWidth {
			sb.WriteRune(' ')
		}
		sb.WriteString(segment(fg, start, end))
		if end < bgWidth {
			sb.WriteString(segment(bg, end, bgWidth))
		}
		result[i] = sb.String()
	}

	return strings.Join(result, "\n")
}

// segment returns visible cells [start, end) of s along with the escape
// sequences that directly precede each of them.
func segment(s string, start, end int) string {
	var (
		out      strings.Builder
		pending  strings.Builder
		visible  int
		inEscape bool
	)

	for _, r := range s {
		if r == ansiEscape {
			inEscape = true
			pending.WriteRune(r)
			continue
		}
		if inEscape {
			pending.WriteRune(r)
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}

		if visible >= start && visible < end {
			out.WriteString(pending.String())
			out.WriteRune(r)
		}
		pending.Reset()
		visible++
	}

	return out.String()
}

func stripAnsi(s string) string {
	var (
		out      strings.Builder
		inEscape bool
	)

	for _, r := range s {
		if r == ansiEscape {
			inEscape = true
			continue
		}
		if inEscape {
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
