package tui

import "strings"

// centerPad returns the left padding that centers text of length l in
// a span of width w:
//
//	w/2 - l/2 - l%2
//
// This is the legacy centering rule, not (w-l)/2: odd-length strings
// land one column left of true center. Kept for display parity.
// Negative results (very narrow terminals) clamp to 0.
func centerPad(w, l int) int {
	pad := w/2 - l/2 - l%2
	if pad < 0 {
		pad = 0
	}
	return pad
}

// columnPad centers text of length l within the left or right half of
// the terminal. Both halves center against w/4; the right column is
// shifted by w/2.
func columnPad(w, l int, right bool) int {
	pad := w/4 - l/2 - l%2
	if right {
		pad += w / 2
	}
	if pad < 0 {
		pad = 0
	}
	return pad
}

// span places text at a column within a row
type span struct {
	x    int
	text string
}

// overlay composes spans onto a blank row, clipping anything outside
// [0, width). Trailing spaces are trimmed.
func overlay(width int, spans ...span) string {
	if width <= 0 {
		return ""
	}

	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}

	for _, s := range spans {
		for i, r := range []rune(s.text) {
			pos := s.x + i
			if pos < 0 || pos >= width {
				continue
			}
			row[pos] = r
		}
	}

	return strings.TrimRight(string(row), " ")
}

// centered places text at the legacy center of a full-width row
func centered(width int, text string) string {
	return overlay(width, span{x: centerPad(width, len(text)), text: text})
}
