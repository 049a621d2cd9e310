// internal/console/render.go
//
// Terminal rendering for scored guesses.
// Color is an output-formatting concern only: verdicts map to fixed color
// classes through VerdictColor, and painting is skipped entirely when the
// session was built without color (not a TTY, or tests).

package console

import (
	"strings"

	"gordle/internal/game"
)

// Color is an ANSI SGR color class.
type Color string

// Fixed palette. Correct/misplaced/absent follow the classic scheme; the
// prompt is cyan and rejections plain red.
const (
	ColorCorrect   Color = "\x1b[92m" // bright green
	ColorMisplaced Color = "\x1b[93m" // bright yellow
	ColorAbsent    Color = "\x1b[91m" // bright red
	ColorPrompt    Color = "\x1b[36m" // cyan
	ColorReject    Color = "\x1b[31m" // red
	colorReset     Color = "\x1b[0m"
)

// VerdictColor maps a verdict to its display color class.
func VerdictColor(v game.Verdict) Color {
	switch v {
	case game.VerdictCorrect:
		return ColorCorrect
	case game.VerdictMisplaced:
		return ColorMisplaced
	default:
		return ColorAbsent
	}
}

// paint wraps s in the given color when color output is enabled.
func (s *Session) paint(text string, c Color) string {
	if !s.color {
		return text
	}
	return string(c) + text + string(colorReset)
}

// renderScored renders one scored guess as its letters, each painted with
// its verdict's color.
func (s *Session) renderScored(sg game.ScoredGuess) string {
	var b strings.Builder
	for _, ls := range sg {
		b.WriteString(s.paint(string(ls.Letter), VerdictColor(ls.Verdict)))
	}
	return b.String()
}
