// internal/game/render.go
//
// Colored glyph rendering for hint rows. The colors are advisory; the
// packed hint itself carries no terminal state.

package game

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleCorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleNear    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleMiss    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// renderComparison colors a comparison glyph: green for an exact match,
// yellow for near, red otherwise.
func renderComparison(c Comparison) string {
	switch c {
	case Correct:
		return styleCorrect.Render(c.Glyph())
	case Near:
		return styleNear.Render(c.Glyph())
	}
	return styleMiss.Render(c.Glyph())
}

func renderBool(v bool) string {
	if v {
		return styleCorrect.Render(" 1")
	}
	return styleMiss.Render(" 0")
}

// Render returns the colored glyph form of the hint row as shown between
// guesses.
func (h Hint) Render() string {
	var b strings.Builder
	if code, ok := h.Code(); ok {
		b.WriteString(renderComparison(code))
	} else {
		b.WriteString(styleMiss.Render(" x"))
	}
	b.WriteByte(' ')
	b.WriteString(renderBool(h.Alignment()))
	b.WriteByte(' ')
	b.WriteString(renderBool(h.Tendency()))
	b.WriteByte(' ')
	b.WriteString(renderComparison(h.Height()))
	b.WriteByte(' ')
	b.WriteString(renderBool(h.Birthplace()))
	return b.String()
}

// renderWinRow is the all-correct row printed when the target is guessed.
func renderWinRow() string {
	return styleCorrect.Render(" =  1  1  =  1")
}
