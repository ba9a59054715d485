// Package styles provides the plain and dimmed text renderings used by the tree output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styler renders entry text either plainly or visually de-emphasized.
type Styler interface {
	Plain(text string) string
	Dimmed(text string) string
}

// TerminalStyler dims text with a lipgloss faint style.
type TerminalStyler struct {
	dimmedStyle lipgloss.Style
}

// NewTerminalStyler constructs a TerminalStyler.
func NewTerminalStyler() TerminalStyler {
	return TerminalStyler{dimmedStyle: lipgloss.NewStyle().Faint(true)}
}

// Plain returns the text unchanged.
func (TerminalStyler) Plain(text string) string {
	return text
}

// Dimmed returns the text rendered in the faint style.
func (styler TerminalStyler) Dimmed(text string) string {
	return styler.dimmedStyle.Render(text)
}

var _ Styler = TerminalStyler{}
