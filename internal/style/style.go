// Package style renders tripid labels for terminals.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var labelColor = lipgloss.Color("#7C3AED") // Purple

// Labeler styles labels written to a single output.
// A nil *Labeler renders labels unchanged.
type Labeler struct {
	style   lipgloss.Style
	enabled bool
}

// New returns a Labeler bound to w. Styling is applied only when color is
// requested and w is a terminal that supports colour.
func New(w io.Writer, color bool) *Labeler {
	r := lipgloss.NewRenderer(w)
	return &Labeler{
		style:   r.NewStyle().Bold(true).Foreground(labelColor),
		enabled: color && r.ColorProfile() != termenv.Ascii,
	}
}

// Enabled reports whether labels will carry escape sequences.
func (l *Labeler) Enabled() bool {
	return l != nil && l.enabled
}

// Label returns s styled for the bound output.
func (l *Labeler) Label(s string) string {
	if !l.Enabled() {
		return s
	}
	return l.style.Render(s)
}
