package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Painter applies colors to text.
//
// A prompt is usually captured by the shell through a pipe, so the color
// profile is set explicitly instead of being detected from the writer.
type Painter struct {
	renderer *lipgloss.Renderer
}

// NewPainter creates a Painter for output written to w. When color is false
// every string is returned unstyled.
func NewPainter(w io.Writer, color bool) *Painter {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Painter{renderer: r}
}

// Plain returns a Painter that never emits escape sequences.
func Plain() *Painter {
	return NewPainter(io.Discard, false)
}

// Paint renders s in color c.
func (p *Painter) Paint(s string, c Color) string {
	return p.render(s, p.style().Foreground(c.ansi()))
}

// Dim renders s in color c with the faint attribute on top.
func (p *Painter) Dim(s string, c Color) string {
	return p.render(s, p.style().Foreground(c.ansi()).Faint(true))
}

// Bold renders s in bold without changing its color.
func (p *Painter) Bold(s string) string {
	return p.render(s, p.style().Bold(true))
}

// style keeps tabs as they are
func (p *Painter) style() lipgloss.Style {
	return p.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// render styles each line on its own so lines are not padded to a common width.
func (p *Painter) render(s string, st lipgloss.Style) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
