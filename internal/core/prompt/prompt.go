// Package prompt assembles the rendered prompt from its segments.
package prompt

import (
	"fmt"
	"io"

	"github.com/aki/pista/internal/cli/ui"
	"github.com/aki/pista/internal/core/config"
	"github.com/aki/pista/internal/core/cwd"
	"github.com/aki/pista/internal/core/git"
)

// Prompt holds the painted segments of one prompt
type Prompt struct {
	Dir    string
	Ref    string
	Status string
	Char   string
}

// Assemble paints every segment. A nil summary leaves Ref and Status empty.
func Assemble(cfg *config.Config, summary *git.Summary, p *ui.Painter) Prompt {
	dir := cwd.Present(cfg.Dir, cfg.Home, cfg.Cwd.Options())
	char := SelectChar(cfg.EUID, cfg.Prompt.Char, cfg.Prompt.RootChar)

	pr := Prompt{
		Dir:  p.Paint(dir, cfg.Cwd.Color),
		Char: p.Paint(char.Text, char.Color),
	}
	if summary != nil {
		glyph := cfg.Git.Glyph(summary.Indicator)
		pr.Ref = p.Paint(summary.Ref.Name, ui.ReferenceColor)
		pr.Status = p.Dim(glyph.Char, glyph.Color)
	}
	return pr
}

// WriteTo writes the directory line, a newline, and the prompt character
// followed by a space. There is no trailing newline.
func (pr Prompt) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%s %s %s\n%s ", pr.Dir, pr.Ref, pr.Status, pr.Char)
	return int64(n), err
}

// Render assembles the prompt and writes it to w
func Render(w io.Writer, cfg *config.Config, summary *git.Summary, p *ui.Painter) error {
	if _, err := Assemble(cfg, summary, p).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}
