package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

// NewTable creates a table that writes to w, with the first column in bold
func NewTable(w io.Writer, p *Painter, headers ...interface{}) table.Table {
	tbl := table.New(headers...).WithWriter(w)

	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return p.Bold(fmt.Sprintf(format, vals...))
	})

	tbl.WithPadding(2)

	// Column widths must ignore escape sequences
	tbl.WithWidthFunc(lipgloss.Width)

	return tbl
}
