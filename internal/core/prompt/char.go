package prompt

import "github.com/aki/pista/internal/cli/ui"

// Char is the prompt character and the color it is shown in
type Char struct {
	Text  string
	Color ui.Color
}

// SelectChar picks the root character in the alert color for euid 0 and
// the normal character in the normal color for everyone else.
func SelectChar(euid int, normal, root string) Char {
	if euid == 0 {
		return Char{Text: root, Color: ui.AlertColor}
	}
	return Char{Text: normal, Color: ui.NormalColor}
}
