// Package ui provides styling for prompt segments.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is one of the sixteen ANSI terminal colors.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

// Fixed colors used for prompt pieces that are not configurable.
const (
	AlertColor     = Red
	NormalColor    = Green
	ReferenceColor = BrightBlack
)

// UnknownColorError is returned when a color name is not one of the supported names.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color %q", e.Name)
}

// ParseColor converts a color name to a Color. Names are case-insensitive,
// "purple" is an alias for magenta, and bright variants may be written as
// "bright_red", "bright red" or "brightred".
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "purple", "magenta")
	if rest, ok := strings.CutPrefix(key, "bright"); ok {
		key = "bright_" + strings.TrimLeft(rest, " _")
	}
	for i, n := range colorNames {
		if n == key {
			return Color(i), nil
		}
	}
	return 0, &UnknownColorError{Name: name}
}

// String returns the canonical color name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ansi maps the color to its ANSI palette index.
func (c Color) ansi() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("%d", int(c)))
}
