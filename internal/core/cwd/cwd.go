// Package cwd formats the working directory for display in the prompt.
package cwd

import (
	"fmt"
	"strings"
)

// HomeMode controls whether the home directory prefix is collapsed to "~".
type HomeMode int

const (
	// CollapseHome replaces a leading home directory with "~".
	// This is selected by EXPAND_TILDE=0, which is also the default.
	CollapseHome HomeMode = iota
	// KeepLiteral leaves the path as it is.
	// Any EXPAND_TILDE value other than "0" selects it.
	KeepLiteral
)

// String returns the mode name
func (m HomeMode) String() string {
	switch m {
	case CollapseHome:
		return "collapse"
	case KeepLiteral:
		return "literal"
	default:
		return fmt.Sprintf("HomeMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler
func (m HomeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Options controls how a path is presented.
type Options struct {
	Home    HomeMode
	Shorten bool
}

// Present returns the display form of path.
func Present(path, home string, opts Options) string {
	if opts.Home == CollapseHome {
		path = CollapseHomeDir(path, home)
	}
	if opts.Shorten {
		path = Shorten(path)
	}
	return path
}

// CollapseHomeDir replaces a leading home prefix with "~". An empty home
// never matches.
func CollapseHomeDir(path, home string) string {
	if home == "" || !strings.HasPrefix(path, home) {
		return path
	}
	return "~" + path[len(home):]
}

// Shorten abbreviates every segment but the last to its first character.
// Segments that start with dots keep the dots and the next character, so
// "/home/user/.config/nvim" becomes "/h/u/.c/nvim".
func Shorten(path string) string {
	segments := strings.Split(path, "/")
	last := len(segments) - 1
	for i, seg := range segments[:last] {
		segments[i] = abbreviate(seg)
	}
	return strings.Join(segments, "/")
}

func abbreviate(seg string) string {
	rest := strings.TrimLeft(seg, ".")
	dots := seg[:len(seg)-len(rest)]
	for _, r := range rest {
		return dots + string(r)
	}
	return dots
}
