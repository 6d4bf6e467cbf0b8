package config

import (
	"github.com/aki/pista/internal/cli/ui"
	"github.com/aki/pista/internal/core/cwd"
	"github.com/aki/pista/internal/core/git"
)

// Config represents everything a prompt render reads from its environment.
// It is assembled once by Load and not modified afterwards.
type Config struct {
	// Dir is the working directory to render
	Dir string `yaml:"dir"`
	// Home is the user's home directory
	Home string `yaml:"home"`
	// EUID is the effective user id of the process
	EUID int `yaml:"euid"`
	// Color is false when NO_COLOR is set
	Color bool `yaml:"color"`

	Cwd    CwdConfig    `yaml:"cwd"`
	Prompt PromptConfig `yaml:"prompt"`
	Git    GitConfig    `yaml:"git"`
}

// CwdConfig controls the working directory segment
type CwdConfig struct {
	Home    cwd.HomeMode `yaml:"home"`
	Shorten bool         `yaml:"shorten"`
	Color   ui.Color     `yaml:"color"`
}

// Options returns the presentation options for cwd.Present
func (c CwdConfig) Options() cwd.Options {
	return cwd.Options{Home: c.Home, Shorten: c.Shorten}
}

// PromptConfig holds the prompt characters
type PromptConfig struct {
	Char     string `yaml:"char"`
	RootChar string `yaml:"rootChar"`
}

// Glyph is the character and color shown for one status indicator
type Glyph struct {
	Char  string   `yaml:"char"`
	Color ui.Color `yaml:"color"`
}

// GitConfig controls the version control segment
type GitConfig struct {
	Mode             git.Mode `yaml:"mode"`
	Discover         bool     `yaml:"discover"`
	Clean            Glyph    `yaml:"clean"`
	WorkTreeModified Glyph    `yaml:"worktreeModified"`
	IndexModified    Glyph    `yaml:"indexModified"`
}

// Glyph returns the configured glyph for an indicator
func (g GitConfig) Glyph(ind git.Indicator) Glyph {
	switch ind {
	case git.WorkTreeModified:
		return g.WorkTreeModified
	case git.IndexModified:
		return g.IndexModified
	default:
		return g.Clean
	}
}

// SummaryOptions returns the options for git.Summarize
func (g GitConfig) SummaryOptions() git.SummaryOptions {
	return git.SummaryOptions{Mode: g.Mode, Discover: g.Discover}
}
