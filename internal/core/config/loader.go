// Package config assembles the prompt configuration from the process environment.
package config

import (
	"fmt"
	"os"

	"github.com/aki/pista/internal/cli/ui"
	"github.com/aki/pista/internal/core/cwd"
	"github.com/aki/pista/internal/core/git"
)

// Environment variable names
const (
	EnvHome                  = "HOME"
	EnvPWD                   = "PWD"
	EnvNoColor               = "NO_COLOR"
	EnvExpandTilde           = "EXPAND_TILDE"
	EnvShortenCwd            = "SHORTEN_CWD"
	EnvCwdColor              = "CWD_COLOR"
	EnvPromptChar            = "PROMPT_CHAR"
	EnvPromptCharRoot        = "PROMPT_CHAR_ROOT"
	EnvGitCleanColor         = "GIT_CLEAN_COLOR"
	EnvGitWTModifiedColor    = "GIT_WT_MODIFIED_COLOR"
	EnvGitIndexModifiedColor = "GIT_INDEX_MODIFIED_COLOR"
	EnvGitClean              = "GIT_CLEAN"
	EnvGitWTModified         = "GIT_WT_MODIFIED"
	EnvGitIndexModified      = "GIT_INDEX_MODIFIED"
	EnvGitStatusMode         = "GIT_STATUS_MODE"
	EnvGitDiscover           = "GIT_DISCOVER"
)

// Source provides the process state Load reads from
type Source struct {
	LookupEnv func(key string) (string, bool)
	Getwd     func() (string, error)
	Geteuid   func() int
}

// OSSource reads from the running process
func OSSource() Source {
	return Source{
		LookupEnv: os.LookupEnv,
		Getwd:     os.Getwd,
		Geteuid:   os.Geteuid,
	}
}

// Load builds a Config from src, applying defaults for unset variables.
func Load(src Source) (*Config, error) {
	env := func(key, def string) string {
		if v, ok := src.LookupEnv(key); ok {
			return v
		}
		return def
	}

	home, ok := src.LookupEnv(EnvHome)
	if !ok {
		return nil, ErrMissingHome
	}

	dir, ok := src.LookupEnv(EnvPWD)
	if !ok || dir == "" {
		wd, err := src.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	// NO_COLOR only counts when it has a value
	noColorValue, _ := src.LookupEnv(EnvNoColor)
	noColor := noColorValue != ""

	cfg := &Config{
		Dir:   dir,
		Home:  home,
		EUID:  src.Geteuid(),
		Color: !noColor,
		Cwd: CwdConfig{
			Home:    cwd.CollapseHome,
			Shorten: env(EnvShortenCwd, "1") != "0",
		},
		Prompt: PromptConfig{
			Char:     env(EnvPromptChar, "$ "),
			RootChar: env(EnvPromptCharRoot, "# "),
		},
		Git: GitConfig{
			Discover:         env(EnvGitDiscover, "0") == "1",
			Clean:            Glyph{Char: env(EnvGitClean, "·")},
			WorkTreeModified: Glyph{Char: env(EnvGitWTModified, "×")},
			IndexModified:    Glyph{Char: env(EnvGitIndexModified, "±")},
		},
	}

	// EXPAND_TILDE=0 is the setting that collapses the home directory
	if env(EnvExpandTilde, "0") != "0" {
		cfg.Cwd.Home = cwd.KeepLiteral
	}

	colors := []struct {
		key  string
		def  string
		dest *ui.Color
	}{
		{EnvCwdColor, "white", &cfg.Cwd.Color},
		{EnvGitCleanColor, "green", &cfg.Git.Clean.Color},
		{EnvGitWTModifiedColor, "red", &cfg.Git.WorkTreeModified.Color},
		{EnvGitIndexModifiedColor, "yellow", &cfg.Git.IndexModified.Color},
	}
	for _, c := range colors {
		value := env(c.key, c.def)
		parsed, err := ui.ParseColor(value)
		if err != nil {
			return nil, &InvalidValueError{Var: c.key, Value: value, Err: err}
		}
		*c.dest = parsed
	}

	mode := env(EnvGitStatusMode, "priority")
	parsedMode, err := git.ParseMode(mode)
	if err != nil {
		return nil, &InvalidValueError{Var: EnvGitStatusMode, Value: mode, Err: err}
	}
	cfg.Git.Mode = parsedMode

	return cfg, nil
}
