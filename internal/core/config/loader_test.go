package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aki/pista/internal/cli/ui"
	"github.com/aki/pista/internal/core/cwd"
	"github.com/aki/pista/internal/core/git"
)

func testSource(env map[string]string) Source {
	return Source{
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		Getwd:   func() (string, error) { return "/from/getwd", nil },
		Geteuid: func() int { return 1000 },
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(testSource(map[string]string{
		"HOME": "/home/alice",
		"PWD":  "/home/alice/projects/foo",
	}))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Dir:   "/home/alice/projects/foo",
		Home:  "/home/alice",
		EUID:  1000,
		Color: true,
		Cwd: CwdConfig{
			Home:    cwd.CollapseHome,
			Shorten: true,
			Color:   ui.White,
		},
		Prompt: PromptConfig{
			Char:     "$ ",
			RootChar: "# ",
		},
		Git: GitConfig{
			Mode:             git.ModePriority,
			Discover:         false,
			Clean:            Glyph{Char: "·", Color: ui.Green},
			WorkTreeModified: Glyph{Char: "×", Color: ui.Red},
			IndexModified:    Glyph{Char: "±", Color: ui.Yellow},
		},
	}, cfg)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(testSource(map[string]string{
		"HOME":                     "/root",
		"PWD":                      "/etc",
		"NO_COLOR":                 "1",
		"EXPAND_TILDE":             "1",
		"SHORTEN_CWD":              "0",
		"CWD_COLOR":                "bright blue",
		"PROMPT_CHAR":              "> ",
		"PROMPT_CHAR_ROOT":         "#> ",
		"GIT_CLEAN_COLOR":          "cyan",
		"GIT_WT_MODIFIED_COLOR":    "magenta",
		"GIT_INDEX_MODIFIED_COLOR": "bright_yellow",
		"GIT_CLEAN":                "ok",
		"GIT_WT_MODIFIED":          "*",
		"GIT_INDEX_MODIFIED":       "+",
		"GIT_STATUS_MODE":          "scan",
		"GIT_DISCOVER":             "1",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.Color)
	assert.Equal(t, cwd.KeepLiteral, cfg.Cwd.Home)
	assert.False(t, cfg.Cwd.Shorten)
	assert.Equal(t, ui.BrightBlue, cfg.Cwd.Color)
	assert.Equal(t, PromptConfig{Char: "> ", RootChar: "#> "}, cfg.Prompt)
	assert.Equal(t, git.ModeScanOrder, cfg.Git.Mode)
	assert.True(t, cfg.Git.Discover)
	assert.Equal(t, Glyph{Char: "ok", Color: ui.Cyan}, cfg.Git.Glyph(git.Clean))
	assert.Equal(t, Glyph{Char: "*", Color: ui.Magenta}, cfg.Git.Glyph(git.WorkTreeModified))
	assert.Equal(t, Glyph{Char: "+", Color: ui.BrightYellow}, cfg.Git.Glyph(git.IndexModified))
}

func TestLoadExpandTilde(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  cwd.HomeMode
	}{
		{name: "unset collapses", value: nil, want: cwd.CollapseHome},
		{name: "zero collapses", value: strPtr("0"), want: cwd.CollapseHome},
		{name: "one keeps literal", value: strPtr("1"), want: cwd.KeepLiteral},
		{name: "empty keeps literal", value: strPtr(""), want: cwd.KeepLiteral},
		{name: "word keeps literal", value: strPtr("yes"), want: cwd.KeepLiteral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{"HOME": "/home/alice", "PWD": "/"}
			if tt.value != nil {
				env["EXPAND_TILDE"] = *tt.value
			}
			cfg, err := Load(testSource(env))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Cwd.Home)
		})
	}
}

func TestLoadNoColor(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  bool
	}{
		{name: "unset", value: nil, want: true},
		{name: "empty", value: strPtr(""), want: true},
		{name: "one", value: strPtr("1"), want: false},
		{name: "any word", value: strPtr("false"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{"HOME": "/home/alice", "PWD": "/"}
			if tt.value != nil {
				env["NO_COLOR"] = *tt.value
			}
			cfg, err := Load(testSource(env))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Color)
		})
	}
}

func TestLoadMissingHome(t *testing.T) {
	_, err := Load(testSource(map[string]string{"PWD": "/tmp"}))
	assert.True(t, errors.Is(err, ErrMissingHome))
}

func TestLoadFallsBackToGetwd(t *testing.T) {
	cfg, err := Load(testSource(map[string]string{"HOME": "/home/alice"}))
	require.NoError(t, err)
	assert.Equal(t, "/from/getwd", cfg.Dir)

	src := testSource(map[string]string{"HOME": "/home/alice"})
	src.Getwd = func() (string, error) { return "", errors.New("deleted directory") }
	_, err = Load(src)
	assert.Error(t, err)
}

func TestLoadInvalidColor(t *testing.T) {
	_, err := Load(testSource(map[string]string{
		"HOME":                  "/home/alice",
		"PWD":                   "/",
		"GIT_WT_MODIFIED_COLOR": "orange",
	}))
	require.Error(t, err)

	var invalid *InvalidValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "GIT_WT_MODIFIED_COLOR", invalid.Var)
	assert.Equal(t, "orange", invalid.Value)

	var colorErr *ui.UnknownColorError
	require.True(t, errors.As(err, &colorErr))
	assert.Equal(t, "orange", colorErr.Name)
}

func TestLoadInvalidMode(t *testing.T) {
	_, err := Load(testSource(map[string]string{
		"HOME":            "/home/alice",
		"PWD":             "/",
		"GIT_STATUS_MODE": "fastest",
	}))

	var invalid *InvalidValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "GIT_STATUS_MODE", invalid.Var)
}

func TestToYAML(t *testing.T) {
	cfg, err := Load(testSource(map[string]string{"HOME": "/home/alice", "PWD": "/srv"}))
	require.NoError(t, err)

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "/srv", doc["dir"])

	cwdDoc := doc["cwd"].(map[string]any)
	assert.Equal(t, "collapse", cwdDoc["home"])
	assert.Equal(t, "white", cwdDoc["color"])

	gitDoc := doc["git"].(map[string]any)
	assert.Equal(t, "priority", gitDoc["mode"])
	assert.Equal(t, "red", gitDoc["worktreeModified"].(map[string]any)["color"])
}

func strPtr(s string) *string { return &s }
