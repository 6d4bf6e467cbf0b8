package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aki/pista/internal/core/config"
	"github.com/aki/pista/internal/tests/helpers"
)

// execute runs the root command with env as the whole environment
func execute(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	orig := configSource
	t.Cleanup(func() { configSource = orig })
	configSource = func() config.Source {
		return config.Source{
			LookupEnv: func(key string) (string, bool) {
				v, ok := env[key]
				return v, ok
			},
			Getwd:   func() (string, error) { return "", errors.New("no getwd in tests") },
			Geteuid: func() int { return 1000 },
		}
	}

	flagLogLevel = ""
	flagLogFormat = "text"

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandOutsideRepository(t *testing.T) {
	stdout, stderr, err := execute(t, map[string]string{
		"HOME":         "/home/alice",
		"PWD":          "/home/alice/projects/foo",
		"NO_COLOR":     "1",
		"EXPAND_TILDE": "0",
		"SHORTEN_CWD":  "0",
	})
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "~/projects/foo  \n$  ", stdout)
}

func TestRootCommandShortened(t *testing.T) {
	stdout, _, err := execute(t, map[string]string{
		"HOME":     "/home/alice",
		"PWD":      "/home/alice/projects/foo",
		"NO_COLOR": "1",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "~/p/foo"))
}

func TestRootCommandInRepository(t *testing.T) {
	r := helpers.CreateTestRepo(t)
	r.WriteFile("README.md", "edited\n")

	stdout, _, err := execute(t, map[string]string{
		"HOME":        "/home/alice",
		"PWD":         r.Dir,
		"NO_COLOR":    "1",
		"SHORTEN_CWD": "0",
	})
	require.NoError(t, err)
	assert.Equal(t, r.Dir+" main ×\n$  ", stdout)
}

func TestRootCommandMissingHome(t *testing.T) {
	_, _, err := execute(t, map[string]string{"PWD": "/tmp"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingHome))
}

func TestRootCommandInvalidColor(t *testing.T) {
	_, _, err := execute(t, map[string]string{
		"HOME":      "/home/alice",
		"PWD":       "/tmp",
		"CWD_COLOR": "chartreuse",
	})
	var invalid *config.InvalidValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "CWD_COLOR", invalid.Var)
}

func TestRootCommandUnbornHead(t *testing.T) {
	r := helpers.CreateEmptyRepo(t)

	_, _, err := execute(t, map[string]string{
		"HOME": "/home/alice",
		"PWD":  r.Dir,
	})
	assert.Error(t, err)
}

func TestRootCommandDebugLogging(t *testing.T) {
	r := helpers.CreateTestRepo(t)

	stdout, stderr, err := execute(t, map[string]string{
		"HOME":     "/home/alice",
		"PWD":      r.Dir,
		"NO_COLOR": "1",
	}, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stdout, " main ·\n")
	assert.Contains(t, stderr, "summarized repository")
	assert.NotContains(t, stdout, "summarized repository")
}

func TestStatusCommand(t *testing.T) {
	r := helpers.CreateTestRepo(t)
	r.WriteFile("a.txt", "a\n")
	r.Add("a.txt")

	stdout, _, err := execute(t, map[string]string{
		"HOME":     "/home/alice",
		"PWD":      r.Dir,
		"NO_COLOR": "1",
	}, "status")
	require.NoError(t, err)

	assert.Contains(t, stdout, "a.txt")
	assert.Contains(t, stdout, "INDEX_NEW")
	assert.Contains(t, stdout, "branch main")
	assert.Contains(t, stdout, "* priority ± index-modified")
	assert.Contains(t, stdout, "  scan     ± index-modified")
}

func TestStatusCommandOutsideRepository(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := execute(t, map[string]string{
		"HOME":     "/home/alice",
		"PWD":      dir,
		"NO_COLOR": "1",
	}, "status")
	require.NoError(t, err)
	assert.Equal(t, dir+" is not a git repository\n", stdout)
}

func TestConfigShowCommand(t *testing.T) {
	stdout, _, err := execute(t, map[string]string{
		"HOME":            "/home/alice",
		"PWD":             "/srv",
		"GIT_STATUS_MODE": "scan",
	}, "config", "show")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "/home/alice", doc["home"])
	assert.Equal(t, "scan", doc["git"].(map[string]any)["mode"])
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "pista version dev\n"))
}
