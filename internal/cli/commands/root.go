package commands

import (
	"fmt"

	"github.com/aki/pista/internal/cli/ui"
	"github.com/aki/pista/internal/core/config"
	"github.com/aki/pista/internal/core/git"
	"github.com/aki/pista/internal/core/prompt"
	"github.com/spf13/cobra"
)

// configSource is replaced in tests
var configSource = config.OSSource

var rootCmd = &cobra.Command{
	Use:   "pista",
	Short: "Print a minimal shell prompt",
	Long: `Pista prints the working directory, the git branch and status of the
repository in it, and a prompt character.

Use it from your shell configuration, for example in bash:

  PS1='$(pista)'

Everything is configured through environment variables; run
'pista config show' to see the values in effect.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPrompt,
}

func init() {
	RegisterLoggerFlags(rootCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	log := CreateLogger(cmd.ErrOrStderr())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := cfg.Git.SummaryOptions()
	opts.Logger = log
	summary, err := git.Summarize(cfg.Dir, opts)
	if err != nil {
		return fmt.Errorf("failed to read repository status: %w", err)
	}

	out := cmd.OutOrStdout()
	return prompt.Render(out, cfg, summary, ui.NewPainter(out, cfg.Color))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configSource())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command. Errors are logged to stderr before being returned.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		CreateLogger(rootCmd.ErrOrStderr()).Error("pista failed", "error", err)
		return err
	}
	return nil
}
