package commands

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect pista configuration",
	Long: `Inspect the configuration pista assembles from its environment.

Pista has no configuration file. Every setting comes from an environment
variable such as CWD_COLOR or GIT_STATUS_MODE.`,
	Example: `  # View the configuration in effect
  pista config show`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
