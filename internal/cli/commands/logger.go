package commands

import (
	"io"
	"os"

	"github.com/aki/pista/internal/core/logger"
	"github.com/spf13/cobra"
)

// EnvLogLevel sets the log level when --log-level is not given
const EnvLogLevel = "PISTA_LOG"

// Global flags for logging configuration
var (
	flagLogLevel  string
	flagLogFormat string
)

// RegisterLoggerFlags registers global logging flags
func RegisterLoggerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+EnvLogLevel+" or warn")
	cmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
}

// CreateLogger creates a logger writing to w based on CLI flags.
// Unknown levels and formats fall back to warn and text.
func CreateLogger(w io.Writer) logger.Logger {
	levelName := flagLogLevel
	if levelName == "" {
		levelName = os.Getenv(EnvLogLevel)
	}
	level, levelErr := logger.ParseLevel(levelName)
	format, formatErr := logger.ParseFormat(flagLogFormat)

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
	)
	if levelErr != nil {
		log.Warn("ignoring log level", "error", levelErr)
	}
	if formatErr != nil {
		log.Warn("ignoring log format", "error", formatErr)
	}
	return log
}
