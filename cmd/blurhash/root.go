// Command blurhash encodes and decodes BlurHash placeholder strings from
// the command line. It is grounded on the teacher's cmd/exrcheck (a
// flag-driven, multi-file validator with quiet/strict modes and explicit
// exit codes) but built on cobra rather than hand-rolled os.Args parsing.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	logFilePath string
	logger      *slog.Logger
	runID       string
	closeLogger = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:     "blurhash",
	Short:   "Encode and decode BlurHash image placeholders",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		runID = uuid.NewString()
		logger, closeLogger = newLogger(logFilePath)
		logger = logger.With(slog.String("run_id", runID))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := closeLogger(); err != nil {
			fmt.Fprintf(os.Stderr, "blurhash: closing log file: %v\n", err)
		}
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "",
		"optional rotating log file (in addition to stderr)")

	rootCmd.AddCommand(encodeCmd, decodeCmd, inspectCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
