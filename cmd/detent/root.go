package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/detent/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "detent",
	Short: "Detent is a minimal explicit state machine engine",
	Long:  `Detent models a two-state lifecycle (stored, ready) with guaranteed enter/exit hooks, dwell-time telemetry, and durable snapshots.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// newLoggerAt builds the process logger, exiting on an unknown level name.
func newLoggerAt(name string) *slog.Logger {
	level, err := logging.ParseLevel(name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return logging.New(level)
}
