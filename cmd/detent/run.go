package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/detent/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive machine session",
	Long:  `Starts a fresh machine in the stored state and applies operations read from stdin, reporting each transition or rejection.`,
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")
		debug, _ := cmd.Flags().GetBool("debug")

		levelName, _ := cmd.Flags().GetString("log-level")
		logger := newLoggerAt(levelName)

		opts := cli.SessionOptions{Headless: headless, Debug: debug}
		if err := cli.RunSession(cmd.Context(), logger, opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (no banner, strict IO)")
	runCmd.Flags().Bool("debug", false, "Log every lifecycle event")

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
}
