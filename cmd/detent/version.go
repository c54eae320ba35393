package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/detent"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of detent",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("detent version %s\n", strings.TrimSpace(detent.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
