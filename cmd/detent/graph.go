package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/detent/internal/presentation/graph"
	"github.com/veldt-labs/detent/pkg/machine"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the transition graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the machine's transition table. Pairs without an arrow are rejected.`,
	Run: func(cmd *cobra.Command, args []string) {
		current, _ := cmd.Flags().GetString("current")

		var overlay *graph.Overlay
		if current != "" {
			overlay = &graph.Overlay{Current: current}
		}

		fmt.Print(graph.GenerateMermaid(machine.Table(), overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("current", "", "Highlight a state as current")
}
