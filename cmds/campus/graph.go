package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var graphOutput string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the walkway network as Graphviz DOT",
	Args:  cobra.NoArgs,
	RunE:  runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringVar(&graphOutput, "output", "", "output file (default: stdout)")
}

func runGraph(cmd *cobra.Command, args []string) error {
	m, err := loadMap()
	if err != nil {
		return err
	}
	defer m.Close()

	graph, err := m.WalkwayGraph()
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	if graphOutput != "" {
		if err := os.WriteFile(graphOutput, []byte(graph.String()), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Graph exported to %s\n", graphOutput)
	} else {
		fmt.Print(graph.String())
	}

	return nil
}
