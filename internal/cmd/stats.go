package cmd

import (
	"github.com/hargabyte/lx/internal/output"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show graph statistics",
	Long: `Show summary statistics for the imported concept graph: node and edge
counts, topics versus subtopics, edge counts per relationship type,
and the number of similarity clusters.

Examples:
  lx stats
  lx stats --format=json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	edgeTypes := make(map[string]int)
	for _, n := range ws.graph.Nodes() {
		for _, e := range ws.graph.EdgesOut(n.ID) {
			edgeTypes[string(e.Type)]++
		}
	}

	out := output.StatsOutput{
		Nodes:     ws.graph.NodeCount(),
		Edges:     ws.graph.EdgeCount(),
		Topics:    len(ws.graph.Topics()),
		Subtopics: len(ws.graph.Subtopics()),
		EdgeTypes: edgeTypes,
		Clusters:  ws.clusters().Size(),
	}

	return printResult(out)
}
