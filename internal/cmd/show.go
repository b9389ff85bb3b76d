package cmd

import (
	"github.com/hargabyte/lx/internal/output"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <concept>",
	Short: "Show a concept with its relations",
	Long: `Show detailed information about one concept: its metadata, subtopics
(for a topic), and typed edges in both directions.

The argument accepts a node ID or a display name.

Examples:
  lx show sorting                # By name
  lx show dp_01                  # By ID
  lx show trees --density=dense  # Include descriptions`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	id, err := ws.resolveConcept(args[0])
	if err != nil {
		return err
	}

	density, err := selectedDensity()
	if err != nil {
		return err
	}

	n := ws.graph.Node(id)
	out := output.NodeOutput{
		Concept:  output.Ref(n, output.DensityDense),
		Outgoing: make(map[string][]string),
		Incoming: make(map[string][]string),
	}
	out.Subtopics = output.Refs(ws.graph, ws.graph.SubtopicsOf(id), density)
	for _, e := range ws.graph.EdgesOut(id) {
		out.Outgoing[string(e.Type)] = append(out.Outgoing[string(e.Type)], e.Target)
	}
	for _, e := range ws.graph.EdgesIn(id) {
		out.Incoming[string(e.Type)] = append(out.Incoming[string(e.Type)], e.Source)
	}

	return printResult(out)
}
