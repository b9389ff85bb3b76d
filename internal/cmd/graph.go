package cmd

import (
	"fmt"

	"github.com/hargabyte/lx/internal/render"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [topic]",
	Short: "Render the concept graph as a Mermaid diagram",
	Long: `Render the concept graph as a Mermaid flowchart.

Topics are drawn as hexagons and subtopics as rounded rectangles, with
arrow styles varying by relationship type. Subtopics are grouped under
their parent topic. With a topic argument, the diagram is restricted to
that topic, its subtopics, and directly connected topics.

Large graphs auto-collapse to a topic-level overview; tune with
--max-nodes or disable with --no-collapse.

Examples:
  lx graph                        # Whole graph (collapsed when large)
  lx graph sorting                # Focus on one topic
  lx graph --direction=TD         # Top-down layout
  lx graph --max-nodes=60         # Allow a bigger full view`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGraph,
}

var (
	graphDirection  string
	graphMaxNodes   int
	graphNoCollapse bool
	graphTitle      string
)

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringVar(&graphDirection, "direction", "LR", "Layout direction (LR|TD)")
	graphCmd.Flags().IntVar(&graphMaxNodes, "max-nodes", 30, "Node count before collapsing to topics")
	graphCmd.Flags().BoolVar(&graphNoCollapse, "no-collapse", false, "Never collapse to topic overview")
	graphCmd.Flags().StringVar(&graphTitle, "title", "", "Diagram title")
}

func runGraph(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	opts := render.DefaultMermaidOptions()
	opts.Direction = graphDirection
	opts.MaxNodes = graphMaxNodes
	opts.Collapse = !graphNoCollapse
	opts.Title = graphTitle

	if len(args) == 1 {
		focus, err := ws.resolveConcept(args[0])
		if err != nil {
			return err
		}
		opts.Focus = focus
	}

	fmt.Print(render.GenerateMermaid(ws.graph, opts))
	return nil
}
