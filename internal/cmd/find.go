package cmd

import (
	"github.com/hargabyte/lx/internal/concept"
	"github.com/hargabyte/lx/internal/output"
	"github.com/spf13/cobra"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search concepts by name",
	Long: `Search for concepts whose name contains the query, case-insensitive.

Results come back in the graph's stored order. Use --type to restrict
results to topics or subtopics.

This is also the place to go when 'lx path' or 'lx gaps' reports an
unknown concept: the query there resolves through the same matching.

Examples:
  lx find tree                   # All concepts mentioning "tree"
  lx find sort --type=topic      # Topics only
  lx find heap --limit=5         # First five matches`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

var (
	findType  string
	findLimit int
)

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVar(&findType, "type", "", "Filter by node type (topic|subtopic)")
	findCmd.Flags().IntVar(&findLimit, "limit", 20, "Maximum results (0 for all)")
}

func runFind(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	density, err := selectedDensity()
	if err != nil {
		return err
	}

	matches := ws.graph.Search(args[0])
	if findType != "" {
		filtered := matches[:0]
		for _, n := range matches {
			if string(n.Type) == findType {
				filtered = append(filtered, n)
			}
		}
		matches = filtered
	}
	if findLimit > 0 && len(matches) > findLimit {
		matches = matches[:findLimit]
	}

	out := output.FindOutput{
		Query: args[0],
		Count: len(matches),
	}
	for _, n := range matches {
		out.Results = append(out.Results, refWithType(n, density))
	}

	return printResult(out)
}

// refWithType always carries the node type so search results are
// distinguishable even at sparse density.
func refWithType(n *concept.Node, d output.Density) output.ConceptRef {
	ref := output.Ref(n, d)
	ref.Type = string(n.Type)
	return ref
}
