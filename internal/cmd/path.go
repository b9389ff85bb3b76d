package cmd

import (
	"github.com/hargabyte/lx/internal/output"
	"github.com/hargabyte/lx/internal/pathfind"
	"github.com/spf13/cobra"
)

// pathCmd represents the path command
var pathCmd = &cobra.Command{
	Use:   "path <target>",
	Short: "Find a learning path to a target concept",
	Long: `Find an optimal learning path to a target concept given what the
learner already knows.

Three strategies are tried in order:
  direct_path         Weighted shortest path from any completed concept.
                      Cheaper edge types (prerequisite, sequence) are
                      preferred over loose relations.
  prerequisite_chain  When no directed path exists, the missing
                      prerequisites of the target, in study order.
  cluster_based       When the target has no structural connections,
                      related topics from the same similarity cluster.

The target and completed concepts accept either node IDs or display
names; names are matched case-insensitively with substring fallback.
An empty completed set is fine: the path then starts from the target's
own prerequisites.

Examples:
  lx path "binary search tree"                      # No prior knowledge
  lx path graphs -c arrays -c "linked lists"        # With completed concepts
  lx path dp_01 --completed sorting --format=json   # JSON output`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

var pathCompleted []string

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.Flags().StringArrayVarP(&pathCompleted, "completed", "c", nil, "Concept already completed (repeatable)")
}

func runPath(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	targetID, err := ws.resolveConcept(args[0])
	if err != nil {
		return err
	}

	completed, err := ws.resolveCompletedList(pathCompleted)
	if err != nil {
		return err
	}

	result, err := ws.finder().Find(completed, targetID)
	if err != nil {
		return err
	}

	density, err := selectedDensity()
	if err != nil {
		return err
	}

	out := output.PathOutput{
		Target:   output.Ref(ws.graph.Node(targetID), density),
		Reason:   string(result.Reason),
		Distance: result.Distance,
		Steps:    output.Refs(ws.graph, result.Path, density),
		Note:     pathfind.ReasonNote(result.Reason),
	}
	for _, entry := range pathCompleted {
		if id, err := ws.graph.Resolve(entry); err == nil {
			out.Completed = append(out.Completed, id)
		}
	}

	return printResult(out)
}
