package cmd

import (
	"github.com/hargabyte/lx/internal/output"
	"github.com/spf13/cobra"
)

// gapsCmd represents the gaps command
var gapsCmd = &cobra.Command{
	Use:   "gaps <topic>",
	Short: "Analyze missing subtopics of a topic",
	Long: `Analyze which subtopics of a topic the learner has not completed yet.

The report lists completed and missing subtopics of the target topic,
the completion percentage, and any cross-topic prerequisites: subtopics
of other topics that feed into the target via prerequisite or sequence
edges and are not completed either.

Missing subtopics are ordered by priority. A subtopic scores higher when
it connects to concepts the learner already knows (prerequisite edges
weigh most, then sequence, then leads_to) and when it is well connected
in the graph overall.

Examples:
  lx gaps sorting                              # Everything is missing
  lx gaps sorting -c "bubble sort" -c "merge sort"
  lx gaps trees --completed bst --density=dense`,
	Args: cobra.ExactArgs(1),
	RunE: runGaps,
}

var gapsCompleted []string

func init() {
	rootCmd.AddCommand(gapsCmd)
	gapsCmd.Flags().StringArrayVarP(&gapsCompleted, "completed", "c", nil, "Concept already completed (repeatable)")
}

func runGaps(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	topicID, err := ws.resolveConcept(args[0])
	if err != nil {
		return err
	}

	completed, err := ws.resolveCompletedList(gapsCompleted)
	if err != nil {
		return err
	}

	report, err := ws.analyzer().Analyze(completed, topicID)
	if err != nil {
		return err
	}

	density, err := selectedDensity()
	if err != nil {
		return err
	}

	out := output.GapOutput{
		Target:               output.Ref(ws.graph.Node(report.TargetTopic), density),
		CompletionPercentage: report.CompletionPercentage,
		Completed:            output.Refs(ws.graph, report.Completed, density),
		Missing:              output.Refs(ws.graph, report.Missing, density),
		Prerequisites:        output.Refs(ws.graph, report.Prerequisites, density),
	}

	return printResult(out)
}
