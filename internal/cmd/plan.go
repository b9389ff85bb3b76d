package cmd

import (
	"github.com/hargabyte/lx/internal/output"
	"github.com/hargabyte/lx/internal/plan"
	"github.com/spf13/cobra"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan <from> <to>",
	Short: "Build a week-by-week study plan between two subtopics",
	Long: `Build a week-by-week study plan from one subtopic to another.

The plan follows the weighted shortest path between the subtopics, one
concept per week with a theory/practice/problem-solving phase split.
When no direct path exists, the plan routes through the parent topics
instead, folding a couple of subtopics from each intermediate topic
into the route.

Both arguments must resolve to subtopics.

Routes:
  direct             Weighted shortest path between the subtopics
  through_topics     Detour via parent topics, no direct path exists
  already_completed  Source and target are the same subtopic
  no_path            Nothing connects the two, even via topics

Examples:
  lx plan "array insertion" "binary search"
  lx plan stack_push queue_dequeue --format=json`,
	Args: cobra.ExactArgs(2),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	planner := plan.NewPlanner(ws.graph, ws.cfg.Weights.Policy())
	p, err := planner.Plan(args[0], args[1])
	if err != nil {
		return err
	}

	density, err := selectedDensity()
	if err != nil {
		return err
	}

	out := output.PlanOutput{
		From:       output.Ref(ws.graph.Node(p.FromID), density),
		To:         output.Ref(ws.graph.Node(p.ToID), density),
		Route:      string(p.Route),
		TotalWeeks: p.TotalWeeks(),
	}
	for _, w := range p.Weeks {
		out.Weeks = append(out.Weeks, output.PlanWeek{
			Week:    w.Number,
			Concept: output.Ref(ws.graph.Node(w.ConceptID), density),
			Focus:   w.Focus,
			Phases:  w.Phases,
		})
	}

	return printResult(out)
}
