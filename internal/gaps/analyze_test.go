package gaps

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hargabyte/lx/internal/concept"
)

func buildGraph(t *testing.T, nodes []*concept.Node, edges []concept.Edge) *concept.Graph {
	t.Helper()
	g, err := concept.BuildGraph(concept.Snapshot{Nodes: nodes, Edges: edges})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	return g
}

// gapGraph is the canonical two-subtopic scenario: topic T contains s1
// and s2, the learner finished s1.
func gapGraph(t *testing.T) *concept.Graph {
	return buildGraph(t, []*concept.Node{
		{ID: "T", Name: "Sorting", Type: concept.NodeTopic},
		{ID: "s1", Name: "Bubble Sort", Type: concept.NodeSubtopic, ParentTopic: "T"},
		{ID: "s2", Name: "Merge Sort", Type: concept.NodeSubtopic, ParentTopic: "T"},
	}, []concept.Edge{
		{Source: "T", Target: "s1", Type: concept.EdgeContains},
		{Source: "T", Target: "s2", Type: concept.EdgeContains},
		{Source: "s1", Target: "s2", Type: concept.EdgeSequence},
	})
}

func TestAnalyzeHalfComplete(t *testing.T) {
	a := NewAnalyzer(gapGraph(t))

	report, err := a.Analyze(map[string]bool{"s1": true}, "T")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.CompletionPercentage != 50 {
		t.Errorf("CompletionPercentage = %g, want 50", report.CompletionPercentage)
	}
	if !reflect.DeepEqual(report.Completed, []string{"s1"}) {
		t.Errorf("Completed = %v, want [s1]", report.Completed)
	}
	if !reflect.DeepEqual(report.Missing, []string{"s2"}) {
		t.Errorf("Missing = %v, want [s2]", report.Missing)
	}
	if report.Prerequisites != nil {
		t.Errorf("Prerequisites = %v, want none", report.Prerequisites)
	}
}

func TestAnalyzeNothingCompleted(t *testing.T) {
	a := NewAnalyzer(gapGraph(t))

	report, err := a.Analyze(nil, "T")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.CompletionPercentage != 0 {
		t.Errorf("CompletionPercentage = %g, want 0", report.CompletionPercentage)
	}
	if len(report.Missing) != 2 {
		t.Errorf("Missing = %v, want both subtopics", report.Missing)
	}
}

func TestAnalyzeAllCompleted(t *testing.T) {
	a := NewAnalyzer(gapGraph(t))

	report, err := a.Analyze(map[string]bool{"s1": true, "s2": true}, "T")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.CompletionPercentage != 100 {
		t.Errorf("CompletionPercentage = %g, want 100", report.CompletionPercentage)
	}
	if len(report.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", report.Missing)
	}
}

func TestAnalyzeTopicWithoutSubtopics(t *testing.T) {
	g := buildGraph(t, []*concept.Node{
		{ID: "empty", Name: "Empty Topic", Type: concept.NodeTopic},
	}, nil)
	a := NewAnalyzer(g)

	report, err := a.Analyze(nil, "empty")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.CompletionPercentage != 0 {
		t.Errorf("CompletionPercentage = %g, want 0 for empty topic", report.CompletionPercentage)
	}
}

func TestAnalyzeUnknownTopic(t *testing.T) {
	a := NewAnalyzer(gapGraph(t))

	_, err := a.Analyze(nil, "missing_topic")
	var unknown *concept.UnknownConceptError
	if !errors.As(err, &unknown) {
		t.Fatalf("Analyze error = %v, want UnknownConceptError", err)
	}
}

func TestAnalyzePriorityOrdering(t *testing.T) {
	// Three missing subtopics with different ties to completed work:
	//   unlocked: completed subtopic is its prerequisite (3.0)
	//   next:     completed subtopic precedes it in sequence (2.0)
	//   loose:    no edges at all
	g := buildGraph(t, []*concept.Node{
		{ID: "T", Name: "Trees", Type: concept.NodeTopic},
		{ID: "loose", Name: "Loose", Type: concept.NodeSubtopic, ParentTopic: "T"},
		{ID: "next", Name: "Next", Type: concept.NodeSubtopic, ParentTopic: "T"},
		{ID: "unlocked", Name: "Unlocked", Type: concept.NodeSubtopic, ParentTopic: "T"},
		{ID: "done", Name: "Done", Type: concept.NodeSubtopic, ParentTopic: "T"},
	}, []concept.Edge{
		{Source: "T", Target: "loose", Type: concept.EdgeContains},
		{Source: "T", Target: "next", Type: concept.EdgeContains},
		{Source: "T", Target: "unlocked", Type: concept.EdgeContains},
		{Source: "T", Target: "done", Type: concept.EdgeContains},
		{Source: "done", Target: "unlocked", Type: concept.EdgePrerequisite},
		{Source: "done", Target: "next", Type: concept.EdgeSequence},
	})
	a := NewAnalyzer(g)

	report, err := a.Analyze(map[string]bool{"done": true}, "T")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !reflect.DeepEqual(report.Missing, []string{"unlocked", "next", "loose"}) {
		t.Errorf("Missing = %v, want [unlocked next loose]", report.Missing)
	}
}

func TestAnalyzePriorityEdgeDirection(t *testing.T) {
	// The typed score belongs to edges flowing from completed work into
	// the missing subtopic; the reverse direction is only worth 0.5.
	g := buildGraph(t, []*concept.Node{
		{ID: "T", Name: "Graphs", Type: concept.NodeTopic},
		{ID: "fwd", Name: "Fwd", Type: concept.NodeSubtopic, ParentTopic: "T"},
		{ID: "rev", Name: "Rev", Type: concept.NodeSubtopic, ParentTopic: "T"},
		{ID: "done", Name: "Done", Type: concept.NodeSubtopic, ParentTopic: "T"},
	}, []concept.Edge{
		{Source: "T", Target: "fwd", Type: concept.EdgeContains},
		{Source: "T", Target: "rev", Type: concept.EdgeContains},
		{Source: "T", Target: "done", Type: concept.EdgeContains},
		{Source: "done", Target: "fwd", Type: concept.EdgePrerequisite},
		{Source: "rev", Target: "done", Type: concept.EdgeLeadsTo},
	})
	a := NewAnalyzer(g)

	report, err := a.Analyze(map[string]bool{"done": true}, "T")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	// fwd scores 3.0 + 0.2 degree, rev only 0.5 + 0.2 degree.
	if !reflect.DeepEqual(report.Missing, []string{"fwd", "rev"}) {
		t.Errorf("Missing = %v, want [fwd rev]", report.Missing)
	}
}

func TestAnalyzeCrossTopicPrerequisites(t *testing.T) {
	// A subtopic of another topic feeds the target topic's subtopic via
	// a prerequisite edge and is itself unfinished.
	g := buildGraph(t, []*concept.Node{
		{ID: "A", Name: "Arrays", Type: concept.NodeTopic},
		{ID: "a1", Name: "Array Basics", Type: concept.NodeSubtopic, ParentTopic: "A"},
		{ID: "a2", Name: "Array Advanced", Type: concept.NodeSubtopic, ParentTopic: "A"},
		{ID: "T", Name: "Trees", Type: concept.NodeTopic},
		{ID: "t1", Name: "Tree Basics", Type: concept.NodeSubtopic, ParentTopic: "T"},
	}, []concept.Edge{
		{Source: "A", Target: "a1", Type: concept.EdgeContains},
		{Source: "A", Target: "a2", Type: concept.EdgeContains},
		{Source: "T", Target: "t1", Type: concept.EdgeContains},
		{Source: "a1", Target: "t1", Type: concept.EdgePrerequisite},
		{Source: "a2", Target: "t1", Type: concept.EdgeRelated},
	})
	a := NewAnalyzer(g)

	report, err := a.Analyze(nil, "T")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	// a1 qualifies (prerequisite edge); a2 does not (related edge).
	if !reflect.DeepEqual(report.Prerequisites, []string{"a1"}) {
		t.Errorf("Prerequisites = %v, want [a1]", report.Prerequisites)
	}

	// Completing a1 removes it from the prerequisite list.
	report, err = a.Analyze(map[string]bool{"a1": true}, "T")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Prerequisites != nil {
		t.Errorf("Prerequisites = %v, want none after completing a1", report.Prerequisites)
	}
}

func TestAnalyzeCompletionBounds(t *testing.T) {
	a := NewAnalyzer(gapGraph(t))

	for _, completed := range []map[string]bool{
		nil,
		{"s1": true},
		{"s2": true},
		{"s1": true, "s2": true},
		{"s1": true, "s2": true, "T": true},
	} {
		report, err := a.Analyze(completed, "T")
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if report.CompletionPercentage < 0 || report.CompletionPercentage > 100 {
			t.Errorf("CompletionPercentage = %g out of bounds for %v", report.CompletionPercentage, completed)
		}
	}
}
