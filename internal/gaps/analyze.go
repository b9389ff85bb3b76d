// Package gaps analyzes a learner's subtopic-level progress toward a
// target topic: how much of the topic is done, which subtopics are still
// missing and in what order to tackle them, and which subtopics of other
// topics must be learned first.
package gaps

import (
	"sort"

	"github.com/hargabyte/lx/internal/concept"
)

// Report is the outcome of a subtopic gap analysis.
type Report struct {
	// TargetTopic is the resolved topic ID the report is about.
	TargetTopic string

	// CompletionPercentage is 100 * completed-in-target / target
	// subtopics, 0 when the topic has no subtopics.
	CompletionPercentage float64

	// Completed lists the target's subtopics the learner has finished,
	// in the topic's contains order.
	Completed []string

	// Missing lists the target's unfinished subtopics, highest priority
	// first.
	Missing []string

	// Prerequisites lists subtopics of other topics that feed into the
	// target's subtopics via prerequisite or sequence edges and are not
	// yet completed, in graph discovery order.
	Prerequisites []string
}

// Analyzer runs gap analyses against one immutable graph.
type Analyzer struct {
	graph *concept.Graph
}

// NewAnalyzer creates a gap analyzer over the given graph.
func NewAnalyzer(g *concept.Graph) *Analyzer {
	return &Analyzer{graph: g}
}

// Analyze computes the gap report for a target topic given the set of
// subtopics the learner has completed anywhere in the graph. The analysis
// is a pure read over the graph. Only an unknown topic ID is an error.
func (a *Analyzer) Analyze(completed map[string]bool, targetTopic string) (*Report, error) {
	if !a.graph.HasNode(targetTopic) {
		return nil, &concept.UnknownConceptError{Query: targetTopic}
	}

	target := a.graph.SubtopicsOf(targetTopic)
	targetSet := make(map[string]bool, len(target))
	for _, id := range target {
		targetSet[id] = true
	}

	report := &Report{TargetTopic: targetTopic}
	for _, id := range target {
		if completed[id] {
			report.Completed = append(report.Completed, id)
		} else {
			report.Missing = append(report.Missing, id)
		}
	}

	// Rank missing subtopics by how strongly they connect to what the
	// learner already knows; the stable sort preserves contains order
	// among equals.
	score := make(map[string]float64, len(report.Missing))
	for _, id := range report.Missing {
		score[id] = a.priority(id, completed)
	}
	sort.SliceStable(report.Missing, func(i, j int) bool {
		return score[report.Missing[i]] > score[report.Missing[j]]
	})

	report.Prerequisites = a.crossTopicPrerequisites(completed, targetSet)

	if len(target) > 0 {
		report.CompletionPercentage = 100 * float64(len(report.Completed)) / float64(len(target))
	}
	return report, nil
}

// priority scores a missing subtopic by its edges to completed subtopics.
// An edge from completed work into the subtopic scores by type
// (prerequisite 3, sequence 2, leads_to 1.5, anything else 1): its
// groundwork is done, so it is unlocked. An edge from the subtopic into
// completed work adds 0.5. Total node degree adds 0.1 per edge so
// well-connected subtopics win ties.
func (a *Analyzer) priority(subtopic string, completed map[string]bool) float64 {
	var p float64
	for _, e := range a.graph.EdgesIn(subtopic) {
		if !completed[e.Source] {
			continue
		}
		switch e.Type {
		case concept.EdgePrerequisite:
			p += 3.0
		case concept.EdgeSequence:
			p += 2.0
		case concept.EdgeLeadsTo:
			p += 1.5
		default:
			p += 1.0
		}
	}
	for _, e := range a.graph.EdgesOut(subtopic) {
		if completed[e.Target] {
			p += 0.5
		}
	}
	return p + 0.1*float64(a.graph.Degree(subtopic))
}

// crossTopicPrerequisites scans every subtopic outside the target topic
// for a prerequisite or sequence edge into one of the target's subtopics.
// Matches that are not yet completed come back in the graph's node
// insertion order.
func (a *Analyzer) crossTopicPrerequisites(completed, targetSet map[string]bool) []string {
	var prereqs []string
	for _, sub := range a.graph.Subtopics() {
		if completed[sub.ID] || targetSet[sub.ID] {
			continue
		}
		for _, e := range a.graph.EdgesOut(sub.ID, concept.EdgePrerequisite, concept.EdgeSequence) {
			if targetSet[e.Target] {
				prereqs = append(prereqs, sub.ID)
				break
			}
		}
	}
	return prereqs
}
