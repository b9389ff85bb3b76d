// Package pathfind computes optimal learning paths over the concept graph.
// Given what a learner already knows and a target concept, it tries three
// strategies in order: a weighted shortest path from any known concept, a
// prerequisite back-chain when no directed path exists, and same-cluster
// suggestions as a last resort. Absence of a path is never an error; the
// finder always returns some result, possibly an empty best-effort list.
package pathfind

import (
	"sort"

	"github.com/hargabyte/lx/internal/cluster"
	"github.com/hargabyte/lx/internal/concept"
	"github.com/hargabyte/lx/internal/weight"
)

// Reason tags how the returned path was derived.
type Reason string

const (
	// ReasonAlreadyCompleted means the target is already known.
	ReasonAlreadyCompleted Reason = "already_completed"
	// ReasonDirectPath means a weighted shortest path was found from a
	// completed concept.
	ReasonDirectPath Reason = "direct_path"
	// ReasonPrerequisiteChain means the path enumerates missing
	// prerequisites collected by backward traversal.
	ReasonPrerequisiteChain Reason = "prerequisite_chain"
	// ReasonClusterBased means no structural path exists and the path
	// holds related topics from the target's cluster.
	ReasonClusterBased Reason = "cluster_based"
)

// ReasonNote returns the user-facing interpretation of a reason, or ""
// when the reason speaks for itself.
func ReasonNote(r Reason) string {
	switch r {
	case ReasonAlreadyCompleted:
		return "target is already completed"
	case ReasonPrerequisiteChain:
		return "no direct path from completed concepts; steps are the missing prerequisites in study order"
	case ReasonClusterBased:
		return "no structured path found; steps are related topics from the same cluster, not a strict ordering"
	}
	return ""
}

// Result is the outcome of a path search.
type Result struct {
	// Path is the ordered sequence of concept IDs to visit. The already
	// known starting concept is not included.
	Path []string

	// Distance is the total edge weight for a direct path, or the number
	// of steps for fallback strategies.
	Distance float64

	// Reason tags which strategy produced the path.
	Reason Reason
}

// Finder runs path searches against one immutable graph.
type Finder struct {
	graph    *concept.Graph
	policy   weight.Policy
	clusters *cluster.Partition

	// maxClusterSuggestions caps the cluster fallback result.
	maxClusterSuggestions int
}

// Option adjusts finder behavior.
type Option func(*Finder)

// WithClusterSuggestionLimit overrides the cap on cluster-based
// suggestions. The default is 3.
func WithClusterSuggestionLimit(n int) Option {
	return func(f *Finder) {
		if n > 0 {
			f.maxClusterSuggestions = n
		}
	}
}

// NewFinder creates a path finder over the given graph. The cluster
// partition may be nil, in which case the cluster fallback degrades to an
// empty suggestion list.
func NewFinder(g *concept.Graph, pol weight.Policy, clusters *cluster.Partition, opts ...Option) *Finder {
	f := &Finder{
		graph:                 g,
		policy:                pol,
		clusters:              clusters,
		maxClusterSuggestions: 3,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find computes the optimal learning path from the completed concept set
// to the target concept ID. Only an unknown target is an error.
func (f *Finder) Find(completed map[string]bool, target string) (*Result, error) {
	if !f.graph.HasNode(target) {
		return nil, &concept.UnknownConceptError{Query: target}
	}

	if completed[target] {
		return &Result{Path: nil, Distance: 0, Reason: ReasonAlreadyCompleted}, nil
	}

	if res := f.directPath(completed, target); res != nil {
		return res, nil
	}

	if missing := f.missingPrerequisites(completed, target); len(missing) > 0 {
		return &Result{
			Path:     missing,
			Distance: float64(len(missing)),
			Reason:   ReasonPrerequisiteChain,
		}, nil
	}

	suggestions := f.clusterSuggestions(completed, target)
	return &Result{
		Path:     suggestions,
		Distance: float64(len(suggestions)),
		Reason:   ReasonClusterBased,
	}, nil
}

// directPath finds the cheapest weighted path from any completed concept
// to the target. The starting concept is stripped from the returned path
// since the learner already knows it. Completed IDs are tried in the
// graph's node order so equal-cost paths resolve deterministically.
func (f *Finder) directPath(completed map[string]bool, target string) *Result {
	var bestPath []string
	bestDist := Inf

	for _, n := range f.graph.Nodes() {
		if !completed[n.ID] {
			continue
		}
		path, dist := ShortestPath(f.graph, f.policy, n.ID, target)
		if path == nil {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			bestPath = path[1:]
		}
	}

	if bestPath == nil {
		return nil
	}
	return &Result{Path: bestPath, Distance: bestDist, Reason: ReasonDirectPath}
}

// missingPrerequisites walks backward from the target over incoming
// prerequisite and sequence edges, collecting every reachable concept the
// learner has not completed. The collected set is ordered by forward
// weighted distance to the target, closest first, with ties keeping
// discovery order. Interleaving across disjoint chains is intentional:
// the order users see follows graph distance, not chain grouping.
func (f *Finder) missingPrerequisites(completed map[string]bool, target string) []string {
	visited := make(map[string]bool, len(completed))
	for id := range completed {
		visited[id] = true
	}

	var missing []string
	inMissing := make(map[string]bool)
	queue := []string{target}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, pred := range f.graph.NeighborsIn(current, concept.EdgePrerequisite, concept.EdgeSequence) {
			if completed[pred] {
				continue
			}
			if !inMissing[pred] {
				inMissing[pred] = true
				missing = append(missing, pred)
			}
			queue = append(queue, pred)
		}
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return Distance(f.graph, f.policy, missing[i], target) <
			Distance(f.graph, f.policy, missing[j], target)
	})
	return missing
}

// clusterSuggestions returns up to maxClusterSuggestions topics from the
// target's cluster that the learner has not completed, simplest first.
func (f *Finder) clusterSuggestions(completed map[string]bool, target string) []string {
	if f.clusters == nil {
		return nil
	}
	members, ok := f.clusters.ClusterOf(target)
	if !ok {
		return nil
	}

	var candidates []string
	for _, id := range members {
		if id == target || completed[id] {
			continue
		}
		candidates = append(candidates, id)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return f.graph.Complexity(candidates[i]) < f.graph.Complexity(candidates[j])
	})

	if len(candidates) > f.maxClusterSuggestions {
		candidates = candidates[:f.maxClusterSuggestions]
	}
	return candidates
}
