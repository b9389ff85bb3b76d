package pathfind

import (
	"math"
	"reflect"
	"testing"

	"github.com/hargabyte/lx/internal/concept"
	"github.com/hargabyte/lx/internal/weight"
)

func buildGraph(t *testing.T, nodes []*concept.Node, edges []concept.Edge) *concept.Graph {
	t.Helper()
	g, err := concept.BuildGraph(concept.Snapshot{Nodes: nodes, Edges: edges})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	return g
}

func topics(ids ...string) []*concept.Node {
	nodes := make([]*concept.Node, len(ids))
	for i, id := range ids {
		nodes[i] = &concept.Node{ID: id, Name: id, Type: concept.NodeTopic}
	}
	return nodes
}

func TestShortestPathChain(t *testing.T) {
	g := buildGraph(t, topics("a", "b", "c"), []concept.Edge{
		{Source: "a", Target: "b", Type: concept.EdgeSequence},
		{Source: "b", Target: "c", Type: concept.EdgeSequence},
	})

	path, dist := ShortestPath(g, weight.DefaultPolicy(), "a", "c")
	if !reflect.DeepEqual(path, []string{"a", "b", "c"}) {
		t.Errorf("path = %v, want [a b c]", path)
	}
	if math.Abs(dist-0.4) > 1e-9 {
		t.Errorf("dist = %g, want 0.4", dist)
	}
}

func TestShortestPathPrefersCheapEdgeTypes(t *testing.T) {
	// Two hops over prerequisite edges (0.2 total) beat one hop over a
	// related edge (0.8).
	g := buildGraph(t, topics("a", "mid", "z"), []concept.Edge{
		{Source: "a", Target: "z", Type: concept.EdgeRelated},
		{Source: "a", Target: "mid", Type: concept.EdgePrerequisite},
		{Source: "mid", Target: "z", Type: concept.EdgePrerequisite},
	})

	path, dist := ShortestPath(g, weight.DefaultPolicy(), "a", "z")
	if !reflect.DeepEqual(path, []string{"a", "mid", "z"}) {
		t.Errorf("path = %v, want [a mid z]", path)
	}
	if math.Abs(dist-0.2) > 1e-9 {
		t.Errorf("dist = %g, want 0.2", dist)
	}
}

func TestShortestPathRespectsPolicyChanges(t *testing.T) {
	// Inverting relative costs flips which route wins.
	g := buildGraph(t, topics("a", "mid", "z"), []concept.Edge{
		{Source: "a", Target: "z", Type: concept.EdgeLeadsTo},
		{Source: "a", Target: "mid", Type: concept.EdgePrerequisite},
		{Source: "mid", Target: "z", Type: concept.EdgePrerequisite},
	})

	pol := weight.Policy{Prerequisite: 0.3, Sequence: 0.35, Contains: 0.4, LeadsTo: 0.5, Related: 0.9}
	if err := pol.Validate(); err != nil {
		t.Fatalf("policy should be valid: %v", err)
	}

	path, _ := ShortestPath(g, pol, "a", "z")
	if !reflect.DeepEqual(path, []string{"a", "z"}) {
		t.Errorf("path = %v, want direct [a z] under raised prerequisite cost", path)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := buildGraph(t, topics("a", "b"), nil)

	path, dist := ShortestPath(g, weight.DefaultPolicy(), "a", "b")
	if path != nil {
		t.Errorf("path = %v, want nil", path)
	}
	if !math.IsInf(dist, 1) {
		t.Errorf("dist = %g, want +Inf", dist)
	}
}

func TestShortestPathIgnoresEdgeDirection(t *testing.T) {
	// Only forward edges are traversed.
	g := buildGraph(t, topics("a", "b"), []concept.Edge{
		{Source: "b", Target: "a", Type: concept.EdgeSequence},
	})

	if path, _ := ShortestPath(g, weight.DefaultPolicy(), "a", "b"); path != nil {
		t.Errorf("path = %v, want nil over reversed edge", path)
	}
}

func TestShortestPathSameNode(t *testing.T) {
	g := buildGraph(t, topics("a"), nil)

	path, dist := ShortestPath(g, weight.DefaultPolicy(), "a", "a")
	if !reflect.DeepEqual(path, []string{"a"}) || dist != 0 {
		t.Errorf("ShortestPath(a, a) = (%v, %g), want ([a], 0)", path, dist)
	}
}
