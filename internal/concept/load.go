package concept

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Snapshot is the serialized wire form of a knowledge graph.
type Snapshot struct {
	Nodes []*Node `json:"nodes"`
	Edges []Edge  `json:"edges"`
}

// LoadSnapshot parses a JSON snapshot into an immutable graph.
// A node without an id, or an edge without a source or target, makes the
// whole snapshot malformed: loading fails rather than producing a graph
// with silently dropped entries.
func LoadSnapshot(r io.Reader) (*Graph, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, &MalformedGraphError{Reason: fmt.Sprintf("decode: %v", err)}
	}
	return BuildGraph(snap)
}

// LoadSnapshotFile reads and parses a snapshot from disk.
func LoadSnapshotFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return LoadSnapshot(f)
}

// BuildGraph validates a decoded snapshot and assembles the graph.
func BuildGraph(snap Snapshot) (*Graph, error) {
	g := NewGraph()

	for i, n := range snap.Nodes {
		if n == nil || n.ID == "" {
			return nil, &MalformedGraphError{Reason: fmt.Sprintf("node %d has no id", i)}
		}
		g.addNode(n)
	}

	for i, e := range snap.Edges {
		if e.Source == "" {
			return nil, &MalformedGraphError{Reason: fmt.Sprintf("edge %d has no source", i)}
		}
		if e.Target == "" {
			return nil, &MalformedGraphError{Reason: fmt.Sprintf("edge %d has no target", i)}
		}
		if err := checkContainsInvariant(g, e); err != nil {
			return nil, err
		}
		g.addEdge(e)
	}

	return g, nil
}

// checkContainsInvariant enforces that contains edges go from a topic to
// one of its own subtopics. Edges to unknown nodes are left alone; they
// never match a lookup.
func checkContainsInvariant(g *Graph, e Edge) error {
	if e.Type != EdgeContains {
		return nil
	}
	src := g.Node(e.Source)
	dst := g.Node(e.Target)
	if src == nil || dst == nil {
		return nil
	}
	if src.Type != NodeTopic || dst.Type != NodeSubtopic {
		return &MalformedGraphError{
			Reason: fmt.Sprintf("contains edge %s -> %s must go from a topic to a subtopic", e.Source, e.Target),
		}
	}
	if dst.ParentTopic != "" && dst.ParentTopic != e.Source {
		return &MalformedGraphError{
			Reason: fmt.Sprintf("subtopic %s has parent_topic %s but is contained by %s", e.Target, dst.ParentTopic, e.Source),
		}
	}
	return nil
}
