package concept

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadSnapshot(t *testing.T) {
	snapshot := `{
		"nodes": [
			{"id": "sorting", "name": "Sorting", "type": "topic", "level": "beginner"},
			{"id": "bubble", "name": "Bubble Sort", "type": "subtopic", "parent_topic": "sorting"}
		],
		"edges": [
			{"source": "sorting", "target": "bubble", "type": "contains"}
		]
	}`

	g, err := LoadSnapshot(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("loaded %d nodes, %d edges; want 2, 1", g.NodeCount(), g.EdgeCount())
	}
	if g.Node("bubble").ParentTopic != "sorting" {
		t.Errorf("parent_topic not preserved: %+v", g.Node("bubble"))
	}
}

func TestLoadSnapshotBadJSON(t *testing.T) {
	_, err := LoadSnapshot(strings.NewReader("{not json"))
	var malformed *MalformedGraphError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedGraphError", err)
	}
}

func TestBuildGraphMalformed(t *testing.T) {
	topic := &Node{ID: "t", Name: "T", Type: NodeTopic}
	other := &Node{ID: "u", Name: "U", Type: NodeTopic}
	sub := &Node{ID: "s", Name: "S", Type: NodeSubtopic, ParentTopic: "t"}

	tests := []struct {
		name string
		snap Snapshot
	}{
		{
			name: "node without id",
			snap: Snapshot{Nodes: []*Node{{Name: "anonymous"}}},
		},
		{
			name: "edge without source",
			snap: Snapshot{
				Nodes: []*Node{topic},
				Edges: []Edge{{Target: "t", Type: EdgeRelated}},
			},
		},
		{
			name: "edge without target",
			snap: Snapshot{
				Nodes: []*Node{topic},
				Edges: []Edge{{Source: "t", Type: EdgeRelated}},
			},
		},
		{
			name: "contains between two topics",
			snap: Snapshot{
				Nodes: []*Node{topic, other},
				Edges: []Edge{{Source: "t", Target: "u", Type: EdgeContains}},
			},
		},
		{
			name: "contains from foreign topic",
			snap: Snapshot{
				Nodes: []*Node{topic, other, sub},
				Edges: []Edge{{Source: "u", Target: "s", Type: EdgeContains}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildGraph(tt.snap)
			var malformed *MalformedGraphError
			if !errors.As(err, &malformed) {
				t.Errorf("BuildGraph error = %v, want MalformedGraphError", err)
			}
		})
	}
}

func TestBuildGraphToleratesDanglingEdges(t *testing.T) {
	// Edges to nodes outside the snapshot are kept; lookups never see them.
	g, err := BuildGraph(Snapshot{
		Nodes: []*Node{{ID: "t", Name: "T", Type: NodeTopic}},
		Edges: []Edge{{Source: "t", Target: "ghost", Type: EdgeContains}},
	})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if subs := g.SubtopicsOf("t"); subs != nil {
		t.Errorf("SubtopicsOf(t) = %v, want nil", subs)
	}
}
