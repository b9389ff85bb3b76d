// Package concept provides the in-memory knowledge graph of learning
// concepts. The graph is loaded once from a serialized snapshot and is
// read-only afterward, so any number of analysis queries may run against
// it concurrently without locking.
package concept

import "fmt"

// NodeType distinguishes top-level topics from their subtopics.
type NodeType string

const (
	NodeTopic    NodeType = "topic"
	NodeSubtopic NodeType = "subtopic"
)

// Level is the difficulty rating assigned to a concept.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// EdgeType classifies the relationship an edge represents.
// Prerequisite and sequence edges carry ordering constraints consumed by
// path finding; contains ties a subtopic to its owning topic; leads_to and
// related are soft suggestions.
type EdgeType string

const (
	EdgePrerequisite EdgeType = "prerequisite"
	EdgeSequence     EdgeType = "sequence"
	EdgeContains     EdgeType = "contains"
	EdgeLeadsTo      EdgeType = "leads_to"
	EdgeRelated      EdgeType = "related"
)

// Node is a single concept in the knowledge graph.
// Nodes are created at load time and never mutated.
type Node struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Type        NodeType `json:"type" yaml:"type"`
	Level       Level    `json:"level,omitempty" yaml:"level,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`

	// ParentTopic is the owning topic's ID, set only for subtopic nodes.
	ParentTopic string `json:"parent_topic,omitempty" yaml:"parent_topic,omitempty"`
}

// Edge is a directed, typed relationship between two nodes.
type Edge struct {
	Source string   `json:"source" yaml:"source"`
	Target string   `json:"target" yaml:"target"`
	Type   EdgeType `json:"type,omitempty" yaml:"type,omitempty"`
}

// MalformedGraphError reports a snapshot that cannot be loaded because a
// required field is missing or an invariant is violated. It is fatal: a
// process must not start on a malformed graph.
type MalformedGraphError struct {
	Reason string
}

func (e *MalformedGraphError) Error() string {
	return fmt.Sprintf("malformed graph snapshot: %s", e.Reason)
}

// UnknownConceptError reports a name or ID that does not resolve in the
// graph. Callers are expected to recover from it (report "not found" and
// ask for a different concept), never to crash.
type UnknownConceptError struct {
	Query string
}

func (e *UnknownConceptError) Error() string {
	return fmt.Sprintf("unknown concept: %q", e.Query)
}
