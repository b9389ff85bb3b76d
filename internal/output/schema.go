package output

import "github.com/hargabyte/lx/internal/concept"

// ConceptRef is a compact node reference used across command outputs.
// Sparse output carries IDs only; medium adds name and level; dense adds
// the description. Commands populate fields according to density.
type ConceptRef struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Level       string `json:"level,omitempty" yaml:"level,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathOutput is the result of `lx path`.
type PathOutput struct {
	Target    ConceptRef   `json:"target" yaml:"target"`
	Completed []string     `json:"completed,omitempty" yaml:"completed,omitempty"`
	Reason    string       `json:"reason" yaml:"reason"`
	Distance  float64      `json:"distance" yaml:"distance"`
	Steps     []ConceptRef `json:"steps" yaml:"steps"`

	// Note carries the user-facing interpretation of the reason, e.g.
	// that cluster-based steps are related suggestions, not a strict
	// ordering.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// GapOutput is the result of `lx gaps`.
type GapOutput struct {
	Target               ConceptRef   `json:"target" yaml:"target"`
	CompletionPercentage float64      `json:"completion_percentage" yaml:"completion_percentage"`
	Completed            []ConceptRef `json:"completed,omitempty" yaml:"completed,omitempty"`
	Missing              []ConceptRef `json:"missing" yaml:"missing"`
	Prerequisites        []ConceptRef `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
}

// ClusterOutput describes one topic cluster.
type ClusterOutput struct {
	Label  int          `json:"label" yaml:"label"`
	Topics []ConceptRef `json:"topics" yaml:"topics"`
}

// ClustersOutput is the result of `lx clusters`.
type ClustersOutput struct {
	Count    int             `json:"count" yaml:"count"`
	Clusters []ClusterOutput `json:"clusters" yaml:"clusters"`
}

// FindOutput is the result of `lx find`.
type FindOutput struct {
	Query   string       `json:"query" yaml:"query"`
	Count   int          `json:"count" yaml:"count"`
	Results []ConceptRef `json:"results" yaml:"results"`
}

// NodeOutput is the result of `lx show`: one concept with its typed
// relations resolved in both directions.
type NodeOutput struct {
	Concept   ConceptRef          `json:"concept" yaml:"concept"`
	Subtopics []ConceptRef        `json:"subtopics,omitempty" yaml:"subtopics,omitempty"`
	Outgoing  map[string][]string `json:"outgoing,omitempty" yaml:"outgoing,omitempty"`
	Incoming  map[string][]string `json:"incoming,omitempty" yaml:"incoming,omitempty"`
}

// StatsOutput is the result of `lx stats`.
type StatsOutput struct {
	Nodes     int            `json:"nodes" yaml:"nodes"`
	Edges     int            `json:"edges" yaml:"edges"`
	Topics    int            `json:"topics" yaml:"topics"`
	Subtopics int            `json:"subtopics" yaml:"subtopics"`
	EdgeTypes map[string]int `json:"edge_types" yaml:"edge_types"`
	Clusters  int            `json:"clusters" yaml:"clusters"`
}

// PlanWeek is one week of a generated study plan.
type PlanWeek struct {
	Week    int        `json:"week" yaml:"week"`
	Concept ConceptRef `json:"concept" yaml:"concept"`
	Focus   string     `json:"focus" yaml:"focus"`
	Phases  []string   `json:"phases,omitempty" yaml:"phases,omitempty"`
}

// PlanOutput is the result of `lx plan`.
type PlanOutput struct {
	From       ConceptRef `json:"from" yaml:"from"`
	To         ConceptRef `json:"to" yaml:"to"`
	Route      string     `json:"route" yaml:"route"`
	TotalWeeks int        `json:"total_weeks" yaml:"total_weeks"`
	Weeks      []PlanWeek `json:"weeks" yaml:"weeks"`
}

// Ref builds a ConceptRef from a node at the given density.
func Ref(n *concept.Node, d Density) ConceptRef {
	if n == nil {
		return ConceptRef{}
	}
	ref := ConceptRef{ID: n.ID}
	if d == DensitySparse {
		return ref
	}
	ref.Name = n.Name
	ref.Type = string(n.Type)
	ref.Level = string(n.Level)
	if d == DensityDense {
		ref.Description = n.Description
	}
	return ref
}

// Refs maps node IDs to ConceptRefs at the given density. IDs with no
// node in the graph come back as bare ID references.
func Refs(g *concept.Graph, ids []string, d Density) []ConceptRef {
	refs := make([]ConceptRef, 0, len(ids))
	for _, id := range ids {
		if n := g.Node(id); n != nil {
			refs = append(refs, Ref(n, d))
		} else {
			refs = append(refs, ConceptRef{ID: id})
		}
	}
	return refs
}
