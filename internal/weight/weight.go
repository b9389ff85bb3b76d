// Package weight maps edge types to traversal costs for shortest-path
// search. Lower cost means higher priority: prerequisite and sequence
// edges represent mandatory ordering and must dominate path selection,
// contains ties a subtopic tightly to its topic, and leads_to/related are
// soft suggestions chosen only when nothing stronger exists. Downstream
// path selection depends on the relative ordering of these costs, not on
// their literal magnitudes.
package weight

import (
	"fmt"

	"github.com/hargabyte/lx/internal/concept"
)

// DefaultCost is the traversal cost of an edge with an unrecognized type.
const DefaultCost = 1.0

// Policy assigns a traversal cost to each edge type.
type Policy struct {
	Prerequisite float64
	Sequence     float64
	Contains     float64
	LeadsTo      float64
	Related      float64
}

// DefaultPolicy returns the standard cost table.
func DefaultPolicy() Policy {
	return Policy{
		Prerequisite: 0.1,
		Sequence:     0.2,
		Contains:     0.3,
		LeadsTo:      0.5,
		Related:      0.8,
	}
}

// Cost returns the traversal cost for an edge type.
func (p Policy) Cost(t concept.EdgeType) float64 {
	switch t {
	case concept.EdgePrerequisite:
		return p.Prerequisite
	case concept.EdgeSequence:
		return p.Sequence
	case concept.EdgeContains:
		return p.Contains
	case concept.EdgeLeadsTo:
		return p.LeadsTo
	case concept.EdgeRelated:
		return p.Related
	default:
		return DefaultCost
	}
}

// Validate rejects cost tables that break the required strict ordering
// prerequisite < sequence < contains < leads_to < related, or that contain
// non-positive costs (shortest-path search assumes positive weights).
func (p Policy) Validate() error {
	if p.Prerequisite <= 0 {
		return fmt.Errorf("edge costs must be positive, prerequisite is %g", p.Prerequisite)
	}
	ordered := p.Prerequisite < p.Sequence &&
		p.Sequence < p.Contains &&
		p.Contains < p.LeadsTo &&
		p.LeadsTo < p.Related
	if !ordered {
		return fmt.Errorf("edge costs must satisfy prerequisite < sequence < contains < leads_to < related, got %g < %g < %g < %g < %g",
			p.Prerequisite, p.Sequence, p.Contains, p.LeadsTo, p.Related)
	}
	return nil
}
