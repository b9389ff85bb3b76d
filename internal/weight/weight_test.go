package weight

import (
	"testing"

	"github.com/hargabyte/lx/internal/concept"
)

func TestDefaultPolicyCosts(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		edgeType concept.EdgeType
		want     float64
	}{
		{concept.EdgePrerequisite, 0.1},
		{concept.EdgeSequence, 0.2},
		{concept.EdgeContains, 0.3},
		{concept.EdgeLeadsTo, 0.5},
		{concept.EdgeRelated, 0.8},
		{concept.EdgeType("unknown"), DefaultCost},
		{concept.EdgeType(""), DefaultCost},
	}

	for _, tt := range tests {
		t.Run(string(tt.edgeType), func(t *testing.T) {
			if got := p.Cost(tt.edgeType); got != tt.want {
				t.Errorf("Cost(%q) = %g, want %g", tt.edgeType, got, tt.want)
			}
		})
	}
}

func TestDefaultPolicyValidates(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Errorf("DefaultPolicy().Validate() = %v", err)
	}
}

func TestValidateRejectsBadPolicies(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Policy)
	}{
		{"zero prerequisite", func(p *Policy) { p.Prerequisite = 0 }},
		{"negative prerequisite", func(p *Policy) { p.Prerequisite = -0.1 }},
		{"sequence below prerequisite", func(p *Policy) { p.Sequence = 0.05 }},
		{"contains equals sequence", func(p *Policy) { p.Contains = 0.2 }},
		{"related below leads_to", func(p *Policy) { p.Related = 0.4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.modify(&p)
			if err := p.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}
