package output

import (
	"strings"
	"testing"

	"github.com/hargabyte/lx/internal/concept"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{" json ", FormatJSON, false},
		{"cgf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDensity(t *testing.T) {
	tests := []struct {
		input   string
		want    Density
		wantErr bool
	}{
		{"sparse", DensitySparse, false},
		{"medium", DensityMedium, false},
		{"dense", DensityDense, false},
		{"DENSE", DensityDense, false},
		{"smart", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDensity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDensity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDensity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetFormatter(t *testing.T) {
	if _, err := GetFormatter(FormatYAML); err != nil {
		t.Errorf("GetFormatter(yaml): %v", err)
	}
	if _, err := GetFormatter(FormatJSON); err != nil {
		t.Errorf("GetFormatter(json): %v", err)
	}
	if _, err := GetFormatter(Format("xml")); err == nil {
		t.Error("GetFormatter(xml) succeeded, want error")
	}
}

func TestYAMLFormatter(t *testing.T) {
	f := NewYAMLFormatter()
	out, err := f.Format(PathOutput{
		Target: ConceptRef{ID: "bst", Name: "Binary Search Tree"},
		Reason: "direct_path",
	}, DensityMedium)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "id: bst") || !strings.Contains(out, "reason: direct_path") {
		t.Errorf("unexpected YAML output:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter()
	out, err := f.Format(FindOutput{Query: "tree", Count: 0}, DensityMedium)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, `"query": "tree"`) {
		t.Errorf("unexpected JSON output:\n%s", out)
	}
}

func TestRefDensity(t *testing.T) {
	n := &concept.Node{
		ID:          "bst",
		Name:        "Binary Search Tree",
		Type:        concept.NodeTopic,
		Level:       concept.LevelIntermediate,
		Description: "ordered binary tree",
	}

	sparse := Ref(n, DensitySparse)
	if sparse.ID != "bst" || sparse.Name != "" || sparse.Description != "" {
		t.Errorf("sparse ref = %+v, want ID only", sparse)
	}

	medium := Ref(n, DensityMedium)
	if medium.Name != "Binary Search Tree" || medium.Level != "intermediate" {
		t.Errorf("medium ref = %+v", medium)
	}
	if medium.Description != "" {
		t.Errorf("medium ref carries description: %+v", medium)
	}

	dense := Ref(n, DensityDense)
	if dense.Description != "ordered binary tree" {
		t.Errorf("dense ref = %+v, want description", dense)
	}

	if ref := Ref(nil, DensityDense); ref.ID != "" {
		t.Errorf("Ref(nil) = %+v, want zero value", ref)
	}
}

func TestRefs(t *testing.T) {
	g, err := concept.BuildGraph(concept.Snapshot{
		Nodes: []*concept.Node{
			{ID: "a", Name: "A Topic", Type: concept.NodeTopic},
		},
	})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	refs := Refs(g, []string{"a", "ghost"}, DensityMedium)
	if len(refs) != 2 {
		t.Fatalf("Refs returned %d entries, want 2", len(refs))
	}
	if refs[0].Name != "A Topic" {
		t.Errorf("refs[0] = %+v", refs[0])
	}
	// Unknown IDs degrade to bare references
	if refs[1].ID != "ghost" || refs[1].Name != "" {
		t.Errorf("refs[1] = %+v, want bare ghost ref", refs[1])
	}
}
