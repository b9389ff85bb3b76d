package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Verify weight defaults
	if cfg.Weights.Prerequisite != 0.1 {
		t.Errorf("expected prerequisite 0.1, got %f", cfg.Weights.Prerequisite)
	}
	if cfg.Weights.Sequence != 0.2 {
		t.Errorf("expected sequence 0.2, got %f", cfg.Weights.Sequence)
	}
	if cfg.Weights.Contains != 0.3 {
		t.Errorf("expected contains 0.3, got %f", cfg.Weights.Contains)
	}
	if cfg.Weights.LeadsTo != 0.5 {
		t.Errorf("expected leads_to 0.5, got %f", cfg.Weights.LeadsTo)
	}
	if cfg.Weights.Related != 0.8 {
		t.Errorf("expected related 0.8, got %f", cfg.Weights.Related)
	}

	// Verify clustering defaults
	if cfg.Clustering.Eps != 0.5 {
		t.Errorf("expected eps 0.5, got %f", cfg.Clustering.Eps)
	}
	if cfg.Clustering.MinSamples != 1 {
		t.Errorf("expected min_samples 1, got %d", cfg.Clustering.MinSamples)
	}
	if cfg.Clustering.MaxFeatures != 100 {
		t.Errorf("expected max_features 100, got %d", cfg.Clustering.MaxFeatures)
	}

	// Verify path defaults
	if cfg.Path.ClusterSuggestions != 3 {
		t.Errorf("expected cluster_suggestions 3, got %d", cfg.Path.ClusterSuggestions)
	}

	// Verify output defaults
	if cfg.Output.DefaultFormat != "yaml" {
		t.Errorf("expected default_format yaml, got %s", cfg.Output.DefaultFormat)
	}
	if cfg.Output.DefaultDensity != "medium" {
		t.Errorf("expected default_density medium, got %s", cfg.Output.DefaultDensity)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"negative prerequisite", func(c *Config) { c.Weights.Prerequisite = -1 }, true},
		{"weights out of order", func(c *Config) { c.Weights.Sequence = 0.05 }, true},
		{"zero eps", func(c *Config) { c.Clustering.Eps = 0 }, true},
		{"zero min_samples", func(c *Config) { c.Clustering.MinSamples = 0 }, true},
		{"negative max_features", func(c *Config) { c.Clustering.MaxFeatures = -1 }, true},
		{"zero cluster_suggestions", func(c *Config) { c.Path.ClusterSuggestions = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestMergeFillsZeroValues(t *testing.T) {
	loaded := &Config{}
	loaded.Weights.Prerequisite = 0.05
	loaded.Clustering.Eps = 0.9

	merged := Merge(loaded, DefaultConfig())

	// Loaded values win
	if merged.Weights.Prerequisite != 0.05 {
		t.Errorf("prerequisite = %f, want loaded 0.05", merged.Weights.Prerequisite)
	}
	if merged.Clustering.Eps != 0.9 {
		t.Errorf("eps = %f, want loaded 0.9", merged.Clustering.Eps)
	}

	// Zero values fall back to defaults
	if merged.Weights.Sequence != 0.2 {
		t.Errorf("sequence = %f, want default 0.2", merged.Weights.Sequence)
	}
	if merged.Clustering.MinSamples != 1 {
		t.Errorf("min_samples = %d, want default 1", merged.Clustering.MinSamples)
	}
	if merged.Path.ClusterSuggestions != 3 {
		t.Errorf("cluster_suggestions = %d, want default 3", merged.Path.ClusterSuggestions)
	}
	if merged.Output.DefaultFormat != "yaml" {
		t.Errorf("default_format = %s, want yaml", merged.Output.DefaultFormat)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `weights:
  prerequisite: 0.15
  sequence: 0.25
clustering:
  eps: 0.7
path:
  cluster_suggestions: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}

	if cfg.Weights.Prerequisite != 0.15 || cfg.Weights.Sequence != 0.25 {
		t.Errorf("loaded weights = %+v", cfg.Weights)
	}
	if cfg.Weights.Contains != 0.3 {
		t.Errorf("contains = %f, want merged default 0.3", cfg.Weights.Contains)
	}
	if cfg.Clustering.Eps != 0.7 {
		t.Errorf("eps = %f, want 0.7", cfg.Clustering.Eps)
	}
	if cfg.Path.ClusterSuggestions != 5 {
		t.Errorf("cluster_suggestions = %d, want 5", cfg.Path.ClusterSuggestions)
	}
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Weights.Prerequisite != 0.1 {
		t.Errorf("missing file should yield defaults, got %+v", cfg.Weights)
	}
}

func TestLoadFromPathInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// Inverted ordering must fail validation on load.
	content := `weights:
  prerequisite: 0.9
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := LoadFromPath(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadFromPath error = %v, want ErrInvalidConfig", err)
	}
}

func TestFindConfigDirWalksUp(t *testing.T) {
	root := t.TempDir()
	lxDir := filepath.Join(root, ConfigDirName)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(lxDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindConfigDir(nested)
	if err != nil {
		t.Fatalf("FindConfigDir: %v", err)
	}
	if found != lxDir {
		t.Errorf("FindConfigDir = %q, want %q", found, lxDir)
	}
}

func TestFindConfigDirNotFound(t *testing.T) {
	_, err := FindConfigDir(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("FindConfigDir error = %v, want ErrConfigNotFound", err)
	}
}

func TestSaveDefault(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveDefault(dir)
	if err != nil {
		t.Fatalf("SaveDefault: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath on saved config: %v", err)
	}
	if cfg.Weights.Prerequisite != 0.1 || cfg.Path.ClusterSuggestions != 3 {
		t.Errorf("saved config does not round-trip to defaults: %+v", cfg)
	}

	// A second save must not clobber the existing file.
	if _, err := SaveDefault(dir); err == nil {
		t.Error("second SaveDefault succeeded, want error")
	}
}
