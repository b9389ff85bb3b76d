package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the lx configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the lx configuration directory
const ConfigDirName = ".lx"

// Config holds all lx configuration
type Config struct {
	Weights    WeightsConfig    `yaml:"weights"`
	Clustering ClusteringConfig `yaml:"clustering"`
	Path       PathConfig       `yaml:"path"`
	Output     OutputConfig     `yaml:"output"`
}

// WeightsConfig holds the edge traversal cost table. Lower cost means
// higher traversal priority; values must keep the strict ordering
// prerequisite < sequence < contains < leads_to < related.
type WeightsConfig struct {
	Prerequisite float64 `yaml:"prerequisite"`
	Sequence     float64 `yaml:"sequence"`
	Contains     float64 `yaml:"contains"`
	LeadsTo      float64 `yaml:"leads_to"`
	Related      float64 `yaml:"related"`
}

// ClusteringConfig holds topic clustering parameters
type ClusteringConfig struct {
	Eps         float64 `yaml:"eps"`
	MinSamples  int     `yaml:"min_samples"`
	MaxFeatures int     `yaml:"max_features"`
}

// PathConfig holds path-finding parameters
type PathConfig struct {
	// ClusterSuggestions caps the cluster-based fallback result.
	ClusterSuggestions int `yaml:"cluster_suggestions"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	DefaultFormat  string `yaml:"default_format"`
	DefaultDensity string `yaml:"default_density"`
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .lx/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No config dir found, return defaults
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Merge with defaults
	merged := Merge(loaded, DefaultConfig())

	// Validate the merged config
	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .lx directory by walking up from startDir.
// Returns the path to the .lx directory if found.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, config not found
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .lx directory if it doesn't exist.
// Returns the path to the .lx directory.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return configDir, nil
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	if err := cfg.Weights.Policy().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if cfg.Clustering.Eps <= 0 {
		return fmt.Errorf("%w: clustering eps must be positive, got %f",
			ErrInvalidConfig, cfg.Clustering.Eps)
	}

	if cfg.Clustering.MinSamples < 1 {
		return fmt.Errorf("%w: clustering min_samples must be at least 1, got %d",
			ErrInvalidConfig, cfg.Clustering.MinSamples)
	}

	if cfg.Clustering.MaxFeatures <= 0 {
		return fmt.Errorf("%w: clustering max_features must be positive, got %d",
			ErrInvalidConfig, cfg.Clustering.MaxFeatures)
	}

	if cfg.Path.ClusterSuggestions <= 0 {
		return fmt.Errorf("%w: path cluster_suggestions must be positive, got %d",
			ErrInvalidConfig, cfg.Path.ClusterSuggestions)
	}

	return nil
}

// SaveDefault writes the default configuration to .lx/config.yaml in workDir.
// Creates the .lx directory if it doesn't exist.
func SaveDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	header := "# lx CLI configuration\n# See https://github.com/hargabyte/lx for documentation\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}
