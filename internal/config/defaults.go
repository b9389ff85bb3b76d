package config

import (
	"github.com/hargabyte/lx/internal/cluster"
	"github.com/hargabyte/lx/internal/weight"
)

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	pol := weight.DefaultPolicy()
	clu := cluster.DefaultConfig()
	return &Config{
		Weights: WeightsConfig{
			Prerequisite: pol.Prerequisite,
			Sequence:     pol.Sequence,
			Contains:     pol.Contains,
			LeadsTo:      pol.LeadsTo,
			Related:      pol.Related,
		},
		Clustering: ClusteringConfig{
			Eps:         clu.Eps,
			MinSamples:  clu.MinSamples,
			MaxFeatures: clu.MaxFeatures,
		},
		Path: PathConfig{
			ClusterSuggestions: 3,
		},
		Output: OutputConfig{
			DefaultFormat:  "yaml",
			DefaultDensity: "medium",
		},
	}
}

// Policy converts the weights section into a traversal cost policy.
func (w WeightsConfig) Policy() weight.Policy {
	return weight.Policy{
		Prerequisite: w.Prerequisite,
		Sequence:     w.Sequence,
		Contains:     w.Contains,
		LeadsTo:      w.LeadsTo,
		Related:      w.Related,
	}
}

// ClusterConfig converts the clustering section into engine parameters.
func (c ClusteringConfig) ClusterConfig() cluster.Config {
	return cluster.Config{
		Eps:         c.Eps,
		MinSamples:  c.MinSamples,
		MaxFeatures: c.MaxFeatures,
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Weights = mergeWeightsConfig(loaded.Weights, defaults.Weights)
	result.Clustering = mergeClusteringConfig(loaded.Clustering, defaults.Clustering)
	result.Path = mergePathConfig(loaded.Path, defaults.Path)
	result.Output = mergeOutputConfig(loaded.Output, defaults.Output)

	return result
}

func mergeWeightsConfig(loaded, defaults WeightsConfig) WeightsConfig {
	result := loaded
	if result.Prerequisite == 0 {
		result.Prerequisite = defaults.Prerequisite
	}
	if result.Sequence == 0 {
		result.Sequence = defaults.Sequence
	}
	if result.Contains == 0 {
		result.Contains = defaults.Contains
	}
	if result.LeadsTo == 0 {
		result.LeadsTo = defaults.LeadsTo
	}
	if result.Related == 0 {
		result.Related = defaults.Related
	}
	return result
}

func mergeClusteringConfig(loaded, defaults ClusteringConfig) ClusteringConfig {
	result := loaded
	if result.Eps == 0 {
		result.Eps = defaults.Eps
	}
	if result.MinSamples == 0 {
		result.MinSamples = defaults.MinSamples
	}
	if result.MaxFeatures == 0 {
		result.MaxFeatures = defaults.MaxFeatures
	}
	return result
}

func mergePathConfig(loaded, defaults PathConfig) PathConfig {
	result := loaded
	if result.ClusterSuggestions == 0 {
		result.ClusterSuggestions = defaults.ClusterSuggestions
	}
	return result
}

func mergeOutputConfig(loaded, defaults OutputConfig) OutputConfig {
	result := loaded
	if result.DefaultFormat == "" {
		result.DefaultFormat = defaults.DefaultFormat
	}
	if result.DefaultDensity == "" {
		result.DefaultDensity = defaults.DefaultDensity
	}
	return result
}
