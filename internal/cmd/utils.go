package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hargabyte/lx/internal/cluster"
	"github.com/hargabyte/lx/internal/concept"
	"github.com/hargabyte/lx/internal/config"
	"github.com/hargabyte/lx/internal/gaps"
	"github.com/hargabyte/lx/internal/output"
	"github.com/hargabyte/lx/internal/pathfind"
	"github.com/hargabyte/lx/internal/store"
)

// Shared plumbing for command implementations

// workspace bundles the loaded config, store, and graph a query command
// operates on.
type workspace struct {
	cfg   *config.Config
	store *store.Store
	graph *concept.Graph

	// partition is computed on first use; clustering the whole graph is
	// not free and most commands never need it.
	partition *cluster.Partition
}

// openWorkspace locates the .lx directory, loads config, and builds the
// graph from the snapshot database.
func openWorkspace() (*workspace, error) {
	lxDir, err := config.FindConfigDir(".")
	if err != nil {
		return nil, fmt.Errorf("lx not initialized: run 'lx init && lx import <file>' first")
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	storeDB, err := store.Open(lxDir)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	g, err := storeDB.LoadGraph()
	if err != nil {
		storeDB.Close()
		return nil, fmt.Errorf("loading graph: %w", err)
	}
	if g.NodeCount() == 0 {
		storeDB.Close()
		return nil, fmt.Errorf("graph is empty: run 'lx import <file>' first")
	}

	verbosef("loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	return &workspace{cfg: cfg, store: storeDB, graph: g}, nil
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load(".")
}

func (w *workspace) Close() {
	if w.store != nil {
		w.store.Close()
	}
}

// clusters computes the topic partition on demand and caches it.
func (w *workspace) clusters() *cluster.Partition {
	if w.partition == nil {
		engine := cluster.NewEngine(w.cfg.Clustering.ClusterConfig())
		w.partition = engine.Partition(w.graph)
		verbosef("clustered %d topics into %d clusters", len(w.graph.Topics()), w.partition.Size())
	}
	return w.partition
}

// finder builds a path finder wired to the configured weights and
// cluster suggestion limit.
func (w *workspace) finder() *pathfind.Finder {
	return pathfind.NewFinder(w.graph, w.cfg.Weights.Policy(), w.clusters(),
		pathfind.WithClusterSuggestionLimit(w.cfg.Path.ClusterSuggestions))
}

func (w *workspace) analyzer() *gaps.Analyzer {
	return gaps.NewAnalyzer(w.graph)
}

// resolveConcept resolves a name or ID, turning an unknown concept into a
// hint the user can act on.
func (w *workspace) resolveConcept(query string) (string, error) {
	id, err := w.graph.Resolve(query)
	if err != nil {
		var unknown *concept.UnknownConceptError
		if errors.As(err, &unknown) {
			return "", fmt.Errorf("%w: try 'lx find %q' or rephrase", err, query)
		}
		return "", err
	}
	return id, nil
}

// resolveCompletedList resolves a list of names or IDs into a completed
// set. Every entry must resolve; a typo in the completed list would
// silently change the analysis otherwise.
func (w *workspace) resolveCompletedList(entries []string) (map[string]bool, error) {
	set := make(map[string]bool, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, err := w.resolveConcept(entry)
		if err != nil {
			return nil, err
		}
		set[id] = true
	}
	return set, nil
}

// selectedDensity parses the global --density flag.
func selectedDensity() (output.Density, error) {
	return output.ParseDensity(outputDensity)
}

// printResult writes v to stdout in the selected format and density.
func printResult(v interface{}) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	density, err := selectedDensity()
	if err != nil {
		return err
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.FormatToWriter(os.Stdout, v, density)
}

// verbosef logs to stderr when --verbose is set.
func verbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "lx: "+format+"\n", args...)
	}
}
