// Package cluster groups topic nodes by content and structural similarity.
// The partition backs the path finder's last-resort strategy: when no
// graph path reaches a target, topics from the same cluster are suggested
// instead. Cluster membership is a heuristic, not a contract — the only
// guaranteed property is that every topic lands in exactly one cluster.
package cluster

import (
	"sort"

	"github.com/hargabyte/lx/internal/concept"
)

// Config holds clustering parameters.
type Config struct {
	// Eps is the DBSCAN neighborhood radius.
	Eps float64
	// MinSamples is the DBSCAN density threshold. 1 guarantees every
	// topic is assigned, singletons included.
	MinSamples int
	// MaxFeatures bounds the TF-IDF vocabulary size.
	MaxFeatures int
}

// DefaultConfig returns the standard clustering parameters.
func DefaultConfig() Config {
	return Config{
		Eps:         0.5,
		MinSamples:  1,
		MaxFeatures: 100,
	}
}

// Partition is a hard partition of topic IDs into clusters.
type Partition struct {
	clusters map[int][]string
	byTopic  map[string]int
}

// Size returns the number of clusters.
func (p *Partition) Size() int {
	return len(p.clusters)
}

// Label returns the cluster label a topic was assigned, if any.
func (p *Partition) Label(topicID string) (int, bool) {
	label, ok := p.byTopic[topicID]
	return label, ok
}

// ClusterOf returns the members of the cluster containing topicID,
// including topicID itself, in assignment order.
func (p *Partition) ClusterOf(topicID string) ([]string, bool) {
	label, ok := p.byTopic[topicID]
	if !ok {
		return nil, false
	}
	return p.clusters[label], true
}

// Labels returns all cluster labels in ascending order.
func (p *Partition) Labels() []int {
	labels := make([]int, 0, len(p.clusters))
	for l := range p.clusters {
		labels = append(labels, l)
	}
	sort.Ints(labels)
	return labels
}

// Members returns the topic IDs assigned to a label, in assignment order.
func (p *Partition) Members(label int) []string {
	return p.clusters[label]
}

// Engine clusters the topics of a concept graph.
type Engine struct {
	cfg Config
}

// NewEngine creates a clustering engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	if cfg.Eps <= 0 {
		cfg.Eps = DefaultConfig().Eps
	}
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = 1
	}
	if cfg.MaxFeatures <= 0 {
		cfg.MaxFeatures = DefaultConfig().MaxFeatures
	}
	return &Engine{cfg: cfg}
}

// Partition clusters all topic nodes of the graph. A graph with no topics
// yields an empty partition; this path never fails.
func (e *Engine) Partition(g *concept.Graph) *Partition {
	topics := g.Topics()
	p := &Partition{
		clusters: make(map[int][]string),
		byTopic:  make(map[string]int),
	}
	if len(topics) == 0 {
		return p
	}

	ids, matrix := buildFeatureMatrix(g, topics, e.cfg.MaxFeatures)
	labels := dbscan(matrix, e.cfg.Eps, e.cfg.MinSamples)

	for i, id := range ids {
		label := labels[i]
		p.clusters[label] = append(p.clusters[label], id)
		p.byTopic[id] = label
	}
	return p
}
