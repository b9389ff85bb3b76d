package concept

import "strings"

// Graph is an immutable directed graph of concept nodes with typed edges.
// Node and edge iteration follows insertion order, which makes every query
// deterministic for a given snapshot.
type Graph struct {
	nodes    []*Node // insertion order
	nodeByID map[string]*Node

	// Adjacency lists keyed by node ID, in edge insertion order.
	out map[string][]Edge
	in  map[string][]Edge

	// Global edge list in snapshot order, so a persisted graph round-trips
	// with the same edge interleaving the snapshot had.
	edges []Edge
}

// NewGraph returns an empty graph. Nodes and edges are added during load;
// after that the graph is treated as read-only.
func NewGraph() *Graph {
	return &Graph{
		nodeByID: make(map[string]*Node),
		out:      make(map[string][]Edge),
		in:       make(map[string][]Edge),
	}
}

// addNode registers a node. Later duplicates of an ID are ignored so the
// first occurrence in the snapshot wins.
func (g *Graph) addNode(n *Node) {
	if _, ok := g.nodeByID[n.ID]; ok {
		return
	}
	g.nodes = append(g.nodes, n)
	g.nodeByID[n.ID] = n
}

// addEdge registers a directed edge. Endpoints do not have to be known
// nodes; dangling edges simply never match a lookup.
func (g *Graph) addEdge(e Edge) {
	if e.Type == "" {
		e.Type = EdgeRelated
	}
	g.out[e.Source] = append(g.out[e.Source], e)
	g.in[e.Target] = append(g.in[e.Target], e)
	g.edges = append(g.edges, e)
}

// Node returns the node with the given ID, or nil if absent.
func (g *Graph) Node(id string) *Node {
	return g.nodeByID[id]
}

// HasNode reports whether the ID resolves to a node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeByID[id]
	return ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Topics returns all topic nodes in insertion order.
func (g *Graph) Topics() []*Node {
	var topics []*Node
	for _, n := range g.nodes {
		if n.Type == NodeTopic {
			topics = append(topics, n)
		}
	}
	return topics
}

// Subtopics returns all subtopic nodes in insertion order.
func (g *Graph) Subtopics() []*Node {
	var subs []*Node
	for _, n := range g.nodes {
		if n.Type == NodeSubtopic {
			subs = append(subs, n)
		}
	}
	return subs
}

// matchesType reports whether an edge type passes the filter set.
// An empty filter admits every type.
func matchesType(t EdgeType, filter []EdgeType) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if t == f {
			return true
		}
	}
	return false
}

// EdgesOut returns the outgoing edges of a node, optionally filtered by
// type, in insertion order.
func (g *Graph) EdgesOut(id string, types ...EdgeType) []Edge {
	var edges []Edge
	for _, e := range g.out[id] {
		if matchesType(e.Type, types) {
			edges = append(edges, e)
		}
	}
	return edges
}

// EdgesIn returns the incoming edges of a node, optionally filtered by
// type, in insertion order.
func (g *Graph) EdgesIn(id string, types ...EdgeType) []Edge {
	var edges []Edge
	for _, e := range g.in[id] {
		if matchesType(e.Type, types) {
			edges = append(edges, e)
		}
	}
	return edges
}

// NeighborsOut returns the targets of a node's outgoing edges, optionally
// filtered by edge type, in insertion order.
func (g *Graph) NeighborsOut(id string, types ...EdgeType) []string {
	var ids []string
	for _, e := range g.out[id] {
		if matchesType(e.Type, types) {
			ids = append(ids, e.Target)
		}
	}
	return ids
}

// NeighborsIn returns the sources of a node's incoming edges, optionally
// filtered by edge type, in insertion order.
func (g *Graph) NeighborsIn(id string, types ...EdgeType) []string {
	var ids []string
	for _, e := range g.in[id] {
		if matchesType(e.Type, types) {
			ids = append(ids, e.Source)
		}
	}
	return ids
}

// OutDegree returns the number of outgoing edges from a node.
func (g *Graph) OutDegree(id string) int {
	return len(g.out[id])
}

// InDegree returns the number of incoming edges to a node.
func (g *Graph) InDegree(id string) int {
	return len(g.in[id])
}

// Degree returns the total number of edges touching a node.
func (g *Graph) Degree(id string) int {
	return len(g.in[id]) + len(g.out[id])
}

// SubtopicsOf returns the subtopics a topic contains, resolved through its
// outgoing contains edges in insertion order.
func (g *Graph) SubtopicsOf(topicID string) []string {
	var subs []string
	for _, e := range g.out[topicID] {
		if e.Type != EdgeContains {
			continue
		}
		if n := g.nodeByID[e.Target]; n != nil && n.Type == NodeSubtopic {
			subs = append(subs, e.Target)
		}
	}
	return subs
}

// ParentTopics returns the topic nodes that point at a subtopic, in edge
// insertion order.
func (g *Graph) ParentTopics(subtopicID string) []string {
	var parents []string
	for _, e := range g.in[subtopicID] {
		if n := g.nodeByID[e.Source]; n != nil && n.Type == NodeTopic {
			parents = append(parents, e.Source)
		}
	}
	return parents
}

// SubtopicCount returns the number of subtopics a topic contains.
func (g *Graph) SubtopicCount(topicID string) int {
	return len(g.SubtopicsOf(topicID))
}

// PrerequisiteCount returns the number of incoming prerequisite edges.
func (g *Graph) PrerequisiteCount(id string) int {
	return len(g.EdgesIn(id, EdgePrerequisite))
}

// Complexity scores how demanding a topic is to learn: subtopic volume
// plus doubly-weighted prerequisites.
func (g *Graph) Complexity(topicID string) int {
	return g.SubtopicCount(topicID) + 2*g.PrerequisiteCount(topicID)
}

// FindByName resolves a display name to a node ID, case-insensitively.
// Exact matches win. Otherwise substring matches are considered in both
// directions (query inside name, name inside query); with several
// candidates the shortest stored name is taken as the most specific, ties
// broken by insertion order. The same query always resolves to the same ID
// for a fixed graph.
func (g *Graph) FindByName(name string) (string, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return "", false
	}

	for _, n := range g.nodes {
		if strings.ToLower(n.Name) == query {
			return n.ID, true
		}
	}

	bestID := ""
	bestLen := -1
	for _, n := range g.nodes {
		stored := strings.ToLower(n.Name)
		if !strings.Contains(stored, query) && !strings.Contains(query, stored) {
			continue
		}
		if bestLen < 0 || len(stored) < bestLen {
			bestID = n.ID
			bestLen = len(stored)
		}
	}
	if bestID != "" {
		return bestID, true
	}
	return "", false
}

// Search returns every node whose name contains the query,
// case-insensitive, in insertion order. An empty query matches nothing.
func (g *Graph) Search(query string) []*Node {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []*Node
	for _, n := range g.nodes {
		if strings.Contains(strings.ToLower(n.Name), q) {
			matches = append(matches, n)
		}
	}
	return matches
}

// Resolve accepts either a node ID or a display name and returns the node
// ID. An input that matches neither yields an UnknownConceptError.
func (g *Graph) Resolve(query string) (string, error) {
	if g.HasNode(query) {
		return query, nil
	}
	if id, ok := g.FindByName(query); ok {
		return id, nil
	}
	return "", &UnknownConceptError{Query: query}
}
