// Package render generates Mermaid diagrams from concept graphs.
package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hargabyte/lx/internal/concept"
)

// MermaidOptions configures Mermaid diagram generation.
type MermaidOptions struct {
	MaxNodes  int    // Maximum nodes before auto-collapsing (default: 30)
	Direction string // Layout direction: "TD" (top-down) or "LR" (left-right)
	Collapse  bool   // Auto-collapse to topics when > MaxNodes
	Title     string // Optional diagram title
	Focus     string // Optional topic ID to restrict the diagram to
}

// DefaultMermaidOptions returns sensible defaults for Mermaid diagram generation.
func DefaultMermaidOptions() *MermaidOptions {
	return &MermaidOptions{
		MaxNodes:  30,
		Direction: "LR",
		Collapse:  true,
	}
}

// GenerateMermaid renders a concept graph as a Mermaid flowchart.
// Topics are drawn as hexagons and subtopics as rounded rectangles, with
// edge arrow styles varying by relationship type. When Focus is set, only
// the focused topic, its subtopics, and its immediate topic neighbors are
// included.
func GenerateMermaid(g *concept.Graph, opts *MermaidOptions) string {
	if opts == nil {
		opts = DefaultMermaidOptions()
	}
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = 30
	}
	if opts.Direction != "TD" && opts.Direction != "LR" {
		opts.Direction = "LR"
	}

	include := selectNodes(g, opts.Focus)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("flowchart %s\n", opts.Direction))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf("    subgraph title[\"%s\"]\n", escapeMermaidString(opts.Title)))
		sb.WriteString("    end\n")
	}

	if opts.Collapse && len(include) > opts.MaxNodes {
		return generateCollapsedMermaid(g, include, &sb)
	}

	// Node declarations grouped under their parent topic where one exists.
	grouped := make(map[string][]*concept.Node)
	var loose []*concept.Node
	for _, n := range g.Nodes() {
		if !include[n.ID] {
			continue
		}
		if n.Type == concept.NodeSubtopic && n.ParentTopic != "" && include[n.ParentTopic] {
			grouped[n.ParentTopic] = append(grouped[n.ParentTopic], n)
		} else {
			loose = append(loose, n)
		}
	}

	for _, n := range loose {
		sb.WriteString(fmt.Sprintf("    %s\n", mermaidNode(n)))
		if children, ok := grouped[n.ID]; ok {
			sb.WriteString(fmt.Sprintf("    subgraph %s_sub[\" \"]\n", sanitizeMermaidID(n.ID)))
			for _, c := range children {
				sb.WriteString(fmt.Sprintf("        %s\n", mermaidNode(c)))
			}
			sb.WriteString("    end\n")
		}
	}

	// Edge declarations. Contains edges are implied by the subgraph grouping
	// and skipped when both endpoints were grouped.
	for _, n := range g.Nodes() {
		for _, e := range g.EdgesOut(n.ID) {
			if !include[e.Source] || !include[e.Target] {
				continue
			}
			if e.Type == concept.EdgeContains {
				child := g.Node(e.Target)
				if child != nil && child.ParentTopic == e.Source && include[e.Source] {
					continue
				}
			}
			sb.WriteString(fmt.Sprintf("    %s\n", mermaidEdge(e)))
		}
	}

	return sb.String()
}

// generateCollapsedMermaid renders a topic-level view when there are too many nodes.
func generateCollapsedMermaid(g *concept.Graph, include map[string]bool, sb *strings.Builder) string {
	for _, t := range g.Topics() {
		if !include[t.ID] {
			continue
		}
		count := g.SubtopicCount(t.ID)
		label := t.Name
		if count > 0 {
			label = fmt.Sprintf("%s (%d)", t.Name, count)
		}
		sb.WriteString(fmt.Sprintf("    %s{{\"%s\"}}\n", sanitizeMermaidID(t.ID), escapeMermaidString(label)))
	}

	// Topic-level edges, deduplicated.
	seen := make(map[string]bool)
	for _, t := range g.Topics() {
		if !include[t.ID] {
			continue
		}
		for _, e := range g.EdgesOut(t.ID) {
			if e.Type == concept.EdgeContains || !include[e.Target] {
				continue
			}
			target := g.Node(e.Target)
			if target == nil || target.Type != concept.NodeTopic {
				continue
			}
			key := fmt.Sprintf("%s->%s:%s", e.Source, e.Target, e.Type)
			if seen[key] {
				continue
			}
			seen[key] = true
			sb.WriteString(fmt.Sprintf("    %s\n", mermaidEdge(e)))
		}
	}

	return sb.String()
}

// selectNodes returns the set of node IDs to draw. With no focus every node
// is included; with a focus the set is the topic, its subtopics, and any
// topic directly connected to it.
func selectNodes(g *concept.Graph, focus string) map[string]bool {
	include := make(map[string]bool)
	if focus == "" {
		for _, n := range g.Nodes() {
			include[n.ID] = true
		}
		return include
	}

	include[focus] = true
	for _, s := range g.SubtopicsOf(focus) {
		include[s] = true
	}
	for _, id := range g.NeighborsOut(focus) {
		if n := g.Node(id); n != nil && n.Type == concept.NodeTopic {
			include[id] = true
		}
	}
	for _, id := range g.NeighborsIn(focus) {
		if n := g.Node(id); n != nil && n.Type == concept.NodeTopic {
			include[id] = true
		}
	}
	return include
}

// mermaidNode creates a node declaration with a shape based on node type.
func mermaidNode(n *concept.Node) string {
	id := sanitizeMermaidID(n.ID)
	name := escapeMermaidString(n.Name)
	switch n.Type {
	case concept.NodeTopic:
		return fmt.Sprintf("%s{{\"%s\"}}", id, name)
	case concept.NodeSubtopic:
		return fmt.Sprintf("%s([\"%s\"])", id, name)
	default:
		return fmt.Sprintf("%s[\"%s\"]", id, name)
	}
}

// mermaidEdge creates an edge declaration with an arrow style based on
// relationship type.
func mermaidEdge(e concept.Edge) string {
	from := sanitizeMermaidID(e.Source)
	to := sanitizeMermaidID(e.Target)
	switch e.Type {
	case concept.EdgePrerequisite:
		return fmt.Sprintf("%s ==>|prereq| %s", from, to)
	case concept.EdgeSequence:
		return fmt.Sprintf("%s -->|next| %s", from, to)
	case concept.EdgeContains:
		return fmt.Sprintf("%s --o %s", from, to)
	case concept.EdgeLeadsTo:
		return fmt.Sprintf("%s -->|leads to| %s", from, to)
	case concept.EdgeRelated:
		return fmt.Sprintf("%s -.- %s", from, to)
	default:
		return fmt.Sprintf("%s --> %s", from, to)
	}
}

// sanitizeMermaidID converts an ID to be valid in Mermaid.
// Mermaid IDs can contain alphanumeric chars and underscores.
var mermaidIDRegex = regexp.MustCompile(`[^a-zA-Z0-9_]`)

func sanitizeMermaidID(id string) string {
	sanitized := mermaidIDRegex.ReplaceAllString(id, "_")

	// Ensure it starts with a letter or underscore (not a digit)
	if len(sanitized) > 0 && sanitized[0] >= '0' && sanitized[0] <= '9' {
		sanitized = "_" + sanitized
	}

	if sanitized == "" {
		sanitized = "_empty"
	}
	return sanitized
}

// escapeMermaidString escapes special characters in Mermaid string content.
func escapeMermaidString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "<", "#lt;")
	s = strings.ReplaceAll(s, ">", "#gt;")
	return s
}

// GeneratePieChart generates a Mermaid pie chart from category counts.
func GeneratePieChart(stats map[string]int, title string) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(fmt.Sprintf("pie title %s\n", escapeMermaidString(title)))
	} else {
		sb.WriteString("pie\n")
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("    \"%s\" : %d\n", escapeMermaidString(key), stats[key]))
	}

	return sb.String()
}
