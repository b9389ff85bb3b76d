// Package plan turns a subtopic-to-subtopic learning path into a
// week-by-week study plan.
package plan

import (
	"fmt"

	"github.com/hargabyte/lx/internal/concept"
	"github.com/hargabyte/lx/internal/pathfind"
	"github.com/hargabyte/lx/internal/weight"
)

// Route describes how the plan's path was found.
type Route string

const (
	// RouteAlreadyCompleted means source and target are the same subtopic.
	RouteAlreadyCompleted Route = "already_completed"
	// RouteDirect means a weighted shortest path exists between the subtopics.
	RouteDirect Route = "direct"
	// RouteThroughTopics means no direct subtopic path exists and the plan
	// was built by routing through the parent topics instead.
	RouteThroughTopics Route = "through_topics"
	// RouteNone means no path exists even through parent topics.
	RouteNone Route = "no_path"
)

// detourSubtopics is how many subtopics of each intermediate topic are
// folded into a through-topics route.
const detourSubtopics = 2

// Week is one week of a study plan, covering a single concept.
type Week struct {
	Number    int
	ConceptID string
	Focus     string
	Phases    []string
}

// Plan is a week-by-week study plan from one subtopic to another.
type Plan struct {
	FromID   string
	ToID     string
	Route    Route
	Path     []string
	Distance float64
	Weeks    []Week
}

// TotalWeeks returns the plan duration; the starting point costs no week.
func (p *Plan) TotalWeeks() int {
	return len(p.Weeks)
}

// Planner builds study plans over a concept graph.
type Planner struct {
	graph  *concept.Graph
	policy weight.Policy
}

func NewPlanner(g *concept.Graph, pol weight.Policy) *Planner {
	return &Planner{graph: g, policy: pol}
}

// Plan builds a study plan from one subtopic to another. Both queries are
// resolved by name; a query that matches nothing returns
// *concept.UnknownConceptError, and a match that is not a subtopic is an
// error. A missing path is not an error: the plan comes back with
// RouteNone and no weeks.
func (p *Planner) Plan(fromQuery, toQuery string) (*Plan, error) {
	fromID, err := p.graph.Resolve(fromQuery)
	if err != nil {
		return nil, err
	}
	toID, err := p.graph.Resolve(toQuery)
	if err != nil {
		return nil, err
	}

	if err := p.requireSubtopic(fromID); err != nil {
		return nil, err
	}
	if err := p.requireSubtopic(toID); err != nil {
		return nil, err
	}

	if fromID == toID {
		return &Plan{
			FromID: fromID,
			ToID:   toID,
			Route:  RouteAlreadyCompleted,
			Path:   []string{fromID},
		}, nil
	}

	if path, dist := pathfind.ShortestPath(p.graph, p.policy, fromID, toID); path != nil {
		return p.build(fromID, toID, RouteDirect, path, dist), nil
	}

	if path := p.topicDetour(fromID, toID); path != nil {
		return p.build(fromID, toID, RouteThroughTopics, path, 0), nil
	}

	return &Plan{
		FromID: fromID,
		ToID:   toID,
		Route:  RouteNone,
	}, nil
}

func (p *Planner) requireSubtopic(id string) error {
	n := p.graph.Node(id)
	if n.Type != concept.NodeSubtopic {
		return fmt.Errorf("%q is a %s, not a subtopic", n.Name, n.Type)
	}
	return nil
}

// topicDetour tries to connect two subtopics through their parent topics.
// The first topic pair with a path wins, and each intermediate topic
// contributes a couple of its subtopics to the route.
func (p *Planner) topicDetour(fromID, toID string) []string {
	for _, srcTopic := range p.graph.ParentTopics(fromID) {
		for _, dstTopic := range p.graph.ParentTopics(toID) {
			topicPath, _ := pathfind.ShortestPath(p.graph, p.policy, srcTopic, dstTopic)
			if len(topicPath) < 2 {
				continue
			}

			full := []string{fromID}
			for _, topicID := range topicPath[1:] {
				added := 0
				for _, sub := range p.graph.SubtopicsOf(topicID) {
					if added == detourSubtopics {
						break
					}
					// The endpoints get their own slots in the route.
					if sub == fromID || sub == toID {
						continue
					}
					full = append(full, sub)
					added++
				}
			}
			full = append(full, toID)
			return full
		}
	}
	return nil
}

func (p *Planner) build(fromID, toID string, route Route, path []string, dist float64) *Plan {
	pl := &Plan{
		FromID:   fromID,
		ToID:     toID,
		Route:    route,
		Path:     path,
		Distance: dist,
	}
	// One concept per week, starting point excluded.
	for i := 1; i < len(path); i++ {
		n := p.graph.Node(path[i])
		name := path[i]
		if n != nil {
			name = n.Name
		}
		pl.Weeks = append(pl.Weeks, Week{
			Number:    i,
			ConceptID: path[i],
			Focus:     fmt.Sprintf("Master %s", name),
			Phases:    weekPhases(),
		})
	}
	return pl
}

func weekPhases() []string {
	return []string{
		"Theory and fundamentals: read up on the concept and its core ideas",
		"Implementation practice: code it from scratch and work through examples",
		"Problem solving: apply it across 5-10 practice problems",
	}
}
