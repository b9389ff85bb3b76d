package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hargabyte/lx/internal/concept"
)

// ReplaceSnapshot clears any previously imported graph and writes the
// given one in a single transaction. Node and edge order is preserved
// through rowid so a later load reproduces the snapshot exactly.
func (s *Store) ReplaceSnapshot(g *concept.Graph) error {
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM nodes; DELETE FROM edges;"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear snapshot: %w", err)
	}

	nodeStmt, err := tx.Prepare(`
		INSERT INTO nodes (id, name, node_type, level, description, parent_topic, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare node insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, n := range g.Nodes() {
		if _, err := nodeStmt.Exec(n.ID, n.Name, string(n.Type), string(n.Level), n.Description, n.ParentTopic, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert node %s: %w", n.ID, err)
		}
	}

	edgeStmt, err := tx.Prepare(`
		INSERT INTO edges (source, target, edge_type, imported_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range g.Edges() {
		if _, err := edgeStmt.Exec(e.Source, e.Target, string(e.Type), now); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert edge %s -> %s: %w", e.Source, e.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// LoadGraph rebuilds the in-memory graph from the stored snapshot, in the
// original insertion order.
func (s *Store) LoadGraph() (*concept.Graph, error) {
	var snap concept.Snapshot

	rows, err := s.db.Query(`
		SELECT id, name, node_type, level, description, parent_topic
		FROM nodes ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query nodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n concept.Node
		var level, description, parent sql.NullString
		var nodeType string
		if err := rows.Scan(&n.ID, &n.Name, &nodeType, &level, &description, &parent); err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}
		n.Type = concept.NodeType(nodeType)
		n.Level = concept.Level(level.String)
		n.Description = description.String
		n.ParentTopic = parent.String
		snap.Nodes = append(snap.Nodes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read nodes: %w", err)
	}

	edgeRows, err := s.db.Query(`SELECT source, target, edge_type FROM edges ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query edges: %w", err)
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var e concept.Edge
		var edgeType string
		if err := edgeRows.Scan(&e.Source, &e.Target, &edgeType); err != nil {
			return nil, fmt.Errorf("scan edge: %w", err)
		}
		e.Type = concept.EdgeType(edgeType)
		snap.Edges = append(snap.Edges, e)
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("read edges: %w", err)
	}

	return concept.BuildGraph(snap)
}

// Counts returns the number of stored nodes and edges.
func (s *Store) Counts() (nodes, edges int64, err error) {
	if err = s.db.QueryRow("SELECT COUNT(*) FROM nodes").Scan(&nodes); err != nil {
		return 0, 0, fmt.Errorf("count nodes: %w", err)
	}
	if err = s.db.QueryRow("SELECT COUNT(*) FROM edges").Scan(&edges); err != nil {
		return 0, 0, fmt.Errorf("count edges: %w", err)
	}
	return nodes, edges, nil
}
