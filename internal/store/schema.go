package store

// schemaSQL defines the SQLite schema for the snapshot database.
// Tables:
//   - nodes: concept nodes (topics and subtopics) in snapshot order
//   - edges: typed directed relationships in snapshot order
//
// Both tables rely on rowid to preserve insertion order; the in-memory
// graph depends on that order for deterministic iteration.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS nodes (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    node_type TEXT NOT NULL,          -- topic, subtopic
    level TEXT,                       -- beginner, intermediate, advanced
    description TEXT,
    parent_topic TEXT,                -- owning topic id, subtopics only
    imported_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS edges (
    source TEXT NOT NULL,
    target TEXT NOT NULL,
    edge_type TEXT NOT NULL DEFAULT 'related',
    imported_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_edges_source ON edges(source);
CREATE INDEX IF NOT EXISTS idx_edges_target ON edges(target);
CREATE INDEX IF NOT EXISTS idx_nodes_type ON nodes(node_type);
`

// initSchema creates the database tables and indexes if they don't exist.
func (s *Store) initSchema() error {
	_, err := s.db.Exec(schemaSQL)
	return err
}
