package cmd

import (
	"fmt"
	"os"

	"github.com/hargabyte/lx/internal/concept"
	"github.com/hargabyte/lx/internal/config"
	"github.com/hargabyte/lx/internal/store"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a concept graph snapshot into the database",
	Long: `Import a JSON concept graph snapshot into the local database.

The snapshot holds nodes (topics and subtopics) and typed edges
(prerequisite, sequence, contains, leads_to, related). Import replaces
the stored graph atomically: either the whole snapshot lands or the
previous graph stays untouched. A malformed snapshot (node without an
id, edge without endpoints, a contains edge that is not topic to
subtopic) is rejected as a whole.

Use '-' to read the snapshot from stdin.

Examples:
  lx import concepts.json        # Replace the stored graph
  cat concepts.json | lx import -  # Import from stdin`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	lxDir, err := config.FindConfigDir(".")
	if err != nil {
		return fmt.Errorf("lx not initialized: run 'lx init' first")
	}

	var g *concept.Graph
	if args[0] == "-" {
		g, err = concept.LoadSnapshot(os.Stdin)
	} else {
		g, err = concept.LoadSnapshotFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	storeDB, err := store.Open(lxDir)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer storeDB.Close()

	if err := storeDB.ReplaceSnapshot(g); err != nil {
		return fmt.Errorf("storing snapshot: %w", err)
	}

	fmt.Printf("Imported %d concepts (%d topics, %d subtopics) and %d edges\n",
		g.NodeCount(), len(g.Topics()), len(g.Subtopics()), g.EdgeCount())

	return nil
}
