// Package cmd implements the init command for lx CLI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hargabyte/lx/internal/config"
	"github.com/hargabyte/lx/internal/store"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .lx directory and database",
	Long: `Initialize the .lx directory, default config, and graph.db database in
the current directory.

This creates the structure lx needs to store an imported concept graph.
Run 'lx import <file>' afterwards to load a snapshot.

Examples:
  lx init          # Initialize in current directory
  lx init --force  # Reinitialize (overwrites existing database)`,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Reinitialize even if .lx already exists")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	lxDir := filepath.Join(cwd, config.ConfigDirName)
	dbPath := filepath.Join(lxDir, store.DBFileName)

	_, err = os.Stat(dbPath)
	if err == nil {
		if !initForce {
			relPath, _ := filepath.Rel(cwd, lxDir)
			fmt.Printf("Already initialized at %s\n", relPath)
			return nil
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("removing existing database: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking database path: %w", err)
	}

	// Open store to create .lx directory and initialize schema
	storeDB, err := store.Open(lxDir)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer storeDB.Close()

	// Write default config next to the database unless one already exists
	cfgPath := filepath.Join(lxDir, config.ConfigFileName)
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if _, err := config.SaveDefault(cwd); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
	}

	relPath, _ := filepath.Rel(cwd, lxDir)
	fmt.Printf("Initialized lx database at %s\n", relPath)

	return nil
}
