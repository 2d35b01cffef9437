package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-intervals/internal/duckdb"
)

func newExportCmd(verbose *bool) *cobra.Command {
	var format string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export intervals to a DuckDB database",
		Long: `Parse an interval file and store its records in a DuckDB database for
downstream SQL analysis.`,
		Example: `  vibe-intervals export annotations.gff3 --db annotations.duckdb
  vibe-intervals export regions.bed --db regions.duckdb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			if dbPath == "" {
				return fmt.Errorf("--db is required")
			}
			if ext := filepath.Ext(dbPath); ext != ".duckdb" && ext != ".db" {
				dbPath += ".duckdb"
			}

			records, err := loadRecords(args[0], format, logger)
			if err != nil {
				return err
			}

			store, err := duckdb.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.WriteIntervals(records)
			if err != nil {
				return err
			}

			counts, err := store.CountByChrom()
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Wrote %d intervals across %d chromosomes to %s\n",
				n, len(counts), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: gff or bed (auto-detected if not set)")
	cmd.Flags().StringVar(&dbPath, "db", "", "output DuckDB file path")

	return cmd
}
