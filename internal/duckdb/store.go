// Package duckdb persists interval record sets to a DuckDB database so they
// can be queried with SQL after the interactive session ends.
package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-intervals/internal/interval"
)

// Store manages a DuckDB connection holding exported interval records.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS intervals (
		chrom VARCHAR,
		start_pos BIGINT,
		end_pos BIGINT,
		strand VARCHAR,
		name VARCHAR,
		score VARCHAR,
		source_format VARCHAR,
		feature_type VARCHAR,
		attributes VARCHAR
	)`)
	return err
}

// WriteIntervals batch-inserts a record set using the Appender API.
// Fallback rows carry no interval semantics and are skipped.
func (s *Store) WriteIntervals(recs []*interval.Record) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return 0, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "intervals")
		return err
	}); err != nil {
		return 0, fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	count := 0
	for _, r := range recs {
		if r.IsFallback() {
			continue
		}
		if err := appender.AppendRow(
			r.Chrom, r.Start, r.End, string(r.Strand),
			r.Name, r.Score, r.Format.String(), r.FeatureType,
			flattenAttrs(r.Attrs),
		); err != nil {
			return count, fmt.Errorf("append interval: %w", err)
		}
		count++
	}

	if err := appender.Flush(); err != nil {
		return count, fmt.Errorf("flush appender: %w", err)
	}
	return count, nil
}

// Count returns the number of stored intervals.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM intervals`).Scan(&n)
	return n, err
}

// ChromCount holds a per-chromosome interval count from the store.
type ChromCount struct {
	Chrom string
	Count int64
}

// CountByChrom summarizes stored intervals per chromosome, largest first.
func (s *Store) CountByChrom() ([]ChromCount, error) {
	rows, err := s.db.Query(`SELECT chrom, COUNT(*) AS n
		FROM intervals GROUP BY chrom ORDER BY n DESC, chrom`)
	if err != nil {
		return nil, fmt.Errorf("query chrom counts: %w", err)
	}
	defer rows.Close()

	var out []ChromCount
	for rows.Next() {
		var c ChromCount
		if err := rows.Scan(&c.Chrom, &c.Count); err != nil {
			return nil, fmt.Errorf("scan chrom count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// flattenAttrs serializes ordered attributes as key=value;key=value text.
func flattenAttrs(a *interval.Attributes) string {
	if a == nil || a.Len() == 0 {
		return ""
	}
	pairs := make([]string, 0, a.Len())
	for _, k := range a.Keys() {
		v, _ := a.Get(k)
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ";")
}
