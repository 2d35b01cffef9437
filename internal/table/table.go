// Package table projects record sets into the column/row shape a tabular
// host displays: ordered column names plus string cells. It replaces the
// host's dynamic column framework with a plain value type.
package table

import (
	"fmt"
	"strconv"

	"github.com/inodb/vibe-intervals/internal/analytics"
	"github.com/inodb/vibe-intervals/internal/interval"
)

// Table is an ordered set of named columns and string-cell rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Core display columns, in the order the host shows them.
var coreColumns = []string{"chrom", "start", "end", "strand", "name", "score"}

// gffColumns extend the core set for GFF-sourced tables.
var gffColumns = []string{"source", "type", "phase"}

// FromRecords builds a display table from a record set. Columns are the
// core fields, GFF extras when any record carries them, then one column per
// distinct attribute key in first-encounter order. A set containing only
// fallback rows degrades to generic indexed columns.
func FromRecords(recs []*interval.Record) *Table {
	if allFallback(recs) {
		return fromFallback(recs)
	}

	hasGFF := false
	var attrKeys []string
	seen := make(map[string]bool)
	for _, r := range recs {
		if r.Format.IsGFF() {
			hasGFF = true
		}
		if r.Attrs == nil {
			continue
		}
		for _, k := range r.Attrs.Keys() {
			if !seen[k] {
				seen[k] = true
				attrKeys = append(attrKeys, k)
			}
		}
	}

	cols := append([]string(nil), coreColumns...)
	if hasGFF {
		cols = append(cols, gffColumns...)
	}
	cols = append(cols, attrKeys...)

	t := &Table{Columns: cols}
	for _, r := range recs {
		if r.IsFallback() {
			row := make([]string, len(cols))
			copy(row, r.Fallback)
			t.Rows = append(t.Rows, row)
			continue
		}

		row := []string{
			r.Chrom,
			strconv.FormatInt(r.Start, 10),
			strconv.FormatInt(r.End, 10),
			string(r.Strand),
			r.Name,
			r.Score,
		}
		if hasGFF {
			row = append(row, r.Source, r.FeatureType, r.Phase)
		}
		for _, k := range attrKeys {
			v := ""
			if r.Attrs != nil {
				v, _ = r.Attrs.Get(k)
			}
			row = append(row, v)
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// fromFallback builds a generic indexed-column table (col1..colN).
func fromFallback(recs []*interval.Record) *Table {
	width := 0
	for _, r := range recs {
		if len(r.Fallback) > width {
			width = len(r.Fallback)
		}
	}

	t := &Table{}
	for i := 0; i < width; i++ {
		t.Columns = append(t.Columns, fmt.Sprintf("col%d", i+1))
	}
	for _, r := range recs {
		row := make([]string, width)
		copy(row, r.Fallback)
		t.Rows = append(t.Rows, row)
	}
	return t
}

func allFallback(recs []*interval.Record) bool {
	if len(recs) == 0 {
		return false
	}
	for _, r := range recs {
		if !r.IsFallback() {
			return false
		}
	}
	return true
}

// FromStats builds the chromosome summary table.
func FromStats(sum analytics.Summary) *Table {
	t := &Table{
		Columns: []string{"chromosome", "count", "min_start", "max_end", "total_length", "mean_length"},
	}
	for _, st := range sum.Chroms {
		t.Rows = append(t.Rows, []string{
			st.Chrom,
			strconv.Itoa(st.Count),
			strconv.FormatInt(st.MinStart, 10),
			strconv.FormatInt(st.MaxEnd, 10),
			strconv.FormatInt(st.TotalLength, 10),
			strconv.FormatFloat(st.MeanLength, 'f', 1, 64),
		})
	}
	return t
}

// FromDistances builds the distance table, one row per record with an empty
// cell where the distance is undefined (last record of a chromosome).
func FromDistances(ds []analytics.Distance) *Table {
	t := &Table{
		Columns: []string{"chrom", "start", "end", "name", "distance_to_next"},
	}
	for _, d := range ds {
		gap := ""
		if d.HasNext {
			gap = strconv.FormatInt(d.Gap, 10)
		}
		t.Rows = append(t.Rows, []string{
			d.Record.Chrom,
			strconv.FormatInt(d.Record.Start, 10),
			strconv.FormatInt(d.Record.End, 10),
			d.Record.Name,
			gap,
		})
	}
	return t
}

// RecordDetail builds the per-record attribute table for the host's detail
// view: one key/value row per attribute in insertion order.
func RecordDetail(rec *interval.Record) *Table {
	t := &Table{Columns: []string{"key", "value"}}
	if rec.Attrs == nil {
		return t
	}
	for _, k := range rec.Attrs.Keys() {
		v, _ := rec.Attrs.Get(k)
		t.Rows = append(t.Rows, []string{k, v})
	}
	return t
}
