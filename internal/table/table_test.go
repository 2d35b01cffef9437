package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-intervals/internal/analytics"
	"github.com/inodb/vibe-intervals/internal/interval"
)

func TestFromRecordsBED(t *testing.T) {
	recs := []*interval.Record{
		{
			Chrom: "chr1", Start: 100, End: 200,
			Strand: interval.StrandForward, Name: "feat1", Score: "42",
			Format: interval.FormatBED,
		},
	}

	tbl := FromRecords(recs)
	assert.Equal(t, []string{"chrom", "start", "end", "strand", "name", "score"}, tbl.Columns)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"chr1", "100", "200", "+", "feat1", "42"}, tbl.Rows[0])
}

func TestFromRecordsGFFAttributeColumns(t *testing.T) {
	a1 := interval.NewAttributes()
	a1.Set("ID", "gene1")
	a1.Set("Name", "KRAS")
	a2 := interval.NewAttributes()
	a2.Set("ID", "gene2")
	a2.Set("biotype", "lncRNA")

	recs := []*interval.Record{
		{Chrom: "chr1", Start: 1, End: 10, Strand: interval.StrandForward,
			Source: "havana", FeatureType: "gene",
			Format: interval.FormatGFF3, Attrs: a1},
		{Chrom: "chr1", Start: 20, End: 30, Strand: interval.StrandReverse,
			Source: "havana", FeatureType: "gene",
			Format: interval.FormatGFF3, Attrs: a2},
	}

	tbl := FromRecords(recs)

	// One column per distinct attribute key, in first-encounter order
	assert.Equal(t, []string{
		"chrom", "start", "end", "strand", "name", "score",
		"source", "type", "phase",
		"ID", "Name", "biotype",
	}, tbl.Columns)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "gene1", tbl.Rows[0][9])
	assert.Equal(t, "KRAS", tbl.Rows[0][10])
	assert.Equal(t, "", tbl.Rows[0][11], "missing attribute renders empty")
	assert.Equal(t, "lncRNA", tbl.Rows[1][11])
}

func TestFromRecordsFallbackTable(t *testing.T) {
	recs := []*interval.Record{
		{Format: interval.FormatUnknown, Fallback: []string{"foo", "bar", "baz", "qux", "quux"}},
		{Format: interval.FormatUnknown, Fallback: []string{"a", "b"}},
	}

	tbl := FromRecords(recs)
	assert.Equal(t, []string{"col1", "col2", "col3", "col4", "col5"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"foo", "bar", "baz", "qux", "quux"}, tbl.Rows[0])
	assert.Equal(t, []string{"a", "b", "", "", ""}, tbl.Rows[1])
}

func TestFromStats(t *testing.T) {
	sum := analytics.ChromStats([]*interval.Record{
		{Chrom: "chr1", Start: 0, End: 100, Format: interval.FormatBED},
		{Chrom: "chr1", Start: 100, End: 300, Format: interval.FormatBED},
	})

	tbl := FromStats(sum)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"chr1", "2", "0", "300", "300", "150.0"}, tbl.Rows[0])
}

func TestFromDistances(t *testing.T) {
	ds := analytics.Distances([]*interval.Record{
		{Chrom: "chr1", Start: 100, End: 200, Format: interval.FormatBED},
		{Chrom: "chr1", Start: 250, End: 300, Format: interval.FormatBED},
	})

	tbl := FromDistances(ds)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "50", tbl.Rows[0][4])
	assert.Equal(t, "", tbl.Rows[1][4], "chromosome-final distance is null")
}

func TestRecordDetail(t *testing.T) {
	a := interval.NewAttributes()
	a.Set("ID", "gene1")
	a.Set("Name", "KRAS")

	tbl := RecordDetail(&interval.Record{Attrs: a})
	assert.Equal(t, []string{"key", "value"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"ID", "gene1"}, tbl.Rows[0])

	empty := RecordDetail(&interval.Record{})
	assert.Empty(t, empty.Rows)
}
