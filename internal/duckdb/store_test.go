package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-intervals/internal/interval"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndCountIntervals(t *testing.T) {
	s := openInMemory(t)

	attrs := interval.NewAttributes()
	attrs.Set("ID", "gene1")
	attrs.Set("Name", "KRAS")

	recs := []*interval.Record{
		{Chrom: "chr1", Start: 100, End: 200, Strand: interval.StrandForward,
			Name: "KRAS", Format: interval.FormatGFF3, FeatureType: "gene", Attrs: attrs},
		{Chrom: "chr1", Start: 300, End: 400, Strand: interval.StrandUnknown,
			Format: interval.FormatBED},
		{Chrom: "chr2", Start: 0, End: 50, Strand: interval.StrandReverse,
			Format: interval.FormatBED},
		{Format: interval.FormatUnknown, Fallback: []string{"skip", "me"}},
	}

	n, err := s.WriteIntervals(recs)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "fallback rows are not stored")

	total, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	var attrText string
	err = s.DB().QueryRow(
		`SELECT attributes FROM intervals WHERE name = 'KRAS'`).Scan(&attrText)
	require.NoError(t, err)
	assert.Equal(t, "ID=gene1;Name=KRAS", attrText)
}

func TestCountByChrom(t *testing.T) {
	s := openInMemory(t)

	recs := []*interval.Record{
		{Chrom: "chr2", Start: 0, End: 10, Format: interval.FormatBED},
		{Chrom: "chr1", Start: 0, End: 10, Format: interval.FormatBED},
		{Chrom: "chr1", Start: 20, End: 30, Format: interval.FormatBED},
	}

	_, err := s.WriteIntervals(recs)
	require.NoError(t, err)

	counts, err := s.CountByChrom()
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, ChromCount{Chrom: "chr1", Count: 2}, counts[0])
	assert.Equal(t, ChromCount{Chrom: "chr2", Count: 1}, counts[1])
}

func TestWriteEmptySet(t *testing.T) {
	s := openInMemory(t)
	n, err := s.WriteIntervals(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
