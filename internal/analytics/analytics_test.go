package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-intervals/internal/interval"
)

func bedRec(chrom string, start, end int64) *interval.Record {
	return &interval.Record{
		Chrom:      chrom,
		Start:      start,
		End:        end,
		Convention: interval.ZeroBasedHalfOpen,
		Strand:     interval.StrandUnknown,
		Format:     interval.FormatBED,
	}
}

func TestChromStats(t *testing.T) {
	recs := []*interval.Record{
		bedRec("chr1", 0, 100),
		bedRec("chr1", 100, 300),
		bedRec("chr2", 0, 50),
	}

	sum := ChromStats(recs)

	assert.Equal(t, 3, sum.Regions)
	assert.Equal(t, int64(350), sum.TotalBases)

	require.Len(t, sum.Chroms, 2)

	chr1 := sum.Chroms[0]
	assert.Equal(t, "chr1", chr1.Chrom)
	assert.Equal(t, 2, chr1.Count)
	assert.Equal(t, int64(300), chr1.TotalLength)
	assert.Equal(t, 150.0, chr1.MeanLength)
	assert.Equal(t, int64(0), chr1.MinStart)
	assert.Equal(t, int64(300), chr1.MaxEnd)

	chr2 := sum.Chroms[1]
	assert.Equal(t, 1, chr2.Count)
	assert.Equal(t, int64(50), chr2.TotalLength)
	assert.Equal(t, 50.0, chr2.MeanLength)
}

func TestChromStatsGroupOrderIsFirstOccurrence(t *testing.T) {
	recs := []*interval.Record{
		bedRec("chrX", 0, 10),
		bedRec("chr1", 0, 10),
		bedRec("chrX", 20, 30),
	}

	sum := ChromStats(recs)
	require.Len(t, sum.Chroms, 2)
	assert.Equal(t, "chrX", sum.Chroms[0].Chrom)
	assert.Equal(t, "chr1", sum.Chroms[1].Chrom)
}

func TestChromStatsStrandCounts(t *testing.T) {
	fwd := bedRec("chr1", 0, 10)
	fwd.Strand = interval.StrandForward
	rev := bedRec("chr1", 20, 30)
	rev.Strand = interval.StrandReverse

	sum := ChromStats([]*interval.Record{fwd, rev, bedRec("chr1", 40, 50)})
	assert.Equal(t, 1, sum.ByStrand[interval.StrandForward])
	assert.Equal(t, 1, sum.ByStrand[interval.StrandReverse])
	assert.Equal(t, 1, sum.ByStrand[interval.StrandUnknown])
}

func TestChromStatsGFFLengths(t *testing.T) {
	// 1-based inclusive span counts both endpoints
	rec := &interval.Record{
		Chrom: "chr1", Start: 100, End: 200,
		Convention: interval.OneBasedInclusive,
		Format:     interval.FormatGFF3,
	}
	sum := ChromStats([]*interval.Record{rec})
	assert.Equal(t, int64(101), sum.TotalBases)
}

func TestDistances(t *testing.T) {
	recs := []*interval.Record{
		bedRec("chr1", 100, 200),
		bedRec("chr1", 250, 300),
		bedRec("chr2", 0, 50),
	}

	ds := Distances(recs)
	require.Len(t, ds, 3)

	assert.True(t, ds[0].HasNext)
	assert.Equal(t, int64(50), ds[0].Gap)

	// chr1's last record borders the chromosome boundary: no distance
	assert.False(t, ds[1].HasNext)
	assert.False(t, ds[2].HasNext)
}

func TestDistancesNegativeOverlap(t *testing.T) {
	ds := Distances([]*interval.Record{
		bedRec("chr1", 100, 200),
		bedRec("chr1", 150, 250),
	})
	require.Len(t, ds, 2)
	assert.Equal(t, int64(-50), ds[0].Gap)
}

func TestMerge(t *testing.T) {
	recs := []*interval.Record{
		bedRec("chr1", 300, 400), // unsorted input
		bedRec("chr1", 100, 200),
		bedRec("chr1", 150, 250),
		bedRec("chr1", 250, 260), // adjacent: start == current end
		bedRec("chr2", 0, 50),
	}

	merged := Merge(recs)
	require.Len(t, merged, 3)

	assert.Equal(t, "chr1", merged[0].Chrom)
	assert.Equal(t, int64(100), merged[0].Start)
	assert.Equal(t, int64(260), merged[0].End)

	assert.Equal(t, int64(300), merged[1].Start)
	assert.Equal(t, "chr2", merged[2].Chrom)
}

func TestMergeIdempotent(t *testing.T) {
	recs := []*interval.Record{
		bedRec("chr1", 100, 200),
		bedRec("chr1", 150, 250),
		bedRec("chr2", 0, 50),
	}

	once := Merge(recs)
	twice := Merge(once)

	require.Equal(t, len(once), len(twice))
	for i := range once {
		assert.Equal(t, once[i].Chrom, twice[i].Chrom)
		assert.Equal(t, once[i].Start, twice[i].Start)
		assert.Equal(t, once[i].End, twice[i].End)
	}
}

func TestMergeKeepsFirstContributorIdentity(t *testing.T) {
	a := bedRec("chr1", 100, 200)
	a.Name = "first"
	a.Strand = interval.StrandForward
	b := bedRec("chr1", 150, 300)
	b.Name = "second"
	b.Strand = interval.StrandReverse

	merged := Merge([]*interval.Record{a, b})
	require.Len(t, merged, 1)
	assert.Equal(t, "first", merged[0].Name)
	assert.Equal(t, interval.StrandForward, merged[0].Strand)

	// Inputs must not be mutated
	assert.Equal(t, int64(200), a.End)
}

func TestSortByPosition(t *testing.T) {
	recs := []*interval.Record{
		bedRec("chr2", 0, 10),
		bedRec("chr1", 500, 600),
		bedRec("chr1", 100, 200),
	}

	sorted := SortByPosition(recs)
	assert.Equal(t, "chr1", sorted[0].Chrom)
	assert.Equal(t, int64(100), sorted[0].Start)
	assert.Equal(t, int64(500), sorted[1].Start)
	assert.Equal(t, "chr2", sorted[2].Chrom)

	// Original slice untouched
	assert.Equal(t, "chr2", recs[0].Chrom)
}

func TestFilterBySize(t *testing.T) {
	recs := []*interval.Record{
		bedRec("chr1", 0, 10),
		bedRec("chr1", 0, 100),
		bedRec("chr1", 0, 10000),
	}

	out := FilterBySize(recs, 50, 5000)
	require.Len(t, out, 1)
	assert.Equal(t, int64(100), out[0].End)

	unbounded := FilterBySize(recs, 50, 0)
	assert.Len(t, unbounded, 2)
}

func TestSelectByStrand(t *testing.T) {
	fwd := bedRec("chr1", 0, 10)
	fwd.Strand = interval.StrandForward
	rev := bedRec("chr1", 20, 30)
	rev.Strand = interval.StrandReverse

	out := SelectByStrand([]*interval.Record{fwd, rev}, interval.StrandReverse)
	require.Len(t, out, 1)
	assert.Equal(t, int64(20), out[0].Start)
}
