package analytics

import "github.com/inodb/vibe-intervals/internal/interval"

// Distance pairs a record with the gap to the next record on the same
// chromosome. HasNext is false for the final record of each chromosome,
// whose distance is undefined.
type Distance struct {
	Record  *interval.Record
	Gap     int64
	HasNext bool
}

// Distances computes, for each consecutive same-chromosome pair in a set
// sorted by (chrom, start), the gap next.Start - current.End. Overlapping
// neighbors yield a negative gap. Fallback rows are skipped.
func Distances(recs []*interval.Record) []Distance {
	var out []Distance

	var prev *interval.Record
	for _, r := range recs {
		if r.IsFallback() {
			continue
		}

		if prev != nil && prev.Chrom == r.Chrom {
			out[len(out)-1].Gap = r.Start - prev.End
			out[len(out)-1].HasNext = true
		}

		out = append(out, Distance{Record: r})
		prev = r
	}

	return out
}
