package analytics

import "github.com/inodb/vibe-intervals/internal/interval"

// Merge folds overlapping or adjacent records on the same chromosome into
// single spanning records. Input is sorted by (chrom, start) first; a record
// merges into the running region when its start is <= the region's end.
// Strand, name, and attributes of a merged region come from its first
// contributor; merging is lossy by design. Already-merged input passes
// through unchanged, so the operation is idempotent.
func Merge(recs []*interval.Record) []*interval.Record {
	sorted := SortByPosition(recs)

	var out []*interval.Record
	var current *interval.Record

	for _, r := range sorted {
		if r.IsFallback() {
			out = append(out, r)
			continue
		}

		if current != nil && current.Chrom == r.Chrom && r.Start <= current.End {
			if r.End > current.End {
				current.End = r.End
			}
			continue
		}

		if current != nil {
			out = append(out, current)
		}
		current = r.Clone()
	}

	if current != nil {
		out = append(out, current)
	}

	return out
}
