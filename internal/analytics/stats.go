// Package analytics provides derived computations over interval record
// sets: chromosome statistics, inter-region distances, region merging, and
// size/strand filtering. Every operation is a pure function of its input
// and returns a fresh result set.
package analytics

import (
	"sort"

	"github.com/inodb/vibe-intervals/internal/interval"
)

// ChromStat aggregates the records of a single chromosome.
type ChromStat struct {
	Chrom       string
	Count       int
	MinStart    int64
	MaxEnd      int64
	TotalLength int64
	MeanLength  float64
}

// Summary aggregates a whole record set.
type Summary struct {
	Regions    int
	TotalBases int64
	ByStrand   map[interval.Strand]int
	Chroms     []ChromStat
}

// ChromStats groups records by chromosome and computes per-group statistics.
// Group order is the insertion order of each chromosome's first occurrence,
// so output is deterministic for a fixed input ordering. Fallback rows are
// ignored.
func ChromStats(recs []*interval.Record) Summary {
	sum := Summary{ByStrand: make(map[interval.Strand]int)}
	index := make(map[string]int)

	for _, r := range recs {
		if r.IsFallback() {
			continue
		}

		length := r.Length()
		sum.Regions++
		sum.TotalBases += length
		sum.ByStrand[r.Strand]++

		i, ok := index[r.Chrom]
		if !ok {
			i = len(sum.Chroms)
			index[r.Chrom] = i
			sum.Chroms = append(sum.Chroms, ChromStat{
				Chrom:    r.Chrom,
				MinStart: r.Start,
				MaxEnd:   r.End,
			})
		}

		st := &sum.Chroms[i]
		st.Count++
		st.TotalLength += length
		if r.Start < st.MinStart {
			st.MinStart = r.Start
		}
		if r.End > st.MaxEnd {
			st.MaxEnd = r.End
		}
	}

	for i := range sum.Chroms {
		st := &sum.Chroms[i]
		st.MeanLength = float64(st.TotalLength) / float64(st.Count)
	}

	return sum
}

// SortByPosition returns a copy of the record set sorted by (chrom, start).
// Fallback rows sort to the end in their original order.
func SortByPosition(recs []*interval.Record) []*interval.Record {
	out := append([]*interval.Record(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsFallback() || b.IsFallback() {
			return !a.IsFallback() && b.IsFallback()
		}
		if a.Chrom != b.Chrom {
			return a.Chrom < b.Chrom
		}
		return a.Start < b.Start
	})
	return out
}

// FilterBySize returns the records whose span falls within [min, max].
// A max of 0 means unbounded.
func FilterBySize(recs []*interval.Record, min, max int64) []*interval.Record {
	var out []*interval.Record
	for _, r := range recs {
		if r.IsFallback() {
			continue
		}
		n := r.Length()
		if n < min {
			continue
		}
		if max > 0 && n > max {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SelectByStrand returns the records on the given strand.
func SelectByStrand(recs []*interval.Record, s interval.Strand) []*interval.Record {
	var out []*interval.Record
	for _, r := range recs {
		if !r.IsFallback() && r.Strand == s {
			out = append(out, r)
		}
	}
	return out
}
