// Package interval defines the normalized genomic interval record shared by
// all parsers, converters, and analytics.
package interval

import "fmt"

// Format identifies the file format a record was parsed from.
type Format int

const (
	FormatUnknown Format = iota
	FormatGFF3
	FormatGFF2
	FormatBED
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatGFF3:
		return "gff3"
	case FormatGFF2:
		return "gff2"
	case FormatBED:
		return "bed"
	default:
		return "unknown"
	}
}

// IsGFF returns true for either GFF dialect.
func (f Format) IsGFF() bool {
	return f == FormatGFF2 || f == FormatGFF3
}

// Convention is the coordinate convention of a record's Start/End fields.
type Convention int

const (
	// ZeroBasedHalfOpen is the BED convention: start is 0-based, end exclusive.
	ZeroBasedHalfOpen Convention = iota
	// OneBasedInclusive is the GFF convention: start is 1-based, end inclusive.
	OneBasedInclusive
)

// Strand is the orientation of a feature on DNA.
type Strand string

const (
	StrandForward Strand = "+"
	StrandReverse Strand = "-"
	StrandUnknown Strand = "."
)

// ParseStrand maps a strand column value to a Strand.
// Anything other than "+" or "-" is unknown.
func ParseStrand(s string) Strand {
	switch s {
	case "+":
		return StrandForward
	case "-":
		return StrandReverse
	default:
		return StrandUnknown
	}
}

// StrandClass is the display classification exposed to the host for coloring.
type StrandClass int

const (
	ClassOther StrandClass = iota
	ClassForward
	ClassReverse
)

// Classify returns the display class for the strand.
func (s Strand) Classify() StrandClass {
	switch s {
	case StrandForward:
		return ClassForward
	case StrandReverse:
		return ClassReverse
	default:
		return ClassOther
	}
}

// Record represents a single genomic interval.
//
// Start and End are stored in the record's native coordinate convention
// (tracked by Convention) so that format conversion is lossless. Records are
// treated as immutable once parsed; derived operations return fresh records.
type Record struct {
	Chrom      string
	Start      int64
	End        int64
	Convention Convention
	Strand     Strand
	Format     Format

	// Optional identity fields. Score is carried as text because both
	// formats allow "." and GFF permits floats where BED wants integers.
	Name  string
	Score string

	// GFF-only fields.
	Source      string
	FeatureType string
	Phase       string
	Attrs       *Attributes

	// BED-only optional fields (columns 7-12), carried verbatim.
	ThickStart  string
	ThickEnd    string
	ItemRGB     string
	BlockCount  string
	BlockSizes  string
	BlockStarts string

	// Fallback holds the raw fields of a line that did not conform to the
	// declared format. When set, no interval semantics apply.
	Fallback []string
}

// IsFallback reports whether the record is a generic-column fallback row.
func (r *Record) IsFallback() bool {
	return r.Fallback != nil
}

// Length returns the number of bases the interval spans in its native
// convention.
func (r *Record) Length() int64 {
	n := r.End - r.Start
	if r.Convention == OneBasedInclusive {
		n++
	}
	return n
}

// Position formats the interval as chrom:start-end.
func (r *Record) Position() string {
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}

// AttrDetail formats the record's attributes for the host's detail view,
// one "key=value" pair per line in insertion order. Returns an empty string
// when the record carries no attributes.
func (r *Record) AttrDetail() string {
	if r.Attrs == nil || r.Attrs.Len() == 0 {
		return ""
	}
	out := ""
	for _, k := range r.Attrs.Keys() {
		v, _ := r.Attrs.Get(k)
		if out != "" {
			out += "\n"
		}
		out += k + "=" + v
	}
	return out
}

// Clone returns a copy of the record with its own attribute map.
func (r *Record) Clone() *Record {
	c := *r
	if r.Attrs != nil {
		c.Attrs = r.Attrs.Clone()
	}
	if r.Fallback != nil {
		c.Fallback = append([]string(nil), r.Fallback...)
	}
	return &c
}
