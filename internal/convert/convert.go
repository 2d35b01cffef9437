// Package convert maps interval records between the GFF and BED formats,
// reconciling their coordinate conventions (1-based inclusive vs 0-based
// half-open) and attribute representations.
package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/vibe-intervals/internal/interval"
)

// UnsupportedConversionError is returned when a record's format tag is not
// convertible, e.g. a fallback row or an ambiguous already-converted record.
// It is fatal for that single record only.
type UnsupportedConversionError struct {
	Format interval.Format
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("cannot convert record with format %q", e.Format)
}

// Options holds the conversion defaults. Score and phase defaults are
// deliberately configurable; real-world files disagree on them.
type Options struct {
	// NameAttr is the GFF attribute consulted first for the BED name.
	NameAttr string
	// ScoreAttr is the GFF attribute consulted first for the BED score.
	ScoreAttr string
	// DefaultScore fills the BED score column when the source has none.
	DefaultScore string
	// DefaultPhase fills the GFF phase column for synthesized records.
	DefaultPhase string
	// FeatureType is the GFF type for records synthesized from BED, which
	// carries no feature-type concept.
	FeatureType string
	// Source is the GFF source column for synthesized records.
	Source string
}

// DefaultOptions returns the stock conversion defaults.
func DefaultOptions() Options {
	return Options{
		NameAttr:     "Name",
		ScoreAttr:    "score",
		DefaultScore: "0",
		DefaultPhase: "",
		FeatureType:  "region",
		Source:       "bed2gff",
	}
}

// Converter converts records between GFF and BED.
type Converter struct {
	opts   Options
	logger *zap.Logger
}

// New creates a converter with the given options.
func New(opts Options) *Converter {
	return &Converter{opts: opts, logger: zap.NewNop()}
}

// SetLogger sets the logger for per-record conversion warnings.
func (c *Converter) SetLogger(l *zap.Logger) {
	c.logger = l
}

// ToBED converts a GFF-format record to a new BED-format record.
// Coordinates shift from 1-based inclusive to 0-based half-open; the end
// coordinate is identical in both conventions.
func (c *Converter) ToBED(rec *interval.Record) (*interval.Record, error) {
	if !rec.Format.IsGFF() {
		return nil, &UnsupportedConversionError{Format: rec.Format}
	}

	out := &interval.Record{
		Chrom:      rec.Chrom,
		Start:      rec.Start - 1,
		End:        rec.End,
		Convention: interval.ZeroBasedHalfOpen,
		Strand:     rec.Strand,
		Format:     interval.FormatBED,
		Name:       c.bedName(rec),
		Score:      c.bedScore(rec),
	}

	// Conventional attributes carry the optional BED columns when present.
	if rec.Attrs != nil {
		if v, ok := rec.Attrs.Get("thick_start"); ok {
			out.ThickStart = v
		}
		if v, ok := rec.Attrs.Get("thick_end"); ok {
			out.ThickEnd = v
		}
		if v, ok := rec.Attrs.Get("rgb"); ok {
			out.ItemRGB = v
		}
		if v, ok := rec.Attrs.Get("block_count"); ok {
			out.BlockCount = v
		}
		if v, ok := rec.Attrs.Get("block_sizes"); ok {
			out.BlockSizes = v
		}
		if v, ok := rec.Attrs.Get("block_starts"); ok {
			out.BlockStarts = v
		}
	}

	return out, nil
}

// ToGFF converts a BED-format record to a new GFF3-format record, the
// inverse of ToBED. The feature type defaults to a generic region since BED
// has no type concept; ID/Name attributes are synthesized from the BED name.
func (c *Converter) ToGFF(rec *interval.Record) (*interval.Record, error) {
	if rec.Format != interval.FormatBED {
		return nil, &UnsupportedConversionError{Format: rec.Format}
	}

	score := rec.Score
	if score == "" {
		score = c.opts.DefaultScore
	}

	out := &interval.Record{
		Chrom:       rec.Chrom,
		Start:       rec.Start + 1,
		End:         rec.End,
		Convention:  interval.OneBasedInclusive,
		Strand:      rec.Strand,
		Format:      interval.FormatGFF3,
		Name:        rec.Name,
		Score:       score,
		Source:      c.opts.Source,
		FeatureType: c.opts.FeatureType,
		Phase:       c.opts.DefaultPhase,
	}

	if rec.Name != "" {
		attrs := interval.NewAttributes()
		attrs.Set("ID", rec.Name)
		attrs.Set("Name", rec.Name)
		out.Attrs = attrs
	}

	return out, nil
}

// AllToBED converts a record set to BED. Per-record failures are isolated:
// they are logged, collected, and do not affect the other records.
func (c *Converter) AllToBED(recs []*interval.Record) ([]*interval.Record, []error) {
	return c.convertAll(recs, c.ToBED)
}

// AllToGFF converts a record set to GFF.
func (c *Converter) AllToGFF(recs []*interval.Record) ([]*interval.Record, []error) {
	return c.convertAll(recs, c.ToGFF)
}

func (c *Converter) convertAll(recs []*interval.Record, f func(*interval.Record) (*interval.Record, error)) ([]*interval.Record, []error) {
	out := make([]*interval.Record, 0, len(recs))
	var errs []error

	for _, rec := range recs {
		converted, err := f(rec)
		if err != nil {
			c.logger.Warn("skipping record",
				zap.String("chrom", rec.Chrom),
				zap.Int64("start", rec.Start),
				zap.Error(err))
			errs = append(errs, err)
			continue
		}
		out = append(out, converted)
	}

	return out, errs
}

// bedName resolves the BED name column: configured attribute, then ID, then
// the feature type, then the record's own name.
func (c *Converter) bedName(rec *interval.Record) string {
	if rec.Attrs != nil {
		if v, ok := rec.Attrs.Get(c.opts.NameAttr); ok && v != "" {
			return v
		}
		if v, ok := rec.Attrs.Get("ID"); ok && v != "" {
			return v
		}
	}
	if rec.FeatureType != "" {
		return rec.FeatureType
	}
	return rec.Name
}

// bedScore resolves the BED score column: configured attribute, then the
// GFF score column, then the configured default.
func (c *Converter) bedScore(rec *interval.Record) string {
	if rec.Attrs != nil {
		if v, ok := rec.Attrs.Get(c.opts.ScoreAttr); ok && v != "" {
			return v
		}
	}
	if rec.Score != "" {
		return rec.Score
	}
	return c.opts.DefaultScore
}
