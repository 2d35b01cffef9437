package bed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/inodb/vibe-intervals/internal/interval"
)

// Placeholder values for optional columns that must be present when a later
// column is populated.
const (
	defaultName   = "."
	defaultScore  = "0"
	defaultStrand = "."
)

// Writer serializes BED-convention records to tab-delimited BED text.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes a single record, emitting only as many columns as the record
// populates. Earlier optional columns are padded with placeholders so the
// line stays valid BED.
func (w *Writer) Write(rec *interval.Record) error {
	if rec.IsFallback() {
		_, err := w.w.WriteString(strings.Join(rec.Fallback, "\t") + "\n")
		return err
	}
	if rec.Format != interval.FormatBED {
		return fmt.Errorf("cannot write %s record as bed", rec.Format)
	}

	cols := []string{
		rec.Chrom,
		fmt.Sprintf("%d", rec.Start),
		fmt.Sprintf("%d", rec.End),
		rec.Name,
		rec.Score,
		string(rec.Strand),
		rec.ThickStart,
		rec.ThickEnd,
		rec.ItemRGB,
		rec.BlockCount,
		rec.BlockSizes,
		rec.BlockStarts,
	}

	last := 2
	for i := 3; i < len(cols); i++ {
		if cols[i] != "" && !(i == 5 && rec.Strand == interval.StrandUnknown) {
			last = i
		}
	}

	for i := 3; i <= last; i++ {
		if cols[i] != "" {
			continue
		}
		switch i {
		case 3:
			cols[i] = defaultName
		case 4:
			cols[i] = defaultScore
		case 5:
			cols[i] = defaultStrand
		default:
			cols[i] = "0"
		}
	}

	_, err := w.w.WriteString(strings.Join(cols[:last+1], "\t") + "\n")
	return err
}

// WriteAll writes all records and flushes.
func (w *Writer) WriteAll(recs []*interval.Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
