package gff

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/inodb/vibe-intervals/internal/interval"
)

// Writer serializes GFF-convention records to GFF text.
type Writer struct {
	w           *bufio.Writer
	wroteHeader bool
}

// NewWriter creates a writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes a single record as a 9-column GFF line. The first call emits
// a ##gff-version directive.
func (w *Writer) Write(rec *interval.Record) error {
	if !rec.Format.IsGFF() {
		return fmt.Errorf("cannot write %s record as gff", rec.Format)
	}

	if !w.wroteHeader {
		version := "3"
		if rec.Format == interval.FormatGFF2 {
			version = "2"
		}
		if _, err := fmt.Fprintf(w.w, "##gff-version %s\n", version); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	fields := []string{
		rec.Chrom,
		emptyToDot(rec.Source),
		emptyToDot(rec.FeatureType),
		fmt.Sprintf("%d", rec.Start),
		fmt.Sprintf("%d", rec.End),
		emptyToDot(rec.Score),
		string(rec.Strand),
		emptyToDot(rec.Phase),
		formatAttributes(rec),
	}

	_, err := w.w.WriteString(strings.Join(fields, "\t") + "\n")
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

// formatAttributes renders the attribute column in the record's dialect.
func formatAttributes(rec *interval.Record) string {
	if rec.Attrs == nil || rec.Attrs.Len() == 0 {
		return "."
	}

	if raw, ok := rec.Attrs.Get(interval.RawAttrKey); ok && rec.Attrs.Len() == 1 {
		return raw
	}

	pairs := make([]string, 0, rec.Attrs.Len())
	for _, k := range rec.Attrs.Keys() {
		v, _ := rec.Attrs.Get(k)
		if rec.Format == interval.FormatGFF2 {
			pairs = append(pairs, fmt.Sprintf("%s %q", k, v))
		} else {
			pairs = append(pairs, k+"="+v)
		}
	}
	if rec.Format == interval.FormatGFF2 {
		return strings.Join(pairs, "; ")
	}
	return strings.Join(pairs, ";")
}

func emptyToDot(s string) string {
	if s == "" {
		return "."
	}
	return s
}
