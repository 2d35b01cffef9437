// Package output renders tables for terminal display.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/inodb/vibe-intervals/internal/interval"
	"github.com/inodb/vibe-intervals/internal/table"
)

// ANSI codes for strand coloring.
const (
	colorGreen = "\x1b[32m"
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// TableWriter writes a table in tab-delimited form. With coloring enabled,
// rows are tinted by their strand column: forward green, reverse red.
type TableWriter struct {
	w     *bufio.Writer
	color bool
}

// NewTableWriter creates a writer on top of w.
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: bufio.NewWriter(w)}
}

// SetColor enables or disables strand coloring.
func (tw *TableWriter) SetColor(on bool) {
	tw.color = on
}

// WriteTable writes the header line, all rows, and flushes.
func (tw *TableWriter) WriteTable(t *table.Table) error {
	if _, err := tw.w.WriteString("#" + strings.Join(t.Columns, "\t") + "\n"); err != nil {
		return err
	}

	strandCol := -1
	if tw.color {
		for i, c := range t.Columns {
			if c == "strand" {
				strandCol = i
				break
			}
		}
	}

	for _, row := range t.Rows {
		line := strings.Join(row, "\t")
		if strandCol >= 0 && strandCol < len(row) {
			switch interval.ParseStrand(row[strandCol]).Classify() {
			case interval.ClassForward:
				line = colorGreen + line + colorReset
			case interval.ClassReverse:
				line = colorRed + line + colorReset
			}
		}
		if _, err := tw.w.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return tw.w.Flush()
}
