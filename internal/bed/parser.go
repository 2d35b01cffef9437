// Package bed provides BED file parsing and writing.
//
// BED lines carry 3 to 12 whitespace-delimited columns in canonical order:
// chrom, chromStart, chromEnd, name, score, strand, thickStart, thickEnd,
// itemRgb, blockCount, blockSizes, blockStarts. Lines that do not conform
// are not errors: they degrade to generic indexed-column rows so that
// non-standard files still load as plain tabular data.
package bed

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inodb/vibe-intervals/internal/interval"
)

// Parser reads interval records from a BED file.
type Parser struct {
	reader      *bufio.Reader
	file        *os.File
	gzipReader  *gzip.Reader
	lineNumber  int
	headerLines []string
	fellBack    bool
}

// NewParser creates a parser for the given file path. Supports plain and
// gzipped input, and "-" for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bed file: %w", err)
	}

	p := &Parser{file: file}

	buf := make([]byte, 2)
	n, _ := file.Read(buf)
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek bed file: %w", err)
	}

	if n == 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser reading from r.
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// FellBack reports whether any line degraded to a generic-column row, so
// the caller can present the whole table as plain TSV.
func (p *Parser) FellBack() bool {
	return p.fellBack
}

// HeaderLines returns the track/browser header lines seen so far.
func (p *Parser) HeaderLines() []string {
	return p.headerLines
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Next reads the next record. Returns nil, nil when input is exhausted.
// Non-conforming lines are returned as fallback records, never as errors.
func (p *Parser) Next() (*interval.Record, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read bed line: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		trimmed := strings.TrimRight(line, " \t\r\n")
		atEOF := err == io.EOF

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			// skip
		case strings.HasPrefix(trimmed, "track") || strings.HasPrefix(trimmed, "browser"):
			p.headerLines = append(p.headerLines, trimmed)
		default:
			return p.parseLine(trimmed), nil
		}

		if atEOF {
			return nil, nil
		}
	}
}

// ParseAll reads the remaining input into a record set.
func (p *Parser) ParseAll() ([]*interval.Record, error) {
	var records []*interval.Record
	for {
		rec, err := p.Next()
		if err != nil {
			return records, err
		}
		if rec == nil {
			return records, nil
		}
		records = append(records, rec)
	}
}

// parseLine parses a single BED data line, degrading to a fallback row when
// the line shape does not match BED.
func (p *Parser) parseLine(line string) *interval.Record {
	fields := strings.Fields(line)

	if len(fields) < 3 {
		return p.fallback(line)
	}

	start, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return p.fallback(line)
	}
	end, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return p.fallback(line)
	}

	rec := &interval.Record{
		Chrom:      fields[0],
		Start:      start,
		End:        end,
		Convention: interval.ZeroBasedHalfOpen,
		Strand:     interval.StrandUnknown,
		Format:     interval.FormatBED,
	}

	// Optional columns strictly in canonical order; anything past the
	// twelfth is ignored.
	if len(fields) > 3 {
		rec.Name = fields[3]
	}
	if len(fields) > 4 {
		rec.Score = fields[4]
	}
	if len(fields) > 5 {
		rec.Strand = interval.ParseStrand(fields[5])
	}
	if len(fields) > 6 {
		rec.ThickStart = fields[6]
	}
	if len(fields) > 7 {
		rec.ThickEnd = fields[7]
	}
	if len(fields) > 8 {
		rec.ItemRGB = fields[8]
	}
	if len(fields) > 9 {
		rec.BlockCount = fields[9]
	}
	if len(fields) > 10 {
		rec.BlockSizes = fields[10]
	}
	if len(fields) > 11 {
		rec.BlockStarts = fields[11]
	}

	return rec
}

// fallback builds a generic-column record from the raw line. Tab-delimited
// files keep their tab cells; otherwise tokens split on whitespace.
func (p *Parser) fallback(line string) *interval.Record {
	p.fellBack = true

	cells := strings.Split(line, "\t")
	if len(cells) == 1 {
		cells = strings.Fields(line)
	}

	return &interval.Record{
		Format:   interval.FormatUnknown,
		Fallback: cells,
	}
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
