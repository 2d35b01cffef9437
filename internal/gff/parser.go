// Package gff provides GFF2/GFF3 file parsing and writing.
package gff

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inodb/vibe-intervals/internal/interval"
)

// Dialect is the attribute syntax of a GFF file, resolved once per file and
// threaded explicitly through line parsing.
type Dialect int

const (
	// DialectUnknown means no attribute-bearing line has been seen yet.
	DialectUnknown Dialect = iota
	// DialectGFF3 uses key=value attribute pairs.
	DialectGFF3
	// DialectGFF2 uses key "value" attribute pairs.
	DialectGFF2
)

// Format returns the record format tag for the dialect. An unresolved
// dialect is reported as GFF3, the modern default.
func (d Dialect) Format() interval.Format {
	if d == DialectGFF2 {
		return interval.FormatGFF2
	}
	return interval.FormatGFF3
}

// ParseError represents an error parsing a single GFF line. Parsing may
// continue past it; malformed lines never abort the file.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gff parse error at line %d: %s", e.Line, e.Message)
}

// Parser reads interval records from a GFF2/GFF3 file.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	dialect    Dialect
}

// NewParser creates a parser for the given file path. Supports plain and
// gzipped input, and "-" for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gff file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	n, _ := file.Read(buf)
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek gff file: %w", err)
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

// Dialect returns the attribute dialect resolved so far.
func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Next reads the next record. Returns nil, nil when input is exhausted.
// A *ParseError marks a malformed line; the caller may keep calling Next.
func (p *Parser) Next() (*interval.Record, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read gff line: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		trimmed := strings.TrimRight(line, " \t\r\n")
		if trimmed == "" {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			p.probeDirective(trimmed)
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		return p.parseLine(trimmed)
	}
}

// ParseAll reads the remaining input, collecting records and per-line
// warnings. Only I/O failures are returned as a hard error.
func (p *Parser) ParseAll() ([]*interval.Record, []error, error) {
	var records []*interval.Record
	var warnings []error

	for {
		rec, err := p.Next()
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				warnings = append(warnings, perr)
				continue
			}
			return records, warnings, err
		}
		if rec == nil {
			return records, warnings, nil
		}
		records = append(records, rec)
	}
}

// probeDirective pins the dialect from a ##gff-version directive.
func (p *Parser) probeDirective(line string) {
	if p.dialect != DialectUnknown {
		return
	}
	if strings.HasPrefix(line, "##gff-version") {
		version := strings.TrimSpace(strings.TrimPrefix(line, "##gff-version"))
		if strings.HasPrefix(version, "3") {
			p.dialect = DialectGFF3
		} else if strings.HasPrefix(version, "2") {
			p.dialect = DialectGFF2
		}
	}
}

// parseLine parses a single GFF data line. Columns are seqid, source, type,
// start, end, score, strand, phase and an optional attribute column.
func (p *Parser) parseLine(line string) (*interval.Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 8 {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("expected at least 8 fields, got %d", len(fields)),
		}
	}

	start, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("invalid start coordinate: %s", fields[3]),
		}
	}

	end, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("invalid end coordinate: %s", fields[4]),
		}
	}

	rec := &interval.Record{
		Chrom:       fields[0],
		Source:      dotToEmpty(fields[1]),
		FeatureType: dotToEmpty(fields[2]),
		Start:       start,
		End:         end,
		Convention:  interval.OneBasedInclusive,
		Score:       dotToEmpty(fields[5]),
		Strand:      interval.ParseStrand(fields[6]),
		Phase:       dotToEmpty(fields[7]),
	}

	if len(fields) > 8 && fields[8] != "" && fields[8] != "." {
		if p.dialect == DialectUnknown {
			p.dialect = probeDialect(fields[8])
		}
		rec.Attrs = parseAttributes(fields[8], p.dialect)
	}
	rec.Format = p.dialect.Format()

	// Display convenience: surface the conventional name attribute.
	if rec.Attrs != nil {
		if name, ok := rec.Attrs.Get("Name"); ok {
			rec.Name = name
		} else if id, ok := rec.Attrs.Get("ID"); ok {
			rec.Name = id
		}
	}

	return rec, nil
}

// probeDialect decides the attribute syntax from the first pair of the first
// attribute-bearing line: an "=" before any space means GFF3.
func probeDialect(attrStr string) Dialect {
	first := attrStr
	if idx := strings.Index(first, ";"); idx != -1 {
		first = first[:idx]
	}
	first = strings.TrimSpace(first)

	eq := strings.Index(first, "=")
	sp := strings.Index(first, " ")
	if eq != -1 && (sp == -1 || eq < sp) {
		return DialectGFF3
	}
	return DialectGFF2
}

// parseAttributes decodes the 9th column into ordered key/value pairs.
// Text that yields no pairs at all is preserved verbatim under the _raw key.
func parseAttributes(attrStr string, dialect Dialect) *interval.Attributes {
	attrs := interval.NewAttributes()

	for _, part := range strings.Split(attrStr, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch dialect {
		case DialectGFF2:
			// key "value" pairs, split once on the first space
			idx := strings.Index(part, " ")
			if idx == -1 {
				continue
			}
			key := part[:idx]
			value := strings.Trim(strings.TrimSpace(part[idx+1:]), "\"")
			attrs.Set(key, value)
		default:
			// key=value pairs; a piece without "=" becomes a bare key
			kv := strings.SplitN(part, "=", 2)
			if len(kv) == 2 {
				attrs.Set(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]))
			} else {
				attrs.Set(part, "")
			}
		}
	}

	if attrs.Len() == 0 {
		attrs.Set(interval.RawAttrKey, attrStr)
	}
	return attrs
}

func dotToEmpty(s string) string {
	if s == "." {
		return ""
	}
	return s
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
