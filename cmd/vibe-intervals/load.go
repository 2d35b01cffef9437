package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/inodb/vibe-intervals/internal/bed"
	"github.com/inodb/vibe-intervals/internal/gff"
	"github.com/inodb/vibe-intervals/internal/interval"
)

// detectFormat determines the input format from the file extension, falling
// back to a content probe: a tab line with >=9 fields, integer coordinates
// in columns 4/5 and a recognizable strand is GFF; an integer-coordinate
// line of 3+ fields is BED.
func detectFormat(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".gz") {
		lower = lower[:len(lower)-3]
	}

	switch {
	case strings.HasSuffix(lower, ".gff"), strings.HasSuffix(lower, ".gff3"),
		strings.HasSuffix(lower, ".gff2"), strings.HasSuffix(lower, ".gtf"):
		return "gff"
	case strings.HasSuffix(lower, ".bed"):
		return "bed"
	}

	if path == "-" {
		return "bed"
	}

	file, err := os.Open(path)
	if err != nil {
		return "bed"
	}
	defer file.Close()

	buf := make([]byte, 4096)
	n, err := file.Read(buf)
	if err != nil || n == 0 {
		return "bed"
	}

	for _, line := range strings.Split(string(buf[:n]), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			if strings.HasPrefix(line, "##gff-version") {
				return "gff"
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) >= 9 && isInt(fields[3]) && isInt(fields[4]) &&
			(fields[6] == "+" || fields[6] == "-" || fields[6] == ".") {
			return "gff"
		}
		break
	}

	return "bed"
}

func isInt(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// loadRecords parses the file as the given format ("gff", "bed", or "" for
// auto-detect). Per-line problems are logged as warnings, never fatal.
func loadRecords(path, format string, logger *zap.Logger) ([]*interval.Record, error) {
	if format == "" {
		format = detectFormat(path)
	}

	switch format {
	case "gff", "gff2", "gff3", "gtf":
		p, err := gff.NewParser(path)
		if err != nil {
			return nil, err
		}
		defer p.Close()

		records, warnings, err := p.ParseAll()
		if err != nil {
			return nil, err
		}
		for _, w := range warnings {
			logger.Warn("skipping malformed line", zap.Error(w))
		}
		return records, nil

	case "bed":
		p, err := bed.NewParser(path)
		if err != nil {
			return nil, err
		}
		defer p.Close()

		records, err := p.ParseAll()
		if err != nil {
			return nil, err
		}
		if p.FellBack() {
			logger.Info("input did not conform to BED; presenting generic columns",
				zap.String("path", path))
		}
		return records, nil

	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}
