package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-intervals/internal/analytics"
	"github.com/inodb/vibe-intervals/internal/bed"
	"github.com/inodb/vibe-intervals/internal/gff"
	"github.com/inodb/vibe-intervals/internal/interval"
	"github.com/inodb/vibe-intervals/internal/output"
	"github.com/inodb/vibe-intervals/internal/table"
)

func newStatsCmd(verbose *bool) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize intervals per chromosome",
		Long: `Group intervals by chromosome and report count, coordinate span, total
length, and mean length per group, plus overall totals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			records, err := loadRecords(args[0], format, logger)
			if err != nil {
				return err
			}

			sum := analytics.ChromStats(records)
			fmt.Fprintf(os.Stderr, "Regions: %d, Total bases: %d, Strands: +%d -%d .%d\n",
				sum.Regions, sum.TotalBases,
				sum.ByStrand[interval.StrandForward],
				sum.ByStrand[interval.StrandReverse],
				sum.ByStrand[interval.StrandUnknown])

			return output.NewTableWriter(os.Stdout).WriteTable(table.FromStats(sum))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: gff or bed (auto-detected if not set)")
	return cmd
}

func newMergeCmd(verbose *bool) *cobra.Command {
	var format string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "merge <file>",
		Short: "Merge overlapping and adjacent intervals",
		Long: `Sort intervals by (chromosome, start) and fold overlapping or adjacent
intervals into single spanning regions. The merged region keeps the name,
strand, and attributes of its first contributor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			inFormat := format
			if inFormat == "" {
				inFormat = detectFormat(args[0])
			}

			records, err := loadRecords(args[0], inFormat, logger)
			if err != nil {
				return err
			}

			merged := analytics.Merge(records)
			fmt.Fprintf(os.Stderr, "Merged %d regions into %d\n", len(records), len(merged))

			out := os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			switch inFormat {
			case "bed":
				return bed.NewWriter(out).WriteAll(merged)
			default:
				return gff.NewWriter(out).WriteAll(merged)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: gff or bed (auto-detected if not set)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newDistanceCmd(verbose *bool) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "distance <file>",
		Short: "Compute gaps between consecutive intervals",
		Long: `Sort intervals by (chromosome, start) and report the gap from each
interval to the next one on the same chromosome. Overlapping neighbors
yield negative gaps; the last interval of each chromosome has none.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			records, err := loadRecords(args[0], format, logger)
			if err != nil {
				return err
			}

			ds := analytics.Distances(analytics.SortByPosition(records))

			return output.NewTableWriter(os.Stdout).WriteTable(table.FromDistances(ds))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: gff or bed (auto-detected if not set)")
	return cmd
}
