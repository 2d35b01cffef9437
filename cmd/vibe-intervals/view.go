package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-intervals/internal/analytics"
	"github.com/inodb/vibe-intervals/internal/interval"
	"github.com/inodb/vibe-intervals/internal/output"
	"github.com/inodb/vibe-intervals/internal/table"
)

func newViewCmd(verbose *bool) *cobra.Command {
	var format string
	var noColor bool
	var detail int
	var strand string
	var minSize, maxSize int64

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Display an interval file as a column table",
		Long: `Parse a GFF2/GFF3 or BED file and print it as a tab-delimited table.
GFF attribute keys become their own columns. Non-conforming BED files
degrade to generic indexed columns instead of failing.`,
		Example: `  vibe-intervals view annotations.gff3
  vibe-intervals view regions.bed
  cat regions.bed | vibe-intervals view -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			records, err := loadRecords(args[0], format, logger)
			if err != nil {
				return err
			}

			if strand != "" {
				records = analytics.SelectByStrand(records, interval.ParseStrand(strand))
			}
			if minSize > 0 || maxSize > 0 {
				records = analytics.FilterBySize(records, minSize, maxSize)
			}

			if detail > 0 {
				if detail > len(records) {
					return fmt.Errorf("record %d out of range (%d records)", detail, len(records))
				}
				return output.NewTableWriter(os.Stdout).
					WriteTable(table.RecordDetail(records[detail-1]))
			}

			tw := output.NewTableWriter(os.Stdout)
			tw.SetColor(viper.GetBool("display.color_strands") && !noColor)
			return tw.WriteTable(table.FromRecords(records))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: gff or bed (auto-detected if not set)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable strand coloring")
	cmd.Flags().IntVar(&detail, "detail", 0, "show the attribute detail of the Nth record instead of the table")
	cmd.Flags().StringVar(&strand, "strand", "", "only show records on this strand (+ or -)")
	cmd.Flags().Int64Var(&minSize, "min-size", 0, "only show regions at least this long")
	cmd.Flags().Int64Var(&maxSize, "max-size", 0, "only show regions at most this long")

	return cmd
}
