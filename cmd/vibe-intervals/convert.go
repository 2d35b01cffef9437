package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-intervals/internal/bed"
	"github.com/inodb/vibe-intervals/internal/convert"
	"github.com/inodb/vibe-intervals/internal/gff"
)

// convertOptions resolves the configurable conversion defaults.
func convertOptions() convert.Options {
	return convert.Options{
		NameAttr:     viper.GetString("convert.name_attr"),
		ScoreAttr:    viper.GetString("convert.score_attr"),
		DefaultScore: viper.GetString("convert.default_score"),
		DefaultPhase: viper.GetString("convert.default_phase"),
		FeatureType:  viper.GetString("convert.feature_type"),
		Source:       viper.GetString("convert.source"),
	}
}

func newConvertCmd(verbose *bool) *cobra.Command {
	var format string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert between GFF and BED",
		Long: `Convert a GFF file to BED or a BED file to GFF. Coordinates are shifted
between the 1-based inclusive GFF convention and the 0-based half-open BED
convention; coordinate round-trips are exact, attribute sets are not.`,
		Example: `  vibe-intervals convert annotations.gff3 -o annotations.bed
  vibe-intervals convert regions.bed -o regions.gff3`,
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

			conv := convert.New(convertOptions())
			conv.SetLogger(logger)

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
			case "gff", "gff2", "gff3", "gtf":
				converted, errs := conv.AllToBED(records)
				reportConversionErrors(len(records), len(errs))
				return bed.NewWriter(out).WriteAll(converted)
			case "bed":
				converted, errs := conv.AllToGFF(records)
				reportConversionErrors(len(records), len(errs))
				return gff.NewWriter(out).WriteAll(converted)
			default:
				return fmt.Errorf("unknown input format %q", inFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: gff or bed (auto-detected if not set)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func reportConversionErrors(total, failed int) {
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Converted %d of %d records (%d skipped)\n",
			total-failed, total, failed)
	}
}
