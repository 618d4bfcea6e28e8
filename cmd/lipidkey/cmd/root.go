// Package cmd provides CLI command implementations
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lipidkey/lipidkey/pkg/table"
)

var (
	// Flags for residues command
	inputFile      string
	outputFile     string
	scheme         string
	dropAmbiguous  bool
	noCleanup      bool
	unwanted       string
	absoluteAmount bool
	unit           string
	separator      string
	tableName      string

	// Flags for prepdb command
	prepInput  string
	prepOutput string
	fetchURL   string
)

var rootCmd = &cobra.Command{
	Use:   "lipidkey",
	Short: "LipidKey - lipid residue extraction tool",
	Long: `LipidKey classifies lipid names and decomposes them into fatty-acid
residues, aggregating per-sample amounts into a residue-by-sample table.

Two naming dialects are supported:
- refmet: the RefMet reference nomenclature, e.g. TG(18:4_20:4_27:0)
- legacy: the ad-hoc scheme of some commercial services, e.g. CE 12:0

Ambiguous (isobaric) species are apportioned equally across their
alternatives, or dropped entirely with --drop-ambiguous.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(residuesCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(prepdbCmd)

	// Residues command flags
	residuesCmd.Flags().StringVarP(&inputFile, "in", "i", "", "Input table path (required)")
	residuesCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output path: .tsv, .csv or .db (required)")
	residuesCmd.Flags().StringVar(&scheme, "scheme", table.SchemeRefMet, "Naming scheme: refmet or legacy")
	residuesCmd.Flags().BoolVar(&dropAmbiguous, "drop-ambiguous", false, "Skip isobaric species instead of apportioning them")
	residuesCmd.Flags().BoolVar(&noCleanup, "no-cleanup", false, "Keep unwanted rows (total, fc, tc) in the input")
	residuesCmd.Flags().StringVar(&unwanted, "unwanted", "total,fc,tc", "Comma-separated row names to remove during cleanup")
	residuesCmd.Flags().BoolVar(&absoluteAmount, "absolute", false, "Accumulate absolute molecule counts instead of input units")
	residuesCmd.Flags().StringVar(&unit, "unit", "picomoles", "Unit of the input amounts")
	residuesCmd.Flags().StringVar(&separator, "sep", "", "Input delimiter: tab or comma (default by extension)")
	residuesCmd.Flags().StringVar(&tableName, "name", "residues_table", "Tag for the output table")

	residuesCmd.MarkFlagRequired("in")
	residuesCmd.MarkFlagRequired("out")

	// Classify command flags
	classifyCmd.Flags().StringVar(&scheme, "scheme", table.SchemeRefMet, "Naming scheme: refmet or legacy")

	// Prepdb command flags
	prepdbCmd.Flags().StringVarP(&prepInput, "in", "i", "", "Reference list CSV path (required)")
	prepdbCmd.Flags().StringVarP(&prepOutput, "out", "o", "", "Output database file (required)")
	prepdbCmd.Flags().StringVar(&fetchURL, "fetch", "", "Download the reference list from this URL to --in first")

	prepdbCmd.MarkFlagRequired("in")
	prepdbCmd.MarkFlagRequired("out")
}

// sepFromFlags resolves the field delimiter from --sep or a file extension.
func sepFromFlags(path string) (rune, error) {
	switch strings.ToLower(separator) {
	case "tab":
		return '\t', nil
	case "comma":
		return ',', nil
	case "":
	default:
		return 0, fmt.Errorf("invalid separator %q, must be tab or comma", separator)
	}

	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return ',', nil
	}
	return '\t', nil
}
