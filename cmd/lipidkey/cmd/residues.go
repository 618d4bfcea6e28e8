package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lipidkey/lipidkey/pkg/lipid"
	readtab "github.com/lipidkey/lipidkey/pkg/reader/tabular"
	"github.com/lipidkey/lipidkey/pkg/table"
	"github.com/lipidkey/lipidkey/pkg/writer/sqlite"
	writetab "github.com/lipidkey/lipidkey/pkg/writer/tabular"
)

var residuesCmd = &cobra.Command{
	Use:   "residues",
	Short: "Aggregate a lipid table into a residue-by-sample table",
	Long: `Read a delimited table (header row = sample names, first column = lipid
names, numeric cells), decompose every lipid into fatty-acid residues and
sum each residue's apportioned amount per sample.

Examples:
  # RefMet-named table, tab separated
  lipidkey residues --in lipids.tsv --out residues.tsv

  # Commercial naming, dropping isobaric species, SQLite output
  lipidkey residues --in lipids.csv --out residues.db --scheme legacy --drop-ambiguous

  # Absolute molecule counts from micromolar amounts
  lipidkey residues --in lipids.tsv --out residues.tsv --absolute --unit micromoles`,
	RunE: runResidues,
}

func runResidues(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}

	sep, err := sepFromFlags(inputFile)
	if err != nil {
		return err
	}

	inFile, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer inFile.Close()

	t, err := readtab.Read(inFile, readtab.Options{Sep: sep, Name: filepath.Base(inputFile)})
	if err != nil {
		return fmt.Errorf("failed to read input table: %w", err)
	}

	opts := table.DefaultOptions()
	opts.Scheme = scheme
	opts.DropAmbiguous = dropAmbiguous
	opts.Cleanup = !noCleanup
	opts.AbsoluteAmount = absoluteAmount
	opts.Unit = unit
	opts.Name = tableName
	if unwanted != "" {
		opts.Unwanted = strings.Split(unwanted, ",")
		for i := range opts.Unwanted {
			opts.Unwanted[i] = strings.TrimSpace(opts.Unwanted[i])
		}
	}

	fmt.Printf("Aggregating %s (%d lipids, %d samples, scheme %s)...\n",
		inputFile, t.NumRows(), len(t.Columns()), opts.Scheme)

	warnUnparsed(t, opts)

	residues, err := table.BuildResidues(t, opts)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".db":
		if err := writeResiduesSQLite(residues); err != nil {
			return err
		}
	default:
		outSep, err := sepFromFlags(outputFile)
		if err != nil {
			return err
		}
		outFile, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer outFile.Close()
		if err := writetab.Write(outFile, residues, writetab.Options{Sep: outSep}); err != nil {
			return err
		}
	}

	fmt.Printf("\nAggregation complete!\n")
	fmt.Printf("Residues: %d\n", residues.NumRows())
	fmt.Printf("Output: %s\n", outputFile)

	return nil
}

// warnUnparsed reports input rows that will contribute nothing to the
// aggregate, so silently dropped names are visible in the run log.
func warnUnparsed(t *table.Table, opts table.Options) {
	unwantedSet := make(map[string]bool, len(opts.Unwanted))
	if opts.Cleanup {
		for _, name := range opts.Unwanted {
			unwantedSet[strings.ToLower(name)] = true
		}
	}

	for _, row := range t.Rows() {
		if unwantedSet[strings.ToLower(row)] {
			continue
		}
		lip := lipid.New(row, 0, opts.Unit)

		var residues []string
		if opts.Scheme == table.SchemeLegacy {
			residues, _ = lip.LegacyResidues(opts.DropAmbiguous)
		} else {
			residues, _ = lip.RefMetResidues(opts.DropAmbiguous)
		}
		if len(residues) == 0 {
			fmt.Fprintf(os.Stderr, "Warning: no residues extracted from %q, skipping\n", row)
		}
	}
}

func writeResiduesSQLite(residues *table.Table) error {
	writer, err := sqlite.NewWriter(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output database: %w", err)
	}
	defer writer.Close()

	if err := writer.WriteTable(residues); err != nil {
		return fmt.Errorf("failed to write residue table: %w", err)
	}
	if err := writer.Finalize(residues.Name); err != nil {
		return fmt.Errorf("failed to finalize database: %w", err)
	}
	return nil
}
