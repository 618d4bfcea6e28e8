package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lipidkey/lipidkey/pkg/refmet"
	"github.com/lipidkey/lipidkey/pkg/writer/sqlite"
)

var prepdbCmd = &cobra.Command{
	Use:   "prepdb",
	Short: "Build the reference compound database",
	Long: `Load a tab-delimited export of the RefMet compound list (columns name,
exactmass, main_class), drop entries without fatty-acid residues or from
troublesome classes, and store the result as a SQLite side table.

Examples:
  lipidkey prepdb --in refmet.csv --out refmet.db

  # Download the published list first
  lipidkey prepdb --fetch ` + refmet.DefaultURL + ` --in refmet.csv --out refmet.db`,
	RunE: runPrepDB,
}

func runPrepDB(cmd *cobra.Command, args []string) error {
	if fetchURL != "" {
		fmt.Printf("Fetching %s...\n", fetchURL)
		if err := refmet.Fetch(fetchURL, prepInput); err != nil {
			return err
		}
	}

	inFile, err := os.Open(prepInput)
	if err != nil {
		return fmt.Errorf("failed to open reference list: %w", err)
	}
	defer inFile.Close()

	compounds, err := refmet.LoadCSV(inFile)
	if err != nil {
		return fmt.Errorf("failed to load reference list: %w", err)
	}
	fmt.Printf("Loaded %d compounds\n", len(compounds))

	kept := refmet.Filter(compounds, refmet.DefaultSkipClasses())
	fmt.Printf("Kept %d compounds with fatty-acid residues\n", len(kept))

	classes := refmet.FattyClasses(compounds)
	if len(classes) > 0 {
		names := make([]string, 0, len(classes))
		for class := range classes {
			names = append(names, class)
		}
		sort.Strings(names)
		fmt.Printf("Fatty classes present: %v\n", names)
	}

	writer, err := sqlite.NewWriter(prepOutput)
	if err != nil {
		return fmt.Errorf("failed to create output database: %w", err)
	}
	defer writer.Close()

	if err := writer.WriteCompounds(kept); err != nil {
		return err
	}
	if err := writer.Finalize("RefMet reference compound list"); err != nil {
		return err
	}

	fmt.Printf("Output: %s\n", prepOutput)
	return nil
}
