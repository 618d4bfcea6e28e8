package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lipidkey/lipidkey/pkg/lipid"
	"github.com/lipidkey/lipidkey/pkg/table"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [name...]",
	Short: "Classify lipid names and show their residues",
	Long: `Classify one or more lipid names under the selected scheme and print
the class and extracted residues for each.

Examples:
  lipidkey classify "TG(18:4_20:4_27:0)"
  lipidkey classify --scheme legacy "CE 12:0" "TAG 52:4 total (16:0/18:1/18:3)(16:0/18:2/18:2)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	if scheme != table.SchemeRefMet && scheme != table.SchemeLegacy {
		return fmt.Errorf("unrecognized scheme %q: try %q or %q", scheme, table.SchemeRefMet, table.SchemeLegacy)
	}

	for _, name := range args {
		lip := lipid.New(name, 0, "picomoles")

		var class string
		var residues []string
		var dividend int
		if scheme == table.SchemeRefMet {
			class = lip.RefMetClass()
			residues, dividend = lip.RefMetResidues(false)
		} else {
			class = lip.LegacyClass()
			residues, dividend = lip.LegacyResidues(false)
		}

		fmt.Printf("%s\n", name)
		fmt.Printf("  Class: %s\n", class)
		if scheme == table.SchemeRefMet {
			fmt.Printf("  Full class: %s\n", lip.RefMetFullClass())
		}
		if len(residues) == 0 {
			fmt.Printf("  Residues: none\n")
		} else {
			fmt.Printf("  Residues: %s (dividend %d)\n", strings.Join(residues, ", "), dividend)
		}
	}

	return nil
}
