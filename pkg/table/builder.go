package table

import (
	"fmt"
	"strings"

	"github.com/lipidkey/lipidkey/pkg/lipid"
)

// Residue extraction schemes.
const (
	SchemeRefMet = "refmet"
	SchemeLegacy = "legacy"
)

// Options configures residue aggregation.
type Options struct {
	// Scheme selects the classification/extraction dialect, SchemeRefMet
	// or SchemeLegacy.
	Scheme string

	// DropAmbiguous skips isobaric species instead of apportioning their
	// amount across the alternatives.
	DropAmbiguous bool

	// Cleanup removes rows whose lowercased name is in Unwanted before
	// processing (total counts, free/total cholesterol and the like).
	Cleanup bool

	// Unwanted is the lowercased row-name set Cleanup removes.
	Unwanted []string

	// ReplaceMissing is substituted for missing input cells and fills
	// missing output combinations.
	ReplaceMissing float64

	// AbsoluteAmount accumulates absolute molecule counts instead of the
	// input table's units.
	AbsoluteAmount bool

	// Unit is the unit of the input amounts, e.g. "picomoles".
	Unit string

	// Name tags the output table.
	Name string
}

// DefaultOptions returns the standard aggregation configuration: RefMet
// scheme, cleanup of total/fc/tc rows, picomole input.
func DefaultOptions() Options {
	return Options{
		Scheme:   SchemeRefMet,
		Cleanup:  true,
		Unwanted: []string{"total", "fc", "tc"},
		Unit:     "picomoles",
		Name:     "residues_table",
	}
}

// BuildResidues aggregates a lipid-name by sample table into a residue by
// sample table. Each input row is parsed under the selected scheme; every
// residue token it yields receives amount/dividend (molecule count instead
// of amount when AbsoluteAmount is set) in that row's column. Rows that
// yield no residues contribute nothing. Output rows are the union of all
// residues produced, in first-seen order; missing combinations are filled
// with ReplaceMissing.
//
// Structural problems (nil or column-less input, unknown scheme) fail fast
// before any row is processed. Per-row parsing failures degrade gracefully.
func BuildResidues(t *Table, opts Options) (*Table, error) {
	if t == nil {
		return nil, &ValidationError{Field: "input", Message: "input table must not be nil"}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if opts.Scheme != SchemeRefMet && opts.Scheme != SchemeLegacy {
		return nil, fmt.Errorf("unrecognized scheme %q: try %q or %q", opts.Scheme, SchemeRefMet, SchemeLegacy)
	}

	unwanted := make(map[string]bool, len(opts.Unwanted))
	if opts.Cleanup {
		for _, name := range opts.Unwanted {
			unwanted[strings.ToLower(name)] = true
		}
	}

	out := New(opts.Name, t.Columns())

	for _, col := range t.Columns() {
		for _, row := range t.Rows() {
			if opts.Cleanup && unwanted[strings.ToLower(row)] {
				continue
			}

			amount, ok := t.Value(row, col)
			if !ok {
				amount = opts.ReplaceMissing
			}
			lip := lipid.New(row, amount, opts.Unit)

			var residues []string
			var dividend int
			if opts.Scheme == SchemeRefMet {
				residues, dividend = lip.RefMetResidues(opts.DropAmbiguous)
			} else {
				residues, dividend = lip.LegacyResidues(opts.DropAmbiguous)
			}

			if len(residues) == 0 {
				continue
			}
			if dividend == 0 {
				return nil, fmt.Errorf(
					"lipid %q: %d residues with a zero dividend; the %q scheme likely does not match this nomenclature, try the other scheme",
					row, len(residues), opts.Scheme)
			}

			share := lip.Amount / float64(dividend)
			if opts.AbsoluteAmount {
				share = lip.Molecules / float64(dividend)
			}
			for _, residue := range residues {
				out.Add(residue, col, share)
			}
		}
	}

	out.Fill(opts.ReplaceMissing)
	return out, nil
}
