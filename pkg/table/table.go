// Package table provides the named-rows by sample-columns numeric table
// the residue aggregation works on, independent of any file format.
package table

import (
	"fmt"
	"strings"
)

// Table holds numeric cells addressed by row name and column name. Row and
// column order is preserved as first seen. Missing cells are distinct from
// zero-valued ones.
type Table struct {
	// Name tags the table so callers can carry it through to output files.
	Name string

	columns []string
	rows    []string
	rowSet  map[string]bool
	cells   map[cellKey]float64
}

type cellKey struct {
	row, col string
}

// New creates an empty table with the given column set.
func New(name string, columns []string) *Table {
	return &Table{
		Name:    name,
		columns: append([]string(nil), columns...),
		rowSet:  make(map[string]bool),
		cells:   make(map[cellKey]float64),
	}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns the row names in first-seen order.
func (t *Table) Rows() []string {
	return t.rows
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// AddRow appends a row if it is not already present.
func (t *Table) AddRow(name string) {
	if !t.rowSet[name] {
		t.rowSet[name] = true
		t.rows = append(t.rows, name)
	}
}

// Set stores a cell value, creating the row if needed.
func (t *Table) Set(row, col string, v float64) {
	t.AddRow(row)
	t.cells[cellKey{row, col}] = v
}

// Add accumulates delta into a cell, treating a missing cell as zero.
func (t *Table) Add(row, col string, delta float64) {
	t.AddRow(row)
	t.cells[cellKey{row, col}] += delta
}

// Value returns a cell value and whether the cell is populated.
func (t *Table) Value(row, col string) (float64, bool) {
	v, ok := t.cells[cellKey{row, col}]
	return v, ok
}

// Fill populates every missing row/column combination with v.
func (t *Table) Fill(v float64) {
	for _, row := range t.rows {
		for _, col := range t.columns {
			k := cellKey{row, col}
			if _, ok := t.cells[k]; !ok {
				t.cells[k] = v
			}
		}
	}
}

// ValidationError reports a structural problem with a table.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// Validate checks that the table can be processed: it must carry at least
// one sample column, and column names must be unique and non-empty.
func (t *Table) Validate() error {
	var errs []string

	if len(t.columns) == 0 {
		errs = append(errs, "at least one sample column is required")
	}
	seen := make(map[string]bool, len(t.columns))
	for i, col := range t.columns {
		if col == "" {
			errs = append(errs, fmt.Sprintf("column %d has an empty name", i))
		}
		if seen[col] {
			errs = append(errs, fmt.Sprintf("duplicate column name %q", col))
		}
		seen[col] = true
	}

	if len(errs) > 0 {
		return &ValidationError{
			Field:   "Table",
			Message: strings.Join(errs, "; "),
		}
	}
	return nil
}
