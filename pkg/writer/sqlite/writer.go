// Package sqlite provides SQLite database writing for residue tables and
// the reference compound list.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lipidkey/lipidkey/pkg/refmet"
	"github.com/lipidkey/lipidkey/pkg/table"
	_ "github.com/mattn/go-sqlite3"
)

// Date format for HeaderTable (ISO 8601)
const headerDateFormat = "2006-01-02"

// Writer handles writing residue tables and reference compounds to SQLite
// database files.
type Writer struct {
	db           *sql.DB
	outputPath   string
	residueStmt  *sql.Stmt
	compoundStmt *sql.Stmt
}

// NewWriter creates a new SQLite writer
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:         db,
		outputPath: outputPath,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ResidueTable (
		Residue TEXT,
		Sample TEXT,
		Amount DOUBLE
	);

	CREATE TABLE IF NOT EXISTS CompoundTable (
		Name TEXT,
		ExactMass DOUBLE,
		MainClass TEXT
	);

	CREATE TABLE IF NOT EXISTS HeaderTable (
		version INTEGER NOT NULL DEFAULT 0,
		CreationDate TEXT,
		Description TEXT
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion
func (w *Writer) prepareStatements() error {
	var err error

	w.residueStmt, err = w.db.Prepare(`
		INSERT INTO ResidueTable (Residue, Sample, Amount) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare residue statement: %w", err)
	}

	w.compoundStmt, err = w.db.Prepare(`
		INSERT INTO CompoundTable (Name, ExactMass, MainClass) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare compound statement: %w", err)
	}

	return nil
}

// WriteTable writes every cell of a residue table, one database row per
// residue/sample combination. Unpopulated cells are written as 0.
func (w *Writer) WriteTable(t *table.Table) error {
	for _, row := range t.Rows() {
		for _, col := range t.Columns() {
			v, _ := t.Value(row, col)
			if _, err := w.residueStmt.Exec(row, col, v); err != nil {
				return fmt.Errorf("failed to insert residue %s/%s: %w", row, col, err)
			}
		}
	}
	return nil
}

// WriteCompounds writes reference list entries to the CompoundTable.
func (w *Writer) WriteCompounds(compounds []refmet.Compound) error {
	for _, c := range compounds {
		if _, err := w.compoundStmt.Exec(c.Name, c.ExactMass, c.MainClass); err != nil {
			return fmt.Errorf("failed to insert compound %s: %w", c.Name, err)
		}
	}
	return nil
}

// Finalize stamps the header row. Call once after all writes.
func (w *Writer) Finalize(description string) error {
	_, err := w.db.Exec(`
		INSERT INTO HeaderTable (version, CreationDate, Description)
		VALUES (1, ?, ?)
	`, time.Now().Format(headerDateFormat), description)
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Close closes prepared statements and the database.
func (w *Writer) Close() error {
	if w.residueStmt != nil {
		w.residueStmt.Close()
	}
	if w.compoundStmt != nil {
		w.compoundStmt.Close()
	}
	return w.db.Close()
}
