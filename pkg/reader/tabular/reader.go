// Package tabular provides reading of delimited lipid tables: a header row
// of sample names, a first column of lipid names, numeric cells.
package tabular

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lipidkey/lipidkey/pkg/table"
)

// Options configures table reading.
type Options struct {
	// Sep is the field delimiter; tab when zero.
	Sep rune
	// Name tags the resulting table.
	Name string
}

func (o Options) sep() string {
	if o.Sep == 0 {
		return "\t"
	}
	return string(o.Sep)
}

// Read parses a delimited table. The header row holds sample names (its
// first field, the index header, is ignored), every following row holds a
// lipid name and one cell per sample. Blank cells are missing values; any
// other non-numeric cell is an error.
func Read(r io.Reader, opts Options) (*table.Table, error) {
	scanner := bufio.NewScanner(r)
	sep := opts.sep()

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading table: %w", err)
		}
		return nil, fmt.Errorf("empty input: expected a header row of sample names")
	}
	header := strings.Split(scanner.Text(), sep)
	if len(header) < 2 {
		return nil, fmt.Errorf("header row has no sample columns")
	}
	columns := make([]string, 0, len(header)-1)
	for _, col := range header[1:] {
		columns = append(columns, strings.TrimSpace(col))
	}

	t := table.New(opts.Name, columns)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, sep)
		name := strings.TrimSpace(fields[0])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty lipid name", lineNum)
		}
		if len(fields)-1 > len(columns) {
			return nil, fmt.Errorf("line %d: %d cells for %d sample columns", lineNum, len(fields)-1, len(columns))
		}

		t.AddRow(name)
		for i, cell := range fields[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue // missing value
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid numeric value %q for sample %q: %w", lineNum, cell, columns[i], err)
			}
			t.Set(name, columns[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading table: %w", err)
	}

	return t, nil
}
