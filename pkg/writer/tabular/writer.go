// Package tabular provides writing of tables as delimited text, the mirror
// image of the tabular reader's format.
package tabular

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/lipidkey/lipidkey/pkg/table"
)

// Options configures table writing.
type Options struct {
	// Sep is the field delimiter; tab when zero.
	Sep rune
	// Missing is substituted for unpopulated cells.
	Missing float64
}

func (o Options) sep() byte {
	if o.Sep == 0 {
		return '\t'
	}
	return byte(o.Sep)
}

// Write renders a table: header row with an empty index field followed by
// the sample names, then one row per table row. Cell values are formatted
// with the shortest representation that round-trips.
func Write(w io.Writer, t *table.Table, opts Options) error {
	bw := bufio.NewWriter(w)
	sep := opts.sep()

	for _, col := range t.Columns() {
		bw.WriteByte(sep)
		bw.WriteString(col)
	}
	bw.WriteByte('\n')

	for _, row := range t.Rows() {
		bw.WriteString(row)
		for _, col := range t.Columns() {
			v, ok := t.Value(row, col)
			if !ok {
				v = opts.Missing
			}
			bw.WriteByte(sep)
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
