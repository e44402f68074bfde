// Package tabular reads delimited text tables with a header row, the
// input side of the transformer. Plain and gzip-compressed files are
// supported.
package tabular

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one record of the table, keyed by column name. Err is set when
// the record could not be parsed; callers account for such rows without
// aborting the scan.
type Row struct {
	Line   int
	Values map[string]string
	Err    error
}

// Table is an open table file. The header is read eagerly, rows stream
// on demand.
type Table struct {
	file    *os.File
	reader  *csv.Reader
	columns []string
}

// Open opens a CSV table and reads its header. Files ending in .gz are
// decompressed transparently.
func Open(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var src io.Reader = fh
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		src = gz
	}

	r := csv.NewReader(src)
	header, err := r.Read()
	if err != nil {
		fh.Close()
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return &Table{file: fh, reader: r, columns: header}, nil
}

// Columns returns the header in file order.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns a channel of records, one Row per line. Records with the
// wrong field count or other parse problems are delivered with Err set.
// The channel is closed at end of file.
func (t *Table) Rows() chan Row {
	out := make(chan Row, 100)
	go func() {
		defer close(out)
		line := 1
		for {
			rec, err := t.reader.Read()
			if err == io.EOF {
				return
			}
			line++
			if err != nil {
				out <- Row{Line: line, Err: err}
				continue
			}
			values := make(map[string]string, len(t.columns))
			for i, col := range t.columns {
				if i < len(rec) {
					values[col] = rec[i]
				}
			}
			out <- Row{Line: line, Values: values}
		}
	}()
	return out
}

// Close closes the underlying file.
func (t *Table) Close() error {
	return t.file.Close()
}
