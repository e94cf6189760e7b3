package corpus

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jmylchreest/abscrub/internal/logger"
)

// NAValues are cell contents read as missing, the same set spreadsheet
// exports and pandas treat as not-available.
var NAValues = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true,
	"None": true, "n/a": true, "nan": true, "null": true,
}

// ReadTSV reads a tab-separated table with a header row. Every value is
// kept as text; missing cells are left out of Record.Fields. Records are
// indexed 0..n-1.
func ReadTSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := &Table{Columns: header}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(t.Records)+1, err)
		}

		rec := Record{Index: len(t.Records), Fields: make(map[string]string, len(header))}
		for i, col := range header {
			if i >= len(row) || NAValues[row[i]] {
				continue
			}
			rec.Fields[col] = row[i]
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// LoadTSV reads every path and concatenates the tables in the order given
// with a contiguous index.
func LoadTSV(ctx context.Context, paths ...string) (*Table, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyInput
	}

	tables := make([]*Table, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := readTSVFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded source", "path", path, "records", t.Len())
		tables = append(tables, t)
	}
	return Concat(tables...), nil
}

func readTSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
