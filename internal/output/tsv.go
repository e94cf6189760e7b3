package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// TSVWriter writes Tabular items as tab-separated rows. The header comes
// from the first item.
type TSVWriter struct {
	w      *csv.Writer
	header []string
}

// NewTSVWriter creates a TSV writer.
func NewTSVWriter(w io.Writer) *TSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &TSVWriter{w: cw}
}

// Write writes a single row, preceded by the header on first use.
func (w *TSVWriter) Write(data any) error {
	row, ok := data.(Tabular)
	if !ok {
		return fmt.Errorf("tsv output needs tabular rows, got %T", data)
	}
	if w.header == nil {
		w.header = row.Header()
		if err := w.w.Write(w.header); err != nil {
			return err
		}
	}
	values := row.Strings()
	if len(values) != len(w.header) {
		return fmt.Errorf("row has %d values for %d columns", len(values), len(w.header))
	}
	return w.w.Write(values)
}

// WriteAll writes multiple rows.
func (w *TSVWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *TSVWriter) Flush() error {
	w.w.Flush()
	return w.w.Error()
}

// Close flushes the writer.
func (w *TSVWriter) Close() error {
	return w.Flush()
}
