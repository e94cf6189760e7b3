// Package corpus holds conference-abstract records as an ordered,
// integer-indexed table and runs the abstract cleaner over them.
package corpus

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Column names read and written by the pipeline.
const (
	IndexColumn      = "index"
	AbstractColumn   = "abstract_text"
	HasAuthorsColumn = "abstract_text__has_authors"
	IsCleanedColumn  = "abstract_text__is_cleaned"
	CleanedColumn    = "abstract_text__cleaned"
)

// DerivedColumns are appended to the table by the cleaning stage.
var DerivedColumns = []string{HasAuthorsColumn, IsCleanedColumn, CleanedColumn}

// Record is one abstract submission. Fields holds every input column as an
// opaque string; an absent key is a missing value.
type Record struct {
	Index  int
	Fields map[string]string

	// Derived is set once the record has been through the cleaner.
	Derived *CleanedRecord
}

// Get returns the value of a column.
func (r Record) Get(column string) (string, bool) {
	v, ok := r.Fields[column]
	return v, ok
}

// AbstractText returns the raw abstract body.
func (r Record) AbstractText() (string, bool) {
	return r.Get(AbstractColumn)
}

// CleanedRecord is the cleaner's output for one record.
type CleanedRecord struct {
	Index      int    `json:"index" yaml:"index"`
	Cleaned    string `json:"cleaned" yaml:"cleaned"`
	HasAuthors bool   `json:"has_authors" yaml:"has_authors"`
	// IsCleaned is Cleaned != raw text, by exact string comparison.
	IsCleaned bool `json:"is_cleaned" yaml:"is_cleaned"`
	// Excluded is set when a validity rule kept the record out of cleaning.
	Excluded bool `json:"excluded" yaml:"excluded"`
}

// Table is an ordered collection of records.
type Table struct {
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether the header contains column.
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Lookup returns the record with the given index.
func (t *Table) Lookup(index int) (Record, bool) {
	for _, r := range t.Records {
		if r.Index == index {
			return r, true
		}
	}
	return Record{}, false
}

// Filter returns a table holding the records for which keep is true.
// Indices are preserved.
func (t *Table) Filter(keep func(Record) bool) *Table {
	out := &Table{Columns: t.Columns, Records: make([]Record, 0, len(t.Records))}
	for _, r := range t.Records {
		if keep(r) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// DropMissing drops records with no value in column.
func (t *Table) DropMissing(column string) *Table {
	return t.Filter(func(r Record) bool {
		_, ok := r.Get(column)
		return ok
	})
}

// Column returns the present values of column as a series keyed by
// record index. Missing values are left out.
func (t *Table) Column(column string) *Series {
	s := &Series{pos: make(map[int]int, len(t.Records))}
	for _, r := range t.Records {
		if v, ok := r.Get(column); ok {
			s.append(r.Index, v)
		}
	}
	return s
}

// Concat appends the records of tables in order and resets the index to
// a contiguous 0..n-1 range. Columns are the union in order of appearance.
func Concat(tables ...*Table) *Table {
	out := &Table{}
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, c := range t.Columns {
			if !seen[c] {
				seen[c] = true
				out.Columns = append(out.Columns, c)
			}
		}
		out.Records = append(out.Records, t.Records...)
	}
	for i := range out.Records {
		out.Records[i].Index = i
	}
	return out
}

// Rows returns the records as output rows: index, every input column,
// then the derived columns when present.
func (t *Table) Rows() []any {
	withDerived := false
	for _, r := range t.Records {
		if r.Derived != nil {
			withDerived = true
			break
		}
	}

	columns := append([]string{IndexColumn}, t.Columns...)
	if withDerived {
		columns = append(columns, DerivedColumns...)
	}

	rows := make([]any, len(t.Records))
	for i, r := range t.Records {
		values := make(map[string]any, len(columns))
		values[IndexColumn] = r.Index
		for _, c := range t.Columns {
			if v, ok := r.Fields[c]; ok {
				values[c] = v
			}
		}
		if r.Derived != nil {
			values[HasAuthorsColumn] = r.Derived.HasAuthors
			values[IsCleanedColumn] = r.Derived.IsCleaned
			values[CleanedColumn] = r.Derived.Cleaned
		}
		rows[i] = Row{columns: columns, values: values}
	}
	return rows
}

// Row is a single output row with a fixed column order.
// Missing values encode as null (json, yaml) or an empty cell (tsv).
type Row struct {
	columns []string
	values  map[string]any
}

// Header returns the column names.
func (r Row) Header() []string {
	return r.columns
}

// Strings returns the row as strings in column order.
func (r Row) Strings() []string {
	out := make([]string, len(r.columns))
	for i, c := range r.columns {
		switch v := r.values[c].(type) {
		case nil:
		case string:
			out[i] = v
		case int:
			out[i] = strconv.Itoa(v)
		case bool:
			out[i] = strconv.FormatBool(v)
		}
	}
	return out
}

// MarshalJSON encodes the row as an object preserving column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[c])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the row as a mapping preserving column order.
func (r Row) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range r.columns {
		var val yaml.Node
		if err := val.Encode(r.values[c]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c},
			&val,
		)
	}
	return node, nil
}
