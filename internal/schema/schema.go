// Package schema defines the column layout of each spreadsheet tab as an
// ordered list of (field, header, default, parser) tuples, used symmetrically
// to decode sheet rows into records and to rebuild full rows for writes.
package schema

import (
	"fmt"
	"strings"
)

// Record is a decoded sheet row keyed by canonical field name.
type Record map[string]interface{}

// Column describes one spreadsheet column. Parse turns a non-blank raw cell
// into its canonical value; a nil Parse keeps the trimmed cell text.
type Column struct {
	Field   string
	Header  string
	Default interface{}
	Parse   func(interface{}) interface{}
}

// Schema is the fixed, positional column layout of one sheet tab. KeyFields
// name the identity columns; a row where any of them is blank is excluded
// from reads.
type Schema struct {
	Sheet     string
	KeyFields []string
	Columns   []Column
}

// LastColumn returns the letter of the schema's final column.
func (s *Schema) LastColumn() string {
	return string(rune('A' + len(s.Columns) - 1))
}

// RowRange returns the A1 range covering the full row for the data row at
// dataIndex. Sheet rows are 1-indexed and row 1 is the header, so the target
// row is dataIndex+2.
func (s *Schema) RowRange(dataIndex int) string {
	row := dataIndex + 2
	return fmt.Sprintf("A%d:%s%d", row, s.LastColumn(), row)
}

// Decode maps a raw row positionally through the schema. Blank cells take the
// column default. Cells beyond the schema are kept under a fallback field
// name derived from the sheet's own header label.
func (s *Schema) Decode(headers []string, row []interface{}) Record {
	rec := make(Record, len(s.Columns))

	for i, col := range s.Columns {
		raw := cellAt(row, i)
		if CellString(raw) == "" {
			rec[col.Field] = col.Default
			continue
		}
		if col.Parse != nil {
			rec[col.Field] = col.Parse(raw)
			continue
		}
		rec[col.Field] = strings.TrimSpace(CellString(raw))
	}

	for i := len(s.Columns); i < len(row) && i < len(headers); i++ {
		if CellString(row[i]) == "" {
			continue
		}
		rec[FallbackField(headers[i])] = strings.TrimSpace(CellString(row[i]))
	}

	return rec
}

// DecodeRows drops the header row, decodes every remaining row, and filters
// out rows with a blank identity key.
func (s *Schema) DecodeRows(rows [][]interface{}) []Record {
	if len(rows) < 2 {
		return []Record{}
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = CellString(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := s.Decode(headers, row)
		if s.hasBlankKey(rec) {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Encode rebuilds a full row in schema column order. Missing or nil fields
// take the column default; the store has no column-level patch, so every
// write carries all columns.
func (s *Schema) Encode(rec Record) []interface{} {
	row := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		v, ok := rec[col.Field]
		if !ok || v == nil {
			row[i] = col.Default
			continue
		}
		row[i] = v
	}
	return row
}

func (s *Schema) hasBlankKey(rec Record) bool {
	for _, field := range s.KeyFields {
		if strings.TrimSpace(CellString(rec[field])) == "" {
			return true
		}
	}
	return false
}

// CellString renders a raw cell value as a string, with nil as empty.
func CellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// FallbackField derives a field name from an unmapped header label: the label
// verbatim, case-folded, with whitespace stripped.
func FallbackField(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), ""))
}

func cellAt(row []interface{}, i int) interface{} {
	if i < len(row) {
		return row[i]
	}
	return nil
}
