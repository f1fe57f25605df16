package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValueKind identifies the type stored in a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindDate
	KindBool
)

// Value is one typed cell of a table: a string, a decimal number, a date,
// a boolean flag or null.
type Value struct {
	Kind ValueKind
	Str  string
	Num  decimal.Decimal
	Date time.Time
	Bool bool
}

func NullValue() Value {
	return Value{Kind: KindNull}
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func NumberValue(d decimal.Decimal) Value {
	return Value{Kind: KindNumber, Num: d}
}

func DateValue(t time.Time) Value {
	return Value{Kind: KindDate, Date: t}
}

func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// IsNull reports whether the value carries no data.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// IsMissing reports whether the value is null or an empty string. Fact
// builders use it to filter out rows without a required foreign key.
func (v Value) IsMissing() bool {
	return v.Kind == KindNull || (v.Kind == KindString && v.Str == "")
}

// keyString renders the value into a stable form usable inside a composite
// lookup key.
func (v Value) keyString() string {
	switch v.Kind {
	case KindString:
		return "s:" + v.Str
	case KindNumber:
		return "n:" + v.Num.String()
	case KindDate:
		return "d:" + v.Date.Format(time.RFC3339)
	case KindBool:
		if v.Bool {
			return "b:1"
		}
		return "b:0"
	default:
		return "~"
	}
}

// Row maps canonical column names to typed values.
type Row map[string]Value

// Copy returns an independent copy of the row.
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered set of rows with an explicit column order. The raw
// extracts and every intermediate and output table of the pipeline share this
// shape; the column order drives the column order of the exported files.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column order.
func NewTable(name string, columns []string) *Table {
	return &Table{Name: name, Columns: append([]string(nil), columns...)}
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// HasColumns reports whether every named column exists.
func (t *Table) HasColumns(names []string) bool {
	for _, n := range names {
		if !t.HasColumn(n) {
			return false
		}
	}
	return true
}

// Value returns the cell for the column, or null if the row has no entry.
func (r Row) Value(column string) Value {
	if v, ok := r[column]; ok {
		return v
	}
	return NullValue()
}

// Copy returns a deep copy. Builders copy tables they did not construct
// before reshaping them.
func (t *Table) Copy() *Table {
	out := NewTable(t.Name, t.Columns)
	out.Rows = make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		out.Rows = append(out.Rows, r.Copy())
	}
	return out
}

// Project returns a new table holding only the requested columns, in the
// requested order. Columns missing from the source are silently omitted, so
// builders degrade to whatever subset the extract actually carried.
func (t *Table) Project(columns []string) *Table {
	kept := make([]string, 0, len(columns))
	for _, c := range columns {
		if t.HasColumn(c) {
			kept = append(kept, c)
		}
	}
	out := NewTable(t.Name, kept)
	out.Rows = make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		nr := make(Row, len(kept))
		for _, c := range kept {
			if v, ok := r[c]; ok {
				nr[c] = v
			}
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// DropColumns returns a new table without the named columns.
func (t *Table) DropColumns(columns []string) *Table {
	drop := make(map[string]bool, len(columns))
	for _, c := range columns {
		drop[c] = true
	}
	kept := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	return t.Project(kept)
}

// KeyOf builds the composite lookup key of a row over the given columns.
func KeyOf(r Row, keys []string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, r.Value(k).keyString())
	}
	return strings.Join(parts, "\x1f")
}

// DedupByKey returns a new table with one row per distinct key value,
// keeping the first-encountered row. If any key column is absent the table
// is returned unchanged (as a copy): dedup is skipped, never guessed.
func (t *Table) DedupByKey(keys []string) *Table {
	if !t.HasColumns(keys) {
		return t.Copy()
	}
	out := NewTable(t.Name, t.Columns)
	seen := make(map[string]bool, len(t.Rows))
	for _, r := range t.Rows {
		k := KeyOf(r, keys)
		if seen[k] {
			continue
		}
		seen[k] = true
		out.Rows = append(out.Rows, r.Copy())
	}
	return out
}

// Filter returns a new table with only the rows the predicate accepts.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := NewTable(t.Name, t.Columns)
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r.Copy())
		}
	}
	return out
}

// LeftJoin joins the right table onto this one over the given key columns.
// The right side must already be unique on the key (callers dedup it first so
// the join cannot fan out left rows). Non-key right columns are appended to
// the column order; where a right column name collides with an existing left
// column it is renamed with the suffix. Left rows without a match get null
// for every joined column.
func (t *Table) LeftJoin(right *Table, keys []string, suffix string) *Table {
	if right == nil || !t.HasColumns(keys) || !right.HasColumns(keys) {
		return t.Copy()
	}

	index := make(map[string]Row, len(right.Rows))
	for _, r := range right.Rows {
		k := KeyOf(r, keys)
		if _, ok := index[k]; !ok {
			index[k] = r
		}
	}

	keySet := make(map[string]bool, len(keys))
	for _, k := range keys {
		keySet[k] = true
	}

	// Map each joined right column to its output name.
	joined := make([][2]string, 0, len(right.Columns))
	outCols := append([]string(nil), t.Columns...)
	for _, c := range right.Columns {
		if keySet[c] {
			continue
		}
		name := c
		if t.HasColumn(c) {
			name = c + suffix
		}
		joined = append(joined, [2]string{c, name})
		outCols = append(outCols, name)
	}

	out := NewTable(t.Name, outCols)
	out.Rows = make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		nr := r.Copy()
		match, ok := index[KeyOf(r, keys)]
		for _, jc := range joined {
			if ok {
				nr[jc[1]] = match.Value(jc[0])
			} else {
				nr[jc[1]] = NullValue()
			}
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}
