package clean

import (
	"strings"

	"github.com/ruking/advancement-etl/config"
	"github.com/ruking/advancement-etl/models"
)

// TrimStringCells returns a new table with surrounding whitespace removed
// from every string cell. Non-string cells pass through untouched.
func TrimStringCells(t *models.Table) *models.Table {
	out := t.Copy()
	for _, r := range out.Rows {
		for col, v := range r {
			if v.Kind == models.KindString {
				r[col] = models.StringValue(strings.TrimSpace(v.Str))
			}
		}
	}
	return out
}

// DropAllNullColumns returns a new table without columns whose every value
// is null. A table with no rows keeps all its columns.
func DropAllNullColumns(t *models.Table) *models.Table {
	if len(t.Rows) == 0 {
		return t.Copy()
	}
	var drop []string
	for _, col := range t.Columns {
		if nonNullCount(t, col) == 0 {
			drop = append(drop, col)
		}
	}
	if len(drop) == 0 {
		return t.Copy()
	}
	return t.DropColumns(drop)
}

// DropMetadataColumns returns a new table without the configured technical
// audit columns (operator name, job name, job timestamp, approval version).
func DropMetadataColumns(t *models.Table) *models.Table {
	return t.DropColumns(config.MetadataColumns)
}

// ApplyGlobalCleanup runs the fixed-order cleanup passes on one raw table:
//
//  1. canonicalize column names
//  2. trim whitespace from string cells
//  3. force identifier/code columns to strings
//  4. drop all-null columns
//  5. drop technical metadata columns
//  6. deduplicate on the table's declared natural key, first row wins
//
// Trimming must run before dedup so trailing-space variants of one key
// collapse. Dedup is skipped when the table declares no key or a declared
// key column is absent.
func ApplyGlobalCleanup(t *models.Table, tableName string) *models.Table {
	out := NormalizeColumnNames(t)
	out = TrimStringCells(out)
	out = EnsureStringColumns(out, config.IDCodeColumns)
	out = DropAllNullColumns(out)
	out = DropMetadataColumns(out)

	if key, ok := config.NaturalKeys[tableName]; ok {
		out = out.DedupByKey(key)
	}
	return out
}
