// Package clean implements the rule-driven cleanup passes that turn raw CSV
// extracts into consistent, typed tables: column-name canonicalization,
// identifier/date/numeric classification and coercion, and the fixed-order
// global cleanup applied to every source table.
package clean

import (
	"regexp"
	"strings"

	"github.com/ruking/advancement-etl/models"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// ToUpperSnakeCase converts a raw column name to the canonical
// upper-snake-case token used throughout the pipeline.
//
//	"Id Num"       -> "ID_NUM"
//	"giftAmt"      -> "GIFT_AMT"
//	"  Donor  ID " -> "DONOR_ID"
//
// The conversion is idempotent: a canonical name passes through unchanged.
func ToUpperSnakeCase(columnName string) string {
	name := strings.TrimSpace(columnName)
	name = whitespaceRun.ReplaceAllString(name, "_")
	// Split camelCase before folding case, or the boundary is lost.
	name = camelBoundary.ReplaceAllString(name, "${1}_${2}")
	name = underscoreRun.ReplaceAllString(name, "_")
	return strings.ToUpper(name)
}

// NormalizeColumnNames returns a new table with every column name
// canonicalized. If two raw names collapse to the same canonical name the
// first column wins and the rest are discarded.
func NormalizeColumnNames(t *models.Table) *models.Table {
	renames := make(map[string]string, len(t.Columns))
	cols := make([]string, 0, len(t.Columns))
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		n := ToUpperSnakeCase(c)
		if seen[n] {
			continue
		}
		seen[n] = true
		renames[c] = n
		cols = append(cols, n)
	}

	out := models.NewTable(t.Name, cols)
	out.Rows = make([]models.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		nr := make(models.Row, len(r))
		for raw, v := range r {
			if n, ok := renames[raw]; ok {
				nr[n] = v
			}
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}
