package clean

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"github.com/ruking/advancement-etl/config"
	"github.com/ruking/advancement-etl/models"
)

var (
	idCodeSet       = toSet(config.IDCodeColumns)
	explicitDateSet = toSet(config.ExplicitDateColumns)
	datePattern     = regexp.MustCompile(`(?i)(_DTE$|DATE|DTE)`)
)

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// IsIDCodeColumn reports whether the canonical column name is a declared
// identifier/code column. Identifier classification always wins over the
// numeric pattern rule.
func IsIDCodeColumn(name string) bool {
	return idCodeSet[name]
}

// IsDateColumn reports whether the canonical column name is treated as a
// date: a _DTE suffix, a DATE/DTE infix, or an explicitly listed date field.
func IsDateColumn(name string) bool {
	return explicitDateSet[name] || datePattern.MatchString(name)
}

// EnsureStringColumns returns a new table where every listed column present
// in the table holds trimmed strings. Null cells become empty strings, never
// a placeholder word. This runs before the numeric and date passes so that
// identifier columns can never be coerced away from strings.
func EnsureStringColumns(t *models.Table, columns []string) *models.Table {
	out := t.Copy()
	for _, col := range columns {
		if !out.HasColumn(col) {
			continue
		}
		for _, r := range out.Rows {
			r[col] = models.StringValue(stringify(r.Value(col)))
		}
	}
	return out
}

func stringify(v models.Value) string {
	switch v.Kind {
	case models.KindString:
		return strings.TrimSpace(v.Str)
	case models.KindNumber:
		return v.Num.String()
	case models.KindDate:
		return v.Date.Format("2006-01-02")
	case models.KindBool:
		return fmt.Sprintf("%t", v.Bool)
	default:
		return ""
	}
}

// ConvertNumericColumns returns a new table where every column whose name
// contains one of the patterns (case-insensitive) holds decimal numbers.
// Identifier columns are skipped. Values that fail to parse become null; if
// the non-null count of a column decreases, a numeric_coercion issue naming
// the column and the lost-value count is recorded. Counting is strictly
// before/after on non-null cells, so already-null values are never reported
// as new losses.
func ConvertNumericColumns(t *models.Table, patterns []string, issues *models.IssueLog) *models.Table {
	out := t.Copy()
	for _, col := range out.Columns {
		if !matchesAny(col, patterns) || IsIDCodeColumn(col) {
			continue
		}

		before := nonNullCount(out, col)
		for _, r := range out.Rows {
			r[col] = coerceNumeric(r.Value(col))
		}
		after := nonNullCount(out, col)

		if after < before {
			issues.Add("numeric_coercion",
				fmt.Sprintf("%s (%d values coerced to null)", col, before-after))
		}
	}
	return out
}

func matchesAny(column string, patterns []string) bool {
	upper := strings.ToUpper(column)
	for _, p := range patterns {
		if strings.Contains(upper, strings.ToUpper(p)) {
			return true
		}
	}
	return false
}

func coerceNumeric(v models.Value) models.Value {
	switch v.Kind {
	case models.KindNumber:
		return v
	case models.KindString:
		d, err := decimal.NewFromString(strings.TrimSpace(v.Str))
		if err != nil {
			return models.NullValue()
		}
		return models.NumberValue(d)
	default:
		return models.NullValue()
	}
}

func nonNullCount(t *models.Table, col string) int {
	n := 0
	for _, r := range t.Rows {
		if !r.Value(col).IsNull() {
			n++
		}
	}
	return n
}

// ParseDateColumns returns a new table where every date-classified column
// holds parsed dates. Mixed formats within one column are accepted; a value
// that no format matches becomes null and the column is recorded under the
// date_parsing issue kind. Parsing problems never fail the run.
func ParseDateColumns(t *models.Table, issues *models.IssueLog) *models.Table {
	out := t.Copy()
	for _, col := range out.Columns {
		if !IsDateColumn(col) {
			continue
		}

		failed := 0
		for _, r := range out.Rows {
			v := r.Value(col)
			if v.Kind != models.KindString {
				continue
			}
			s := strings.TrimSpace(v.Str)
			if s == "" {
				r[col] = models.NullValue()
				continue
			}
			parsed, err := dateparse.ParseAny(s)
			if err != nil {
				r[col] = models.NullValue()
				failed++
				continue
			}
			r[col] = models.DateValue(parsed)
		}

		if failed > 0 {
			issues.Add("date_parsing", fmt.Sprintf("%s (%d values coerced to null)", col, failed))
		}
	}
	return out
}
