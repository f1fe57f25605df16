package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringRow(kv map[string]string) Row {
	r := make(Row, len(kv))
	for k, v := range kv {
		r[k] = StringValue(v)
	}
	return r
}

func TestProjectOmitsMissingColumns(t *testing.T) {
	table := NewTable("t", []string{"A", "B"})
	table.Rows = []Row{stringRow(map[string]string{"A": "1", "B": "2"})}

	out := table.Project([]string{"B", "MISSING", "A"})

	assert.Equal(t, []string{"B", "A"}, out.Columns)
	assert.Equal(t, "2", out.Rows[0].Value("B").Str)
}

func TestDedupByKeyFirstWins(t *testing.T) {
	table := NewTable("t", []string{"K", "V"})
	table.Rows = []Row{
		stringRow(map[string]string{"K": "a", "V": "first"}),
		stringRow(map[string]string{"K": "a", "V": "second"}),
		stringRow(map[string]string{"K": "b", "V": "third"}),
	}

	out := table.DedupByKey([]string{"K"})

	require.Equal(t, 2, out.RowCount())
	assert.Equal(t, "first", out.Rows[0].Value("V").Str)
	assert.Equal(t, "third", out.Rows[1].Value("V").Str)
}

func TestDedupByKeyMissingColumnIsNoop(t *testing.T) {
	table := NewTable("t", []string{"V"})
	table.Rows = []Row{
		stringRow(map[string]string{"V": "x"}),
		stringRow(map[string]string{"V": "x"}),
	}

	out := table.DedupByKey([]string{"K", "V"})

	assert.Equal(t, 2, out.RowCount())
}

func TestDedupByKeyDistinguishesNullFromEmpty(t *testing.T) {
	table := NewTable("t", []string{"K"})
	table.Rows = []Row{
		{"K": NullValue()},
		{"K": StringValue("")},
	}

	out := table.DedupByKey([]string{"K"})

	assert.Equal(t, 2, out.RowCount())
}

func TestLeftJoinNoFanOut(t *testing.T) {
	left := NewTable("left", []string{"K", "L"})
	left.Rows = []Row{
		stringRow(map[string]string{"K": "1", "L": "a"}),
		stringRow(map[string]string{"K": "2", "L": "b"}),
	}

	right := NewTable("right", []string{"K", "R"})
	right.Rows = []Row{
		stringRow(map[string]string{"K": "1", "R": "x"}),
	}

	out := left.LeftJoin(right, []string{"K"}, "_R")

	require.Equal(t, 2, out.RowCount())
	assert.Equal(t, []string{"K", "L", "R"}, out.Columns)
	assert.Equal(t, "x", out.Rows[0].Value("R").Str)
	// Unmatched left rows get null for joined columns.
	assert.True(t, out.Rows[1].Value("R").IsNull())
}

func TestLeftJoinSuffixesCollidingColumns(t *testing.T) {
	left := NewTable("left", []string{"K", "STS"})
	left.Rows = []Row{stringRow(map[string]string{"K": "1", "STS": "open"})}

	right := NewTable("right", []string{"K", "STS"})
	right.Rows = []Row{stringRow(map[string]string{"K": "1", "STS": "booked"})}

	out := left.LeftJoin(right, []string{"K"}, "_MASTER")

	assert.Equal(t, []string{"K", "STS", "STS_MASTER"}, out.Columns)
	assert.Equal(t, "open", out.Rows[0].Value("STS").Str)
	assert.Equal(t, "booked", out.Rows[0].Value("STS_MASTER").Str)
}

func TestFilter(t *testing.T) {
	table := NewTable("t", []string{"K"})
	table.Rows = []Row{
		{"K": StringValue("keep")},
		{"K": StringValue("")},
		{"K": NullValue()},
	}

	out := table.Filter(func(r Row) bool { return !r.Value("K").IsMissing() })

	require.Equal(t, 1, out.RowCount())
	assert.Equal(t, "keep", out.Rows[0].Value("K").Str)
}

func TestCopyIsIndependent(t *testing.T) {
	table := NewTable("t", []string{"K"})
	table.Rows = []Row{{"K": StringValue("orig")}}

	cp := table.Copy()
	cp.Rows[0]["K"] = StringValue("changed")

	assert.Equal(t, "orig", table.Rows[0].Value("K").Str)
}

func TestValueIsMissing(t *testing.T) {
	assert.True(t, NullValue().IsMissing())
	assert.True(t, StringValue("").IsMissing())
	assert.False(t, StringValue("0").IsMissing())
	assert.False(t, NumberValue(decimal.Zero).IsMissing())
}

func TestIssueLogOrder(t *testing.T) {
	log := NewIssueLog()
	log.Add("numeric_coercion", "A (1 values coerced to null)")
	log.Add("date_parsing", "B (2 values unparsed)")
	log.Add("numeric_coercion", "C (3 values coerced to null)")

	assert.Equal(t, []string{"numeric_coercion", "date_parsing"}, log.Kinds())
	assert.Equal(t, 2, log.Count("numeric_coercion"))

	merged := NewIssueLog()
	merged.Merge(log)
	assert.Equal(t, log.Kinds(), merged.Kinds())
	assert.Equal(t, log.Entries("numeric_coercion"), merged.Entries("numeric_coercion"))
}
