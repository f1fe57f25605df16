package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruking/advancement-etl/config"
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

func testLogger(t *testing.T) *utils.ETLLogger {
	t.Helper()
	logger, err := utils.NewETLLogger(t.TempDir(), false)
	require.NoError(t, err)
	return logger
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestReadCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.csv",
		"Id Num,Last Name\n000123,Smith\n,Jones\n")

	table, err := ReadCSV(filepath.Join(dir, "sample.csv"), "sample")
	require.NoError(t, err)

	// Header kept raw; normalization is a cleanup concern.
	assert.Equal(t, []string{"Id Num", "Last Name"}, table.Columns)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, models.StringValue("000123"), table.Rows[0].Value("Id Num"))
	assert.True(t, table.Rows[1].Value("Id Num").IsNull())
}

func TestReadCSVRaggedRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ragged.csv", "A,B\n1\n")

	table, err := ReadCSV(filepath.Join(dir, "ragged.csv"), "ragged")
	require.NoError(t, err)

	require.Equal(t, 1, table.RowCount())
	assert.True(t, table.Rows[0].Value("B").IsNull())
}

func TestReadCSVEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "")

	table, err := ReadCSV(filepath.Join(dir, "empty.csv"), "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, table.RowCount())
	assert.Equal(t, 0, table.ColumnCount())
}

func TestExtractMissingInputDirIsFatal(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.InputDir = filepath.Join(t.TempDir(), "does-not-exist")

	e := NewExtractor(cfg, testLogger(t))
	_, err := e.Extract(models.NewIssueLog())
	require.Error(t, err)
}

func TestExtractSkipsMissingFiles(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.InputDir = t.TempDir()

	// Only one of the ten configured extracts is present.
	writeFile(t, cfg.InputDir, "SOLICIT_DEF.csv",
		"SOLICIT_CDE,DESCRIPTION,USER_NAME\nPH,Phonathon,operator\nPH,Duplicate,operator\n")

	e := NewExtractor(cfg, testLogger(t))
	issues := models.NewIssueLog()
	tables, err := e.Extract(issues)
	require.NoError(t, err)

	require.Len(t, tables, 1)
	table := tables[config.TableSolicitDef]
	require.NotNil(t, table)

	// The global cleanup ran: metadata dropped, natural key deduped.
	assert.Equal(t, []string{"SOLICIT_CDE", "DESCRIPTION"}, table.Columns)
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "Phonathon", table.Rows[0].Value("DESCRIPTION").Str)
}

func TestExtractMissingFileIsWarningNotError(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.InputDir = t.TempDir()

	logDir := t.TempDir()
	logger, err := utils.NewETLLogger(logDir, false)
	require.NoError(t, err)

	e := NewExtractor(cfg, logger)
	tables, err := e.Extract(models.NewIssueLog())
	require.NoError(t, err)
	assert.Empty(t, tables)

	// Absent optional sources must not land in the ERROR stream.
	logFile := filepath.Join(logDir, fmt.Sprintf("etl_log_%s.log", time.Now().Format("2006-01-02")))
	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "WARNING: File not found")
	assert.NotContains(t, string(content), "ERROR:")
}

func TestExtractParsesDateColumns(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.InputDir = t.TempDir()

	writeFile(t, cfg.InputDir, "GIFT_TRAN.csv",
		"GIFT_GROUP_NUM,GIFT_NUM,GIFT_TRAN_NUM,DONOR_ID,GIFT_DTE\n"+
			"G1,1,1,D001,2024-06-30\n"+
			"G1,2,1,D002,06/30/2024\n"+
			"G1,3,1,D003,not a date\n")

	e := NewExtractor(cfg, testLogger(t))
	issues := models.NewIssueLog()
	tables, err := e.Extract(issues)
	require.NoError(t, err)

	table := tables[config.TableGiftTran]
	require.NotNil(t, table)

	assert.Equal(t, models.KindDate, table.Rows[0].Value("GIFT_DTE").Kind)
	assert.Equal(t, models.KindDate, table.Rows[1].Value("GIFT_DTE").Kind)
	assert.True(t, table.Rows[2].Value("GIFT_DTE").IsNull())

	require.Equal(t, 1, issues.Count("date_parsing"))
	assert.Equal(t, "GIFT_DTE (1 values coerced to null)", issues.Entries("date_parsing")[0])
}
