package load

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ruking/advancement-etl/config"
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// LoadManager exports the star schema: the cleaned tables to the output
// directory and the renamed, human-readable copies to the renamed directory.
type LoadManager struct {
	cfg    config.PipelineConfig
	logger *utils.ETLLogger
	writer *ExcelWriter
}

// NewLoadManager creates a new LoadManager.
func NewLoadManager(cfg config.PipelineConfig, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		cfg:    cfg,
		logger: logger,
		writer: NewExcelWriter(logger),
	}
}

// Load writes every table of the schema and records the exported sizes in
// runLog, then produces the renamed copies.
func (m *LoadManager) Load(schema *models.StarSchema, runLog *models.RunLog) error {
	startTime := time.Now()
	m.logger.Info("Starting Load phase (exporting tables to %s)", m.cfg.OutputDir)

	if err := os.MkdirAll(m.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, t := range schema.Tables {
		path := filepath.Join(m.cfg.OutputDir, t.Name+".xlsx")
		if err := m.writer.WriteTable(t, path); err != nil {
			return fmt.Errorf("exporting %s: %w", t.Name, err)
		}
		runLog.AddTable(t.Name, t.RowCount(), t.ColumnCount())
		m.logger.Info("  Exported %s.xlsx (%d rows)", t.Name, t.RowCount())
	}

	if err := m.writeRenamed(schema); err != nil {
		return err
	}

	m.logger.Info("Load phase complete in %v", time.Since(startTime))
	return nil
}

// writeRenamed applies the display-name mappings and writes the renamed
// model files. A schema table missing from this run (skipped builder) is
// only a warning.
func (m *LoadManager) writeRenamed(schema *models.StarSchema) error {
	m.logger.Info("Writing renamed model files to %s", m.cfg.RenamedDir)

	if err := os.MkdirAll(m.cfg.RenamedDir, 0755); err != nil {
		return fmt.Errorf("creating renamed directory: %w", err)
	}

	for _, spec := range renameSpecs {
		t := schema.Get(spec.table)
		if t == nil {
			m.logger.Error("  %s not built this run, skipping %s", spec.table, spec.file)
			continue
		}

		renamed := RenameColumns(t, spec.columns)
		path := filepath.Join(m.cfg.RenamedDir, spec.file)
		if err := m.writer.WriteTable(renamed, path); err != nil {
			return fmt.Errorf("exporting %s: %w", spec.file, err)
		}
		m.logger.Info("  %s -> %s (%d rows)", spec.table, spec.file, renamed.RowCount())
	}
	return nil
}
