package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruking/advancement-etl/clean"
	"github.com/ruking/advancement-etl/config"
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// Extractor loads every configured source extract, applies the global
// cleanup passes and the date pass, and hands the cleaned tables to the
// transform phase.
type Extractor struct {
	cfg    config.PipelineConfig
	logger *utils.ETLLogger
}

// NewExtractor creates a new Extractor.
func NewExtractor(cfg config.PipelineConfig, logger *utils.ETLLogger) *Extractor {
	return &Extractor{cfg: cfg, logger: logger}
}

// Extract reads and cleans all source tables. A missing or unreadable file
// is a warning — the table is simply absent from the result and downstream
// builders that need it are skipped. A missing input directory is fatal:
// nothing can be produced from it.
func (e *Extractor) Extract(issues *models.IssueLog) (map[string]*models.Table, error) {
	info, err := os.Stat(e.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("input directory %s does not exist: %w", e.cfg.InputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %s is not a directory", e.cfg.InputDir)
	}

	tables := make(map[string]*models.Table, len(config.SourceTables))
	for _, src := range config.SourceTables {
		path := filepath.Join(e.cfg.InputDir, src.File)
		if _, err := os.Stat(path); err != nil {
			// An absent optional source is a warning, not a run error.
			e.logger.Info("WARNING: File not found, skipping: %s", path)
			continue
		}

		e.logger.Info("Loading %s...", src.File)
		raw, err := ReadCSV(path, src.Name)
		if err != nil {
			e.logger.Error("Failed to read %s, skipping: %v", path, err)
			continue
		}

		cleaned := clean.ApplyGlobalCleanup(raw, src.Name)
		cleaned = clean.ParseDateColumns(cleaned, issues)
		tables[src.Name] = cleaned

		e.logger.Info("  Loaded %d rows, %d columns", cleaned.RowCount(), cleaned.ColumnCount())
	}

	return tables, nil
}
