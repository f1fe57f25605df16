package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ruking/advancement-etl/models"
)

// ETLLogger is the pipeline logger. Messages go to a dated log file and are
// mirrored to standard output so operators see the run progress live.
type ETLLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	isVerbose   bool
}

// NewETLLogger creates a logger writing to etl_log_<date>.log under logDir.
func NewETLLogger(logDir string, verbose bool) (*ETLLogger, error) {
	currentTime := time.Now().Format("2006-01-02")
	logFileName := filepath.Join(logDir, fmt.Sprintf("etl_log_%s.log", currentTime))

	file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return &ETLLogger{
		infoLogger:  log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLogger: log.New(file, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
		isVerbose:   verbose,
	}, nil
}

// Info logs an informational message.
func (l *ETLLogger) Info(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.infoLogger.Println(msg)
	log.Println("INFO:", msg)
}

// Error logs an error message.
func (l *ETLLogger) Error(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.errorLogger.Println(msg)
	log.Println("ERROR:", msg)
}

// Debug logs a debug message when verbose mode is on.
func (l *ETLLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}
	msg := fmt.Sprintf(format, v...)
	l.debugLogger.Println(msg)
	log.Println("DEBUG:", msg)
}

// LogRunStart logs the beginning of a pipeline run.
func (l *ETLLogger) LogRunStart(runID, inputDir string) {
	l.Info("Starting advancement data cleaning pipeline (run %s)", runID)
	l.Info("Input directory: %s", inputDir)
}

// LogSummary reports the end-of-run state: output table sizes, dropped rows
// and every parsing issue recorded during the run, grouped by kind.
func (l *ETLLogger) LogSummary(runLog *models.RunLog, issues *models.IssueLog) {
	l.Info("==================== SUMMARY ====================")
	l.Info("Run %s finished with status %q in %v", runLog.RunID, runLog.Status, runLog.Duration())
	if runLog.ErrorMessage != "" {
		l.Error("Run error: %s", runLog.ErrorMessage)
	}

	l.Info("Final table sizes:")
	for _, tr := range runLog.Tables {
		l.Info("  %s: %d rows, %d columns", tr.Name, tr.Rows, tr.Columns)
	}
	if runLog.RowsDropped > 0 {
		l.Info("Rows dropped for missing required keys: %d", runLog.RowsDropped)
	}

	if issues == nil || issues.Empty() {
		l.Info("No parsing or conversion issues detected.")
	} else {
		l.Info("Parsing/conversion issues:")
		for _, kind := range issues.Kinds() {
			l.Info("  %s:", kind)
			for _, msg := range issues.Entries(kind) {
				l.Info("    - %s", msg)
			}
		}
	}
	l.Info("=================================================")
}
