package models

import (
	"time"

	"github.com/google/uuid"
)

// TableReport captures the final size of one exported table.
type TableReport struct {
	Name    string
	Rows    int
	Columns int
}

// RunLog records the lifecycle of one pipeline run: identity, timings,
// per-table output sizes and dropped-row counts. It is reported through the
// logger at the end of the run.
type RunLog struct {
	RunID        string
	StartTime    time.Time
	EndTime      time.Time
	Status       string // "in_progress", "success" or "failed"
	SourcesRead  int
	Tables       []TableReport
	RowsDropped  int
	ErrorMessage string
}

func NewRunLog() *RunLog {
	return &RunLog{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
		Status:    "in_progress",
	}
}

// AddTable records the exported size of one output table.
func (r *RunLog) AddTable(name string, rows, columns int) {
	r.Tables = append(r.Tables, TableReport{Name: name, Rows: rows, Columns: columns})
}

// Complete marks the run as successful.
func (r *RunLog) Complete() {
	r.EndTime = time.Now()
	r.Status = "success"
}

// Fail marks the run as failed with the given message.
func (r *RunLog) Fail(message string) {
	r.EndTime = time.Now()
	r.Status = "failed"
	r.ErrorMessage = message
}

// Duration returns the wall-clock time of the run.
func (r *RunLog) Duration() time.Duration {
	end := r.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(r.StartTime)
}
