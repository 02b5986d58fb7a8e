package report

import (
	"errors"
	"time"

	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

// ErrMissingAttachment is returned by Submit when no photo accompanies
// the report.
var ErrMissingAttachment = errors.New("missing photo attachment")

// Report is a stored occurrence of a reported scenario, referencing an
// uploaded photo. Rows are immutable once written; only Clear removes
// them.
type Report struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	FilePath  string    `json:"file_path"`
}

// Metrics is the derived KPI snapshot for one scenario. It is always
// recomputed from stored rows, never cached or persisted.
type Metrics struct {
	TotalReports   int64      `json:"totalReports"`
	ReportsToday   int64      `json:"reportsToday"`
	LastReportTime *time.Time `json:"lastReportTime"`
}

// SubmitResult is what the submission pipeline returns to the caller.
type SubmitResult struct {
	Scenario scenario.Key `json:"scenario"`
	FilePath string       `json:"filePath"`
	Message  string       `json:"chatbotMessage"`
	Metrics  Metrics      `json:"kpis"`
}
