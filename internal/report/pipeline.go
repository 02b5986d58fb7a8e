package report

import (
	"context"
	"log"
	"mime/multipart"
	"time"

	"github.com/alertdeskhq/alertdesk/internal/notifications"
	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

// Pipeline orchestrates a submission: validate, store the photo, append
// the report row and its notification, then return fresh metrics.
type Pipeline struct {
	reports    *Store
	notifs     *notifications.Store
	uploadsDir string
}

// NewPipeline creates a Pipeline writing photos under uploadsDir.
func NewPipeline(reports *Store, notifs *notifications.Store, uploadsDir string) *Pipeline {
	return &Pipeline{
		reports:    reports,
		notifs:     notifs,
		uploadsDir: uploadsDir,
	}
}

// Submit processes one incident submission. Validation failures
// (scenario.ErrUnknown, ErrMissingAttachment) are detected before any
// write. A report-insert failure aborts before the notification is
// attempted. A notification-insert failure after a successful report
// insert surfaces as an error while the report row is retained: both
// tables stay individually consistent and metrics are derived fresh at
// read time, so no invariant is corrupted by the partial state.
func (p *Pipeline) Submit(ctx context.Context, key string, photo *multipart.FileHeader) (*SubmitResult, error) {
	sc, err := scenario.Lookup(key)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrMissingAttachment
	}

	filePath, err := SaveUpload(p.uploadsDir, photo)
	if err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()

	if _, err := p.reports.Insert(ctx, sc.Table, createdAt, filePath); err != nil {
		return nil, err
	}

	if _, err := p.notifs.Insert(ctx, createdAt, sc.Key, sc.FixedMessage); err != nil {
		return nil, err
	}

	metrics, err := p.reports.Metrics(ctx, sc.Table)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Scenario: sc.Key,
		FilePath: filePath,
		Message:  sc.FixedMessage,
		Metrics:  metrics,
	}, nil
}

// Clear deletes all reports for the scenario and, when requested, its
// notifications. The notification deletion is best-effort: a failure
// there is logged rather than surfaced, since the primary deletion has
// already succeeded. Returns the recomputed (all-zero) metrics and the
// scenario's clear acknowledgement.
func (p *Pipeline) Clear(ctx context.Context, key string, clearNotifications bool) (*SubmitResult, error) {
	sc, err := scenario.Lookup(key)
	if err != nil {
		return nil, err
	}

	if _, err := p.reports.DeleteAll(ctx, sc.Table); err != nil {
		return nil, err
	}

	if clearNotifications {
		if _, err := p.notifs.DeleteByScenario(ctx, sc.Key); err != nil {
			log.Printf("report: clearing notifications for %s: %v", sc.Key, err)
		}
	}

	metrics, err := p.reports.Metrics(ctx, sc.Table)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Scenario: sc.Key,
		Message:  sc.ClearMessage,
		Metrics:  metrics,
	}, nil
}
