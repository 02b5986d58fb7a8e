package report

import (
	"context"
	"time"

	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

// DayBounds returns the inclusive [local midnight, t] range for the
// calendar day containing t. Every "today" computation in the service
// goes through this one function, so there is a single timezone
// authority: the process-local clock.
func DayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, t
}

// Metrics recomputes the KPI snapshot for one scenario table: total
// rows, rows created today, and the most recent timestamp. Nothing is
// cached; every call reads through to the store.
func (s *Store) Metrics(ctx context.Context, table scenario.Table) (Metrics, error) {
	total, err := s.Count(ctx, table, nil, nil)
	if err != nil {
		return Metrics{}, err
	}

	start, now := DayBounds(time.Now())
	today, err := s.Count(ctx, table, &start, &now)
	if err != nil {
		return Metrics{}, err
	}

	last, err := s.LatestTimestamp(ctx, table)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		TotalReports:   total,
		ReportsToday:   today,
		LastReportTime: last,
	}, nil
}
