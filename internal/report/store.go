package report

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alertdeskhq/alertdesk/internal/db"
	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

// timeFormat is the stored timestamp layout: RFC3339 UTC, so string
// comparison in SQL orders chronologically.
const timeFormat = time.RFC3339

// Store provides append, count and delete operations over the
// per-scenario report tables. Table names come exclusively from the
// scenario registry; the Table type keeps raw strings out.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Insert appends a report row and returns its assigned id.
func (s *Store) Insert(ctx context.Context, table scenario.Table, createdAt time.Time, filePath string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (created_at, file_path) VALUES (?, ?)", table),
		createdAt.UTC().Format(timeFormat), filePath,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading report id: %w", err)
	}
	return id, nil
}

// Count returns the number of reports in the table, optionally bounded
// by an inclusive timestamp range.
func (s *Store) Count(ctx context.Context, table scenario.Table, since, until *time.Time) (int64, error) {
	var (
		clauses []string
		args    []any
	)
	if since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, since.UTC().Format(timeFormat))
	}
	if until != nil {
		clauses = append(clauses, "created_at <= ?")
		args = append(args, until.UTC().Format(timeFormat))
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting reports: %w", err)
	}
	return n, nil
}

// LatestTimestamp returns the most recent created_at in the table, or
// nil if the table is empty.
func (s *Store) LatestTimestamp(ctx context.Context, table scenario.Table) (*time.Time, error) {
	var ts string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT created_at FROM %s ORDER BY created_at DESC LIMIT 1", table),
	).Scan(&ts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading latest report timestamp: %w", err)
	}

	t, err := time.Parse(timeFormat, ts)
	if err != nil {
		return nil, fmt.Errorf("parsing report timestamp %q: %w", ts, err)
	}
	return &t, nil
}

// DeleteAll removes every report in the table and returns the number of
// rows deleted.
func (s *Store) DeleteAll(ctx context.Context, table scenario.Table) (int64, error) {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table))
	if err != nil {
		return 0, fmt.Errorf("deleting reports: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted row count: %w", err)
	}
	return n, nil
}
