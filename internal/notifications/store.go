package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alertdeskhq/alertdesk/internal/db"
	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

const timeFormat = time.RFC3339

// Store provides append, query and delete operations over the unified
// notification log.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Insert appends a notification row and returns its assigned id.
func (s *Store) Insert(ctx context.Context, createdAt time.Time, key scenario.Key, message string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO notifications (created_at, scenario, message) VALUES (?, ?, ?)",
		createdAt.UTC().Format(timeFormat), string(key), message,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting notification: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading notification id: %w", err)
	}
	return id, nil
}

// List returns notifications matching the filter, newest first, capped
// at limit rows (limit <= 0 means no cap).
func (s *Store) List(ctx context.Context, filter Filter, limit int) ([]Notification, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Scenario != "" {
		clauses = append(clauses, "scenario = ?")
		args = append(args, string(filter.Scenario))
	}
	if !filter.Since.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeFormat))
	}
	if !filter.Until.IsZero() {
		clauses = append(clauses, "created_at <= ?")
		args = append(args, filter.Until.UTC().Format(timeFormat))
	}

	query := "SELECT id, created_at, scenario, message FROM notifications"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var result []Notification
	for rows.Next() {
		var (
			n   Notification
			ts  string
			key string
		)
		if err := rows.Scan(&n.ID, &ts, &key, &n.Message); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		t, err := time.Parse(timeFormat, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing notification timestamp %q: %w", ts, err)
		}
		n.CreatedAt = t
		n.Scenario = scenario.Key(key)
		result = append(result, n)
	}
	return result, rows.Err()
}

// CountInRange counts one scenario's notifications with created_at in
// the inclusive [since, until] range.
func (s *Store) CountInRange(ctx context.Context, key scenario.Key, since, until time.Time) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notifications WHERE scenario = ? AND created_at >= ? AND created_at <= ?",
		string(key), since.UTC().Format(timeFormat), until.UTC().Format(timeFormat),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting notifications: %w", err)
	}
	return n, nil
}

// DeleteByScenario removes all notifications for one scenario and
// returns the number of rows deleted.
func (s *Store) DeleteByScenario(ctx context.Context, key scenario.Key) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM notifications WHERE scenario = ?", string(key))
	if err != nil {
		return 0, fmt.Errorf("deleting notifications: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted row count: %w", err)
	}
	return n, nil
}
