package audit

import (
	"context"
	"time"

	"clinic-portal/internal/db"
	"clinic-portal/internal/logger"
)

type DBRecorder struct {
	db *db.DB
}

func NewDBRecorder(db *db.DB) *DBRecorder {
	return &DBRecorder{db: db}
}

// Record appends one event to audit_log. If the insert fails the event
// is written to the process log instead; the caller never sees an error.
func (r *DBRecorder) Record(ctx context.Context, e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_log (user_id, event_type, details, created_at)
		VALUES ($1, $2, $3, $4)
	`, e.UserID, e.Type, e.Details, e.At)

	if err != nil {
		logger.Error("audit log write failed", map[string]any{
			"event_type": e.Type,
			"details":    e.Details,
			"error":      err.Error(),
		})
	}
}

// Recent returns the newest events, newest first. Used by the
// admin-only audit log endpoint.
func (r *DBRecorder) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, event_type, details, created_at
		FROM audit_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.UserID, &e.Type, &e.Details, &e.At); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
