package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
)

// defaultQueryTimeout bounds event-log scans for callers that bring no
// deadline of their own.
const defaultQueryTimeout = 10 * time.Second

// SQLiteEventRepo implements EventRepo over SQLite. The event log is
// append-only: there is no update or delete path.
type SQLiteEventRepo struct {
	db           db.DBTX
	queryTimeout time.Duration
}

// NewSQLiteEventRepo creates an event repository over the given connection
// or transaction, with the default scan bound.
func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return NewSQLiteEventRepoWithTimeout(conn, defaultQueryTimeout)
}

// NewSQLiteEventRepoWithTimeout overrides the scan bound; zero or
// negative falls back to the default.
func NewSQLiteEventRepoWithTimeout(conn db.DBTX, timeout time.Duration) *SQLiteEventRepo {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &SQLiteEventRepo{db: conn, queryTimeout: timeout}
}

func (r *SQLiteEventRepo) Append(ctx context.Context, e *domain.Event) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("validating event: %w", err)
	}
	payload, err := e.MarshalPayload()
	if err != nil {
		return err
	}
	query := `INSERT INTO events (id, user_id, timestamp, kind, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Timestamp.UTC().Format(time.RFC3339),
		string(e.Kind),
		string(payload),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("appending event: %w", err)
	}
	return nil
}

// Query reads a page of the event log. Scans are bounded: a query that
// hits the deadline returns the rows read so far with TimedOut set
// rather than an error.
func (r *SQLiteEventRepo) Query(ctx context.Context, userID string, q EventQuery) (*EventPage, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
	}

	var b strings.Builder
	b.WriteString(`SELECT id, user_id, timestamp, kind, payload FROM events WHERE user_id = ?`)
	args := []any{userID}

	if len(q.Kinds) > 0 {
		b.WriteString(` AND kind IN (?` + strings.Repeat(",?", len(q.Kinds)-1) + `)`)
		for _, k := range q.Kinds {
			args = append(args, string(k))
		}
	}
	if q.Since != nil {
		b.WriteString(` AND timestamp >= ?`)
		args = append(args, q.Since.UTC().Format(time.RFC3339))
	}
	if q.Until != nil {
		b.WriteString(` AND timestamp < ?`)
		args = append(args, q.Until.UTC().Format(time.RFC3339))
	}
	if q.OldestFirst {
		b.WriteString(` ORDER BY timestamp ASC, id ASC`)
	} else {
		b.WriteString(` ORDER BY timestamp DESC, id DESC`)
	}
	if q.Limit > 0 {
		b.WriteString(` LIMIT ?`)
		args = append(args, q.Limit)
	}

	page := &EventPage{}
	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			page.TimedOut = true
			return page, nil
		}
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			e            domain.Event
			timestampStr string
			kindStr      string
			payloadStr   string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &timestampStr, &kindStr, &payloadStr); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				page.TimedOut = true
				return page, nil
			}
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		e.Kind = domain.EventKind(kindStr)
		e.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			page.SkippedCorrupt++
			continue
		}
		e.Payload, err = domain.DecodePayload(e.Kind, []byte(payloadStr))
		if err != nil {
			// Malformed payload: skip the event and keep reading.
			page.SkippedCorrupt++
			continue
		}
		page.Events = append(page.Events, &e)
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			page.TimedOut = true
			return page, nil
		}
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return page, nil
}

func (r *SQLiteEventRepo) CountByKind(ctx context.Context, userID string, kind domain.EventKind) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE user_id = ? AND kind = ?`,
		userID, string(kind),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s events: %w", kind, err)
	}
	return n, nil
}
