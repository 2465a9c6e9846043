package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
)

// SQLiteDismissalRepo persists recommendation dismissals. Dismissal is
// keyed by kind, not by instance: re-dismissing refreshes the window.
type SQLiteDismissalRepo struct {
	db db.DBTX
}

func NewSQLiteDismissalRepo(conn db.DBTX) *SQLiteDismissalRepo {
	return &SQLiteDismissalRepo{db: conn}
}

func (r *SQLiteDismissalRepo) List(ctx context.Context, userID string) ([]*domain.Dismissal, error) {
	query := `SELECT kind, dismissed_at FROM dismissals WHERE user_id = ? ORDER BY kind`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing dismissals: %w", err)
	}
	defer rows.Close()

	var dismissals []*domain.Dismissal
	for rows.Next() {
		var (
			d              domain.Dismissal
			kindStr        string
			dismissedAtStr string
		)
		if err := rows.Scan(&kindStr, &dismissedAtStr); err != nil {
			return nil, fmt.Errorf("scanning dismissal row: %w", err)
		}
		d.Kind = domain.RecommendationKind(kindStr)
		d.DismissedAt, err = time.Parse(time.RFC3339, dismissedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing dismissed_at: %w", err)
		}
		dismissals = append(dismissals, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dismissals: %w", err)
	}
	return dismissals, nil
}

func (r *SQLiteDismissalRepo) Upsert(ctx context.Context, userID string, d *domain.Dismissal) error {
	query := `INSERT INTO dismissals (user_id, kind, dismissed_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id, kind) DO UPDATE SET dismissed_at = excluded.dismissed_at`
	_, err := r.db.ExecContext(ctx, query,
		userID, string(d.Kind), d.DismissedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting dismissal: %w", err)
	}
	return nil
}
