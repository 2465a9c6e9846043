package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
)

// SQLiteAchievementRepo persists achievement grants. The primary key on
// (user_id, achievement_key) enforces at most one grant per key.
type SQLiteAchievementRepo struct {
	db db.DBTX
}

func NewSQLiteAchievementRepo(conn db.DBTX) *SQLiteAchievementRepo {
	return &SQLiteAchievementRepo{db: conn}
}

func (r *SQLiteAchievementRepo) List(ctx context.Context, userID string) ([]*domain.AchievementGrant, error) {
	query := `SELECT achievement_key, granted_at FROM achievement_grants
		WHERE user_id = ? ORDER BY granted_at, achievement_key`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing achievement grants: %w", err)
	}
	defer rows.Close()

	var grants []*domain.AchievementGrant
	for rows.Next() {
		var (
			g            domain.AchievementGrant
			grantedAtStr string
		)
		if err := rows.Scan(&g.AchievementKey, &grantedAtStr); err != nil {
			return nil, fmt.Errorf("scanning grant row: %w", err)
		}
		g.GrantedAt, err = time.Parse(time.RFC3339, grantedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing granted_at: %w", err)
		}
		grants = append(grants, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating grants: %w", err)
	}
	return grants, nil
}

func (r *SQLiteAchievementRepo) Grant(ctx context.Context, userID string, g *domain.AchievementGrant) error {
	// Grants are monotone: a repeat grant is a no-op, never an error.
	query := `INSERT INTO achievement_grants (user_id, achievement_key, granted_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, achievement_key) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query,
		userID, g.AchievementKey, g.GrantedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("granting achievement %s: %w", g.AchievementKey, err)
	}
	return nil
}

func (r *SQLiteAchievementRepo) DeleteAll(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM achievement_grants WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("clearing achievement grants: %w", err)
	}
	return nil
}
