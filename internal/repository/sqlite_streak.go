package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
)

// SQLiteStreakRepo persists the per-user streak materialization.
type SQLiteStreakRepo struct {
	db db.DBTX
}

func NewSQLiteStreakRepo(conn db.DBTX) *SQLiteStreakRepo {
	return &SQLiteStreakRepo{db: conn}
}

func (r *SQLiteStreakRepo) Get(ctx context.Context, userID string) (*domain.StreakState, error) {
	query := `SELECT user_id, current_streak, longest_streak, last_activity_date,
		freeze_days_available, freeze_days_used, freeze_reset_month,
		total_practice_days, updated_at
		FROM streak_states WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var (
		s            domain.StreakState
		lastActivity sql.NullString
		updatedAtStr string
	)
	err := row.Scan(
		&s.UserID, &s.CurrentStreak, &s.LongestStreak, &lastActivity,
		&s.FreezeDaysAvailable, &s.FreezeDaysUsed, &s.FreezeResetMonth,
		&s.TotalPracticeDays, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("streak state: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning streak state: %w", err)
	}

	s.LastActivityDate = parseNullableTime(lastActivity, domain.DateLayout)
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

func (r *SQLiteStreakRepo) Upsert(ctx context.Context, s *domain.StreakState) error {
	query := `INSERT INTO streak_states (user_id, current_streak, longest_streak,
		last_activity_date, freeze_days_available, freeze_days_used,
		freeze_reset_month, total_practice_days, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			current_streak        = excluded.current_streak,
			longest_streak        = excluded.longest_streak,
			last_activity_date    = excluded.last_activity_date,
			freeze_days_available = excluded.freeze_days_available,
			freeze_days_used      = excluded.freeze_days_used,
			freeze_reset_month    = excluded.freeze_reset_month,
			total_practice_days   = excluded.total_practice_days,
			updated_at            = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.UserID,
		s.CurrentStreak,
		s.LongestStreak,
		nullableTimeToString(s.LastActivityDate, domain.DateLayout),
		s.FreezeDaysAvailable,
		s.FreezeDaysUsed,
		s.FreezeResetMonth,
		s.TotalPracticeDays,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting streak state: %w", err)
	}
	return nil
}
