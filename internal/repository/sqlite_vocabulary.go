package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
)

// SQLiteVocabularyRepo persists per-word mastery state. first_learned is
// set on the first upsert and never advanced afterwards; the avoided-
// vocabulary recommendation depends on it.
type SQLiteVocabularyRepo struct {
	db db.DBTX
}

func NewSQLiteVocabularyRepo(conn db.DBTX) *SQLiteVocabularyRepo {
	return &SQLiteVocabularyRepo{db: conn}
}

func (r *SQLiteVocabularyRepo) Upsert(ctx context.Context, userID string, v *domain.VocabularyMastery) error {
	query := `INSERT INTO vocabulary_mastery
		(user_id, word, mastery_level, last_reviewed, next_review_due, first_learned)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, word) DO UPDATE SET
			mastery_level   = excluded.mastery_level,
			last_reviewed   = excluded.last_reviewed,
			next_review_due = excluded.next_review_due`
	_, err := r.db.ExecContext(ctx, query,
		userID,
		v.Word,
		v.MasteryLevel,
		v.LastReviewed.UTC().Format(time.RFC3339),
		nullableTimeToString(v.NextReviewDue, time.RFC3339),
		v.LastReviewed.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting vocabulary mastery: %w", err)
	}
	return nil
}

func (r *SQLiteVocabularyRepo) List(ctx context.Context, userID string) ([]*domain.VocabularyMastery, error) {
	query := `SELECT word, mastery_level, last_reviewed, next_review_due, first_learned
		FROM vocabulary_mastery WHERE user_id = ? ORDER BY first_learned, word`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing vocabulary: %w", err)
	}
	defer rows.Close()
	return r.scanWords(rows)
}

func (r *SQLiteVocabularyRepo) ListDue(ctx context.Context, userID string, now time.Time) ([]*domain.VocabularyMastery, error) {
	query := `SELECT word, mastery_level, last_reviewed, next_review_due, first_learned
		FROM vocabulary_mastery
		WHERE user_id = ? AND next_review_due IS NOT NULL AND next_review_due <= ?
		ORDER BY next_review_due, word`
	rows, err := r.db.QueryContext(ctx, query, userID, now.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing due vocabulary: %w", err)
	}
	defer rows.Close()
	return r.scanWords(rows)
}

func (r *SQLiteVocabularyRepo) CountMastered(ctx context.Context, userID string, minLevel int) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vocabulary_mastery WHERE user_id = ? AND mastery_level >= ?`,
		userID, minLevel,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting mastered words: %w", err)
	}
	return n, nil
}

func (r *SQLiteVocabularyRepo) scanWords(rows *sql.Rows) ([]*domain.VocabularyMastery, error) {
	var words []*domain.VocabularyMastery
	for rows.Next() {
		var (
			v               domain.VocabularyMastery
			lastReviewedStr string
			nextReviewDue   sql.NullString
			firstLearnedStr string
		)
		if err := rows.Scan(&v.Word, &v.MasteryLevel, &lastReviewedStr, &nextReviewDue, &firstLearnedStr); err != nil {
			return nil, fmt.Errorf("scanning vocabulary row: %w", err)
		}
		var err error
		v.LastReviewed, err = time.Parse(time.RFC3339, lastReviewedStr)
		if err != nil {
			return nil, fmt.Errorf("parsing last_reviewed: %w", err)
		}
		v.NextReviewDue = parseNullableTime(nextReviewDue, time.RFC3339)
		v.FirstLearned, err = time.Parse(time.RFC3339, firstLearnedStr)
		if err != nil {
			return nil, fmt.Errorf("parsing first_learned: %w", err)
		}
		words = append(words, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vocabulary: %w", err)
	}
	return words, nil
}
