package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
)

// SQLiteSkillScoreRepo persists the latest per-skill score snapshot.
type SQLiteSkillScoreRepo struct {
	db db.DBTX
}

func NewSQLiteSkillScoreRepo(conn db.DBTX) *SQLiteSkillScoreRepo {
	return &SQLiteSkillScoreRepo{db: conn}
}

func (r *SQLiteSkillScoreRepo) Get(ctx context.Context, userID string) (*domain.SkillScore, error) {
	query := `SELECT user_id, vocabulary, grammar, speaking, writing, listening, reading, updated_at
		FROM skill_scores WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var (
		s                                 domain.SkillScore
		vocab, gram, speak, wr, lis, read int
		updatedAtStr                      string
	)
	err := row.Scan(&s.UserID, &vocab, &gram, &speak, &wr, &lis, &read, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("skill scores: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning skill scores: %w", err)
	}

	s.Scores = map[domain.SkillType]int{
		domain.SkillVocabulary: vocab,
		domain.SkillGrammar:    gram,
		domain.SkillSpeaking:   speak,
		domain.SkillWriting:    wr,
		domain.SkillListening:  lis,
		domain.SkillReading:    read,
	}
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSkillScoreRepo) Upsert(ctx context.Context, s *domain.SkillScore) error {
	query := `INSERT INTO skill_scores
		(user_id, vocabulary, grammar, speaking, writing, listening, reading, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			vocabulary = excluded.vocabulary,
			grammar    = excluded.grammar,
			speaking   = excluded.speaking,
			writing    = excluded.writing,
			listening  = excluded.listening,
			reading    = excluded.reading,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.UserID,
		s.Scores[domain.SkillVocabulary],
		s.Scores[domain.SkillGrammar],
		s.Scores[domain.SkillSpeaking],
		s.Scores[domain.SkillWriting],
		s.Scores[domain.SkillListening],
		s.Scores[domain.SkillReading],
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting skill scores: %w", err)
	}
	return nil
}
