package repository

import (
	"context"
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

// EventQuery narrows an event-log read. Zero values mean "no filter".
type EventQuery struct {
	Kinds []domain.EventKind
	Since *time.Time
	Until *time.Time
	Limit int
	// OldestFirst flips the default newest-first ordering.
	OldestFirst bool
}

// EventPage is the result of an event query. SkippedCorrupt counts rows
// whose payload failed to decode; those events are omitted, never fatal.
// TimedOut marks a scan that hit its deadline: Events holds whatever was
// read before the cutoff.
type EventPage struct {
	Events         []*domain.Event
	SkippedCorrupt int
	TimedOut       bool
}

// EventRepo is the append-only practice log. Events are totally ordered
// per user by (timestamp, event_id) with the id as tie-breaker.
type EventRepo interface {
	Append(ctx context.Context, e *domain.Event) error
	Query(ctx context.Context, userID string, q EventQuery) (*EventPage, error)
	CountByKind(ctx context.Context, userID string, kind domain.EventKind) (int, error)
}

// EventAppender is the transactional subset of EventRepo used inside a
// unit of work.
type EventAppender interface {
	Append(ctx context.Context, e *domain.Event) error
}

type StreakRepo interface {
	Get(ctx context.Context, userID string) (*domain.StreakState, error)
	Upsert(ctx context.Context, s *domain.StreakState) error
}

type AchievementRepo interface {
	List(ctx context.Context, userID string) ([]*domain.AchievementGrant, error)
	Grant(ctx context.Context, userID string, g *domain.AchievementGrant) error
	DeleteAll(ctx context.Context, userID string) error
}

type DismissalRepo interface {
	List(ctx context.Context, userID string) ([]*domain.Dismissal, error)
	Upsert(ctx context.Context, userID string, d *domain.Dismissal) error
}

type VocabularyRepo interface {
	Upsert(ctx context.Context, userID string, v *domain.VocabularyMastery) error
	List(ctx context.Context, userID string) ([]*domain.VocabularyMastery, error)
	ListDue(ctx context.Context, userID string, now time.Time) ([]*domain.VocabularyMastery, error)
	CountMastered(ctx context.Context, userID string, minLevel int) (int, error)
}

type SkillScoreRepo interface {
	Get(ctx context.Context, userID string) (*domain.SkillScore, error)
	Upsert(ctx context.Context, s *domain.SkillScore) error
}
