package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ninaorlova/lingua/internal/achievement"
	"github.com/ninaorlova/lingua/internal/app"
	"github.com/ninaorlova/lingua/internal/config"
	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
)

type achievementService struct {
	grants repository.AchievementRepo
	uow    db.UnitOfWork
	cfg    config.Config
	obs    UseCaseObserver
	locks  *userLocks
}

func NewAchievementService(grants repository.AchievementRepo, uow db.UnitOfWork, cfg config.Config, observers ...UseCaseObserver) AchievementService {
	return &achievementService{
		grants: grants,
		uow:    uow,
		cfg:    cfg,
		obs:    useCaseObserverOrNoop(observers),
		locks:  newUserLocks(),
	}
}

var _ app.AchievementUseCase = (AchievementService)(nil)

// Evaluate re-runs the rule set against the user's current state and
// grants anything new. The ingest path already does this per event, so a
// standalone evaluation only finds something after out-of-band state
// changes such as a replay.
func (s *achievementService) Evaluate(ctx context.Context, userID string) (newKeys []string, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "achievement.evaluate", userID, startedAt, err, nil) }()

	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	lock := s.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	txErr := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		events := repository.NewSQLiteEventRepo(tx)
		grants := repository.NewSQLiteAchievementRepo(tx)
		vocab := repository.NewSQLiteVocabularyRepo(tx)
		skills := repository.NewSQLiteSkillScoreRepo(tx)
		streaks := repository.NewSQLiteStreakRepo(tx)

		snap, err := buildCurrentSnapshot(ctx, userID, events, vocab, skills, streaks)
		if err != nil {
			return err
		}

		grantedList, err := grants.List(ctx, userID)
		if err != nil {
			return fmt.Errorf("loading achievement grants: %w", err)
		}
		granted := make(map[string]bool, len(grantedList))
		for _, g := range grantedList {
			granted[g.AchievementKey] = true
		}

		now := time.Now().UTC()
		for _, rule := range achievement.Evaluate(snap, granted) {
			grant := &domain.AchievementGrant{AchievementKey: rule.Key, GrantedAt: now}
			if err := grants.Grant(ctx, userID, grant); err != nil {
				return fmt.Errorf("granting achievement %s: %w", rule.Key, err)
			}
			unlock := &domain.Event{
				ID:        uuid.New().String(),
				UserID:    userID,
				Timestamp: now,
				Kind:      domain.EventAchievementGranted,
				Payload:   domain.AchievementGrantedPayload{AchievementKey: rule.Key},
			}
			if err := events.Append(ctx, unlock); err != nil {
				return fmt.Errorf("appending achievement event: %w", err)
			}
			newKeys = append(newKeys, rule.Key)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return newKeys, nil
}

func (s *achievementService) List(ctx context.Context, userID string) (grants []*domain.AchievementGrant, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "achievement.list", userID, startedAt, err, nil) }()

	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return s.grants.List(ctx, userID)
}

// buildCurrentSnapshot assembles the evaluation snapshot from stored
// state. The comeback signal is only observable at transition time, so a
// standalone evaluation leaves it unset.
func buildCurrentSnapshot(
	ctx context.Context,
	userID string,
	events repository.EventRepo,
	vocab repository.VocabularyRepo,
	skills repository.SkillScoreRepo,
	streaks repository.StreakRepo,
) (achievement.Snapshot, error) {
	var snap achievement.Snapshot

	page, err := events.Query(ctx, userID, repository.EventQuery{
		Kinds: []domain.EventKind{domain.EventExerciseCompleted},
	})
	if err != nil {
		return snap, fmt.Errorf("scanning attempts: %w", err)
	}
	// Milestone counts over a truncated log would be wrong; require the
	// full scan.
	if page.TimedOut {
		return snap, fmt.Errorf("scanning attempts: scan timed out before the end")
	}
	for _, e := range page.Events {
		p, ok := e.Payload.(domain.ExerciseCompletedPayload)
		if !ok {
			continue
		}
		snap.ExercisesCompleted++
		if p.Score >= 100 {
			snap.HasPerfectScore = true
		}
		switch p.TimeOfDay {
		case domain.TimeEarlyMorning:
			snap.EarlyMorningPractices++
		case domain.TimeNight:
			snap.LateNightPractices++
		}
	}

	snap.MasteredWords, err = vocab.CountMastered(ctx, userID, masteredLevel)
	if err != nil {
		return snap, fmt.Errorf("counting mastered words: %w", err)
	}

	record, err := skills.Get(ctx, userID)
	if err == nil {
		snap.ProficiencyScore = meanSkillScore(record)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return snap, fmt.Errorf("loading skill scores: %w", err)
	}

	state, err := streaks.Get(ctx, userID)
	if err == nil {
		snap.CurrentStreak = state.CurrentStreak
	} else if !errors.Is(err, repository.ErrNotFound) {
		return snap, fmt.Errorf("loading streak state: %w", err)
	}
	return snap, nil
}
