package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/app"
	"github.com/ninaorlova/lingua/internal/config"
	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
	"github.com/ninaorlova/lingua/internal/streak"
)

type streakService struct {
	streaks repository.StreakRepo
	uow     db.UnitOfWork
	cfg     config.Config
	obs     UseCaseObserver
	locks   *userLocks
}

func NewStreakService(streaks repository.StreakRepo, uow db.UnitOfWork, cfg config.Config, observers ...UseCaseObserver) StreakService {
	return &streakService{
		streaks: streaks,
		uow:     uow,
		cfg:     cfg,
		obs:     useCaseObserverOrNoop(observers),
		locks:   newUserLocks(),
	}
}

var _ app.StreakUseCase = (StreakService)(nil)

// Snapshot returns the current streak state, or a fresh zero state for a
// user with no history. Never errors on absence.
func (s *streakService) Snapshot(ctx context.Context, userID string) (state *domain.StreakState, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "streak.snapshot", userID, startedAt, err, nil) }()

	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	state, err = s.streaks.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		month := time.Now().UTC().Format(domain.MonthLayout)
		return domain.NewStreakState(userID, s.cfg.MaxFreezePerMonth, month), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading streak state: %w", err)
	}
	return state, nil
}

// OnActivity advances the streak machine directly, outside event ingest.
// Used by callers that track activity without a full event payload.
func (s *streakService) OnActivity(ctx context.Context, userID string, at time.Time) (state *domain.StreakState, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "streak.on_activity", userID, startedAt, err, nil) }()

	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	lock := s.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	txErr := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		streaks := repository.NewSQLiteStreakRepo(tx)
		current, err := streaks.Get(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			current = domain.NewStreakState(userID, s.cfg.MaxFreezePerMonth, at.Format(domain.MonthLayout))
		} else if err != nil {
			return fmt.Errorf("loading streak state: %w", err)
		}

		tr := streak.Apply(current, at, s.cfg.MaxFreezePerMonth)
		if tr.Changed {
			if err := streaks.Upsert(ctx, current); err != nil {
				return fmt.Errorf("saving streak state: %w", err)
			}
		}
		state = current
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return state, nil
}
