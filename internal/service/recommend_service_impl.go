package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ninaorlova/lingua/internal/analytics"
	"github.com/ninaorlova/lingua/internal/app"
	"github.com/ninaorlova/lingua/internal/classifier"
	"github.com/ninaorlova/lingua/internal/config"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/recommend"
	"github.com/ninaorlova/lingua/internal/repository"
)

type recommendService struct {
	events     repository.EventRepo
	skills     repository.SkillScoreRepo
	vocab      repository.VocabularyRepo
	streaks    repository.StreakRepo
	dismissals repository.DismissalRepo
	cfg        config.Config
	obs        UseCaseObserver
}

func NewRecommendService(
	events repository.EventRepo,
	skills repository.SkillScoreRepo,
	vocab repository.VocabularyRepo,
	streaks repository.StreakRepo,
	dismissals repository.DismissalRepo,
	cfg config.Config,
	observers ...UseCaseObserver,
) RecommendService {
	return &recommendService{
		events:     events,
		skills:     skills,
		vocab:      vocab,
		streaks:    streaks,
		dismissals: dismissals,
		cfg:        cfg,
		obs:        useCaseObserverOrNoop(observers),
	}
}

var _ app.RecommendUseCase = (RecommendService)(nil)

// Build assembles the recommendation input component by component,
// checking for cancellation between components. A cancelled build stops
// loading and returns the best partial result with Aborted set. Component
// failures degrade to warnings; the build itself never fails after the
// request is validated.
func (s *recommendService) Build(ctx context.Context, req contract.RecommendRequest) (resp *contract.RecommendResponse, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "recommend.build", req.UserID, startedAt, err, nil) }()

	if req.UserID == "" {
		return nil, &app.RecommendError{Code: app.RecommendErrInvalidUser, Message: "user id is required"}
	}
	now := resolveNow(req.Now)

	in := recommend.Input{
		Now:               now,
		MinRecurringCount: s.cfg.MinRecurringPatternCount,
		MinNotifyPriority: s.cfg.MinNotifyPriority,
	}
	var warnings []string
	aborted := false

	// Mistake history (C2/C3).
	if summary, w, loadErr := s.loadMistakes(ctx, req.UserID, now); loadErr == nil {
		in.Mistakes = summary
		warnings = append(warnings, w...)
	} else {
		warnings = append(warnings, fmt.Sprintf("mistake history unavailable: %v", loadErr))
	}

	if ctx.Err() != nil {
		aborted = true
	}

	// Attempts, velocity, and time-of-day (C4).
	if !aborted {
		attempts, sessions, w, loadErr := s.loadAttempts(ctx, req.UserID, now)
		if loadErr == nil {
			in.Attempts = attempts
			in.TotalAttempts = len(attempts)
			in.OptimalTime = analytics.OptimalTimeOfDay(attempts, sessions)
			in.Velocity = analytics.LearningVelocity(attempts, now, s.cfg.WindowDaysVelocity)
			for _, a := range attempts {
				if sameCalendarDay(now, a.CompletedAt) {
					in.AttemptsToday++
				}
			}
			warnings = append(warnings, w...)
		} else {
			warnings = append(warnings, fmt.Sprintf("attempt history unavailable: %v", loadErr))
		}
		if ctx.Err() != nil {
			aborted = true
		}
	}

	// Streak and vocabulary (C1+C7, review schedule).
	if !aborted {
		if state, loadErr := s.loadStreak(ctx, req.UserID, now); loadErr == nil {
			in.Streak = state
		} else {
			warnings = append(warnings, fmt.Sprintf("streak state unavailable: %v", loadErr))
		}

		if words, due, mastered, loadErr := s.loadVocabulary(ctx, req.UserID, now); loadErr == nil {
			in.Vocabulary = words
			in.DueWordCount = due
			in.MasteredWords = mastered
		} else {
			warnings = append(warnings, fmt.Sprintf("vocabulary unavailable: %v", loadErr))
		}
		if ctx.Err() != nil {
			aborted = true
		}
	}

	// Skill radar (C6).
	if !aborted {
		if radar, loadErr := s.loadRadar(ctx, req.UserID, in.Attempts); loadErr == nil {
			in.Radar = radar
		} else {
			warnings = append(warnings, fmt.Sprintf("skill radar unavailable: %v", loadErr))
		}
		if ctx.Err() != nil {
			aborted = true
		}
	}

	dismissals, loadErr := s.loadDismissals(ctx, req.UserID)
	if loadErr != nil {
		warnings = append(warnings, fmt.Sprintf("dismissals unavailable: %v", loadErr))
	}

	result := recommend.Build(in, dismissals, s.cfg.DismissalSuppressionDays)
	recs := result.Recommendations
	if req.Limit > 0 && len(recs) > req.Limit {
		recs = recs[:req.Limit]
	}

	return &contract.RecommendResponse{
		GeneratedAt:     now,
		Recommendations: recs,
		Priority:        result.Priority,
		Fallback:        result.Fallback,
		Aborted:         aborted,
		Warnings:        warnings,
	}, nil
}

// Dismiss suppresses a recommendation kind for the configured window.
func (s *recommendService) Dismiss(ctx context.Context, userID string, kind domain.RecommendationKind) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.obs, "recommend.dismiss", userID, startedAt, err, map[string]any{"kind": string(kind)})
	}()

	if userID == "" {
		return &app.RecommendError{Code: app.RecommendErrInvalidUser, Message: "user id is required"}
	}
	if kind == "" {
		return &app.RecommendError{Code: app.RecommendErrInternal, Message: "recommendation kind is required"}
	}

	d := &domain.Dismissal{Kind: kind, DismissedAt: time.Now().UTC()}
	if upErr := s.dismissals.Upsert(ctx, userID, d); upErr != nil {
		return &app.RecommendError{Code: app.RecommendErrStorage, Message: upErr.Error()}
	}
	return nil
}

func (s *recommendService) loadMistakes(ctx context.Context, userID string, now time.Time) (classifier.Summary, []string, error) {
	since := now.AddDate(0, 0, -s.cfg.DaysHeatmap)
	page, err := s.events.Query(ctx, userID, repository.EventQuery{
		Kinds:       []domain.EventKind{domain.EventMistakeRecorded},
		Since:       &since,
		OldestFirst: true,
	})
	if err != nil {
		return classifier.Summary{}, nil, err
	}
	return classifier.Aggregate(mistakesFromEvents(page.Events)), pageWarnings(page), nil
}

func (s *recommendService) loadAttempts(ctx context.Context, userID string, now time.Time) ([]domain.ExerciseAttempt, []domain.SessionPerformance, []string, error) {
	since := now.AddDate(0, 0, -2*s.cfg.WindowDaysVelocity)
	page, err := s.events.Query(ctx, userID, repository.EventQuery{
		Kinds:       []domain.EventKind{domain.EventExerciseCompleted, domain.EventSessionEnded},
		Since:       &since,
		OldestFirst: true,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return attemptsFromEvents(page.Events), sessionsFromEvents(page.Events), pageWarnings(page), nil
}

func (s *recommendService) loadStreak(ctx context.Context, userID string, now time.Time) (*domain.StreakState, error) {
	state, err := s.streaks.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewStreakState(userID, s.cfg.MaxFreezePerMonth, now.Format(domain.MonthLayout)), nil
	}
	return state, err
}

// loadVocabulary returns the full word list oldest-first plus the due and
// mastered counts.
func (s *recommendService) loadVocabulary(ctx context.Context, userID string, now time.Time) ([]domain.VocabularyMastery, int, int, error) {
	list, err := s.vocab.List(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}
	words := make([]domain.VocabularyMastery, 0, len(list))
	for _, v := range list {
		words = append(words, *v)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].FirstLearned.Before(words[j].FirstLearned)
	})

	due, err := s.vocab.ListDue(ctx, userID, now)
	if err != nil {
		return nil, 0, 0, err
	}
	mastered, err := s.vocab.CountMastered(ctx, userID, masteredLevel)
	if err != nil {
		return nil, 0, 0, err
	}
	return words, len(due), mastered, nil
}

func (s *recommendService) loadRadar(ctx context.Context, userID string, attempts []domain.ExerciseAttempt) (analytics.SkillRadar, error) {
	latest, err := s.skills.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		latest = nil
	} else if err != nil {
		return analytics.SkillRadar{}, err
	}
	return analytics.BuildSkillRadar(latest, attempts), nil
}

func (s *recommendService) loadDismissals(ctx context.Context, userID string) ([]domain.Dismissal, error) {
	list, err := s.dismissals.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Dismissal, 0, len(list))
	for _, d := range list {
		out = append(out, *d)
	}
	return out, nil
}
