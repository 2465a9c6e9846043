package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/analytics"
	"github.com/ninaorlova/lingua/internal/app"
	"github.com/ninaorlova/lingua/internal/config"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
)

type analyticsService struct {
	events repository.EventRepo
	skills repository.SkillScoreRepo
	vocab  repository.VocabularyRepo
	streak repository.StreakRepo
	grants repository.AchievementRepo
	cfg    config.Config
	obs    UseCaseObserver
}

func NewAnalyticsService(
	events repository.EventRepo,
	skills repository.SkillScoreRepo,
	vocab repository.VocabularyRepo,
	streaks repository.StreakRepo,
	grants repository.AchievementRepo,
	cfg config.Config,
	observers ...UseCaseObserver,
) AnalyticsService {
	return &analyticsService{
		events: events,
		skills: skills,
		vocab:  vocab,
		streak: streaks,
		grants: grants,
		cfg:    cfg,
		obs:    useCaseObserverOrNoop(observers),
	}
}

var _ app.AnalyticsUseCase = (AnalyticsService)(nil)

func (s *analyticsService) Velocity(ctx context.Context, req contract.VelocityRequest) (resp *contract.VelocityResponse, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "analytics.velocity", req.UserID, startedAt, err, nil) }()

	if req.UserID == "" {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrInvalidUser, Message: "user id is required"}
	}
	windowDays := req.WindowDays
	if windowDays <= 0 {
		windowDays = s.cfg.WindowDaysVelocity
	}
	now := resolveNow(req.Now)

	// Velocity needs the preceding window too, for acceleration.
	since := now.AddDate(0, 0, -2*windowDays)
	attempts, sessions, warnings, err := s.loadActivity(ctx, req.UserID, &since)
	if err != nil {
		return nil, err
	}

	return &contract.VelocityResponse{
		Report:      analytics.LearningVelocity(attempts, now, windowDays),
		OptimalTime: analytics.OptimalTimeOfDay(attempts, sessions),
		Warnings:    warnings,
	}, nil
}

func (s *analyticsService) Heatmap(ctx context.Context, req contract.HeatmapRequest) (resp *contract.HeatmapResponse, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "analytics.heatmap", req.UserID, startedAt, err, nil) }()

	if req.UserID == "" {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrInvalidUser, Message: "user id is required"}
	}
	days := req.Days
	if days <= 0 {
		days = s.cfg.DaysHeatmap
	}
	now := resolveNow(req.Now)

	since := now.AddDate(0, 0, -days)
	attempts, _, warnings, err := s.loadActivity(ctx, req.UserID, &since)
	if err != nil {
		return nil, err
	}

	return &contract.HeatmapResponse{
		Heatmap:  analytics.RetentionHeatmap(attempts, now, days),
		Warnings: warnings,
	}, nil
}

func (s *analyticsService) Skills(ctx context.Context, req contract.SkillsRequest) (resp *contract.SkillsResponse, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "analytics.skills", req.UserID, startedAt, err, nil) }()

	if req.UserID == "" {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrInvalidUser, Message: "user id is required"}
	}

	radar, warnings, err := s.buildRadar(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return &contract.SkillsResponse{
		Radar:    radar,
		CEFR:     analytics.PlaceCEFR(s.cfg.CEFRRanges, radar),
		Warnings: warnings,
	}, nil
}

func (s *analyticsService) Projection(ctx context.Context, req contract.ProjectionRequest) (resp *contract.ProjectionResponse, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "analytics.projection", req.UserID, startedAt, err, nil) }()

	if req.UserID == "" {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrInvalidUser, Message: "user id is required"}
	}
	if req.TargetScore <= 0 || req.TargetScore > 100 {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrInvalidTarget, Message: "target score must be in (0, 100]"}
	}
	now := resolveNow(req.Now)

	radar, warnings, err := s.buildRadar(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	since := now.AddDate(0, 0, -2*s.cfg.WindowDaysVelocity)
	attempts, _, moreWarnings, err := s.loadActivity(ctx, req.UserID, &since)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, moreWarnings...)

	velocity := analytics.LearningVelocity(attempts, now, s.cfg.WindowDaysVelocity)

	heatSince := now.AddDate(0, 0, -s.cfg.DaysHeatmap)
	heatAttempts, _, _, err := s.loadActivity(ctx, req.UserID, &heatSince)
	if err != nil {
		return nil, err
	}
	consistency := analytics.RetentionHeatmap(heatAttempts, now, s.cfg.DaysHeatmap).Consistency

	return &contract.ProjectionResponse{
		Projection: analytics.ProjectTimeline(radar.Proficiency, req.TargetScore, velocity, consistency, now),
		Warnings:   warnings,
	}, nil
}

// Status is the single-call dashboard view.
func (s *analyticsService) Status(ctx context.Context, userID string) (resp *contract.StatusResponse, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.obs, "analytics.status", userID, startedAt, err, nil) }()

	if userID == "" {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrInvalidUser, Message: "user id is required"}
	}
	now := resolveNow(nil)

	radar, warnings, err := s.buildRadar(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := now.AddDate(0, 0, -2*s.cfg.WindowDaysVelocity)
	attempts, _, moreWarnings, err := s.loadActivity(ctx, userID, &since)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, moreWarnings...)

	attemptsToday := 0
	for _, a := range attempts {
		if sameCalendarDay(now, a.CompletedAt) {
			attemptsToday++
		}
	}

	state, err := s.streak.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		state = domain.NewStreakState(userID, s.cfg.MaxFreezePerMonth, now.Format(domain.MonthLayout))
	} else if err != nil {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrStorage, Message: err.Error()}
	}

	due, err := s.vocab.ListDue(ctx, userID, now)
	if err != nil {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrStorage, Message: err.Error()}
	}

	grants, err := s.grants.List(ctx, userID)
	if err != nil {
		return nil, &app.AnalyticsError{Code: app.AnalyticsErrStorage, Message: err.Error()}
	}

	return &contract.StatusResponse{
		GeneratedAt:   now,
		Streak:        state,
		Radar:         radar,
		CEFR:          analytics.PlaceCEFR(s.cfg.CEFRRanges, radar),
		Velocity:      analytics.LearningVelocity(attempts, now, s.cfg.WindowDaysVelocity),
		AttemptsToday: attemptsToday,
		DueWords:      len(due),
		Achievements:  grants,
		Warnings:      warnings,
	}, nil
}

// loadActivity reads exercise and session events since the given instant
// and maps them onto analytics records, oldest first.
func (s *analyticsService) loadActivity(ctx context.Context, userID string, since *time.Time) ([]domain.ExerciseAttempt, []domain.SessionPerformance, []string, error) {
	page, err := s.events.Query(ctx, userID, repository.EventQuery{
		Kinds:       []domain.EventKind{domain.EventExerciseCompleted, domain.EventSessionEnded},
		Since:       since,
		OldestFirst: true,
	})
	if err != nil {
		return nil, nil, nil, &app.AnalyticsError{Code: app.AnalyticsErrStorage, Message: fmt.Sprintf("reading events: %v", err)}
	}
	return attemptsFromEvents(page.Events), sessionsFromEvents(page.Events), pageWarnings(page), nil
}

func (s *analyticsService) buildRadar(ctx context.Context, userID string) (analytics.SkillRadar, []string, error) {
	latest, err := s.skills.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		latest = nil
	} else if err != nil {
		return analytics.SkillRadar{}, nil, &app.AnalyticsError{Code: app.AnalyticsErrStorage, Message: err.Error()}
	}

	now := resolveNow(nil)
	since := now.AddDate(0, 0, -s.cfg.DaysHeatmap)
	attempts, _, warnings, err := s.loadActivity(ctx, userID, &since)
	if err != nil {
		return analytics.SkillRadar{}, nil, err
	}
	return analytics.BuildSkillRadar(latest, attempts), warnings, nil
}

func resolveNow(explicit *time.Time) time.Time {
	if explicit != nil {
		return *explicit
	}
	return time.Now().UTC()
}
