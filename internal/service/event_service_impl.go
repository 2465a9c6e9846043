package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ninaorlova/lingua/internal/achievement"
	"github.com/ninaorlova/lingua/internal/app"
	"github.com/ninaorlova/lingua/internal/classifier"
	"github.com/ninaorlova/lingua/internal/config"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
	"github.com/ninaorlova/lingua/internal/streak"
)

// comebackGapDays is the break length that counts as a comeback.
const comebackGapDays = 7

// masteredLevel is the mastery threshold for "mastered" word counts.
const masteredLevel = 80

type eventService struct {
	uow   db.UnitOfWork
	cfg   config.Config
	obs   UseCaseObserver
	locks *userLocks
}

func NewEventService(uow db.UnitOfWork, cfg config.Config, observers ...UseCaseObserver) EventService {
	return &eventService{
		uow:   uow,
		cfg:   cfg,
		obs:   useCaseObserverOrNoop(observers),
		locks: newUserLocks(),
	}
}

var _ app.RecordEventUseCase = (EventService)(nil)

func (s *eventService) Record(ctx context.Context, req contract.RecordRequest) (resp *contract.RecordResponse, err error) {
	startedAt := time.Now()
	userID := ""
	if req.Event != nil {
		userID = req.Event.UserID
	}
	defer func() {
		observe(ctx, s.obs, "event.record", userID, startedAt, err, nil)
	}()

	e := req.Event
	if e == nil {
		return nil, &app.RecordError{Code: app.RecordErrInvalidEvent, Message: "event is required"}
	}
	enrichEvent(e)
	if vErr := e.Validate(); vErr != nil {
		return nil, &app.RecordError{Code: app.RecordErrInvalidEvent, Message: vErr.Error()}
	}

	lock := s.locks.forUser(e.UserID)
	lock.Lock()
	defer lock.Unlock()

	var outcome ingestOutcome
	txErr := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		events := repository.NewSQLiteEventRepo(tx)
		if err := events.Append(ctx, e); err != nil {
			return err
		}
		return s.ingestDerived(ctx, tx, events, e, &outcome)
	})
	if txErr != nil {
		return nil, &app.RecordError{Code: app.RecordErrStorage, Message: txErr.Error()}
	}

	return &contract.RecordResponse{
		EventID:         e.ID,
		Streak:          outcome.streak,
		NewAchievements: outcome.newAchievements,
		Warnings:        outcome.warnings,
	}, nil
}

// enrichEvent fills derivable payload fields before validation: mistake
// classification and the attempt's time-of-day bucket.
func enrichEvent(e *domain.Event) {
	switch p := e.Payload.(type) {
	case domain.MistakeRecordedPayload:
		if p.Category == "" {
			c := classifier.Classify(p.OriginalText, p.CorrectedText, p.Explanation)
			p.Category = c.Category
			p.Severity = c.Severity
			p.Pattern = c.Pattern
		}
		if p.MistakeID == "" {
			p.MistakeID = uuid.New().String()
		}
		e.Payload = p
	case domain.ExerciseCompletedPayload:
		if p.TimeOfDay == "" {
			p.TimeOfDay = domain.BucketForHour(e.Timestamp.Hour())
		}
		if p.ExerciseID == "" {
			p.ExerciseID = uuid.New().String()
		}
		e.Payload = p
	}
}

// ingestOutcome accumulates what a single ingest changed.
type ingestOutcome struct {
	streak          *domain.StreakState
	newAchievements []string
	warnings        []string
}

// ingestDerived updates the materialized state for one appended event:
// vocabulary mastery, skill scores, the streak machine, and achievements.
// Runs inside the same transaction as the append.
func (s *eventService) ingestDerived(ctx context.Context, tx db.DBTX, events *repository.SQLiteEventRepo, e *domain.Event, out *ingestOutcome) error {
	streaks := repository.NewSQLiteStreakRepo(tx)
	vocab := repository.NewSQLiteVocabularyRepo(tx)
	skills := repository.NewSQLiteSkillScoreRepo(tx)
	grants := repository.NewSQLiteAchievementRepo(tx)

	switch p := e.Payload.(type) {
	case domain.VocabularyReviewedPayload:
		entry := &domain.VocabularyMastery{
			Word:          p.Word,
			MasteryLevel:  p.MasteryLevel,
			LastReviewed:  e.Timestamp,
			NextReviewDue: p.NextReviewDue,
			FirstLearned:  e.Timestamp,
		}
		if err := vocab.Upsert(ctx, e.UserID, entry); err != nil {
			return fmt.Errorf("updating vocabulary mastery: %w", err)
		}
	case domain.ExerciseCompletedPayload:
		record, err := skills.Get(ctx, e.UserID)
		if errors.Is(err, repository.ErrNotFound) {
			record = &domain.SkillScore{UserID: e.UserID, Scores: make(map[domain.SkillType]int)}
		} else if err != nil {
			return fmt.Errorf("loading skill scores: %w", err)
		}
		if foldScoreIntoSkills(record, p.ExerciseType, p.Score) {
			record.UpdatedAt = e.Timestamp.UTC()
			if err := skills.Upsert(ctx, record); err != nil {
				return fmt.Errorf("updating skill scores: %w", err)
			}
		}
	}

	gapBefore := 0
	if isPracticeActivity(e.Kind) {
		state, err := streaks.Get(ctx, e.UserID)
		if errors.Is(err, repository.ErrNotFound) {
			state = domain.NewStreakState(e.UserID, s.cfg.MaxFreezePerMonth, e.Timestamp.Format(domain.MonthLayout))
		} else if err != nil {
			return fmt.Errorf("loading streak state: %w", err)
		}

		gapBefore = daysSince(state.LastActivityDate, e.Timestamp)
		tr := streak.Apply(state, e.Timestamp, s.cfg.MaxFreezePerMonth)
		if tr.Repaired {
			out.warnings = append(out.warnings, "streak state violated an invariant and was repaired")
		}
		if tr.Changed {
			if err := streaks.Upsert(ctx, state); err != nil {
				return fmt.Errorf("saving streak state: %w", err)
			}
			checkpoint := &domain.Event{
				ID:        uuid.New().String(),
				UserID:    e.UserID,
				Timestamp: e.Timestamp,
				Kind:      domain.EventStreakUpdated,
				Payload: domain.StreakUpdatedPayload{
					CurrentStreak: state.CurrentStreak,
					LongestStreak: state.LongestStreak,
					ActivityDate:  e.Timestamp.Format(domain.DateLayout),
					FreezeUsed:    tr.FreezeUsed,
				},
			}
			if err := events.Append(ctx, checkpoint); err != nil {
				return fmt.Errorf("appending streak checkpoint: %w", err)
			}
		}
		out.streak = state
	}

	snapshot, err := buildCurrentSnapshot(ctx, e.UserID, events, vocab, skills, streaks)
	if err != nil {
		return err
	}
	if out.streak != nil {
		snapshot.CurrentStreak = out.streak.CurrentStreak
	}
	snapshot.ReturnedAfterBreak = gapBefore >= comebackGapDays

	grantedList, err := grants.List(ctx, e.UserID)
	if err != nil {
		return fmt.Errorf("loading achievement grants: %w", err)
	}
	granted := make(map[string]bool, len(grantedList))
	for _, g := range grantedList {
		granted[g.AchievementKey] = true
	}

	for _, rule := range achievement.Evaluate(snapshot, granted) {
		grant := &domain.AchievementGrant{AchievementKey: rule.Key, GrantedAt: e.Timestamp.UTC()}
		if err := grants.Grant(ctx, e.UserID, grant); err != nil {
			return fmt.Errorf("granting achievement %s: %w", rule.Key, err)
		}
		unlock := &domain.Event{
			ID:        uuid.New().String(),
			UserID:    e.UserID,
			Timestamp: e.Timestamp,
			Kind:      domain.EventAchievementGranted,
			Payload:   domain.AchievementGrantedPayload{AchievementKey: rule.Key},
		}
		if err := events.Append(ctx, unlock); err != nil {
			return fmt.Errorf("appending achievement event: %w", err)
		}
		out.newAchievements = append(out.newAchievements, rule.Key)
	}
	return nil
}

func isPracticeActivity(kind domain.EventKind) bool {
	switch kind {
	case domain.EventExerciseCompleted, domain.EventVocabularyReviewed, domain.EventSessionEnded:
		return true
	default:
		return false
	}
}

func daysSince(last *time.Time, now time.Time) int {
	if last == nil {
		return 0
	}
	lastDate := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, now.Location())
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := 0
	for cur := lastDate; cur.Before(nowDate); cur = cur.AddDate(0, 0, 1) {
		days++
	}
	return days
}

func meanSkillScore(record *domain.SkillScore) float64 {
	if record == nil || len(record.Scores) == 0 {
		return 0
	}
	var sum float64
	for _, skill := range domain.AllSkills {
		sum += float64(record.Scores[skill])
	}
	return sum / float64(len(domain.AllSkills))
}
