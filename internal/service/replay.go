package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/achievement"
	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
	"github.com/ninaorlova/lingua/internal/streak"
)

// ReplayDerivedState rebuilds every materialization for a user from the
// event log alone: streak state, achievement grants, vocabulary mastery,
// and skill scores. The log itself is never touched, so replaying is
// idempotent and recovers from any derived-state corruption.
func (s *eventService) ReplayDerivedState(ctx context.Context, userID string) (result *ReplayResult, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.obs, "event.replay", userID, startedAt, err, nil)
	}()

	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	lock := s.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	res := &ReplayResult{}
	txErr := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		events := repository.NewSQLiteEventRepo(tx)
		grants := repository.NewSQLiteAchievementRepo(tx)
		streaks := repository.NewSQLiteStreakRepo(tx)
		vocab := repository.NewSQLiteVocabularyRepo(tx)
		skills := repository.NewSQLiteSkillScoreRepo(tx)

		page, err := events.Query(ctx, userID, repository.EventQuery{OldestFirst: true})
		if err != nil {
			return fmt.Errorf("reading event log: %w", err)
		}
		// A truncated log would rebuild wrong state; replay needs all of it.
		if page.TimedOut {
			return fmt.Errorf("reading event log: scan timed out before the end")
		}
		res.SkippedCorrupt = page.SkippedCorrupt

		if err := grants.DeleteAll(ctx, userID); err != nil {
			return fmt.Errorf("clearing achievement grants: %w", err)
		}

		state := domain.NewStreakState(userID, s.cfg.MaxFreezePerMonth, "")
		skillRecord := &domain.SkillScore{UserID: userID, Scores: make(map[domain.SkillType]int)}
		var snap achievement.Snapshot
		granted := make(map[string]bool)
		bestMastery := make(map[string]int)

		for _, e := range page.Events {
			switch p := e.Payload.(type) {
			case domain.ExerciseCompletedPayload:
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
				if foldScoreIntoSkills(skillRecord, p.ExerciseType, p.Score) {
					skillRecord.UpdatedAt = e.Timestamp.UTC()
				}
			case domain.VocabularyReviewedPayload:
				entry := &domain.VocabularyMastery{
					Word:          p.Word,
					MasteryLevel:  p.MasteryLevel,
					LastReviewed:  e.Timestamp,
					NextReviewDue: p.NextReviewDue,
					FirstLearned:  e.Timestamp,
				}
				if err := vocab.Upsert(ctx, userID, entry); err != nil {
					return fmt.Errorf("replaying vocabulary review: %w", err)
				}
				if p.MasteryLevel > bestMastery[p.Word] {
					bestMastery[p.Word] = p.MasteryLevel
				}
			case domain.StreakUpdatedPayload, domain.AchievementGrantedPayload:
				// Derived checkpoints; the replay recomputes them.
				continue
			}

			if isPracticeActivity(e.Kind) {
				gapBefore := daysSince(state.LastActivityDate, e.Timestamp)
				streak.Apply(state, e.Timestamp, s.cfg.MaxFreezePerMonth)
				snap.CurrentStreak = state.CurrentStreak
				snap.ReturnedAfterBreak = snap.ReturnedAfterBreak || gapBefore >= comebackGapDays
			}

			snap.MasteredWords = countAtLeast(bestMastery, masteredLevel)
			snap.ProficiencyScore = meanSkillScore(skillRecord)

			for _, rule := range achievement.Evaluate(snap, granted) {
				grant := &domain.AchievementGrant{AchievementKey: rule.Key, GrantedAt: e.Timestamp.UTC()}
				if err := grants.Grant(ctx, userID, grant); err != nil {
					return fmt.Errorf("replaying achievement %s: %w", rule.Key, err)
				}
				granted[rule.Key] = true
				res.AchievementKeys = append(res.AchievementKeys, rule.Key)
			}
			res.EventsReplayed++
		}

		if state.LastActivityDate != nil {
			if err := streaks.Upsert(ctx, state); err != nil {
				return fmt.Errorf("saving replayed streak: %w", err)
			}
		}
		if len(skillRecord.Scores) > 0 {
			if err := skills.Upsert(ctx, skillRecord); err != nil {
				return fmt.Errorf("saving replayed skill scores: %w", err)
			}
		}
		res.Streak = state
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return res, nil
}

func countAtLeast(levels map[string]int, threshold int) int {
	n := 0
	for _, lvl := range levels {
		if lvl >= threshold {
			n++
		}
	}
	return n
}
