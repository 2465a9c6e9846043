package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ninaorlova/lingua/internal/app"
	"github.com/ninaorlova/lingua/internal/config"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
	"github.com/ninaorlova/lingua/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC)
}

func record(t *testing.T, env *testEnv, e *domain.Event) *contract.RecordResponse {
	t.Helper()
	resp, err := env.events.Record(context.Background(), contract.RecordRequest{Event: e})
	require.NoError(t, err)
	return resp
}

func TestRecord_FirstExerciseGrantsAchievementAndStartsStreak(t *testing.T) {
	env := newTestEnv(t)

	resp := record(t, env, testutil.NewExerciseEvent("u1", 72, day(2)))

	require.NotNil(t, resp.Streak)
	assert.Equal(t, 1, resp.Streak.CurrentStreak)
	assert.Contains(t, resp.NewAchievements, "first_exercise")

	// The ingest appended derived events alongside the source event.
	page, err := repository.NewSQLiteEventRepo(env.db).Query(context.Background(), "u1", repository.EventQuery{OldestFirst: true})
	require.NoError(t, err)
	kinds := make([]domain.EventKind, 0, len(page.Events))
	for _, e := range page.Events {
		kinds = append(kinds, e.Kind)
	}
	assert.Contains(t, kinds, domain.EventExerciseCompleted)
	assert.Contains(t, kinds, domain.EventStreakUpdated)
	assert.Contains(t, kinds, domain.EventAchievementGranted)
}

func TestRecord_InvalidEventRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.events.Record(context.Background(), contract.RecordRequest{Event: &domain.Event{}})

	var recErr *app.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, app.RecordErrInvalidEvent, recErr.Code)

	_, err = env.events.Record(context.Background(), contract.RecordRequest{})
	require.ErrorAs(t, err, &recErr)
}

func TestRecord_StreakFreezeAcrossGap(t *testing.T) {
	env := newTestEnv(t)

	record(t, env, testutil.NewExerciseEvent("u1", 70, day(2))) // Monday
	record(t, env, testutil.NewExerciseEvent("u1", 75, day(3))) // Tuesday
	resp := record(t, env, testutil.NewExerciseEvent("u1", 80, day(5))) // Thursday

	require.NotNil(t, resp.Streak)
	assert.Equal(t, 3, resp.Streak.CurrentStreak)
	assert.Equal(t, 1, resp.Streak.FreezeDaysUsed)
	assert.Equal(t, env.cfg.MaxFreezePerMonth-1, resp.Streak.FreezeDaysAvailable)
}

func TestRecord_StreakBreaksAfterLongGap(t *testing.T) {
	env := newTestEnv(t)

	record(t, env, testutil.NewExerciseEvent("u1", 70, day(2))) // Monday
	resp := record(t, env, testutil.NewExerciseEvent("u1", 70, day(6))) // Friday

	require.NotNil(t, resp.Streak)
	assert.Equal(t, 1, resp.Streak.CurrentStreak)
}

func TestRecord_ClassifiesMistakeOnIngest(t *testing.T) {
	env := newTestEnv(t)

	e := &domain.Event{
		ID:        "evt-1",
		UserID:    "u1",
		Timestamp: day(2),
		Kind:      domain.EventMistakeRecorded,
		Payload: domain.MistakeRecordedPayload{
			OriginalText:  "I went to store",
			CorrectedText: "I went to the store",
		},
	}
	record(t, env, e)

	summary, err := env.classify.Summarize(context.Background(), contract.MistakesRequest{UserID: "u1"})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.CategoryCounts[domain.CategoryArticles])
	require.Len(t, summary.Patterns, 1)
	assert.Equal(t, "article_added_the", summary.Patterns[0].Pattern)
}

func TestRecord_PerfectScoreUnlocksAchievement(t *testing.T) {
	env := newTestEnv(t)

	resp := record(t, env, testutil.NewExerciseEvent("u1", 100, day(2)))

	assert.Contains(t, resp.NewAchievements, "perfect_score")
	assert.Contains(t, resp.NewAchievements, "first_exercise")
}

func TestRecord_VocabularyReviewMaterializesMastery(t *testing.T) {
	env := newTestEnv(t)

	record(t, env, testutil.NewVocabularyEvent("u1", "meticulous", 85, day(2), nil))

	vocab := repository.NewSQLiteVocabularyRepo(env.db)
	mastered, err := vocab.CountMastered(context.Background(), "u1", 80)
	require.NoError(t, err)
	assert.Equal(t, 1, mastered)
}

func TestRecord_ExerciseUpdatesSkillScores(t *testing.T) {
	env := newTestEnv(t)

	record(t, env, testutil.NewExerciseEvent("u1", 80, day(2), testutil.WithExerciseType(domain.ExerciseGrammar)))

	skills := repository.NewSQLiteSkillScoreRepo(env.db)
	scores, err := skills.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 80, scores.Scores[domain.SkillGrammar])
}

func TestRecord_RollsBackAtomically(t *testing.T) {
	database := testutil.NewTestDB(t)

	// Fail on the second write: the event append succeeds, a later
	// derived-state write fails, and the whole ingest must roll back.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	svc := NewEventService(uow, config.Default())

	_, err := svc.Record(context.Background(), contract.RecordRequest{
		Event: testutil.NewExerciseEvent("u1", 70, day(2)),
	})

	var recErr *app.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, app.RecordErrStorage, recErr.Code)

	page, qErr := repository.NewSQLiteEventRepo(database).Query(context.Background(), "u1", repository.EventQuery{})
	require.NoError(t, qErr)
	assert.Empty(t, page.Events, "a failed ingest must not leave partial writes")
}

func TestRecord_SameDayEventsDoNotInflateStreak(t *testing.T) {
	env := newTestEnv(t)

	record(t, env, testutil.NewExerciseEvent("u1", 70, day(2)))
	resp := record(t, env, testutil.NewExerciseEvent("u1", 75, day(2).Add(2*time.Hour)))

	require.NotNil(t, resp.Streak)
	assert.Equal(t, 1, resp.Streak.CurrentStreak)
	assert.Equal(t, 1, resp.Streak.TotalPracticeDays)
}

func TestRecord_UsersAreIsolated(t *testing.T) {
	env := newTestEnv(t)

	record(t, env, testutil.NewExerciseEvent("u1", 70, day(2)))
	resp := record(t, env, testutil.NewExerciseEvent("u2", 70, day(2)))

	require.NotNil(t, resp.Streak)
	assert.Equal(t, "u2", resp.Streak.UserID)
	assert.Equal(t, 1, resp.Streak.CurrentStreak)
}
