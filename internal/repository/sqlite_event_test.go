package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_AppendAndQuery(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	e1 := testutil.NewExerciseEvent("u1", 75, base)
	e2 := testutil.NewExerciseEvent("u1", 80, base.Add(time.Hour))
	require.NoError(t, repo.Append(ctx, e1))
	require.NoError(t, repo.Append(ctx, e2))

	page, err := repo.Query(ctx, "u1", EventQuery{})
	require.NoError(t, err)
	require.Len(t, page.Events, 2)
	assert.Zero(t, page.SkippedCorrupt)

	// Newest first by default.
	assert.Equal(t, e2.ID, page.Events[0].ID)
	assert.Equal(t, e1.ID, page.Events[1].ID)

	payload, ok := page.Events[0].Payload.(domain.ExerciseCompletedPayload)
	require.True(t, ok)
	assert.InDelta(t, 80, payload.Score, 0.001)
}

func TestEventRepo_Query_EmptyNeverFails(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)

	page, err := repo.Query(context.Background(), "nobody", EventQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Events)
}

func TestEventRepo_Query_FiltersByKindAndRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, testutil.NewExerciseEvent("u1", 70, base)))
	require.NoError(t, repo.Append(ctx, testutil.NewMistakeEvent("u1", base.Add(time.Hour),
		domain.CategoryArticles, domain.SeverityModerate, "article_added_the")))
	require.NoError(t, repo.Append(ctx, testutil.NewExerciseEvent("u1", 90, base.Add(48*time.Hour))))

	page, err := repo.Query(ctx, "u1", EventQuery{
		Kinds: []domain.EventKind{domain.EventExerciseCompleted},
	})
	require.NoError(t, err)
	assert.Len(t, page.Events, 2)

	since := base.Add(24 * time.Hour)
	page, err = repo.Query(ctx, "u1", EventQuery{Since: &since})
	require.NoError(t, err)
	assert.Len(t, page.Events, 1)
}

func TestEventRepo_Query_OrderTieBrokenByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	a := testutil.NewExerciseEvent("u1", 70, at)
	b := testutil.NewExerciseEvent("u1", 80, at)
	a.ID, b.ID = "aaa", "bbb"
	require.NoError(t, repo.Append(ctx, a))
	require.NoError(t, repo.Append(ctx, b))

	page, err := repo.Query(ctx, "u1", EventQuery{OldestFirst: true})
	require.NoError(t, err)
	require.Len(t, page.Events, 2)
	assert.Equal(t, "aaa", page.Events[0].ID)
	assert.Equal(t, "bbb", page.Events[1].ID)
}

func TestEventRepo_Query_SkipsCorruptPayload(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	good := testutil.NewExerciseEvent("u1", 70, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Append(ctx, good))

	// Corrupt a payload behind the repo's back.
	_, err := db.Exec(`INSERT INTO events (id, user_id, timestamp, kind, payload, created_at)
		VALUES ('bad', 'u1', '2026-08-01T11:00:00Z', 'exercise_completed', '{not json', '2026-08-01T11:00:00Z')`)
	require.NoError(t, err)

	page, err := repo.Query(ctx, "u1", EventQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Events, 1)
	assert.Equal(t, 1, page.SkippedCorrupt)
}

func TestEventRepo_Query_ExpiredDeadlineReturnsPartialPage(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewExerciseEvent("u1", 70, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))))

	// A caller deadline that has already passed: the scan stops and
	// reports what it read instead of failing.
	expired, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
	defer cancel()

	page, err := repo.Query(expired, "u1", EventQuery{})
	require.NoError(t, err)
	assert.True(t, page.TimedOut)
}

func TestEventRepo_Query_DefaultBoundAppliedWithoutDeadline(t *testing.T) {
	db := testutil.NewTestDB(t)
	// A bound that expires immediately stands in for a slow scan.
	repo := NewSQLiteEventRepoWithTimeout(db, time.Nanosecond)
	ctx := context.Background()

	require.NoError(t, NewSQLiteEventRepo(db).Append(ctx, testutil.NewExerciseEvent("u1", 70, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))))

	page, err := repo.Query(ctx, "u1", EventQuery{})
	require.NoError(t, err)
	assert.True(t, page.TimedOut)

	// Zero falls back to the default bound, which a tiny log never hits.
	page, err = NewSQLiteEventRepoWithTimeout(db, 0).Query(ctx, "u1", EventQuery{})
	require.NoError(t, err)
	assert.False(t, page.TimedOut)
	assert.Len(t, page.Events, 1)
}

func TestEventRepo_Append_RejectsInvalid(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)

	e := testutil.NewExerciseEvent("u1", 70, time.Now().UTC())
	e.Kind = "bogus"
	assert.Error(t, repo.Append(context.Background(), e))
}

func TestEventRepo_CountByKind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(ctx, testutil.NewExerciseEvent("u1", 70, base.Add(time.Duration(i)*time.Hour))))
	}
	require.NoError(t, repo.Append(ctx, testutil.NewSessionEvent("u1", 75, 60, base)))

	n, err := repo.CountByKind(ctx, "u1", domain.EventExerciseCompleted)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
