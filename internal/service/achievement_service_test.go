package service

import (
	"context"
	"testing"

	"github.com/ninaorlova/lingua/internal/repository"
	"github.com/ninaorlova/lingua/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_IsIdempotentWithoutNewActivity(t *testing.T) {
	env := newTestEnv(t)
	record(t, env, testutil.NewExerciseEvent("u1", 72, day(2)))

	// Ingest already granted everything the state supports, so a
	// standalone evaluation finds nothing new.
	newKeys, err := env.grants.Evaluate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, newKeys)

	newKeys, err = env.grants.Evaluate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, newKeys)
}

func TestEvaluate_PicksUpOutOfBandStateChanges(t *testing.T) {
	env := newTestEnv(t)
	record(t, env, testutil.NewExerciseEvent("u1", 72, day(2)))

	ctx := context.Background()
	streaks := repository.NewSQLiteStreakRepo(env.db)
	state, err := streaks.Get(ctx, "u1")
	require.NoError(t, err)
	state.CurrentStreak = 7
	state.LongestStreak = 7
	require.NoError(t, streaks.Upsert(ctx, state))

	newKeys, err := env.grants.Evaluate(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, newKeys, "streak_7")
}

func TestList_ReturnsGrantedAchievements(t *testing.T) {
	env := newTestEnv(t)
	record(t, env, testutil.NewExerciseEvent("u1", 100, day(2)))

	grants, err := env.grants.List(context.Background(), "u1")
	require.NoError(t, err)

	keys := make([]string, 0, len(grants))
	for _, g := range grants {
		keys = append(keys, g.AchievementKey)
	}
	assert.Contains(t, keys, "first_exercise")
	assert.Contains(t, keys, "perfect_score")
}

func TestAchievementService_RequiresUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.grants.Evaluate(context.Background(), "")
	assert.Error(t, err)
	_, err = env.grants.List(context.Background(), "")
	assert.Error(t, err)
}
