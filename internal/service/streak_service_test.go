package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_UnknownUserGetsFreshState(t *testing.T) {
	env := newTestEnv(t)

	state, err := env.streaks.Snapshot(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", state.UserID)
	assert.Zero(t, state.CurrentStreak)
	assert.Equal(t, env.cfg.MaxFreezePerMonth, state.FreezeDaysAvailable)
}

func TestOnActivity_AdvancesAndPersists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	state, err := env.streaks.OnActivity(ctx, "u1", day(2))
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStreak)

	state, err = env.streaks.OnActivity(ctx, "u1", day(3))
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentStreak)

	// A second activity on the same day is a no-op.
	state, err = env.streaks.OnActivity(ctx, "u1", day(3))
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentStreak)
	assert.Equal(t, 2, state.TotalPracticeDays)

	snap, err := env.streaks.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.CurrentStreak)
}

func TestOnActivity_ConsumesFreezeAcrossGap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.streaks.OnActivity(ctx, "u1", day(2))
	require.NoError(t, err)
	_, err = env.streaks.OnActivity(ctx, "u1", day(3))
	require.NoError(t, err)

	state, err := env.streaks.OnActivity(ctx, "u1", day(5))
	require.NoError(t, err)
	assert.Equal(t, 3, state.CurrentStreak)
	assert.Equal(t, 1, state.FreezeDaysUsed)
	assert.Equal(t, env.cfg.MaxFreezePerMonth-1, state.FreezeDaysAvailable)
}

func TestStreakService_RequiresUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.streaks.Snapshot(context.Background(), "")
	assert.Error(t, err)
	_, err = env.streaks.OnActivity(context.Background(), "", day(2))
	assert.Error(t, err)
}
