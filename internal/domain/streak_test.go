package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreakState_Valid(t *testing.T) {
	s := NewStreakState("u1", 2, "2026-08")
	assert.True(t, s.Valid(2))

	s.CurrentStreak = 5
	s.LongestStreak = 3
	assert.False(t, s.Valid(2))
}

func TestStreakState_RepairLongest(t *testing.T) {
	s := &StreakState{UserID: "u1", CurrentStreak: 7, LongestStreak: 3}
	changed := s.Repair(2)
	assert.True(t, changed)
	assert.Equal(t, 7, s.LongestStreak)
	assert.True(t, s.Valid(2))
}

func TestStreakState_RepairFreezeBudget(t *testing.T) {
	s := &StreakState{UserID: "u1", FreezeDaysAvailable: 3, FreezeDaysUsed: 1}
	changed := s.Repair(2)
	assert.True(t, changed)
	assert.Equal(t, 1, s.FreezeDaysAvailable)
	assert.Equal(t, 1, s.FreezeDaysUsed)
	assert.True(t, s.Valid(2))
}

func TestStreakState_RepairNoop(t *testing.T) {
	s := NewStreakState("u1", 2, "2026-08")
	assert.False(t, s.Repair(2))
}
