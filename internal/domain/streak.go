package domain

import "time"

// DateLayout is the calendar-date form used for streak arithmetic.
// Streak days are user-local calendar dates, never instants.
const DateLayout = "2006-01-02"

// MonthLayout keys the monthly freeze-day budget reset.
const MonthLayout = "2006-01"

// StreakState is the flexible-streak machine state. A bounded monthly
// budget of freeze days lets a single-day gap keep the streak alive.
type StreakState struct {
	UserID              string
	CurrentStreak       int
	LongestStreak       int
	LastActivityDate    *time.Time // calendar date, user-local
	FreezeDaysAvailable int
	FreezeDaysUsed      int
	FreezeResetMonth    string // YYYY-MM of the last budget reset
	TotalPracticeDays   int
	UpdatedAt           time.Time
}

// Valid reports whether the state satisfies its invariants:
// currentStreak <= longestStreak and the freeze budget is non-negative.
func (s *StreakState) Valid(maxFreezePerMonth int) bool {
	if s.CurrentStreak > s.LongestStreak {
		return false
	}
	if s.FreezeDaysAvailable < 0 || s.FreezeDaysUsed < 0 {
		return false
	}
	return s.FreezeDaysAvailable+s.FreezeDaysUsed <= maxFreezePerMonth
}

// Repair restores invariants in place and reports whether anything changed.
// Used by the auto-repair path when a violation is detected: the caller
// logs, repairs, and re-emits a corrected StreakUpdated event.
func (s *StreakState) Repair(maxFreezePerMonth int) bool {
	changed := false
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
		changed = true
	}
	if s.FreezeDaysUsed < 0 {
		s.FreezeDaysUsed = 0
		changed = true
	}
	if s.FreezeDaysAvailable < 0 {
		s.FreezeDaysAvailable = 0
		changed = true
	}
	if s.FreezeDaysAvailable+s.FreezeDaysUsed > maxFreezePerMonth {
		s.FreezeDaysAvailable = maxFreezePerMonth - s.FreezeDaysUsed
		if s.FreezeDaysAvailable < 0 {
			s.FreezeDaysAvailable = 0
			s.FreezeDaysUsed = maxFreezePerMonth
		}
		changed = true
	}
	return changed
}

// NewStreakState returns the initial state for a user with a full
// freeze budget for the given month.
func NewStreakState(userID string, maxFreezePerMonth int, month string) *StreakState {
	return &StreakState{
		UserID:              userID,
		FreezeDaysAvailable: maxFreezePerMonth,
		FreezeResetMonth:    month,
	}
}
