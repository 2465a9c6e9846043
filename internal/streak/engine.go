// Package streak implements the flexible-streak state machine. A bounded
// monthly budget of freeze days lets a single-day gap keep the streak
// alive; anything longer resets it.
package streak

import (
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

// Transition describes what a single activity did to the streak.
type Transition struct {
	State       *domain.StreakState
	Changed     bool
	FreezeUsed  bool
	StreakReset bool
	FreezeReset bool
	// Repaired is true when the incoming state violated an invariant and
	// was fixed before the transition ran.
	Repaired bool
}

// Apply advances the state machine for a practice activity at the given
// instant. Activity dates are calendar dates in the instant's location;
// the state is mutated in place and returned inside the transition.
func Apply(state *domain.StreakState, at time.Time, maxFreezePerMonth int) Transition {
	today := truncateToDate(at)
	tr := Transition{State: state}

	if !state.Valid(maxFreezePerMonth) {
		state.Repair(maxFreezePerMonth)
		tr.Repaired = true
	}

	// First activity of a new calendar month restores the freeze budget.
	month := today.Format(domain.MonthLayout)
	if state.FreezeResetMonth != month {
		state.FreezeResetMonth = month
		state.FreezeDaysAvailable = maxFreezePerMonth
		state.FreezeDaysUsed = 0
		tr.FreezeReset = true
		tr.Changed = true
	}

	switch {
	case state.LastActivityDate == nil:
		state.CurrentStreak = 1
		state.TotalPracticeDays++

	default:
		last := truncateToDate(*state.LastActivityDate)
		gap := daysBetween(last, today)

		switch {
		case gap <= 0:
			// Same day (or an out-of-order replay), nothing to count.
			if !tr.FreezeReset {
				return tr
			}
			state.UpdatedAt = at.UTC()
			return tr

		case gap == 1:
			state.CurrentStreak++
			state.TotalPracticeDays++

		case gap == 2 && state.FreezeDaysAvailable > 0:
			state.FreezeDaysAvailable--
			state.FreezeDaysUsed++
			state.CurrentStreak++
			state.TotalPracticeDays++
			tr.FreezeUsed = true

		default:
			state.CurrentStreak = 1
			state.TotalPracticeDays++
			tr.StreakReset = true
		}
	}

	state.LastActivityDate = &today
	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}
	state.UpdatedAt = at.UTC()
	tr.Changed = true
	return tr
}

// truncateToDate drops the time-of-day part, keeping the location so
// calendar arithmetic stays user-local.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b. AddDate handles DST
// transitions, which a plain duration division would not.
func daysBetween(a, b time.Time) int {
	days := 0
	for cur := a; cur.Before(b); cur = cur.AddDate(0, 0, 1) {
		days++
	}
	for cur := b; cur.Before(a); cur = cur.AddDate(0, 0, 1) {
		days--
	}
	return days
}
