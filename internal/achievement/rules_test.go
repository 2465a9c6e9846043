package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(rules []Rule) []string {
	if len(rules) == 0 {
		return nil
	}
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Key)
	}
	return out
}

func TestEvaluate_FirstExercise(t *testing.T) {
	newly := Evaluate(Snapshot{ExercisesCompleted: 1}, nil)

	assert.Equal(t, []string{"first_exercise"}, keys(newly))
}

func TestEvaluate_SkipsAlreadyGranted(t *testing.T) {
	granted := map[string]bool{"first_exercise": true}

	newly := Evaluate(Snapshot{ExercisesCompleted: 5, CurrentStreak: 7}, granted)

	assert.Equal(t, []string{"streak_7"}, keys(newly))
}

func TestEvaluate_MonotoneAcrossPasses(t *testing.T) {
	snapshot := Snapshot{ExercisesCompleted: 120, CurrentStreak: 8, HasPerfectScore: true}
	granted := map[string]bool{}

	first := Evaluate(snapshot, granted)
	for _, r := range first {
		granted[r.Key] = true
	}
	second := Evaluate(snapshot, granted)

	assert.Equal(t, []string{"first_exercise", "streak_7", "perfect_score", "exercises_100"}, keys(first))
	assert.Empty(t, second)
}

func TestEvaluate_Thresholds(t *testing.T) {
	cases := []struct {
		name     string
		snapshot Snapshot
		want     []string
	}{
		{"below everything", Snapshot{}, nil},
		{"mastered words", Snapshot{MasteredWords: 100}, []string{"vocab_100"}},
		{"both vocab tiers", Snapshot{MasteredWords: 500}, []string{"vocab_100", "vocab_500"}},
		{"proficiency tiers", Snapshot{ProficiencyScore: 80}, []string{"proficiency_60", "proficiency_80"}},
		{"early bird at five", Snapshot{EarlyMorningPractices: 5}, []string{"early_bird"}},
		{"early bird at four", Snapshot{EarlyMorningPractices: 4}, nil},
		{"night owl", Snapshot{LateNightPractices: 6}, []string{"night_owl"}},
		{"comeback", Snapshot{ReturnedAfterBreak: true}, []string{"comeback"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys(Evaluate(tc.snapshot, nil)))
		})
	}
}

func TestRuleByKey(t *testing.T) {
	rule, ok := RuleByKey("streak_30")
	require.True(t, ok)
	assert.Equal(t, "Monthly Habit", rule.Title)

	_, ok = RuleByKey("unknown")
	assert.False(t, ok)
}

func TestCatalogKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Rules {
		require.False(t, seen[r.Key], "duplicate key %s", r.Key)
		seen[r.Key] = true
		require.NotNil(t, r.Predicate)
		require.NotEmpty(t, r.Title)
	}
}
