// Package achievement evaluates a declarative rule set against a snapshot
// of user progress. Grants are monotone: once a key is granted it is
// never revoked, so the evaluator only ever reports new unlocks.
package achievement

import "github.com/ninaorlova/lingua/internal/domain"

// Snapshot is the progress picture the rules are evaluated against. It is
// computed from derived state before each evaluation pass.
type Snapshot struct {
	ExercisesCompleted    int
	CurrentStreak         int
	MasteredWords         int // words at mastery level 80 or above
	HasPerfectScore       bool
	ProficiencyScore      float64
	EarlyMorningPractices int
	LateNightPractices    int
	ReturnedAfterBreak    bool // any activity after a gap of 7+ days
}

// Rule is one achievement definition.
type Rule struct {
	Key         string
	Type        domain.AchievementType
	Title       string
	Description string
	Predicate   func(Snapshot) bool
}

// Rules is the full catalog in grant-announcement order.
var Rules = []Rule{
	{
		Key: "first_exercise", Type: domain.AchievementMilestone,
		Title:       "First Steps",
		Description: "Complete your first exercise.",
		Predicate:   func(s Snapshot) bool { return s.ExercisesCompleted >= 1 },
	},
	{
		Key: "streak_7", Type: domain.AchievementStreak,
		Title:       "One Week Strong",
		Description: "Practice seven days in a row.",
		Predicate:   func(s Snapshot) bool { return s.CurrentStreak >= 7 },
	},
	{
		Key: "streak_30", Type: domain.AchievementStreak,
		Title:       "Monthly Habit",
		Description: "Practice thirty days in a row.",
		Predicate:   func(s Snapshot) bool { return s.CurrentStreak >= 30 },
	},
	{
		Key: "vocab_100", Type: domain.AchievementVocabulary,
		Title:       "Word Collector",
		Description: "Master 100 words.",
		Predicate:   func(s Snapshot) bool { return s.MasteredWords >= 100 },
	},
	{
		Key: "vocab_500", Type: domain.AchievementVocabulary,
		Title:       "Walking Dictionary",
		Description: "Master 500 words.",
		Predicate:   func(s Snapshot) bool { return s.MasteredWords >= 500 },
	},
	{
		Key: "perfect_score", Type: domain.AchievementPerformance,
		Title:       "Flawless",
		Description: "Score 100 on any exercise.",
		Predicate:   func(s Snapshot) bool { return s.HasPerfectScore },
	},
	{
		Key: "exercises_100", Type: domain.AchievementMilestone,
		Title:       "Century",
		Description: "Complete 100 exercises.",
		Predicate:   func(s Snapshot) bool { return s.ExercisesCompleted >= 100 },
	},
	{
		Key: "exercises_500", Type: domain.AchievementMilestone,
		Title:       "Marathon",
		Description: "Complete 500 exercises.",
		Predicate:   func(s Snapshot) bool { return s.ExercisesCompleted >= 500 },
	},
	{
		Key: "proficiency_60", Type: domain.AchievementLevel,
		Title:       "Upper Intermediate",
		Description: "Reach a proficiency score of 60.",
		Predicate:   func(s Snapshot) bool { return s.ProficiencyScore >= 60 },
	},
	{
		Key: "proficiency_80", Type: domain.AchievementLevel,
		Title:       "Advanced Territory",
		Description: "Reach a proficiency score of 80.",
		Predicate:   func(s Snapshot) bool { return s.ProficiencyScore >= 80 },
	},
	{
		Key: "early_bird", Type: domain.AchievementHabit,
		Title:       "Early Bird",
		Description: "Practice five times in the early morning.",
		Predicate:   func(s Snapshot) bool { return s.EarlyMorningPractices >= 5 },
	},
	{
		Key: "night_owl", Type: domain.AchievementHabit,
		Title:       "Night Owl",
		Description: "Practice five times late at night.",
		Predicate:   func(s Snapshot) bool { return s.LateNightPractices >= 5 },
	},
	{
		Key: "comeback", Type: domain.AchievementPerseverance,
		Title:       "Welcome Back",
		Description: "Return to practice after a week away.",
		Predicate:   func(s Snapshot) bool { return s.ReturnedAfterBreak },
	},
}

// RuleByKey looks a rule up by its key.
func RuleByKey(key string) (Rule, bool) {
	for _, r := range Rules {
		if r.Key == key {
			return r, true
		}
	}
	return Rule{}, false
}

// Evaluate returns the rules whose predicates hold and whose keys are not
// in the granted set, in catalog order. It never mutates the set.
func Evaluate(snapshot Snapshot, granted map[string]bool) []Rule {
	var newly []Rule
	for _, rule := range Rules {
		if granted[rule.Key] {
			continue
		}
		if rule.Predicate(snapshot) {
			newly = append(newly, rule)
		}
	}
	return newly
}
