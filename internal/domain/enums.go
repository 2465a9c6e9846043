package domain

type EventKind string

const (
	EventExerciseCompleted  EventKind = "exercise_completed"
	EventMistakeRecorded    EventKind = "mistake_recorded"
	EventVocabularyReviewed EventKind = "vocabulary_reviewed"
	EventSessionEnded       EventKind = "session_ended"
	EventAchievementGranted EventKind = "achievement_granted"
	EventStreakUpdated      EventKind = "streak_updated"
)

// ValidEventKinds is the canonical set of accepted event kind strings.
var ValidEventKinds = map[EventKind]bool{
	EventExerciseCompleted:  true,
	EventMistakeRecorded:    true,
	EventVocabularyReviewed: true,
	EventSessionEnded:       true,
	EventAchievementGranted: true,
	EventStreakUpdated:      true,
}

type ExerciseType string

const (
	ExerciseVocabulary   ExerciseType = "vocabulary"
	ExerciseGrammar      ExerciseType = "grammar"
	ExerciseWriting      ExerciseType = "writing"
	ExerciseConversation ExerciseType = "conversation"
	ExerciseMicro        ExerciseType = "micro"
	ExerciseShadowing    ExerciseType = "shadowing"
	ExerciseImmersion    ExerciseType = "immersion"
	ExerciseOther        ExerciseType = "other"
)

type SkillType string

const (
	SkillVocabulary SkillType = "vocabulary"
	SkillGrammar    SkillType = "grammar"
	SkillSpeaking   SkillType = "speaking"
	SkillWriting    SkillType = "writing"
	SkillListening  SkillType = "listening"
	SkillReading    SkillType = "reading"
)

// AllSkills lists every skill in canonical radar order.
var AllSkills = []SkillType{
	SkillVocabulary, SkillGrammar, SkillSpeaking,
	SkillWriting, SkillListening, SkillReading,
}

type ErrorCategory string

const (
	CategoryArticles     ErrorCategory = "articles"
	CategoryPrepositions ErrorCategory = "prepositions"
	CategoryTenses       ErrorCategory = "tenses"
	CategoryWordOrder    ErrorCategory = "word_order"
	CategoryVocabulary   ErrorCategory = "vocabulary"
	CategoryGrammar      ErrorCategory = "grammar"
)

type Severity string

const (
	SeverityCritical  Severity = "critical"
	SeverityImportant Severity = "important"
	SeverityModerate  Severity = "moderate"
	SeverityMinor     Severity = "minor"
)

type TimeOfDay string

const (
	TimeEarlyMorning TimeOfDay = "early_morning"
	TimeMorning      TimeOfDay = "morning"
	TimeAfternoon    TimeOfDay = "afternoon"
	TimeEvening      TimeOfDay = "evening"
	TimeNight        TimeOfDay = "night"
)

// AllTimesOfDay lists buckets in chronological order.
var AllTimesOfDay = []TimeOfDay{
	TimeEarlyMorning, TimeMorning, TimeAfternoon, TimeEvening, TimeNight,
}

// BucketForHour maps an hour of day (0-23) to its time-of-day bucket.
// The partition is configuration, not derived from user data.
func BucketForHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 9:
		return TimeEarlyMorning
	case hour >= 9 && hour < 12:
		return TimeMorning
	case hour >= 12 && hour < 17:
		return TimeAfternoon
	case hour >= 17 && hour < 22:
		return TimeEvening
	default:
		return TimeNight
	}
}

type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

type RecommendationKind string

const (
	RecPracticeFocus        RecommendationKind = "practice_focus"
	RecDifficultyAdjustment RecommendationKind = "difficulty_adjustment"
	RecSkillBalance         RecommendationKind = "skill_balance"
	RecReviewReminder       RecommendationKind = "review_reminder"
	RecVocabularyUse        RecommendationKind = "vocabulary_use"
	RecErrorPattern         RecommendationKind = "error_pattern"
	RecTimeOptimization     RecommendationKind = "time_optimization"
	RecEnergyBased          RecommendationKind = "energy_based"
	RecMilestoneProgress    RecommendationKind = "milestone_progress"
	RecRecovery             RecommendationKind = "recovery"
)

type Priority int

const (
	PriorityInfo     Priority = 1
	PriorityLow      Priority = 2
	PriorityMedium   Priority = 3
	PriorityHigh     Priority = 4
	PriorityCritical Priority = 5
)

// String returns the display label for a priority.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	default:
		return "INFO"
	}
}

type AchievementType string

const (
	AchievementMilestone    AchievementType = "milestone"
	AchievementStreak       AchievementType = "streak"
	AchievementVocabulary   AchievementType = "vocabulary"
	AchievementPerformance  AchievementType = "performance"
	AchievementLevel        AchievementType = "level"
	AchievementHabit        AchievementType = "habit"
	AchievementPerseverance AchievementType = "perseverance"
)
