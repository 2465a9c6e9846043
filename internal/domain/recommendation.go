package domain

// Recommendation is one prioritized next action. Recommendations are
// derived values: they are never persisted, only their dismissals are.
type Recommendation struct {
	Kind     RecommendationKind
	Priority Priority
	Title    string
	Message  string
	Action   string
	Reason   string
	Evidence []string
	// Step is the generation pass that produced the recommendation;
	// it breaks priority ties deterministically.
	Step int
}
