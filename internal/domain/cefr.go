package domain

type CEFRLevel string

const (
	CEFRA1 CEFRLevel = "A1"
	CEFRA2 CEFRLevel = "A2"
	CEFRB1 CEFRLevel = "B1"
	CEFRB2 CEFRLevel = "B2"
	CEFRC1 CEFRLevel = "C1"
	CEFRC2 CEFRLevel = "C2"
)

// CEFRRange is a half-open proficiency band [Min, Max), except the top
// band which is closed at 100.
type CEFRRange struct {
	Level CEFRLevel
	Min   float64
	Max   float64
}

// DefaultCEFRRanges is the canonical band table in ascending order.
var DefaultCEFRRanges = []CEFRRange{
	{Level: CEFRA1, Min: 0, Max: 20},
	{Level: CEFRA2, Min: 20, Max: 40},
	{Level: CEFRB1, Min: 40, Max: 60},
	{Level: CEFRB2, Min: 60, Max: 75},
	{Level: CEFRC1, Min: 75, Max: 90},
	{Level: CEFRC2, Min: 90, Max: 100},
}

// LevelForScore returns the band containing score. Scores are clamped to
// [0,100]; 100 falls in C2 because the top band is closed.
func LevelForScore(ranges []CEFRRange, score float64) CEFRRange {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	last := ranges[len(ranges)-1]
	for _, r := range ranges {
		if score >= r.Min && score < r.Max {
			return r
		}
	}
	return last
}

// ProgressInLevel linearly interpolates score's position within its band,
// as a percentage in [0,100].
func ProgressInLevel(r CEFRRange, score float64) float64 {
	span := r.Max - r.Min
	if span <= 0 {
		return 100
	}
	p := (score - r.Min) / span * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
