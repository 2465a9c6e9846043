package analytics

import (
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

// Milestone is one quartile checkpoint on the projected path.
type Milestone struct {
	Score    float64
	Weeks    float64
	ETA      time.Time
	Quartile int // 1..4
}

// TimelineProjection estimates when the target proficiency is reached at
// the current pace, discounted by practice consistency.
type TimelineProjection struct {
	CurrentScore   float64
	TargetScore    float64
	AlreadyReached bool
	Achievable     bool
	Weeks          float64
	ETA            time.Time
	Confidence     int // 10..95
	Milestones     []Milestone
	Reason         string
}

// minConsistencyFloor prevents a sparse schedule from inflating the
// projection without bound.
const minConsistencyFloor = 0.30

// ProjectTimeline computes the weeks-to-target projection. consistency is
// the fraction of window days with practice, in [0,1].
func ProjectTimeline(current, target float64, velocity VelocityReport, consistency float64, now time.Time) TimelineProjection {
	p := TimelineProjection{CurrentScore: current, TargetScore: target}

	if current >= target {
		p.AlreadyReached = true
		p.Achievable = true
		p.Confidence = 95
		p.Reason = "Target already reached."
		return p
	}
	if velocity.PointsPerWeek <= 0 {
		p.Reason = "No positive score trend to project from."
		p.Confidence = 10
		return p
	}

	effectiveConsistency := consistency
	if effectiveConsistency < minConsistencyFloor {
		effectiveConsistency = minConsistencyFloor
	}

	p.Achievable = true
	p.Weeks = (target - current) / velocity.PointsPerWeek / effectiveConsistency
	p.ETA = now.Add(time.Duration(p.Weeks * 7 * 24 * float64(time.Hour)))
	p.Confidence = projectionConfidence(velocity, consistency)
	p.Reason = "Projected from current velocity and practice consistency."

	gain := target - current
	for q := 1; q <= 4; q++ {
		weeks := p.Weeks * float64(q) / 4
		p.Milestones = append(p.Milestones, Milestone{
			Quartile: q,
			Score:    current + gain*float64(q)/4,
			Weeks:    weeks,
			ETA:      now.Add(time.Duration(weeks * 7 * 24 * float64(time.Hour))),
		})
	}
	return p
}

// projectionConfidence starts at 50 and rewards trend, acceleration, and
// consistency, clamped to [10, 95].
func projectionConfidence(velocity VelocityReport, consistency float64) int {
	confidence := 50
	if velocity.Trend == domain.TrendImproving {
		confidence += 20
	}
	if velocity.Acceleration > 0 {
		confidence += 10
	}
	switch {
	case consistency >= 0.80:
		confidence += 20
	case consistency >= 0.60:
		confidence += 10
	case consistency < 0.40:
		confidence -= 20
	}
	if confidence > 95 {
		confidence = 95
	}
	if confidence < 10 {
		confidence = 10
	}
	return confidence
}
