package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

// VelocityReport describes recent score movement in points per week.
type VelocityReport struct {
	PointsPerWeek float64
	Acceleration  float64
	Trend         domain.Trend
	SampleCount   int
	// Interpretation is a deterministic one-line reading of the numbers.
	Interpretation string
}

// LearningVelocity compares the average score of the older and newer half
// of the window and normalizes the difference to points per week. The
// acceleration term repeats the computation over the preceding window of
// equal length. Re-running over the same attempts returns the same result
// bit for bit.
func LearningVelocity(attempts []domain.ExerciseAttempt, now time.Time, windowDays int) VelocityReport {
	if windowDays <= 0 {
		windowDays = 30
	}
	windowStart := now.AddDate(0, 0, -windowDays)
	prevStart := windowStart.AddDate(0, 0, -windowDays)

	current := windowVelocity(attempts, windowStart, now, windowDays)
	report := VelocityReport{
		PointsPerWeek: current.pointsPerWeek,
		SampleCount:   current.samples,
	}

	if current.samples < 2 {
		report.Trend = domain.TrendInsufficientData
		report.Interpretation = "Not enough recent practice to measure progress."
		return report
	}

	switch {
	case current.pointsPerWeek > 0:
		report.Trend = domain.TrendImproving
	case current.pointsPerWeek < 0:
		report.Trend = domain.TrendDeclining
	default:
		report.Trend = domain.TrendStable
	}

	previous := windowVelocity(attempts, prevStart, windowStart, windowDays)
	if previous.samples >= 2 {
		report.Acceleration = current.pointsPerWeek - previous.pointsPerWeek
	}

	report.Interpretation = interpretVelocity(report.PointsPerWeek, report.Acceleration)
	return report
}

type windowResult struct {
	pointsPerWeek float64
	samples       int
}

// windowVelocity computes the half-over-half score delta for attempts in
// [start, end), scaled to points per week.
func windowVelocity(attempts []domain.ExerciseAttempt, start, end time.Time, windowDays int) windowResult {
	var inWindow []domain.ExerciseAttempt
	for _, a := range attempts {
		if !a.CompletedAt.Before(start) && a.CompletedAt.Before(end) {
			inWindow = append(inWindow, a)
		}
	}
	if len(inWindow) < 2 {
		return windowResult{samples: len(inWindow)}
	}

	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].CompletedAt.Before(inWindow[j].CompletedAt)
	})

	mid := len(inWindow) / 2
	older := meanScore(inWindow[:mid])
	newer := meanScore(inWindow[mid:])

	return windowResult{
		pointsPerWeek: (newer - older) / float64(windowDays) * 7,
		samples:       len(inWindow),
	}
}

func meanScore(attempts []domain.ExerciseAttempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	var sum float64
	for _, a := range attempts {
		sum += a.Score
	}
	return sum / float64(len(attempts))
}

func interpretVelocity(pointsPerWeek, acceleration float64) string {
	switch {
	case pointsPerWeek > 2 && acceleration > 0:
		return fmt.Sprintf("Improving fast and accelerating: +%.1f points/week.", pointsPerWeek)
	case pointsPerWeek > 1:
		return fmt.Sprintf("Steady improvement: +%.1f points/week.", pointsPerWeek)
	case pointsPerWeek > 0:
		return fmt.Sprintf("Slow but positive progress: +%.1f points/week.", pointsPerWeek)
	case pointsPerWeek == 0:
		return "Scores are stable week over week."
	default:
		return fmt.Sprintf("Scores dipped recently: %.1f points/week.", pointsPerWeek)
	}
}
