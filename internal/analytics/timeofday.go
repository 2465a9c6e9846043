package analytics

import (
	"sort"

	"github.com/ninaorlova/lingua/internal/domain"
)

// minBucketSamples is the number of attempts a time-of-day bucket needs
// before it participates in the ranking.
const minBucketSamples = 2

// neutralFocus stands in for focus quality in buckets without any session
// samples, so attempt-only buckets still rank.
const neutralFocus = 50.0

// TimeOfDayStat summarizes performance inside one bucket.
type TimeOfDayStat struct {
	Bucket   domain.TimeOfDay
	Samples  int
	AvgScore float64
	AvgFocus float64
	Combined float64 // (AvgScore + AvgFocus) / 2
}

// OptimalTimeReport ranks qualifying buckets best-first.
type OptimalTimeReport struct {
	Best             *TimeOfDayStat
	Buckets          []TimeOfDayStat
	InsufficientData bool
	// StrictlyBest is true when the top bucket beats the runner-up
	// outright rather than tying with it.
	StrictlyBest bool
}

// OptimalTimeOfDay groups attempts by bucket, requires at least
// minBucketSamples per bucket, and ranks by the mean of average score and
// average focus. Ties keep chronological bucket order, so the result is
// deterministic.
func OptimalTimeOfDay(attempts []domain.ExerciseAttempt, sessions []domain.SessionPerformance) OptimalTimeReport {
	type acc struct {
		count      int
		scoreSum   float64
		focusCount int
		focusSum   float64
	}
	byBucket := make(map[domain.TimeOfDay]*acc)
	for _, a := range attempts {
		b, ok := byBucket[a.TimeOfDay]
		if !ok {
			b = &acc{}
			byBucket[a.TimeOfDay] = b
		}
		b.count++
		b.scoreSum += a.Score
	}
	for _, s := range sessions {
		if b, ok := byBucket[s.TimeOfDay]; ok {
			b.focusCount++
			b.focusSum += s.FocusQuality
		}
	}

	var stats []TimeOfDayStat
	for _, bucket := range domain.AllTimesOfDay {
		b, ok := byBucket[bucket]
		if !ok || b.count < minBucketSamples {
			continue
		}
		avgScore := b.scoreSum / float64(b.count)
		avgFocus := neutralFocus
		if b.focusCount > 0 {
			avgFocus = b.focusSum / float64(b.focusCount)
		}
		stats = append(stats, TimeOfDayStat{
			Bucket:   bucket,
			Samples:  b.count,
			AvgScore: avgScore,
			AvgFocus: avgFocus,
			Combined: (avgScore + avgFocus) / 2,
		})
	}

	if len(stats) == 0 {
		return OptimalTimeReport{InsufficientData: true}
	}

	// Stats were built in chronological bucket order; a stable sort keeps
	// that order on Combined ties.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Combined > stats[j].Combined
	})

	report := OptimalTimeReport{
		Best:    &stats[0],
		Buckets: stats,
	}
	report.StrictlyBest = len(stats) == 1 || stats[0].Combined > stats[1].Combined
	return report
}
