package analytics

import (
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

// HeatmapDay is one cell of the retention grid.
type HeatmapDay struct {
	Date           time.Time
	DayOfWeek      time.Weekday
	WeekOfYear     int
	AttemptCount   int
	RetentionScore float64 // mean score of that day's attempts
	Intensity      int     // 0..5, 0 iff no attempts
}

// Heatmap is the day-by-day practice grid over the trailing window plus
// its summary statistics.
type Heatmap struct {
	Days          []HeatmapDay
	WindowDays    int
	PracticeDays  int
	Consistency   float64 // PracticeDays / WindowDays
	BestDay       *time.Weekday
	BestDayScore  float64
	LongestStreak int // longest contiguous run of practice days in-window
}

// RetentionHeatmap builds the grid for the `days` calendar days ending at
// `now` (inclusive). Dates are taken in now's location.
func RetentionHeatmap(attempts []domain.ExerciseAttempt, now time.Time, days int) Heatmap {
	if days <= 0 {
		days = 90
	}

	type dayAcc struct {
		count    int
		scoreSum float64
	}
	byDate := make(map[string]*dayAcc)
	for _, a := range attempts {
		key := a.CompletedAt.In(now.Location()).Format(domain.DateLayout)
		d, ok := byDate[key]
		if !ok {
			d = &dayAcc{}
			byDate[key] = d
		}
		d.count++
		d.scoreSum += a.Score
	}

	hm := Heatmap{WindowDays: days, Days: make([]HeatmapDay, 0, days)}
	start := now.AddDate(0, 0, -(days - 1))

	streak := 0
	weekdayScores := make(map[time.Weekday][]float64)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		_, week := date.ISOWeek()
		day := HeatmapDay{
			Date:       date,
			DayOfWeek:  date.Weekday(),
			WeekOfYear: week,
		}

		if acc, ok := byDate[date.Format(domain.DateLayout)]; ok {
			day.AttemptCount = acc.count
			day.RetentionScore = acc.scoreSum / float64(acc.count)
			day.Intensity = intensity(acc.count, day.RetentionScore)

			hm.PracticeDays++
			streak++
			if streak > hm.LongestStreak {
				hm.LongestStreak = streak
			}
			weekdayScores[day.DayOfWeek] = append(weekdayScores[day.DayOfWeek], day.RetentionScore)
		} else {
			streak = 0
		}

		hm.Days = append(hm.Days, day)
	}

	hm.Consistency = float64(hm.PracticeDays) / float64(days)
	hm.BestDay, hm.BestDayScore = bestWeekday(weekdayScores)
	return hm
}

// intensity maps a day's volume and quality onto the 0..5 scale.
// Zero is reserved for days with no attempts at all.
func intensity(count int, avgScore float64) int {
	switch {
	case count == 0:
		return 0
	case count >= 10 && avgScore >= 80:
		return 5
	case count >= 7 && avgScore >= 70:
		return 4
	case count >= 4 && avgScore >= 60:
		return 3
	case count >= 2 && avgScore >= 50:
		return 2
	default:
		return 1
	}
}

// bestWeekday returns the weekday with the highest mean retention among
// weekdays with at least one sample, ties resolved Sunday-first.
func bestWeekday(scores map[time.Weekday][]float64) (*time.Weekday, float64) {
	var (
		best      *time.Weekday
		bestScore float64
	)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		samples := scores[wd]
		if len(samples) == 0 {
			continue
		}
		var sum float64
		for _, s := range samples {
			sum += s
		}
		mean := sum / float64(len(samples))
		if best == nil || mean > bestScore {
			day := wd
			best = &day
			bestScore = mean
		}
	}
	return best, bestScore
}
