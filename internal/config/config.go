package config

import (
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

// Config holds process-wide engine tunables. It is built once at startup
// and treated as immutable afterwards; components receive it by value.
type Config struct {
	// MaxFreezePerMonth is the monthly budget of streak freeze days.
	MaxFreezePerMonth int
	// MinRecurringPatternCount is the threshold at which a mistake
	// pattern counts as recurring.
	MinRecurringPatternCount int
	// MinNotifyPriority gates the recommendation priority pick:
	// candidates below it stay in the ranked list but the pick falls
	// back to free choice.
	MinNotifyPriority domain.Priority
	// WindowDaysVelocity is the velocity analysis window.
	WindowDaysVelocity int
	// DaysHeatmap is the retention heatmap span.
	DaysHeatmap int
	// DismissalSuppressionDays is how long a dismissed recommendation
	// kind stays suppressed.
	DismissalSuppressionDays int
	// EventQueryTimeout bounds event-log scans. A scan that hits the
	// bound returns the rows read so far instead of blocking.
	EventQueryTimeout time.Duration
	// CEFRRanges is the proficiency band table in ascending order.
	CEFRRanges []domain.CEFRRange
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		MaxFreezePerMonth:        2,
		MinRecurringPatternCount: 3,
		MinNotifyPriority:        domain.PriorityMedium,
		WindowDaysVelocity:       30,
		DaysHeatmap:              90,
		DismissalSuppressionDays: 7,
		EventQueryTimeout:        10 * time.Second,
		CEFRRanges:               domain.DefaultCEFRRanges,
	}
}
