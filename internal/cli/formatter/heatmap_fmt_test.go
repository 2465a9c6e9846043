package formatter

import (
	"testing"
	"time"

	"github.com/ninaorlova/lingua/internal/analytics"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatHeatmap_RendersGridAndSummary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	attempts := []domain.ExerciseAttempt{
		testutil.NewAttempt(90, now.AddDate(0, 0, -1)),
		testutil.NewAttempt(80, now.AddDate(0, 0, -2)),
		testutil.NewAttempt(70, now.AddDate(0, 0, -4)),
	}
	resp := &contract.HeatmapResponse{
		Heatmap: analytics.RetentionHeatmap(attempts, now, 28),
	}

	out := stripANSI(FormatHeatmap(resp))

	assert.Contains(t, out, "LAST 28 DAYS")
	assert.Contains(t, out, "3 practice days")
	assert.Contains(t, out, "longest run 2 days")
	// Four week rows, each labelled with its closing date.
	assert.Contains(t, out, "Mar 10")
}

func TestFormatHeatmap_EmptyWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	resp := &contract.HeatmapResponse{
		Heatmap: analytics.RetentionHeatmap(nil, now, 14),
	}

	out := stripANSI(FormatHeatmap(resp))

	assert.Contains(t, out, "0 practice days")
	assert.Contains(t, out, "consistency 0%")
	assert.NotContains(t, out, "Strongest weekday")
}
