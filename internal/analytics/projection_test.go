package analytics

import (
	"testing"
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectTimeline_AlreadyReached(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	p := ProjectTimeline(80, 75, VelocityReport{}, 0.5, now)

	assert.True(t, p.AlreadyReached)
	assert.True(t, p.Achievable)
	assert.Empty(t, p.Milestones)
}

func TestProjectTimeline_Unachievable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	p := ProjectTimeline(50, 75, VelocityReport{PointsPerWeek: -1, Trend: domain.TrendDeclining}, 0.9, now)

	assert.False(t, p.AlreadyReached)
	assert.False(t, p.Achievable)
	assert.Equal(t, 10, p.Confidence)
	assert.Empty(t, p.Milestones)
}

func TestProjectTimeline_WeeksAndMilestones(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	velocity := VelocityReport{PointsPerWeek: 2, Trend: domain.TrendImproving, Acceleration: 0.5}

	p := ProjectTimeline(60, 80, velocity, 1.0, now)

	require.True(t, p.Achievable)
	// 20 points at 2 points/week with full consistency.
	assert.InDelta(t, 10, p.Weeks, 1e-9)
	assert.Equal(t, now.AddDate(0, 0, 70), p.ETA)

	require.Len(t, p.Milestones, 4)
	assert.InDelta(t, 65, p.Milestones[0].Score, 1e-9)
	assert.InDelta(t, 2.5, p.Milestones[0].Weeks, 1e-9)
	assert.InDelta(t, 80, p.Milestones[3].Score, 1e-9)
	assert.InDelta(t, 10, p.Milestones[3].Weeks, 1e-9)
}

func TestProjectTimeline_ConsistencyFloor(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	velocity := VelocityReport{PointsPerWeek: 2, Trend: domain.TrendImproving}

	sparse := ProjectTimeline(60, 80, velocity, 0.05, now)
	floor := ProjectTimeline(60, 80, velocity, 0.30, now)

	assert.InDelta(t, floor.Weeks, sparse.Weeks, 1e-9)
}

func TestProjectionConfidence(t *testing.T) {
	cases := []struct {
		name        string
		velocity    VelocityReport
		consistency float64
		want        int
	}{
		{"improving accelerating consistent", VelocityReport{Trend: domain.TrendImproving, Acceleration: 1}, 0.9, 95},
		{"improving moderate consistency", VelocityReport{Trend: domain.TrendImproving}, 0.65, 80},
		{"stable low consistency", VelocityReport{Trend: domain.TrendStable}, 0.2, 30},
		{"bare baseline", VelocityReport{Trend: domain.TrendStable}, 0.5, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, projectionConfidence(tc.velocity, tc.consistency))
		})
	}
}
