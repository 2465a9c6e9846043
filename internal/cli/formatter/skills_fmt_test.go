package formatter

import (
	"testing"
	"time"

	"github.com/ninaorlova/lingua/internal/analytics"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatSkills_RendersBarsAndPlacement(t *testing.T) {
	resp := &contract.SkillsResponse{
		Radar: analytics.SkillRadar{
			Scores: map[domain.SkillType]float64{
				domain.SkillVocabulary: 90,
				domain.SkillGrammar:    45,
				domain.SkillSpeaking:   65,
				domain.SkillWriting:    65,
				domain.SkillListening:  60,
				domain.SkillReading:    65,
			},
			Strongest:    domain.SkillVocabulary,
			Weakest:      domain.SkillGrammar,
			BalanceScore: 87,
			Proficiency:  65,
		},
		CEFR: analytics.CEFRReport{
			Level:           "B2",
			ProgressInLevel: 0.25,
			Proficiency:     65,
			Outliers: []analytics.SkillAlignment{
				{Skill: domain.SkillVocabulary, Score: 90, Status: analytics.AlignmentAboveLevel},
				{Skill: domain.SkillGrammar, Score: 45, Status: analytics.AlignmentBelowLevel},
			},
		},
	}

	out := stripANSI(FormatSkills(resp))

	assert.Contains(t, out, "Vocabulary")
	assert.Contains(t, out, "CEFR B2")
	assert.Contains(t, out, "Strongest: Vocabulary")
	assert.Contains(t, out, "Weakest: Grammar")
	assert.Contains(t, out, "▲ above level Vocabulary (90)")
	assert.Contains(t, out, "▼ below level Grammar (45)")
}

func TestFormatProjection_ShowsETAAndMilestones(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	resp := &contract.ProjectionResponse{
		Projection: analytics.TimelineProjection{
			CurrentScore: 60,
			TargetScore:  80,
			Achievable:   true,
			Weeks:        10,
			ETA:          now.AddDate(0, 0, 70),
			Confidence:   80,
			Milestones: []analytics.Milestone{
				{Score: 65, Weeks: 2.5, ETA: now.AddDate(0, 0, 17), Quartile: 1},
				{Score: 70, Weeks: 5, ETA: now.AddDate(0, 0, 35), Quartile: 2},
			},
		},
	}

	out := stripANSI(FormatProjection(resp))

	assert.Contains(t, out, "60")
	assert.Contains(t, out, "80")
	assert.Contains(t, out, "May 19, 2026")
	assert.Contains(t, out, "10 weeks")
	assert.Contains(t, out, "confidence 80%")
	assert.Contains(t, out, "1/4 score 65")
}

func TestFormatProjection_UnachievableShowsReason(t *testing.T) {
	resp := &contract.ProjectionResponse{
		Projection: analytics.TimelineProjection{
			CurrentScore: 60,
			TargetScore:  80,
			Achievable:   false,
			Reason:       "Scores are flat or declining, so no arrival date can be projected.",
		},
	}

	out := stripANSI(FormatProjection(resp))
	assert.Contains(t, out, "no arrival date")
}
