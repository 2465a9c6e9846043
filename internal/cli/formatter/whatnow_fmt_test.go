package formatter

import (
	"testing"

	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatWhatNow_RendersPrioritizedList(t *testing.T) {
	resp := &contract.RecommendResponse{
		Recommendations: []domain.Recommendation{
			{
				Kind:     domain.RecRecovery,
				Priority: domain.PriorityCritical,
				Title:    "Take it easy today",
				Message:  "Recent scores dipped. Try something familiar.",
				Reason:   "3 of your last 5 exercises scored below 40",
			},
			{
				Kind:     domain.RecReviewReminder,
				Priority: domain.PriorityMedium,
				Title:    "Review due words",
				Message:  "5 words are waiting for review.",
				Evidence: []string{"meticulous", "arrive"},
			},
		},
		Priority: domain.Recommendation{Title: "Take it easy today"},
	}

	out := stripANSI(FormatWhatNow(resp))

	assert.Contains(t, out, "1. Take it easy today")
	assert.Contains(t, out, "● CRITICAL")
	assert.Contains(t, out, "2. Review due words")
	assert.Contains(t, out, "WHY: 3 of your last 5 exercises scored below 40")
	assert.Contains(t, out, "· meticulous")
}

func TestFormatWhatNow_FallbackShowsFreeChoice(t *testing.T) {
	resp := &contract.RecommendResponse{
		Fallback: true,
		Priority: domain.Recommendation{
			Title:   "Your choice",
			Message: "No pressing needs detected. Pick anything you enjoy.",
		},
	}

	out := stripANSI(FormatWhatNow(resp))

	assert.Contains(t, out, "Your choice")
	assert.Contains(t, out, "Pick anything you enjoy")
	assert.NotContains(t, out, "1.")
}

func TestFormatWhatNow_FallbackStillShowsSuggestions(t *testing.T) {
	resp := &contract.RecommendResponse{
		Fallback: true,
		Priority: domain.Recommendation{Title: "Your choice"},
		Recommendations: []domain.Recommendation{
			{
				Kind:     domain.RecTimeOptimization,
				Priority: domain.PriorityLow,
				Title:    "Practice in the morning",
				Message:  "Your morning scores run higher.",
			},
		},
	}

	out := stripANSI(FormatWhatNow(resp))

	assert.Contains(t, out, "Nothing urgent")
	assert.Contains(t, out, "1. Practice in the morning")
}

func TestFormatWhatNow_MarksAbortedBuilds(t *testing.T) {
	resp := &contract.RecommendResponse{
		Recommendations: []domain.Recommendation{
			{Title: "Review due words", Priority: domain.PriorityMedium},
		},
		Aborted: true,
	}

	out := stripANSI(FormatWhatNow(resp))
	assert.Contains(t, out, "Partial result")
}
