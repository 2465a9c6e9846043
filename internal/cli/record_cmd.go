package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ninaorlova/lingua/internal/cli/formatter"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Append a practice event to the log",
	}

	cmd.AddCommand(
		newRecordExerciseCmd(app),
		newRecordVocabCmd(app),
		newRecordSessionCmd(app),
	)

	return cmd
}

func newRecordExerciseCmd(app *App) *cobra.Command {
	var (
		exerciseType string
		score        float64
		response     string
		durationSec  int
		at           string
	)

	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Record a completed exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseEventTime(at)
			if err != nil {
				return err
			}

			event := &domain.Event{
				ID:        uuid.New().String(),
				UserID:    userID(cmd),
				Timestamp: ts,
				Kind:      domain.EventExerciseCompleted,
				Payload: domain.ExerciseCompletedPayload{
					ExerciseID:   uuid.New().String(),
					ExerciseType: domain.ExerciseType(exerciseType),
					Score:        score,
					UserResponse: response,
					DurationSec:  durationSec,
				},
			}

			resp, err := app.Events.Record(context.Background(), contract.RecordRequest{Event: event})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatRecordResult(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&exerciseType, "type", "grammar", "Exercise type (vocabulary, grammar, writing, conversation, micro, shadowing, immersion, other)")
	cmd.Flags().Float64Var(&score, "score", 0, "Score 0-100")
	cmd.Flags().StringVar(&response, "response", "", "Text the learner produced, if any")
	cmd.Flags().IntVar(&durationSec, "duration", 0, "Duration in seconds")
	cmd.Flags().StringVar(&at, "at", "", "Completion time (RFC3339, default now)")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newRecordVocabCmd(app *App) *cobra.Command {
	var (
		word  string
		level int
		due   string
		at    string
	)

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Record a vocabulary review outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseEventTime(at)
			if err != nil {
				return err
			}

			payload := domain.VocabularyReviewedPayload{
				Word:         word,
				MasteryLevel: level,
			}
			if due != "" {
				dueAt, err := time.Parse(domain.DateLayout, due)
				if err != nil {
					return fmt.Errorf("parsing --due: %w", err)
				}
				payload.NextReviewDue = &dueAt
			}

			event := &domain.Event{
				ID:        uuid.New().String(),
				UserID:    userID(cmd),
				Timestamp: ts,
				Kind:      domain.EventVocabularyReviewed,
				Payload:   payload,
			}

			resp, err := app.Events.Record(context.Background(), contract.RecordRequest{Event: event})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatRecordResult(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&word, "word", "", "The reviewed word")
	cmd.Flags().IntVar(&level, "level", 0, "Mastery level 0-100")
	cmd.Flags().StringVar(&due, "due", "", "Next review date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "Review time (RFC3339, default now)")
	_ = cmd.MarkFlagRequired("word")
	_ = cmd.MarkFlagRequired("level")

	return cmd
}

func newRecordSessionCmd(app *App) *cobra.Command {
	var (
		avgScore float64
		focus    float64
		at       string
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record a finished practice session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseEventTime(at)
			if err != nil {
				return err
			}

			event := &domain.Event{
				ID:        uuid.New().String(),
				UserID:    userID(cmd),
				Timestamp: ts,
				Kind:      domain.EventSessionEnded,
				Payload: domain.SessionEndedPayload{
					SessionID:    uuid.New().String(),
					StartedAt:    ts.Add(-20 * time.Minute),
					AverageScore: avgScore,
					FocusQuality: focus,
				},
			}

			resp, err := app.Events.Record(context.Background(), contract.RecordRequest{Event: event})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatRecordResult(resp))
			return nil
		},
	}

	cmd.Flags().Float64Var(&avgScore, "avg-score", 0, "Average score of the session")
	cmd.Flags().Float64Var(&focus, "focus", 0, "Focus quality 0-100")
	cmd.Flags().StringVar(&at, "at", "", "End time (RFC3339, default now)")

	return cmd
}

// parseEventTime parses the --at flag, defaulting to the current instant.
func parseEventTime(at string) (time.Time, error) {
	if at == "" {
		return time.Now().UTC(), nil
	}
	ts, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --at: %w", err)
	}
	return ts, nil
}

// formatRecordResult summarizes an ingest: streak movement plus unlocks.
func formatRecordResult(resp *contract.RecordResponse) string {
	out := formatter.StyleGreen.Render("Recorded.") + "\n"
	if resp.Streak != nil {
		out += formatter.Dim(fmt.Sprintf("Streak: %d days", resp.Streak.CurrentStreak)) + "\n"
	}
	for _, key := range resp.NewAchievements {
		out += formatter.StyleYellow.Render(fmt.Sprintf("★ Achievement unlocked: %s", key)) + "\n"
	}
	for _, w := range resp.Warnings {
		out += formatter.StyleYellow.Render(fmt.Sprintf("WARNING: %s", w)) + "\n"
	}
	return out
}
