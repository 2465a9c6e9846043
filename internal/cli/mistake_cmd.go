package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/ninaorlova/lingua/internal/cli/formatter"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/spf13/cobra"
)

func newMistakeCmd(app *App) *cobra.Command {
	var original, corrected, explanation string

	cmd := &cobra.Command{
		Use:   "mistake",
		Short: "Record a corrected mistake",
		Long: "Record a corrected mistake. Without flags an interactive form collects\n" +
			"the texts; the classifier fills in category, severity, and pattern.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if original == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := mistakeForm(&original, &corrected, &explanation).Run(); err != nil {
					return err
				}
			}
			if original == "" || corrected == "" {
				return fmt.Errorf("both --original and --corrected are required")
			}

			event := &domain.Event{
				ID:        uuid.New().String(),
				UserID:    userID(cmd),
				Timestamp: nowUTC(),
				Kind:      domain.EventMistakeRecorded,
				Payload: domain.MistakeRecordedPayload{
					OriginalText:  original,
					CorrectedText: corrected,
					Explanation:   explanation,
				},
			}

			if _, err := app.Events.Record(context.Background(), contract.RecordRequest{Event: event}); err != nil {
				return err
			}

			c := app.Classifier.Classify(original, corrected, explanation)
			fmt.Fprint(cmd.OutOrStdout(), formatter.StyleGreen.Render("Recorded.")+"\n")
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClassification(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&original, "original", "", "What the learner wrote or said")
	cmd.Flags().StringVar(&corrected, "corrected", "", "The corrected form")
	cmd.Flags().StringVar(&explanation, "explanation", "", "Optional tutor explanation")

	return cmd
}

// mistakeForm collects the mistake texts interactively.
func mistakeForm(original, corrected, explanation *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Original").
				Placeholder("I went to store").
				Value(original).
				Validate(requireText("original text")),
			huh.NewInput().
				Title("Corrected").
				Placeholder("I went to the store").
				Value(corrected).
				Validate(requireText("corrected text")),
			huh.NewInput().
				Title("Explanation (optional)").
				Value(explanation),
		),
	).WithTheme(linguaHuhTheme()).WithShowHelp(false)
}

func requireText(label string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}
