package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/cli/formatter"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/spf13/cobra"
)

// nowUTC exists so command timestamps are uniform across the package.
func nowUTC() time.Time {
	return time.Now().UTC()
}

func newClassifyCmd(app *App) *cobra.Command {
	var original, corrected, explanation string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a mistake without recording it",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.Classifier.Classify(original, corrected, explanation)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClassification(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&original, "original", "", "What the learner wrote or said")
	cmd.Flags().StringVar(&corrected, "corrected", "", "The corrected form")
	cmd.Flags().StringVar(&explanation, "explanation", "", "Optional tutor explanation")
	_ = cmd.MarkFlagRequired("original")
	_ = cmd.MarkFlagRequired("corrected")

	return cmd
}

func newMistakesCmd(app *App) *cobra.Command {
	var sinceDays int

	cmd := &cobra.Command{
		Use:   "mistakes",
		Short: "Show the aggregated mistake picture",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.MistakesRequest{UserID: userID(cmd)}
			if sinceDays > 0 {
				since := nowUTC().AddDate(0, 0, -sinceDays)
				req.Since = &since
			}

			summary, err := app.Classifier.Summarize(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMistakeSummary(summary))
			return nil
		},
	}

	cmd.Flags().IntVar(&sinceDays, "days", 0, "Only include mistakes from the last N days")

	return cmd
}
