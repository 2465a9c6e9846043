package cli

import (
	"context"
	"fmt"

	"github.com/ninaorlova/lingua/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the learning dashboard in one shot",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Analytics.Status(context.Background(), userID(cmd))
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			return nil
		},
	}
}

func newStreakCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the current streak state",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Streaks.Snapshot(context.Background(), userID(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", formatter.Bold(fmt.Sprintf("🔥 %d day streak", state.CurrentStreak)))
			fmt.Fprintf(out, "%s\n", formatter.Dim(fmt.Sprintf("Longest: %d days over %d total practice days",
				state.LongestStreak, state.TotalPracticeDays)))
			fmt.Fprintf(out, "%s\n", formatter.Dim(fmt.Sprintf("Freezes: %d available, %d used this month",
				state.FreezeDaysAvailable, state.FreezeDaysUsed)))
			return nil
		},
	}
}

func newAchievementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List unlocked and locked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			grants, err := app.Achievements.List(context.Background(), userID(cmd))
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAchievements(grants))
			return nil
		},
	}
}

func newReplayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "replay",
		Short: "Rebuild derived state from the event log",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Events.ReplayDerivedState(context.Background(), userID(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", formatter.StyleGreen.Render(
				fmt.Sprintf("Replayed %d events.", res.EventsReplayed)))
			if res.SkippedCorrupt > 0 {
				fmt.Fprintf(out, "%s\n", formatter.StyleYellow.Render(
					fmt.Sprintf("Skipped %d events with corrupt payloads.", res.SkippedCorrupt)))
			}
			if res.Streak != nil {
				fmt.Fprintf(out, "%s\n", formatter.Dim(
					fmt.Sprintf("Streak: %d days, %d achievements", res.Streak.CurrentStreak, len(res.AchievementKeys))))
			}
			return nil
		},
	}
}
