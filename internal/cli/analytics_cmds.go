package cli

import (
	"context"
	"fmt"

	"github.com/ninaorlova/lingua/internal/cli/formatter"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/spf13/cobra"
)

func newVelocityCmd(app *App) *cobra.Command {
	var window int

	cmd := &cobra.Command{
		Use:   "velocity",
		Short: "Show learning velocity and the best time to practice",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewVelocityRequest(userID(cmd))
			if cmd.Flags().Changed("window") {
				req.WindowDays = window
			}

			resp, err := app.Analytics.Velocity(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVelocity(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", 30, "Window in days")

	return cmd
}

func newHeatmapCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show the practice retention grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewHeatmapRequest(userID(cmd))
			if cmd.Flags().Changed("days") {
				req.Days = days
			}

			resp, err := app.Analytics.Heatmap(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHeatmap(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 90, "Window in days")

	return cmd
}

func newSkillsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "Show the skill radar and CEFR placement",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Analytics.Skills(context.Background(), contract.SkillsRequest{UserID: userID(cmd)})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSkills(resp))
			return nil
		},
	}
}

func newProjectionCmd(app *App) *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:   "projection",
		Short: "Project when a target proficiency will be reached",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Analytics.Projection(context.Background(), contract.ProjectionRequest{
				UserID:      userID(cmd),
				TargetScore: target,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjection(resp))
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "Target proficiency score (0-100]")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
