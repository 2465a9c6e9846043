package cli

import (
	"context"
	"fmt"

	"github.com/ninaorlova/lingua/internal/cli/formatter"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/spf13/cobra"
)

func newWhatNowCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "whatnow",
		Short: "Get prioritized practice recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewRecommendRequest(userID(cmd))
			if cmd.Flags().Changed("limit") {
				req.Limit = limit
			}

			resp, err := app.Recommends.Build(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWhatNow(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of recommendations")

	return cmd
}

func newDismissCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <kind>",
		Short: "Dismiss a recommendation kind for a week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.RecommendationKind(args[0])
			if err := app.Recommends.Dismiss(context.Background(), userID(cmd), kind); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("Dismissed %q for a week.", kind))+"\n")
			return nil
		},
	}
}
