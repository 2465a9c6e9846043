package cli

import (
	"context"
	"fmt"

	"github.com/ninaorlova/lingua/internal/cli/formatter"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Backfill practice history from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleRed.Render("✗ ")+e.Error())
				}
				return fmt.Errorf("import file has %d validation errors", len(errs))
			}

			// --user overrides the file's user_id when set explicitly.
			if cmd.Flags().Changed("user") {
				schema.UserID = userID(cmd)
			}

			events, err := importer.ConvertToEvents(schema)
			if err != nil {
				return err
			}

			var unlocked []string
			for _, event := range events {
				resp, err := app.Events.Record(context.Background(), contract.RecordRequest{Event: event})
				if err != nil {
					return fmt.Errorf("importing event at %s: %w", event.Timestamp.Format("2006-01-02 15:04"), err)
				}
				unlocked = append(unlocked, resp.NewAchievements...)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d events for %s.\n", len(events), schema.UserID)
			for _, key := range unlocked {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render(fmt.Sprintf("★ Achievement unlocked: %s", key)))
			}
			return nil
		},
	}

	return cmd
}
