package cli

import (
	"github.com/ninaorlova/lingua/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Events       service.EventService
	Classifier   service.ClassifierService
	Analytics    service.AnalyticsService
	Streaks      service.StreakService
	Achievements service.AchievementService
	Recommends   service.RecommendService

	// DefaultUser is the fallback for the --user flag, usually from
	// the LINGUA_USER environment variable.
	DefaultUser string

	// IsInteractive reports whether stdin is a terminal. Interactive
	// commands fall back to flags when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "lingua" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lingua",
		Short: "Learning analytics and practice recommendations",
	}

	root.PersistentFlags().String("user", app.DefaultUser, "User ID (defaults to $LINGUA_USER)")

	root.AddCommand(
		newRecordCmd(app),
		newMistakeCmd(app),
		newClassifyCmd(app),
		newMistakesCmd(app),
		newStatusCmd(app),
		newStreakCmd(app),
		newVelocityCmd(app),
		newHeatmapCmd(app),
		newSkillsCmd(app),
		newProjectionCmd(app),
		newWhatNowCmd(app),
		newDismissCmd(app),
		newAchievementsCmd(app),
		newReplayCmd(app),
		newImportCmd(app),
		newDashboardCmd(app),
	)

	return root
}

// userID resolves the effective user for a command invocation.
func userID(cmd *cobra.Command) string {
	user, _ := cmd.Flags().GetString("user")
	return user
}
