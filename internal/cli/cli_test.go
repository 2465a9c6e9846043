package cli

import (
	"bytes"
	"testing"

	"github.com/ninaorlova/lingua/internal/config"
	"github.com/ninaorlova/lingua/internal/repository"
	"github.com/ninaorlova/lingua/internal/service"
	"github.com/ninaorlova/lingua/internal/testutil"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the full command tree over an in-memory database.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	cfg := config.Default()

	events := repository.NewSQLiteEventRepo(database)
	streaks := repository.NewSQLiteStreakRepo(database)
	grants := repository.NewSQLiteAchievementRepo(database)
	vocab := repository.NewSQLiteVocabularyRepo(database)
	skills := repository.NewSQLiteSkillScoreRepo(database)
	dismissals := repository.NewSQLiteDismissalRepo(database)

	return &App{
		Events:        service.NewEventService(uow, cfg),
		Classifier:    service.NewClassifierService(events),
		Analytics:     service.NewAnalyticsService(events, skills, vocab, streaks, grants, cfg),
		Streaks:       service.NewStreakService(streaks, uow, cfg),
		Achievements:  service.NewAchievementService(grants, uow, cfg),
		Recommends:    service.NewRecommendService(events, skills, vocab, streaks, dismissals, cfg),
		DefaultUser:   "u1",
		IsInteractive: func() bool { return false },
	}
}

// runCmd executes the root command with args and returns captured output.
func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	err := root.Execute()
	return buf.String(), err
}

// mustRun executes a command and fails the test on error.
func mustRun(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := runCmd(t, app, args...)
	require.NoError(t, err, "command %v failed: %s", args, out)
	return out
}
