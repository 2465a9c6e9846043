package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/ninaorlova/lingua/internal/cli"
	"github.com/ninaorlova/lingua/internal/config"
	"github.com/ninaorlova/lingua/internal/db"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
	"github.com/ninaorlova/lingua/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.lingua/lingua.db
	dbPath := os.Getenv("LINGUA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lingua", "lingua.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	cfg := config.Default()
	uow := db.NewSQLiteUnitOfWork(database)

	eventRepo := repository.NewSQLiteEventRepoWithTimeout(database, cfg.EventQueryTimeout)
	streakRepo := repository.NewSQLiteStreakRepo(database)
	grantRepo := repository.NewSQLiteAchievementRepo(database)
	vocabRepo := repository.NewSQLiteVocabularyRepo(database)
	skillRepo := repository.NewSQLiteSkillScoreRepo(database)
	dismissalRepo := repository.NewSQLiteDismissalRepo(database)

	// Use-case logging goes to stderr only when asked for.
	var observers []service.UseCaseObserver
	if os.Getenv("LINGUA_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Events:       service.NewEventService(uow, cfg, observers...),
		Classifier:   service.NewClassifierService(eventRepo),
		Analytics:    service.NewAnalyticsService(eventRepo, skillRepo, vocabRepo, streakRepo, grantRepo, cfg, observers...),
		Streaks:      service.NewStreakService(streakRepo, uow, cfg, observers...),
		Achievements: service.NewAchievementService(grantRepo, uow, cfg, observers...),
		Recommends:   service.NewRecommendService(eventRepo, skillRepo, vocabRepo, streakRepo, dismissalRepo, cfg, observers...),
		DefaultUser:  defaultUser(),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// defaultUser resolves the user for commands that omit --user.
func defaultUser() string {
	return domain.CoalesceStr(os.Getenv("LINGUA_USER"), "default")
}
