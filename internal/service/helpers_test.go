package service

import (
	"database/sql"
	"testing"

	"github.com/ninaorlova/lingua/internal/config"
	"github.com/ninaorlova/lingua/internal/repository"
	"github.com/ninaorlova/lingua/internal/testutil"
)

// testEnv wires the full service stack over one in-memory database.
type testEnv struct {
	db         *sql.DB
	cfg        config.Config
	events     EventService
	analytics  AnalyticsService
	classify   ClassifierService
	streaks    StreakService
	grants     AchievementService
	recommends RecommendService
}

func newTestEnv(t *testing.T) *testEnv {
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

	return &testEnv{
		db:         database,
		cfg:        cfg,
		events:     NewEventService(uow, cfg),
		analytics:  NewAnalyticsService(events, skills, vocab, streaks, grants, cfg),
		classify:   NewClassifierService(events),
		streaks:    NewStreakService(streaks, uow, cfg),
		grants:     NewAchievementService(grants, uow, cfg),
		recommends: NewRecommendService(events, skills, vocab, streaks, dismissals, cfg),
	}
}
