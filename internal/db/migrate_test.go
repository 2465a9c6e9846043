package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_FreshDatabase(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var version int
	err = database.QueryRow(`SELECT version FROM schema_meta WHERE id = 1`).Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)

	// All tables exist.
	for _, table := range []string{
		"events", "streak_states", "achievement_grants",
		"dismissals", "vocabulary_mastery", "skill_scores",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_NewerSchemaFailsLoudly(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`UPDATE schema_meta SET version = ? WHERE id = 1`, SchemaVersion+1)
	require.NoError(t, err)

	err = Migrate(database)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}
