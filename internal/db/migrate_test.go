package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{
		"user_shorthand",
		"user_main_notes",
		"user_settings",
		"user_historical_entries",
		"user_proposed_entries",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration list must not fail.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestHistoricalFingerprintUniquePerUser(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	insert := `INSERT INTO user_historical_entries
		(user_id, date, project, activity, work_item, comment, fingerprint, created_at)
		VALUES (?, '2024-07-15', 'A', 'Dev', 'X', 'c', ?, '2024-07-15T00:00:00Z')`

	_, err = database.Exec(insert, "u1", "fp1")
	require.NoError(t, err)

	// Same fingerprint for the same user is rejected.
	_, err = database.Exec(insert, "u1", "fp1")
	assert.Error(t, err)

	// Same fingerprint for another user is fine.
	_, err = database.Exec(insert, "u2", "fp1")
	assert.NoError(t, err)
}
