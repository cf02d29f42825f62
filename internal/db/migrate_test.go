package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRawDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func withMigrations(t *testing.T, migrations []string) {
	t.Helper()
	orig := All
	All = migrations
	t.Cleanup(func() { All = orig })
}

func schemaVersionOf(t *testing.T, db *sql.DB) int {
	t.Helper()
	var version int
	require.NoError(t, db.QueryRow(`SELECT version FROM schema_version`).Scan(&version))
	return version
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&count))
	return count == 1
}

func TestMigrate_CreatesSchemaVersionTable(t *testing.T) {
	db := openRawDB(t)
	require.NoError(t, Migrate(context.Background(), db))

	assert.True(t, tableExists(t, db, "schema_version"))
}

func TestMigrate_EmptyListLeavesVersionZero(t *testing.T) {
	withMigrations(t, nil)
	db := openRawDB(t)
	require.NoError(t, Migrate(context.Background(), db))

	assert.Equal(t, 0, schemaVersionOf(t, db))
}

func TestMigrate_CreatesHistoryTables(t *testing.T) {
	db := openRawDB(t)
	require.NoError(t, Migrate(context.Background(), db))

	assert.True(t, tableExists(t, db, "runs"))
	assert.True(t, tableExists(t, db, "results"))
	assert.Equal(t, len(All), schemaVersionOf(t, db))
}

func TestMigrate_RunsPendingMigrations(t *testing.T) {
	withMigrations(t, []string{
		`CREATE TABLE test_one (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE test_two (id INTEGER PRIMARY KEY)`,
	})

	db := openRawDB(t)
	require.NoError(t, Migrate(context.Background(), db))

	assert.Equal(t, 2, schemaVersionOf(t, db))
	assert.True(t, tableExists(t, db, "test_one"))
	assert.True(t, tableExists(t, db, "test_two"))
}

func TestMigrate_SkipsAlreadyAppliedMigrations(t *testing.T) {
	withMigrations(t, []string{
		`CREATE TABLE test_idem (id INTEGER PRIMARY KEY)`,
	})

	db := openRawDB(t)
	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, Migrate(context.Background(), db))

	assert.Equal(t, 1, schemaVersionOf(t, db))
}

func TestMigrate_RollsBackOnFailure(t *testing.T) {
	withMigrations(t, []string{
		`CREATE TABLE test_good (id INTEGER PRIMARY KEY)`,
		`INVALID SQL STATEMENT`,
	})

	db := openRawDB(t)
	err := Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration 2 failed")

	assert.Equal(t, 1, schemaVersionOf(t, db))
}
