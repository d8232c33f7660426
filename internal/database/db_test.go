package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath_UsesXDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "issuetracker", "issues.db"), path)
}

func TestInitDB_EmptyDSNUsesDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	db, err := InitDB(context.Background(), "")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.FileExists(t, filepath.Join(dir, "issuetracker", "issues.db"))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	require.NoError(t, runMigrations(context.Background(), db))
	require.NoError(t, runMigrations(context.Background(), db))
}

func TestIsMemoryDSN(t *testing.T) {
	assert.True(t, isMemoryDSN(":memory:"))
	assert.True(t, isMemoryDSN("file:issues?mode=memory&cache=shared"))
	assert.False(t, isMemoryDSN("/tmp/issues.db"))
}
