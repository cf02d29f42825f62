package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/db"
)

func latestRunID(t *testing.T) string {
	t.Helper()
	sqlDB, err := db.Open("features/gwt.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	runs, err := db.ListRuns(context.Background(), sqlDB, false)
	require.NoError(t, err)
	require.NotEmpty(t, runs)
	return runs[0].ID
}

func TestResults_ShowsRecordedScenarios(t *testing.T) {
	inTempDir(t)
	runInit(t)
	path := writeFeature(t, "subtraction.feature", failingFeature)
	runFeatures(t, path)
	id := latestRunID(t)

	var buf bytes.Buffer
	require.NoError(t, RunResults(context.Background(), &buf, config.DefaultConfig(), id[:8]))

	out := buf.String()
	assert.Contains(t, out, "Subtraction")
	assert.Contains(t, out, "FAIL  wrong answer")
	assert.Contains(t, out, "Then the display should read 3 (line 9)")
	assert.Contains(t, out, "1 scenario, 0 passed, 1 failed")
}

func TestResults_UnknownRun(t *testing.T) {
	inTempDir(t)
	runInit(t)

	err := RunResults(context.Background(), &bytes.Buffer{}, config.DefaultConfig(), "deadbeef")
	assert.EqualError(t, err, "run deadbeef not found")
}

func TestResults_RequiresInit(t *testing.T) {
	inTempDir(t)

	err := RunResults(context.Background(), &bytes.Buffer{}, config.DefaultConfig(), "deadbeef")
	assert.EqualError(t, err, "run `gwt init` first")
}
