package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/gwt/internal/config"
)

func runShow(t *testing.T, path string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := RunShow(&buf, config.DefaultConfig(), path)
	return buf.String(), err
}

func TestShow_PrintsOutline(t *testing.T) {
	inTempDir(t)
	path := writeFeature(t, "addition.feature", passingFeature)

	out, err := runShow(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "Feature: Addition")
	assert.Contains(t, out, "Background:  line 3")
	assert.Contains(t, out, "a fresh calculator  line 4")
	assert.Contains(t, out, "Scenario: one plus one  line 6")
	assert.Contains(t, out, "the display should read 2  line 11")
	assert.Contains(t, out, "Scenario: two digits  line 13")
}

func TestShow_PrintsComment(t *testing.T) {
	inTempDir(t)
	path := writeFeature(t, "commented.feature", `Feature: Commented
Free text describing
the feature.

Scenario: empty
`)

	out, err := runShow(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Free text describing\nthe feature.\n")
	assert.Contains(t, out, "Scenario: empty  line 5")
}

func TestShow_ParseError(t *testing.T) {
	inTempDir(t)
	path := writeFeature(t, "bad.feature", "Scenario: no feature header\n")

	_, err := runShow(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing features/bad.feature: line 1, column 1")
}

func TestShow_MissingFile(t *testing.T) {
	inTempDir(t)

	_, err := runShow(t, "features/missing.feature")
	assert.ErrorContains(t, err, "reading features/missing.feature")
}
