package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chriserin/gwt/parser"
)

func TestResultLine(t *testing.T) {
	var buf bytes.Buffer
	ResultLine(&buf, true, "adds", "ignored")
	ResultLine(&buf, false, "subtracts", "Then the display should read 4 (line 9)")
	ResultLine(&buf, true, "", "")

	out := buf.String()
	assert.Contains(t, out, "pass  adds\n")
	assert.NotContains(t, out, "ignored")
	assert.Contains(t, out, "FAIL  subtracts\n")
	assert.Contains(t, out, "Then the display should read 4 (line 9)")
	assert.Contains(t, out, "(unnamed)")
}

func TestSummaryLine(t *testing.T) {
	var buf bytes.Buffer
	SummaryLine(&buf, 2, 1)
	SummaryLine(&buf, 1, 0)

	assert.Equal(t, "3 scenarios, 2 passed, 1 failed\n1 scenario, 1 passed, 0 failed\n", buf.String())
}

func TestParseErrorLine(t *testing.T) {
	var buf bytes.Buffer
	ParseErrorLine(&buf, "features/bad.feature", errors.New("line 1, column 1: expected \"Feature: \""))

	assert.Contains(t, buf.String(), "features/bad.feature: line 1, column 1")
}

func TestShowOutline(t *testing.T) {
	var buf bytes.Buffer
	ShowOutline(&buf, &parser.Outline{
		Name:    "Calc",
		Comment: "adds numbers",
		Background: &parser.CaseOutline{
			Keyword: "Background",
			Line:    4,
			Steps:   []parser.StepOutline{{Keyword: "Given", Text: "a fresh calculator", Line: 5}},
		},
		Scenarios: []parser.CaseOutline{{
			Keyword: "Scenario",
			Name:    "one",
			Line:    7,
			Steps: []parser.StepOutline{
				{Keyword: "When", Text: "I press 1", Line: 8},
				{Keyword: "And", Text: "I press enter", Line: 9},
			},
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "Feature: Calc")
	assert.Contains(t, out, "adds numbers")
	assert.Contains(t, out, "Background:  line 4")
	assert.Contains(t, out, "Given a fresh calculator  line 5")
	assert.Contains(t, out, "Scenario: one  line 7")
	assert.Contains(t, out, "And   I press enter  line 9")
}

func TestListRow(t *testing.T) {
	var buf bytes.Buffer
	ListRow(&buf, "1234abcd", "2026-10-19 12:00", "calc.feature", "Calc", 2, 1, 14, 6)

	assert.Equal(t, "1234abcd  2026-10-19 12:00  calc.feature    Calc    FAIL  2/3\n", buf.String())
}

func TestStatusRow(t *testing.T) {
	var buf bytes.Buffer
	StatusRow(&buf, "features/a.feature", 2, 0)
	StatusRow(&buf, "features/b.feature", 1, 1)

	assert.Equal(t, "  pass  features/a.feature  2/2\n  FAIL  features/b.feature  1/2\n", buf.String())
}
