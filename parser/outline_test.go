package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	f := parseSample(t, `Feature: outlined
a comment

Background: setup
Given G1

Scenario: first
When W2
And W3
Then T4
`)

	assert.Equal(t, &Outline{
		Name:    "outlined",
		Comment: "a comment",
		Background: &CaseOutline{
			Keyword: "Background",
			Name:    "setup",
			Line:    4,
			Steps:   []StepOutline{{Keyword: "Given", Category: Given, Text: "G1", Line: 5}},
		},
		Scenarios: []CaseOutline{{
			Keyword: "Scenario",
			Name:    "first",
			Line:    7,
			Steps: []StepOutline{
				{Keyword: "When", Category: When, Text: "W2", Line: 8},
				{Keyword: "And", Category: When, Text: "W3", Line: 9},
				{Keyword: "Then", Category: Then, Text: "T4", Line: 10},
			},
		}},
	}, Summarize(f))
}

func TestSummarize_NoBackground(t *testing.T) {
	f := parseSample(t, "Feature: bare\n\nScenario:\n")

	o := Summarize(f)
	assert.Nil(t, o.Background)
	assert.Equal(t, []CaseOutline{{Keyword: "Scenario", Line: 3}}, o.Scenarios)
}
