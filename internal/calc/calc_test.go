package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/gwt/parser"
	"github.com/chriserin/gwt/runner"
)

const arithmetic = `Feature: RPN Calculator Arithmetic
The calculator supports basic addition, subtraction, multiplication, and
division operations.

Scenario: basic addition
Given a fresh calculator
When I press 1
And I press enter
And I press 1
And I press plus
Then the display should read 2

Scenario: multi-digit subtraction
Given a fresh calculator
When I press 4
And I press 2
And I press enter
And I press 7
And I press minus
Then the display should read 35

Scenario: multiplication then division
When I press 6
And I press enter
And I press 7
And I press times
And I press 2
And I press divide
Then the display should read 21
`

func TestCalculator_Scenarios(t *testing.T) {
	f, err := parser.Parse(arithmetic, Producers())
	require.NoError(t, err)
	assert.Equal(t, "RPN Calculator Arithmetic", f.Name)
	assert.Equal(t, "The calculator supports basic addition, subtraction, multiplication, and\ndivision operations.", f.Comment)

	results := runner.Run(f, New)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Pass, r.Name)
	}
	assert.Equal(t, []int{2}, results[0].Context.Stack)
	assert.Equal(t, []int{35}, results[1].Context.Stack)
	assert.Equal(t, []int{21}, results[2].Context.Stack)
}

func TestCalculator_BackgroundClearsEachScenario(t *testing.T) {
	src := `Feature: Background

Background:
Given a fresh calculator
When I press 9
And I press enter

Scenario: add
When I press 1
And I press plus
Then the display should read 10

Scenario: subtract
When I press 1
And I press minus
Then the display should read 8
`
	f, err := parser.Parse(src, Producers())
	require.NoError(t, err)

	results := runner.Run(f, New)
	require.Len(t, results, 2)
	assert.True(t, results[0].Pass)
	assert.True(t, results[1].Pass)
}

func TestCalculator_FailingCheck(t *testing.T) {
	src := "Feature: F\n\nScenario: wrong\nWhen I press 3\nAnd I press enter\nThen the display should read 4\n"
	f, err := parser.Parse(src, Producers())
	require.NoError(t, err)

	results := runner.Run(f, New)
	require.Len(t, results, 1)
	assert.False(t, results[0].Pass)
	require.NotNil(t, results[0].Failure)
	assert.Equal(t, "the display should read 4", results[0].Failure.Text)
	assert.Equal(t, []int{3}, results[0].Context.Stack)
}

func TestCalculator_UnknownButtonIsParseError(t *testing.T) {
	src := "Feature: F\n\nScenario: bad\nWhen I press sqrt\n"
	_, err := parser.Parse(src, Producers())
	require.Error(t, err)

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Line)
	assert.Equal(t, 14, perr.Column)
}

func TestPress(t *testing.T) {
	tests := []struct {
		name    string
		buttons []Button
		ok      bool
		stack   []int
	}{
		{"digits then enter", []Button{Number(1), Number(2), Enter}, true, []int{12}},
		{"plus with one operand", []Button{Number(1), Enter, Plus}, false, []int{1}},
		{"operator without pending digits pushes nothing", []Button{Number(3), Enter, Number(4), Enter, Plus}, true, []int{7}},
		{"divide by zero", []Button{Number(4), Enter, Number(0), Divide}, false, []int{4, 0}},
		{"enter with no digits pushes zero", []Button{Enter}, true, []int{0}},
		{"unknown button", []Button{Button(99)}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			ok := true
			for _, b := range tt.buttons {
				ok = c.Press(b)
			}
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.stack, c.Stack)
		})
	}
}

func TestButton_String(t *testing.T) {
	assert.Equal(t, "enter", Enter.String())
	assert.Equal(t, "divide", Divide.String())
	assert.Equal(t, "7", Number(7).String())
}
