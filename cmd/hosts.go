package cmd

import (
	"fmt"
	"log/slog"

	"github.com/chriserin/gwt/internal/calc"
	"github.com/chriserin/gwt/parser"
	"github.com/chriserin/gwt/runner"
)

// caseResult is a TestResult with the host context dropped, so commands can
// report on any host.
type caseResult struct {
	Name    string
	Pass    bool
	Failure *runner.StepFailure
}

type host interface {
	Outline(src string) (*parser.Outline, error)
	Run(src string, logger *slog.Logger) (*parser.Outline, []caseResult, error)
}

type stepHost[C any] struct {
	producers  parser.Producers[C]
	newContext func() C
}

func (h stepHost[C]) Outline(src string) (*parser.Outline, error) {
	f, err := parser.Parse(src, h.producers)
	if err != nil {
		return nil, err
	}
	return parser.Summarize(f), nil
}

func (h stepHost[C]) Run(src string, logger *slog.Logger) (*parser.Outline, []caseResult, error) {
	f, err := parser.Parse(src, h.producers)
	if err != nil {
		return nil, nil, err
	}

	results := runner.New(h.newContext, runner.WithLogger(logger)).Run(f)
	out := make([]caseResult, len(results))
	for i, r := range results {
		out[i] = caseResult{Name: r.Name, Pass: r.Pass, Failure: r.Failure}
	}
	return parser.Summarize(f), out, nil
}

func lookupHost(name string) (host, error) {
	switch name {
	case "rpn":
		return stepHost[calc.Calculator]{producers: calc.Producers(), newContext: calc.New}, nil
	}
	return nil, fmt.Errorf("unknown host %q", name)
}

func describeFailure(f *runner.StepFailure) string {
	if f == nil {
		return ""
	}
	s := fmt.Sprintf("%s %s (line %d)", f.Keyword, f.Text, f.Line)
	if f.Background {
		s = "Background: " + s
	}
	return s
}
