// Package runner evaluates parsed features against a host context.
package runner

import (
	"io"
	"log/slog"

	"github.com/chriserin/gwt/parser"
)

// BackgroundName is the case name reported when a scenario's Background
// failed before the scenario itself could run.
const BackgroundName = "<Background>"

type StepFailure struct {
	Keyword    string
	Text       string
	Line       int
	Background bool
}

type TestResult[C any] struct {
	Name      string
	Pass      bool
	Context   C
	Attempted int          // steps run, Background steps included
	Failure   *StepFailure // nil when Pass is true
}

type options struct {
	logger *slog.Logger
}

type Option func(*options)

// WithLogger makes the runner emit debug records for every case and step.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

type Runner[C any] struct {
	newContext func() C
	logger     *slog.Logger
}

// New returns a Runner that builds a fresh context with newContext for every
// scenario.
func New[C any](newContext func() C, opts ...Option) *Runner[C] {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner[C]{newContext: newContext, logger: o.logger}
}

// Run evaluates f with a default Runner.
func Run[C any](f *parser.Feature[C], newContext func() C) []TestResult[C] {
	return New(newContext).Run(f)
}

// Run evaluates every scenario of f in source order and returns one result
// per scenario. A failing scenario never affects the others.
func (r *Runner[C]) Run(f *parser.Feature[C]) []TestResult[C] {
	results := make([]TestResult[C], 0, len(f.Cases))
	for i := range f.Cases {
		results = append(results, r.RunCase(f, i))
	}
	return results
}

// RunCase evaluates the i-th scenario of f, preceded by its own Background
// attempt. It touches no state shared with other cases, so callers may run
// cases concurrently.
func (r *Runner[C]) RunCase(f *parser.Feature[C], i int) TestResult[C] {
	tc := f.Cases[i]
	log := r.logger.With(slog.String("feature", f.Name), slog.String("scenario", tc.Name))

	res := TestResult[C]{Name: tc.Name}
	ctx := r.newContext()

	if f.Background != nil {
		var ok bool
		var n int
		var failed *parser.StepDef[C]
		ctx, ok, n, failed = r.evalCase(log, f.Background, ctx)
		res.Attempted += n
		if !ok {
			log.Debug("background failed", slog.Int("line", failed.Line))
			res.Name = BackgroundName
			res.Context = ctx
			res.Failure = failure(failed, true)
			return res
		}
	}

	ctx, ok, n, failed := r.evalCase(log, &tc, ctx)
	res.Attempted += n
	res.Pass = ok
	res.Context = ctx
	if !ok {
		res.Failure = failure(failed, false)
	}
	log.Debug("scenario finished", slog.Bool("pass", ok), slog.Int("steps", res.Attempted))
	return res
}

// evalCase runs the steps of tc against ctx in order, stopping at the first
// failure, and hands ctx back with the outcome.
func (r *Runner[C]) evalCase(log *slog.Logger, tc *parser.TestCase[C], ctx C) (C, bool, int, *parser.StepDef[C]) {
	for i := range tc.Steps {
		step := &tc.Steps[i]
		ok := step.Step.Eval(&ctx)
		log.Debug("step",
			slog.String("case", tc.Kind.Keyword()),
			slog.String("step", step.Keyword+" "+step.Text),
			slog.Int("line", step.Line),
			slog.Bool("pass", ok))
		if !ok {
			return ctx, false, i + 1, step
		}
	}
	return ctx, true, len(tc.Steps), nil
}

func failure[C any](def *parser.StepDef[C], background bool) *StepFailure {
	return &StepFailure{
		Keyword:    def.Keyword,
		Text:       def.Text,
		Line:       def.Line,
		Background: background,
	}
}

// Passed reports whether every result passed.
func Passed[C any](results []TestResult[C]) bool {
	for _, r := range results {
		if !r.Pass {
			return false
		}
	}
	return true
}

// Count returns how many results passed and failed.
func Count[C any](results []TestResult[C]) (passed, failed int) {
	for _, r := range results {
		if r.Pass {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
