package parser

// Step is one host-defined unit of a scenario. Eval mutates the context and
// reports whether the step passed. The pointer must not be retained after
// Eval returns.
type Step[C any] interface {
	Eval(ctx *C) bool
}

// StepFunc adapts an ordinary function to Step.
type StepFunc[C any] func(ctx *C) bool

func (f StepFunc[C]) Eval(ctx *C) bool { return f(ctx) }

// Producer parses the text following a Given, When or Then keyword into a
// Step. It must advance to the end of the line; the grammar consumes the
// terminator itself.
type Producer[C any] = Parser[Step[C]]

// Produce lifts a parser of a concrete step type into a Producer.
func Produce[C any, S Step[C]](p Parser[S]) Producer[C] {
	return Map(p, func(s S) Step[C] { return s })
}

// Producers bundles the three step producers a grammar is built from.
type Producers[C any] struct {
	Given Producer[C]
	When  Producer[C]
	Then  Producer[C]
}
