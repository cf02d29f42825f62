package parser

import (
	"errors"
	"strings"
)

// stepLine matches `<keyword> <step text><eol>`, delegating the step text to
// produce.
func stepLine[C any](keyword string, category Category, produce Producer[C]) Parser[StepDef[C]] {
	prefix := Literal(keyword + " ")
	return func(in Input) (StepDef[C], Input, error) {
		var def StepDef[C]
		_, out, err := prefix(in)
		if err != nil {
			return def, in, err
		}
		textStart := out
		step, out, err := produce(out)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				return def, in, perr
			}
			return def, in, textStart.Errorf("%v", err)
		}
		if step == nil {
			return def, in, textStart.Errorf("%s step produced nothing", category)
		}
		text := strings.TrimSpace(in.src[textStart.offset:out.offset])
		if _, out, err = EndOfLine()(out); err != nil {
			return def, in, err
		}
		return StepDef[C]{
			Category: category,
			Keyword:  keyword,
			Text:     text,
			Line:     in.line,
			Step:     step,
		}, out, nil
	}
}

// Block parses one `<Keyword> ` line followed by any number of `And ` lines,
// all handed to the same producer.
func Block[C any](category Category, produce Producer[C]) Parser[[]StepDef[C]] {
	first := stepLine(category.String(), category, produce)
	and := Many(stepLine("And", category, produce))
	return func(in Input) ([]StepDef[C], Input, error) {
		head, out, err := first(in)
		if err != nil {
			return nil, in, err
		}
		rest, out, err := and(out)
		if err != nil {
			return nil, in, err
		}
		return append([]StepDef[C]{head}, rest...), out, nil
	}
}

// ScenarioParser parses a Background or Scenario: a `<Keyword>:` header with
// an optional name, then optional Given, When and Then blocks in that order.
func ScenarioParser[C any](kind Kind, p Producers[C]) Parser[TestCase[C]] {
	header := Preceded(Literal(kind.Keyword()+":"), RestOfLine())
	blocks := []Parser[[]StepDef[C]]{
		Optional(Block(Given, p.Given), nil),
		Optional(Block(When, p.When), nil),
		Optional(Block(Then, p.Then), nil),
	}
	return func(in Input) (TestCase[C], Input, error) {
		tc := TestCase[C]{Kind: kind}
		name, out, err := header(in)
		if err != nil {
			return tc, in, err
		}
		tc.Name = strings.TrimSpace(name)
		tc.Line = in.line
		for _, block := range blocks {
			var steps []StepDef[C]
			steps, out, err = block(out)
			if err != nil {
				return tc, in, err
			}
			tc.Steps = append(tc.Steps, steps...)
		}
		return tc, out, nil
	}
}

// FeatureParser builds the parser for a whole feature text around the three
// host step producers.
func FeatureParser[C any](p Producers[C]) Parser[*Feature[C]] {
	leading := Optional(BlankLines(), 0)
	header := Preceded(Literal("Feature: "), RestOfLine())
	background := Optional(
		Map(Terminated(ScenarioParser(KindBackground, p), BlankLines()),
			func(tc TestCase[C]) *TestCase[C] { return &tc }),
		nil)
	scenario := ScenarioParser(KindScenario, p)

	return func(start Input) (*Feature[C], Input, error) {
		_, in, err := leading(start)
		if err != nil {
			return nil, start, err
		}
		f := &Feature[C]{}
		var name string
		if name, in, err = header(in); err != nil {
			return nil, start, err
		}
		f.Name = strings.TrimSpace(name)
		if f.Comment, in, err = TextBlock()(in); err != nil {
			return nil, start, err
		}
		if _, in, err = BlankLines()(in); err != nil {
			return nil, start, err
		}
		if f.Background, in, err = background(in); err != nil {
			return nil, start, err
		}

		tc, in, err := scenario(in)
		if err != nil {
			return nil, start, err
		}
		f.Cases = append(f.Cases, tc)
		for {
			_, next, err := BlankLines()(in)
			if err != nil {
				break
			}
			in = next
			if in.AtEOF() {
				break
			}
			if tc, in, err = scenario(in); err != nil {
				return nil, start, err
			}
			f.Cases = append(f.Cases, tc)
		}
		if !in.AtEOF() {
			return nil, start, in.Errorf("unexpected %q, expected blank line or end of input", firstLine(in))
		}
		return f, in, nil
	}
}

// Parse parses feature text into a Feature using the given step producers.
func Parse[C any](src string, p Producers[C]) (*Feature[C], error) {
	f, _, err := FeatureParser(p)(NewInput(src))
	if err != nil {
		return nil, err
	}
	return f, nil
}
