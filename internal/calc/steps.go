package calc

import (
	"strconv"

	"github.com/chriserin/gwt/parser"
)

type Clear struct{}

func (Clear) Eval(c *Calculator) bool {
	c.Clear()
	return true
}

type Press struct {
	Button Button
}

func (s Press) Eval(c *Calculator) bool {
	return c.Press(s.Button)
}

type CheckDisplay struct {
	Expected string
}

func (s CheckDisplay) Eval(c *Calculator) bool {
	n, ok := c.Display()
	return ok && strconv.Itoa(n) == s.Expected
}

func button(name string, b Button) parser.Parser[Button] {
	return parser.Map(parser.Literal(name), func(string) Button { return b })
}

func digit() parser.Parser[Button] {
	return func(in parser.Input) (Button, parser.Input, error) {
		rest := in.Rest()
		if rest == "" || rest[0] < '0' || rest[0] > '9' {
			return 0, in, in.Errorf("expected digit")
		}
		return Number(int(rest[0] - '0')), in.Advance(1), nil
	}
}

// Producers returns the step producers understood by the calculator:
//
//	Given a fresh calculator
//	When I press <0-9|enter|plus|minus|times|divide>
//	Then the display should read <digits>
func Producers() parser.Producers[Calculator] {
	fresh := parser.Map(parser.Literal("a fresh calculator"), func(string) Clear { return Clear{} })

	press := parser.Map(parser.Preceded(parser.Literal("I press "), parser.Choice(
		button("enter", Enter),
		button("plus", Plus),
		button("minus", Minus),
		button("times", Times),
		button("divide", Divide),
		digit(),
	)), func(b Button) Press { return Press{Button: b} })

	check := parser.Map(parser.Preceded(parser.Literal("the display should read "), parser.Digits()),
		func(s string) CheckDisplay { return CheckDisplay{Expected: s} })

	return parser.Producers[Calculator]{
		Given: parser.Produce[Calculator](fresh),
		When:  parser.Produce[Calculator](press),
		Then:  parser.Produce[Calculator](check),
	}
}
