// Package calc is an RPN calculator host for feature files: the calculator is
// the test context and the steps press its buttons.
package calc

import "fmt"

type Button int

const (
	Enter Button = iota + 10
	Plus
	Minus
	Times
	Divide
)

// Number returns the button for digit d.
func Number(d int) Button { return Button(d) }

func (b Button) String() string {
	switch b {
	case Enter:
		return "enter"
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	case Times:
		return "times"
	case Divide:
		return "divide"
	}
	return fmt.Sprintf("%d", int(b))
}

type Calculator struct {
	Current []int // digits being entered
	Stack   []int
}

func New() Calculator {
	return Calculator{}
}

// Press applies a button and reports whether it was valid in the current
// state.
func (c *Calculator) Press(b Button) bool {
	switch {
	case b >= 0 && b <= 9:
		c.Current = append(c.Current, int(b))
		return true
	case b == Enter:
		c.enter()
		return true
	case b >= Plus && b <= Divide:
		return c.apply(b)
	}
	return false
}

// Display is what the calculator shows: the top of the stack.
func (c *Calculator) Display() (int, bool) {
	if len(c.Stack) == 0 {
		return 0, false
	}
	return c.Stack[len(c.Stack)-1], true
}

func (c *Calculator) Clear() {
	c.Current = nil
	c.Stack = nil
}

func (c *Calculator) enter() {
	n := 0
	for _, d := range c.Current {
		n = n*10 + d
	}
	c.Stack = append(c.Stack, n)
	c.Current = nil
}

// apply enters pending digits, if any, then combines the top two values.
func (c *Calculator) apply(op Button) bool {
	if len(c.Current) > 0 {
		c.enter()
	}
	if len(c.Stack) < 2 {
		return false
	}
	a, b := c.Stack[len(c.Stack)-2], c.Stack[len(c.Stack)-1]
	var r int
	switch op {
	case Plus:
		r = a + b
	case Minus:
		r = a - b
	case Times:
		r = a * b
	case Divide:
		if b == 0 {
			return false
		}
		r = a / b
	}
	c.Stack = append(c.Stack[:len(c.Stack)-2], r)
	return true
}
