package parser

import "strings"

// headerPrefixes are the lines that end a free-text block even when no blank
// line separates them from it.
var headerPrefixes = []string{"Background:", "Scenario:"}

// terminator returns the length of the line terminator at the cursor, or 0.
func terminator(in Input) int {
	rest := in.Rest()
	switch {
	case strings.HasPrefix(rest, "\n"):
		return 1
	case strings.HasPrefix(rest, "\r\n"):
		return 2
	}
	return 0
}

// EndOfLine matches a line terminator or the end of input.
func EndOfLine() Parser[struct{}] {
	return func(in Input) (struct{}, Input, error) {
		if in.AtEOF() {
			return struct{}{}, in, nil
		}
		if n := terminator(in); n > 0 {
			return struct{}{}, in.Advance(n), nil
		}
		return struct{}{}, in, in.Errorf("expected end of line, found %q", firstLine(in))
	}
}

// RestOfLine returns everything up to the next terminator and consumes the
// terminator. At end of input it takes what is left.
func RestOfLine() Parser[string] {
	return Terminated(Rest(), EndOfLine())
}

// BlankLines matches one or more consecutive empty lines and returns how many
// there were.
func BlankLines() Parser[int] {
	return func(in Input) (int, Input, error) {
		count := 0
		for {
			n := terminator(in)
			if n == 0 {
				break
			}
			in = in.Advance(n)
			count++
		}
		if count == 0 {
			return 0, in, in.Errorf("expected blank line")
		}
		return count, in, nil
	}
}

// TextBlock captures consecutive non-blank lines verbatim, joined by single
// newlines. It stops before a blank line, the end of input, or a Background
// or Scenario header.
func TextBlock() Parser[string] {
	return func(in Input) (string, Input, error) {
		var lines []string
		for !in.AtEOF() && terminator(in) == 0 && !atHeader(in) {
			line, out, err := RestOfLine()(in)
			if err != nil {
				return "", in, err
			}
			lines = append(lines, line)
			in = out
		}
		return strings.Join(lines, "\n"), in, nil
	}
}

func atHeader(in Input) bool {
	for _, prefix := range headerPrefixes {
		if strings.HasPrefix(in.Rest(), prefix) {
			return true
		}
	}
	return false
}
