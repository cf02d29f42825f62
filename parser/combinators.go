package parser

import (
	"errors"
	"regexp"
	"strings"
)

// Parser recognizes a prefix of its input and produces a value from it.
//
// A parser that fails without moving past its starting offset has not
// committed: Optional, Many and Choice treat that as "no match" and carry on.
// A failure located past the start is fatal for the enclosing construct.
type Parser[T any] func(in Input) (T, Input, error)

// Literal matches s exactly.
func Literal(s string) Parser[string] {
	return func(in Input) (string, Input, error) {
		if !strings.HasPrefix(in.Rest(), s) {
			return "", in, in.Errorf("expected %q", s)
		}
		return s, in.Advance(len(s)), nil
	}
}

// Regexp matches re at the cursor, within the current line, and returns the
// full match followed by its submatches.
func Regexp(re *regexp.Regexp) Parser[[]string] {
	return func(in Input) ([]string, Input, error) {
		line := in.currentLine()
		loc := re.FindStringSubmatchIndex(line)
		if loc == nil || loc[0] != 0 {
			return nil, in, in.Errorf("expected text matching %s", re)
		}
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = line[loc[2*i]:loc[2*i+1]]
			}
		}
		return groups, in.Advance(loc[1]), nil
	}
}

// Digits matches one or more ASCII digits.
func Digits() Parser[string] {
	return func(in Input) (string, Input, error) {
		rest := in.Rest()
		n := 0
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n == 0 {
			return "", in, in.Errorf("expected digit")
		}
		return rest[:n], in.Advance(n), nil
	}
}

// Rest matches everything up to the end of the current line without
// consuming the terminator. It may match nothing.
func Rest() Parser[string] {
	return func(in Input) (string, Input, error) {
		line := in.currentLine()
		return line, in.Advance(len(line)), nil
	}
}

// Map transforms the value produced by p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) (U, Input, error) {
		v, out, err := p(in)
		if err != nil {
			var zero U
			return zero, in, err
		}
		return f(v), out, nil
	}
}

// TryMap transforms the value produced by p with a function that may reject
// it. A rejection is reported at the position where p started.
func TryMap[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(in Input) (U, Input, error) {
		var zero U
		v, out, err := p(in)
		if err != nil {
			return zero, in, err
		}
		u, err := f(v)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				return zero, in, perr
			}
			return zero, in, in.Errorf("%v", err)
		}
		return u, out, nil
	}
}

// Choice tries each parser in order and returns the first success. It stops
// at the first committed failure.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var zero T
		var expected []string
		for _, p := range ps {
			v, out, err := p(in)
			if err == nil {
				return v, out, nil
			}
			if committed(err, in) {
				return zero, in, err
			}
			expected = append(expected, errMessage(err))
		}
		if len(expected) == 0 {
			return zero, in, in.Errorf("no alternatives")
		}
		return zero, in, in.Errorf("%s", strings.Join(expected, " or "))
	}
}

// Try rewinds a committed failure of p to p's starting position so that the
// enclosing Choice, Optional or Many may try something else.
func Try[T any](p Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, out, err := p(in)
		if err != nil {
			var zero T
			return zero, in, in.Errorf("%s", errMessage(err))
		}
		return v, out, nil
	}
}

// Optional returns fallback when p fails without committing.
func Optional[T any](p Parser[T], fallback T) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, out, err := p(in)
		if err == nil {
			return v, out, nil
		}
		if committed(err, in) {
			return fallback, in, err
		}
		return fallback, in, nil
	}
}

// Many applies p until it fails without committing.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		var vs []T
		for {
			v, out, err := p(in)
			if err != nil {
				if committed(err, in) {
					return nil, in, err
				}
				return vs, in, nil
			}
			if out.offset == in.offset {
				return nil, in, in.Errorf("repeated parser consumed no input")
			}
			vs = append(vs, v)
			in = out
		}
	}
}

// Many1 is Many requiring at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		first, out, err := p(in)
		if err != nil {
			return nil, in, err
		}
		rest, out, err := Many(p)(out)
		if err != nil {
			return nil, in, err
		}
		return append([]T{first}, rest...), out, nil
	}
}

// Preceded matches prefix then p, keeping p's value.
func Preceded[P, T any](prefix Parser[P], p Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var zero T
		_, out, err := prefix(in)
		if err != nil {
			return zero, in, err
		}
		v, out, err := p(out)
		if err != nil {
			return zero, in, err
		}
		return v, out, nil
	}
}

// Terminated matches p then suffix, keeping p's value.
func Terminated[T, S any](p Parser[T], suffix Parser[S]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var zero T
		v, out, err := p(in)
		if err != nil {
			return zero, in, err
		}
		_, out, err = suffix(out)
		if err != nil {
			return zero, in, err
		}
		return v, out, nil
	}
}

// Run applies p to src and requires it to consume everything.
func Run[T any](p Parser[T], src string) (T, error) {
	v, out, err := p(NewInput(src))
	if err != nil {
		var zero T
		return zero, err
	}
	if !out.AtEOF() {
		var zero T
		return zero, out.Errorf("unexpected %q", firstLine(out))
	}
	return v, nil
}

func errMessage(err error) string {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Message
	}
	return err.Error()
}

func firstLine(in Input) string {
	line := in.currentLine()
	if len(line) > 40 {
		line = line[:40] + "..."
	}
	return line
}
