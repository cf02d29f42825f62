package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Input is an immutable cursor over feature text. Parsers receive an Input
// and return the Input positioned after whatever they consumed.
type Input struct {
	src    string
	offset int
	line   int
	column int
}

// NewInput returns a cursor at the start of src.
func NewInput(src string) Input {
	return Input{src: src, line: 1, column: 1}
}

// Rest returns the unconsumed text.
func (in Input) Rest() string {
	return in.src[in.offset:]
}

// AtEOF reports whether all input has been consumed.
func (in Input) AtEOF() bool {
	return in.offset >= len(in.src)
}

// Offset is the byte offset of the cursor.
func (in Input) Offset() int { return in.offset }

// Line is the 1-based line of the cursor.
func (in Input) Line() int { return in.line }

// Column is the 1-based byte column of the cursor.
func (in Input) Column() int { return in.column }

// Advance consumes n bytes and returns the new cursor.
func (in Input) Advance(n int) Input {
	if n > len(in.src)-in.offset {
		n = len(in.src) - in.offset
	}
	consumed := in.src[in.offset : in.offset+n]
	in.offset += n
	if nl := strings.Count(consumed, "\n"); nl > 0 {
		in.line += nl
		in.column = n - strings.LastIndexByte(consumed, '\n')
	} else {
		in.column += n
	}
	return in
}

// Errorf builds a ParseError located at the cursor.
func (in Input) Errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Line:    in.line,
		Column:  in.column,
		Offset:  in.offset,
		Message: fmt.Sprintf(format, args...),
	}
}

// currentLine returns the text from the cursor to the end of its line,
// excluding the terminator.
func (in Input) currentLine() string {
	rest := in.Rest()
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSuffix(rest, "\r")
}

type ParseError struct {
	Line    int
	Column  int
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// committed reports whether a failure happened past the point where the
// failing parser started, meaning alternatives must not be tried.
func committed(err error, start Input) bool {
	var perr *ParseError
	if !errors.As(err, &perr) {
		return true
	}
	return perr.Offset > start.offset
}
