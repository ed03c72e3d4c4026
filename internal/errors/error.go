package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Category groups error codes.
type Category string

const (
	CategoryRuntime Category = "runtime"
	CategoryRender  Category = "render"
	CategoryTree    Category = "tree"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
)

// Location is a position in a source file. Line and Column are 1-based.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// String returns "file:line:column", or "file:line" without a column.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Error is a coded error with optional location and hint.
type Error struct {
	// Code is the registered code (e.g. "HXO-E001"). Empty for ad-hoc errors.
	Code string

	Category Category

	// Message is a short description.
	Message string

	// Detail is a longer explanation.
	Detail string

	Location *Location

	// Context holds the source lines around Location, first line first.
	Context []string

	// contextStart is the line number of Context[0].
	contextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying cause.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithLocation sets the source location without context lines.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	return e
}

// WithOffset sets the location from a byte offset into src, as reported by
// encoding/json, and captures the surrounding lines.
func (e *Error) WithOffset(file string, src []byte, offset int64) *Error {
	if offset < 0 || offset > int64(len(src)) {
		return e
	}
	before := src[:offset]
	line := strings.Count(string(before), "\n") + 1
	col := int(offset) - strings.LastIndexByte(string(before), '\n')
	e.Location = &Location{File: file, Line: line, Column: col}
	e.Context, e.contextStart = contextLines(strings.Split(string(src), "\n"), line, 2)
	return e
}

// WithSuggestion sets the hint.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail sets the longer explanation.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap sets the underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// contextLines returns up to radius lines on each side of target (1-based)
// and the line number of the first returned line.
func contextLines(lines []string, target, radius int) ([]string, int) {
	if target < 1 || target > len(lines) {
		return nil, 0
	}
	start := max(target-radius, 1)
	end := min(target+radius, len(lines))
	return lines[start-1 : end], start
}

// New creates an Error from a registered code.
func New(code string) *Error {
	t, ok := registry[code]
	if !ok {
		return &Error{Code: code, Message: "Unknown error"}
	}
	return &Error{
		Code:     code,
		Category: t.Category,
		Message:  t.Message,
		Detail:   t.Detail,
	}
}

// Newf creates an uncoded Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError returns the *Error in err's chain, or wraps err in a new Error
// with code. A nil err returns nil.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return New(code).Wrap(err)
}
