package ecma

import "fmt"

// Error is a lexical error with enough context to render a diagnostic: the
// message, the 1-based line and column, and the source line it occurred on
// with a caret underneath the offending column.
type Error struct {
	Message string
	Line    int
	Column  int
	Context string
}

// NewError builds an Error by locating offset within src.
func NewError(msg string, src []rune, offset int) *Error {
	line, column, context, _ := Locate(src, offset)
	return &Error{
		Message: msg,
		Line:    line,
		Column:  column,
		Context: context,
	}
}

// Position returns the line, column, and context of the error.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}
