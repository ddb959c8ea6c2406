package printf

import "fmt"

// ParseError reports a malformed format string.
type ParseError struct {
	Offset int    // byte offset of the problem in the format string
	Msg    string //
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("format string offset %d: %s", e.Offset, e.Msg)
}

// ArgError reports a value that a placeholder cannot render.
type ArgError struct {
	Placeholder string // the placeholder as written, e.g. "%02d"
	Arg         int    // 0-based index of the offending argument
	Msg         string //
}

// Error implements the error interface.
func (e *ArgError) Error() string {
	return fmt.Sprintf("placeholder %s (argument %d): %s", e.Placeholder, e.Arg+1, e.Msg)
}

// MissingArgError reports a placeholder with no corresponding argument.
type MissingArgError struct {
	Placeholder string // the placeholder as written
	Arg         int    // 0-based index of the missing argument
}

// Error implements the error interface.
func (e *MissingArgError) Error() string {
	return fmt.Sprintf("placeholder %s needs argument %d, but the argument list is shorter", e.Placeholder, e.Arg+1)
}
