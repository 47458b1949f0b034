package errors

import "fmt"

// Kind classifies a parse error by the pipeline stage that produced it.
type Kind int

const (
	// Syntax means the input did not match the grammar.
	Syntax Kind = iota
	// Shape means a parse node of an unexpected rule reached a conversion.
	// Unreachable for a well-formed grammar, but checked defensively.
	Shape
	// Decode means a string literal contained a malformed escape sequence.
	Decode
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax"
	case Shape:
		return "shape"
	case Decode:
		return "decode"
	default:
		return "unknown"
	}
}

// SourceLocation represents a location in source code
type SourceLocation struct {
	File   string `json:"file"`
	Offset int    `json:"offset"` // Byte offset in the input buffer
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Length int    `json:"length"` // For multi-character tokens
}

// String renders the location as file:line:col
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// ParseError represents a located error from any stage of the parse
// pipeline. The first error terminates the parse; no partial AST is
// produced alongside one.
type ParseError struct {
	Kind     Kind           `json:"kind"`
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Location SourceLocation `json:"location"`
}

// Error implements the error interface
func (e ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		e.Location.File,
		e.Location.Line,
		e.Location.Column,
		e.Code,
		e.Message)
}

// New creates a ParseError at the given location.
func New(kind Kind, code string, loc SourceLocation, format string, args ...any) ParseError {
	return ParseError{
		Kind:     kind,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}
