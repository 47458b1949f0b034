// Package ast defines the typed AST for the source-inclusion subset and
// the conversions that build it from the grammar's parse layer.
package ast

import "github.com/kconf-lang/kconfparse/parser/errors"

// File is the root of the AST. Blocks appear in source order; order is
// semantically significant, since a downstream resolver processes later
// directives after earlier ones. Nodes are immutable once constructed
// and may share backing storage with the parsed input buffer.
type File struct {
	Blocks   []TopLevel
	Location errors.SourceLocation
}

// TopLevel is a top-level block. It is a closed sum type: the only
// variant today is *SourceDirective, and consumers dispatch with a type
// switch so future directive kinds are additions to the switch.
type TopLevel interface {
	topLevel()
}

// SourceType is the kind of a source directive.
type SourceType int

const (
	// Source reads the specified file(s).
	Source SourceType = iota
	// RSource reads the specified file(s) relative to the current file.
	RSource
	// OSource reads the specified file(s) if they exist.
	OSource
	// ORSource reads the specified file(s) relative to the current file,
	// if they exist.
	ORSource
)

// Optional reports whether missing targets are not an error.
func (t SourceType) Optional() bool {
	return t == OSource || t == ORSource
}

// Relative reports whether the glob is resolved relative to the
// directory of the current file rather than a fixed base directory.
func (t SourceType) Relative() bool {
	return t == RSource || t == ORSource
}

// String returns the directive keyword.
func (t SourceType) String() string {
	switch t {
	case Source:
		return "source"
	case RSource:
		return "rsource"
	case OSource:
		return "osource"
	case ORSource:
		return "orsource"
	default:
		return "unknown"
	}
}

// SourceDirective requests inclusion of the files matching FilenameGlob.
// FilenameGlob is the decoded literal content, an unresolved glob
// pattern; interpreting it against a filesystem is the caller's job.
type SourceDirective struct {
	Type         SourceType
	FilenameGlob string
	Location     errors.SourceLocation
}

func (*SourceDirective) topLevel() {}
