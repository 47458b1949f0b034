// Package grammar defines the formal grammar for the source-inclusion
// subset of the Kconfig language and produces a generic, rule-tagged
// parse layer over the input text.
//
// The grammar is declarative: terminals are the token rules below,
// productions are the struct tags on the parse node types. The parse
// layer carries exact positions for every node; converting it into the
// typed AST is the job of the ast package.
package grammar

import (
	stderrors "errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/kconf-lang/kconfparse/parser/errors"
)

// Token rules. Keyword carries a trailing word boundary so that
// "sourcex" does not lex as the keyword "source" followed by garbage.
// String requires every backslash to begin a two-character escape unit,
// which makes an unterminated literal (including one ending in a lone
// backslash before the closing quote) a lexical error.
var tokens = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Keyword", Pattern: `\b(?:orsource|osource|rsource|source)\b`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// File is the root parse node: file → top_level*.
type File struct {
	Pos    lexer.Position
	Blocks []*TopLevel `parser:"@@*"`
	EndPos lexer.Position
}

// TopLevel is the alternation point for top-level blocks:
// top_level → source_directive. Source directives are the only variant
// today; new directive kinds become new alternates here.
type TopLevel struct {
	Pos    lexer.Position
	Source *SourceDirective `parser:"@@"`
	EndPos lexer.Position
}

// SourceDirective is the parse node for source_directive → Keyword string.
// Keyword holds the matched keyword text.
type SourceDirective struct {
	Pos     lexer.Position
	Keyword string     `parser:"@Keyword"`
	Str     *StringLit `parser:"@@"`
	EndPos  lexer.Position
}

// StringLit is the parse node for a double-quoted string literal. Raw
// includes both quote characters.
type StringLit struct {
	Pos    lexer.Position
	Raw    string `parser:"@String"`
	EndPos lexer.Position
}

var fileParser = participle.MustBuild[File](
	participle.Lexer(tokens),
	participle.Elide("Whitespace", "Comment"),
)

var directiveParser = participle.MustBuild[SourceDirective](
	participle.Lexer(tokens),
	participle.Elide("Whitespace", "Comment"),
)

// Parse parses src starting from the file rule. It accepts zero or more
// directives separated by arbitrary whitespace; an empty or
// whitespace-only buffer yields a File with no blocks. On failure the
// returned error is an errors.ParseError locating the offending input.
func Parse(filename, src string) (*File, error) {
	file, err := fileParser.ParseString(filename, src)
	if err != nil {
		return nil, syntaxError(src, err)
	}
	return file, nil
}

// ParseDirective parses src starting from the source_directive rule.
func ParseDirective(filename, src string) (*SourceDirective, error) {
	dir, err := directiveParser.ParseString(filename, src)
	if err != nil {
		return nil, syntaxError(src, err)
	}
	return dir, nil
}

// syntaxError converts an engine error into a located ParseError,
// preserving the original position.
func syntaxError(src string, err error) error {
	var perr participle.Error
	if !stderrors.As(err, &perr) {
		return err
	}

	pos := perr.Position()
	code := errors.ErrSyntax
	if pos.Offset >= 0 && pos.Offset < len(src) && src[pos.Offset] == '"' {
		code = errors.ErrUnterminatedString
	}

	return errors.New(errors.Syntax, code, errors.SourceLocation{
		File:   pos.Filename,
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
	}, "%s", perr.Message())
}

// Location converts an engine position into a SourceLocation spanning
// length bytes.
func Location(pos lexer.Position, length int) errors.SourceLocation {
	return errors.SourceLocation{
		File:   pos.Filename,
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
		Length: length,
	}
}
