// Package parser parses the source-inclusion subset of the Kconfig
// configuration language: a sequence of top-level source directives
// (source, rsource, osource, orsource), each followed by a
// double-quoted filename glob.
//
// Parsing is a pure transform from text to tree. It performs no I/O on
// the directives themselves; locating, glob-expanding, and recursively
// reading the referenced files is the resolver's job.
package parser

import (
	"os"

	"github.com/kconf-lang/kconfparse/parser/ast"
	"github.com/kconf-lang/kconfparse/parser/grammar"
)

// Parse parses src starting from the file rule and builds the typed
// AST. filename is used for error locations only. On failure the error
// is an errors.ParseError carrying the offending span; no partial AST
// is returned.
func Parse(filename, src string) (*ast.File, error) {
	node, err := grammar.Parse(filename, src)
	if err != nil {
		return nil, err
	}
	return ast.FileFromParse(node)
}

// ParseFile reads path from disk and parses its contents.
func ParseFile(path string) (*ast.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}
