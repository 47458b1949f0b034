package ast

import (
	"github.com/kconf-lang/kconfparse/parser/errors"
	"github.com/kconf-lang/kconfparse/parser/grammar"
	"github.com/kconf-lang/kconfparse/parser/strlit"
)

// The conversions below mirror the grammar one production at a time.
// Each checks that the node it received is of the expected rule before
// consuming children in grammar order. The grammar already enforces
// shape, so a failed check indicates a grammar/builder mismatch; it is
// still reported as a located error rather than a panic.

// FileFromParse converts the root parse node into a File.
func FileFromParse(node *grammar.File) (*File, error) {
	if node == nil {
		return nil, errors.New(errors.Shape, errors.ErrUnexpectedRule,
			errors.SourceLocation{}, "not a file: nil parse node")
	}

	file := &File{
		Blocks:   make([]TopLevel, 0, len(node.Blocks)),
		Location: grammar.Location(node.Pos, node.EndPos.Offset-node.Pos.Offset),
	}
	for _, block := range node.Blocks {
		b, err := topLevelFromParse(block)
		if err != nil {
			return nil, err
		}
		file.Blocks = append(file.Blocks, b)
	}

	return file, nil
}

// topLevelFromParse dispatches a top_level node to its concrete variant.
func topLevelFromParse(node *grammar.TopLevel) (TopLevel, error) {
	if node == nil {
		return nil, errors.New(errors.Shape, errors.ErrUnexpectedRule,
			errors.SourceLocation{}, "not a top-level block: nil parse node")
	}
	if node.Source == nil {
		return nil, errors.New(errors.Shape, errors.ErrUnexpectedRule,
			grammar.Location(node.Pos, node.EndPos.Offset-node.Pos.Offset),
			"not a top-level block: no source directive")
	}

	return DirectiveFromParse(node.Source)
}

// DirectiveFromParse converts a source_directive node. The grammar
// admits exactly a keyword child followed by a string child, in that
// order.
func DirectiveFromParse(node *grammar.SourceDirective) (*SourceDirective, error) {
	if node == nil {
		return nil, errors.New(errors.Shape, errors.ErrUnexpectedRule,
			errors.SourceLocation{}, "not a source directive: nil parse node")
	}

	loc := grammar.Location(node.Pos, node.EndPos.Offset-node.Pos.Offset)
	st, err := sourceTypeFromKeyword(node.Keyword, loc)
	if err != nil {
		return nil, err
	}

	if node.Str == nil {
		return nil, errors.New(errors.Shape, errors.ErrUnexpectedRule, loc,
			"not a source directive: missing string literal")
	}
	glob, err := strlit.Decode(node.Str.Raw, grammar.Location(node.Str.Pos, len(node.Str.Raw)))
	if err != nil {
		return nil, err
	}

	return &SourceDirective{
		Type:         st,
		FilenameGlob: glob,
		Location:     loc,
	}, nil
}

// sourceTypeFromKeyword dispatches on which of the four keyword
// alternatives matched.
func sourceTypeFromKeyword(keyword string, loc errors.SourceLocation) (SourceType, error) {
	switch keyword {
	case "source":
		return Source, nil
	case "rsource":
		return RSource, nil
	case "osource":
		return OSource, nil
	case "orsource":
		return ORSource, nil
	default:
		return 0, errors.New(errors.Shape, errors.ErrUnknownSourceType, loc,
			"not a source token: %q", keyword)
	}
}
