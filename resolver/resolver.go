// Package resolver interprets the source directives of a parsed file
// against a filesystem: it expands filename globs, reads the matched
// files, and recursively parses them, splicing the results into a flat
// list in inclusion order.
package resolver

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"github.com/kconf-lang/kconfparse/parser"
	"github.com/kconf-lang/kconfparse/parser/ast"
)

// ResolvedFile is one file reached during resolution.
type ResolvedFile struct {
	Path string
	File *ast.File
}

// Resolver resolves source directives against a billy filesystem.
// Non-relative directives are interpreted against the fixed base
// directory, relative ones against the directory of the file that
// contains them.
type Resolver struct {
	fs   billy.Filesystem
	base string
	log  *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution tracing.
func WithLogger(log *zap.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// New creates a Resolver rooted at baseDir on fs.
func New(fs billy.Filesystem, baseDir string, opts ...Option) *Resolver {
	r := &Resolver{fs: fs, base: baseDir, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve parses the file at path and walks its directives depth-first
// in source order. Matches for each glob are processed in sorted order.
// A glob matching nothing is an error unless the directive type is
// optional; a file already on the active include chain is a cycle
// error. The returned files appear in inclusion order, root first.
func (r *Resolver) Resolve(path string) ([]ResolvedFile, error) {
	resolved := make([]ResolvedFile, 0, 1)
	active := make(map[string]bool)
	if err := r.resolve(filepath.Clean(path), active, &resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

func (r *Resolver) resolve(path string, active map[string]bool, resolved *[]ResolvedFile) error {
	if active[path] {
		return fmt.Errorf("include cycle detected at %s", path)
	}
	active[path] = true
	defer delete(active, path)

	data, err := util.ReadFile(r.fs, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	file, err := parser.Parse(path, string(data))
	if err != nil {
		return err
	}
	*resolved = append(*resolved, ResolvedFile{Path: path, File: file})

	for _, block := range file.Blocks {
		directive, ok := block.(*ast.SourceDirective)
		if !ok {
			continue
		}

		dir := r.base
		if directive.Type.Relative() {
			dir = filepath.Dir(path)
		}
		pattern := r.fs.Join(dir, directive.FilenameGlob)

		matches, err := util.Glob(r.fs, pattern)
		if err != nil {
			return fmt.Errorf("%s: bad glob %q: %w", directive.Location, directive.FilenameGlob, err)
		}
		r.log.Debug("expanding source directive",
			zap.String("type", directive.Type.String()),
			zap.String("pattern", pattern),
			zap.Int("matches", len(matches)))

		if len(matches) == 0 {
			if directive.Type.Optional() {
				continue
			}
			return fmt.Errorf("%s: no files match %q", directive.Location, pattern)
		}

		sort.Strings(matches)
		for _, match := range matches {
			if err := r.resolve(filepath.Clean(match), active, resolved); err != nil {
				return err
			}
		}
	}

	return nil
}
