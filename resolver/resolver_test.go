package resolver

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kconf-lang/kconfparse/parser/ast"
)

func writeFile(t *testing.T, fs billy.Filesystem, path, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fs, path, []byte(content), 0o644))
}

func paths(resolved []ResolvedFile) []string {
	out := make([]string, len(resolved))
	for i, rf := range resolved {
		out[i] = rf.Path
	}
	return out
}

func TestResolve_InclusionOrder(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/Kconfig", "source \"sub/*/Kconfig\"\n")
	writeFile(t, fs, "/sub/a/Kconfig", "rsource \"inner.kconfig\"\n")
	writeFile(t, fs, "/sub/a/inner.kconfig", "")
	writeFile(t, fs, "/sub/b/Kconfig", "")

	r := New(fs, "/")
	resolved, err := r.Resolve("/Kconfig")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/Kconfig",
		"/sub/a/Kconfig",
		"/sub/a/inner.kconfig",
		"/sub/b/Kconfig",
	}, paths(resolved))
}

func TestResolve_RelativeVsBase(t *testing.T) {
	fs := memfs.New()
	// The same glob resolves differently for source and rsource.
	writeFile(t, fs, "/base/common.kconfig", "")
	writeFile(t, fs, "/tree/common.kconfig", "")
	writeFile(t, fs, "/tree/Kconfig", "source \"common.kconfig\"\nrsource \"common.kconfig\"\n")

	r := New(fs, "/base")
	resolved, err := r.Resolve("/tree/Kconfig")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/tree/Kconfig",
		"/base/common.kconfig",
		"/tree/common.kconfig",
	}, paths(resolved))
}

func TestResolve_MissingTarget(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/Kconfig", "source \"missing/*\"\n")

	r := New(fs, "/")
	_, err := r.Resolve("/Kconfig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files match")
	assert.Contains(t, err.Error(), "/Kconfig:1:1")
}

func TestResolve_OptionalMissingTarget(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/Kconfig", "osource \"missing/*\"\norsource \"also-missing\"\n")

	r := New(fs, "/")
	resolved, err := r.Resolve("/Kconfig")
	require.NoError(t, err)
	assert.Len(t, resolved, 1)
}

func TestResolve_Cycle(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/a.kconfig", "source \"b.kconfig\"\n")
	writeFile(t, fs, "/b.kconfig", "source \"a.kconfig\"\n")

	r := New(fs, "/")
	_, err := r.Resolve("/a.kconfig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include cycle")
}

func TestResolve_ParseErrorPropagates(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/Kconfig", "source \"sub.kconfig\"\n")
	writeFile(t, fs, "/sub.kconfig", "source \"unterminated\n")

	r := New(fs, "/")
	_, err := r.Resolve("/Kconfig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/sub.kconfig:1:8")
}

func TestResolve_MissingRoot(t *testing.T) {
	r := New(memfs.New(), "/")
	_, err := r.Resolve("/Kconfig")
	require.Error(t, err)
}

func TestResolve_DirectiveAST(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/Kconfig", "orsource \"opt/*.kconfig\"\n")
	writeFile(t, fs, "/opt/x.kconfig", "")

	r := New(fs, "/")
	resolved, err := r.Resolve("/Kconfig")
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	d, ok := resolved[0].File.Blocks[0].(*ast.SourceDirective)
	require.True(t, ok)
	assert.Equal(t, ast.ORSource, d.Type)
	assert.True(t, d.Type.Optional())
	assert.True(t, d.Type.Relative())
}
