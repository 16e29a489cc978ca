//go:build unix

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(envStrategy, "")
	t.Setenv(envUseLists, "")
	cmd := NewRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func hardLinkTree(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), []byte("a"), 0o644))
	require.NoError(t, os.Link(filepath.Join(root, "a"), filepath.Join(root, "b")))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "c"), []byte("c"), 0o644))
	require.NoError(t, os.Symlink("..", filepath.Join(root, "sub", "up")))
	return root
}

func TestRunFind(t *testing.T) {
	root := hardLinkTree(t)

	tests := []struct {
		name    string
		args    []string
		records int
		sep     string
	}{
		{name: "newline", args: []string{root}, records: 2, sep: "\n"},
		{name: "zero", args: []string{"-z", root}, records: 2, sep: "\x00"},
		{name: "waves", args: []string{"--strategy", "waves", root}, records: 2, sep: "\n"},
		{name: "one file system", args: []string{"-x", root}, records: 2, sep: "\n"},
		{name: "repeated argument", args: []string{root, root}, records: 2, sep: "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Empty(t, stderr)
			require.True(t, strings.HasSuffix(stdout, tt.sep))
			recs := strings.Split(strings.TrimSuffix(stdout, tt.sep), tt.sep)
			assert.Len(t, recs, tt.records)
			assert.Contains(t, recs, filepath.Join(root, "sub", "c"))
		})
	}
}

func TestRunFindDiagnostics(t *testing.T) {
	root := hardLinkTree(t)
	missing := filepath.Join(root, "missing")

	stdout, stderr, err := execute(t, missing, root)
	require.NoError(t, err, "per-path failures do not fail the run")
	assert.Equal(t, "resolve:open: path '"+missing+"' error 2: no such file or directory\n", stderr)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 2)

	_, stderr, err = execute(t, "-q", missing)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = execute(t, "-v", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "processing "+root)
	assert.Contains(t, stderr, "2 files, 1 duplicates, 1 directories revisited, 0 skipped, 0 errors")

	_, stderr, err = execute(t, "-vvv", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "registry (1 devices)")
}

func TestRunFindCount(t *testing.T) {
	root := hardLinkTree(t)
	stdout, _, err := execute(t, "-c", root)
	require.NoError(t, err)
	assert.Equal(t, "2\n", stdout)
}

func TestRunFindBadStrategy(t *testing.T) {
	root := hardLinkTree(t)
	_, _, err := execute(t, "--strategy", "zigzag", root)
	assert.ErrorContains(t, err, "unknown strategy")
}
