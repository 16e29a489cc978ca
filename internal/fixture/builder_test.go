package fixture

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tree")
	l := Layout{Files: 40, Buckets: 7, HardLinks: 10, DirLinks: 4, FileLinks: 6, Workers: 3, Seed: 1}

	tree, err := Build(root, l)
	require.NoError(t, err)
	assert.Equal(t, 40, tree.Unique())
	assert.Len(t, tree.HardLinks, 10)
	assert.Len(t, tree.DirLinks, 4)
	assert.Len(t, tree.FileLinks, 6)

	for _, name := range tree.Files {
		data, err := os.ReadFile(filepath.Join(root, name))
		require.NoError(t, err)
		assert.Equal(t, strings.TrimSuffix(filepath.Base(name), ".txt")+"\n", string(data))
	}

	for _, name := range tree.HardLinks {
		target, ok := tree.Target(name)
		require.True(t, ok)
		a, err := os.Lstat(filepath.Join(root, name))
		require.NoError(t, err)
		b, err := os.Lstat(filepath.Join(root, target))
		require.NoError(t, err)
		assert.True(t, os.SameFile(a, b), "%s should be a hard link of %s", name, target)
	}

	for _, name := range slices.Concat(tree.DirLinks, tree.FileLinks) {
		target, _ := tree.Target(name)
		fi, err := os.Lstat(filepath.Join(root, name))
		require.NoError(t, err)
		assert.Equal(t, os.ModeSymlink, fi.Mode().Type())

		a, err := os.Stat(filepath.Join(root, name))
		require.NoError(t, err)
		b, err := os.Stat(filepath.Join(root, target))
		require.NoError(t, err)
		assert.True(t, os.SameFile(a, b), "%s should point at %s", name, target)
	}
}

func TestBuildRejectsEmptyLayout(t *testing.T) {
	_, err := Build(t.TempDir(), Layout{})
	assert.ErrorIs(t, err, ErrEmptyLayout)
}

func TestRelTarget(t *testing.T) {
	tests := []struct {
		target, name, want string
	}{
		{".", "00/000/loop", "../.."},
		{"01/001", "00/000/loop", "../../01/001"},
		{"00/000/f.txt", "00/000/alias", "f.txt"},
		{".", "top", "."},
		{"00/000", "00/000/self", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name+"->"+tt.target, func(t *testing.T) {
			got, err := relTarget(tt.target, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBucketName(t *testing.T) {
	assert.Equal(t, "00/000", bucketName(0))
	assert.Equal(t, "07/017", bucketName(17))
}
