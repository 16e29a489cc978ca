package ufind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/ufind/internal/fixture"
)

// mountedTree lays out root/local and a FUSE mount at root/mnt, skipping the
// test when FUSE cannot be used.
func mountedTree(t *testing.T) (root string, static *fixture.Tree) {
	t.Helper()
	if _, err := os.Stat("/dev/fuse"); err != nil {
		t.Skip("FUSE not available:", err)
	}
	root = tempTree(t)
	writeFile(t, filepath.Join(root, "local", "file"))
	require.NoError(t, os.Mkdir(filepath.Join(root, "mnt"), 0o755))

	s, static, err := fixture.BuildStatic(fixture.Layout{Files: 8, Buckets: 2, HardLinks: 3, DirLinks: 1})
	require.NoError(t, err)
	m, err := fixture.Serve(filepath.Join(root, "mnt"), s)
	if err != nil {
		t.Skip("cannot mount FUSE filesystem:", err)
	}
	t.Cleanup(func() { assert.NoError(t, m.Close()) })
	return root, static
}

func TestDeviceBoundaryOnMount(t *testing.T) {
	root, static := mountedTree(t)

	t.Run("crossing", func(t *testing.T) {
		got, _ := findOS(t, DefaultConfig(), root)
		assert.Len(t, got, 1+static.Unique())
		assert.Contains(t, got, filepath.Join(root, "local", "file"))
	})

	t.Run("one file system", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.OneFileSystem = true
		got, hook := findOS(t, cfg, root)
		assert.Equal(t, []string{filepath.Join(root, "local", "file")}, got)
		assert.Contains(t, messages(hook, logrus.WarnLevel), "crossing device boundary, skipping "+filepath.Join(root, "mnt"))
	})

	t.Run("argument inside mount", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.OneFileSystem = true
		got, _ := findOS(t, cfg, filepath.Join(root, "mnt"))
		assert.Len(t, got, static.Unique())
	})
}
