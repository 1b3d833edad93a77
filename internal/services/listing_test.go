package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWithin(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "pkg"), 0755))
	outside := t.TempDir()
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "out")))
	require.NoError(t, os.Symlink(filepath.Join(root, "src"), filepath.Join(root, "alias")))

	tests := []struct {
		name string
		path string
		ok   bool
	}{
		{"root", "", true},
		{"dot", ".", true},
		{"nested", "src/pkg", true},
		{"inner traversal", "src/../src/pkg", true},
		{"missing stays inside", "nope", true},
		{"parent", "..", false},
		{"deep traversal", "../../etc", false},
		{"absolute", "/etc", false},
		{"symlink out of root", "out", false},
		{"symlink within root", "alias", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := resolveWithin(root, tt.path)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestListDirectory_SkipsDanglingLinks(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"keep.txt": "ok"})
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	entries := listDirectory(root, "")
	require.Len(t, entries, 1)
	assert.Equal(t, "keep.txt", entries[0].Name)
	assert.Equal(t, "Text", entries[0].Language)
	assert.Equal(t, ".txt", entries[0].Extension)
}

func TestListDirectory_PreservesExtensionCase(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"Main.GO": "package main\n"})

	entries := listDirectory(root, "")
	require.Len(t, entries, 1)
	assert.Equal(t, ".GO", entries[0].Extension)
	assert.Equal(t, "Go", entries[0].Language)
}
