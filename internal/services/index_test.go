package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRepository(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"cmd/app/main.go":    "package main\n",
		"internal/a.GO":      "package internal\n",
		"README.md":          "# readme\n",
		"scripts/build.sh":   "#!/bin/sh\n",
		"data/blob.unknownx": "?",
		".editorconfig":      "root = true\n",
		".git/objects/ab/cd": "x",
		".git/HEAD":          "ref: refs/heads/main\n",
	})

	meta, err := IndexRepository(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 6, meta.TotalFiles)
	// cmd, cmd/app, internal, scripts, data
	assert.Equal(t, 5, meta.TotalDirs)
	assert.Equal(t, []string{".go", ".md", ".sh", ".unknownx"}, meta.Extensions)
	assert.Equal(t, []string{"Go", "Markdown", "Shell"}, meta.Languages)
	assert.False(t, meta.IndexedAt.IsZero())
}

func TestIndexRepository_EmptyTree(t *testing.T) {
	meta, err := IndexRepository(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Zero(t, meta.TotalFiles)
	assert.Zero(t, meta.TotalDirs)
	assert.NotNil(t, meta.Extensions)
	assert.NotNil(t, meta.Languages)
}

func TestIndexRepository_Errors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		meta, err := IndexRepository(context.Background(), filepath.Join(t.TempDir(), "gone"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to index")
		assert.Empty(t, meta.Extensions)
	})

	t.Run("canceled context", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"a.go": "package a\n"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := IndexRepository(ctx, root)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
