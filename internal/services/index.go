package services

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"codebridge/internal/domain"
)

// IndexRepository walks a mirror, skipping the .git directory, and counts
// directories (excluding the root) and files. Extensions are collected
// lower-cased from non-dot files and mapped to languages.
func IndexRepository(ctx context.Context, repoPath string) (domain.IndexMetadata, error) {
	meta := domain.IndexMetadata{
		Extensions: []string{},
		Languages:  []string{},
	}
	extensions := make(map[string]bool)

	err := filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path == repoPath {
				return nil
			}
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			meta.TotalDirs++
			return nil
		}

		meta.TotalFiles++
		name := d.Name()
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if ext := strings.ToLower(filepath.Ext(name)); ext != "" {
			extensions[ext] = true
		}
		return nil
	})
	if err != nil {
		return domain.IndexMetadata{Extensions: []string{}, Languages: []string{}},
			fmt.Errorf("failed to index %s: %w", repoPath, err)
	}

	for ext := range extensions {
		meta.Extensions = append(meta.Extensions, ext)
	}
	sort.Strings(meta.Extensions)
	meta.Languages = domain.LanguagesForExtensions(meta.Extensions)
	meta.IndexedAt = time.Now().UTC()

	return meta, nil
}
