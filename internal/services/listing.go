package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"codebridge/internal/domain"
	"codebridge/internal/logging"
)

// listDirectory lists relativePath inside root. Anything resolving outside
// root, missing, or not a directory yields an empty list. Dot entries are
// never returned. Directories sort first, then names case-insensitively.
func listDirectory(root, relativePath string) []domain.FileEntry {
	entries := []domain.FileEntry{}

	target, ok := resolveWithin(root, relativePath)
	if !ok {
		logging.Logger.Warn("Rejected listing outside repository root", "root", root, "path", relativePath)
		return entries
	}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return entries
	}

	dirEntries, err := os.ReadDir(target)
	if err != nil {
		logging.Logger.Error("Failed to list directory", "path", target, "error", err)
		return entries
	}

	for _, item := range dirEntries {
		name := item.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		itemPath := filepath.Join(target, name)
		itemInfo, err := os.Stat(itemPath)
		if err != nil {
			// Dangling symlink or entry removed mid-listing
			continue
		}

		rel, err := filepath.Rel(root, itemPath)
		if err != nil {
			continue
		}

		entry := domain.FileEntry{
			IsDir:        itemInfo.IsDir(),
			Name:         name,
			RelativePath: filepath.ToSlash(rel),
		}
		if !entry.IsDir {
			entry.Extension = filepath.Ext(name)
			entry.Language = domain.DetectLanguage(entry.Extension, name)
			entry.SizeBytes = itemInfo.Size()
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries
}

// resolveWithin joins relativePath onto root and confirms the result, with
// symlinks evaluated, still lies under root
func resolveWithin(root, relativePath string) (string, bool) {
	if filepath.IsAbs(relativePath) {
		return "", false
	}

	target := filepath.Join(root, relativePath)
	if !isWithin(root, target) {
		return "", false
	}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", false
	}
	realTarget, err := filepath.EvalSymlinks(target)
	if err != nil {
		// Missing targets list as empty; containment already holds lexically
		return target, true
	}
	if !isWithin(realRoot, realTarget) {
		return "", false
	}

	return target, true
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
