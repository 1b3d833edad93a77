package domain

import (
	"path/filepath"
	"strconv"
	"time"
)

// CloneAction records which path CloneOrUpdate took
type CloneAction string

const (
	ActionCloned  CloneAction = "cloned"
	ActionUpdated CloneAction = "updated"
)

// IndexMetadata is derived summary data about a mirror's current tree
type IndexMetadata struct {
	Error      string    `json:"error,omitempty"`
	Extensions []string  `json:"extensions"`
	IndexedAt  time.Time `json:"indexed_at"`
	Languages  []string  `json:"languages"`
	Owner      string    `json:"owner"`
	Repo       string    `json:"repo"`
	TotalDirs  int       `json:"total_dirs"`
	TotalFiles int       `json:"total_files"`
	URL        string    `json:"url"`
}

// RepoRecord is the active repository mirror of one chat user
type RepoRecord struct {
	Index        IndexMetadata `json:"index"`
	LastAccessed time.Time     `json:"last_accessed"`
	LocalPath    string        `json:"path"`
	Owner        string        `json:"owner"`
	Repo         string        `json:"repo"`
	URL          string        `json:"url"`
}

// CloneResult is returned by a successful clone-or-update
type CloneResult struct {
	Action    CloneAction   `json:"action"`
	Index     IndexMetadata `json:"index"`
	LocalPath string        `json:"path"`
	Owner     string        `json:"owner"`
	Repo      string        `json:"repo"`
	URL       string        `json:"url"`
}

// FileEntry describes one listed item of a mirror; never persisted
type FileEntry struct {
	Extension    string `json:"extension,omitempty"`
	IsDir        bool   `json:"is_dir"`
	Language     string `json:"language,omitempty"`
	Name         string `json:"name"`
	RelativePath string `json:"path"`
	SizeBytes    int64  `json:"size"`
}

// ScopedRepoPath returns <base>/<userID>/<owner>/<repo>.
// Scoping by user keeps one user's mirrors unreachable from another's listing.
func ScopedRepoPath(baseDir string, userID int64, src RepoSource) string {
	return filepath.Join(baseDir, strconv.FormatInt(userID, 10), src.Owner, src.Repo)
}

// NewRepoRecord builds the record for a mirror of src owned by userID
func NewRepoRecord(baseDir string, userID int64, src RepoSource, index IndexMetadata, now time.Time) RepoRecord {
	return RepoRecord{
		Index:        index,
		LastAccessed: now,
		LocalPath:    ScopedRepoPath(baseDir, userID, src),
		Owner:        src.Owner,
		Repo:         src.Repo,
		URL:          src.URL(),
	}
}
