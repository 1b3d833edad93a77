package ports

import (
	"context"
)

// GitAvailability checks that the git binary can be invoked
type GitAvailability interface {
	IsAvailable(ctx context.Context) error
}

// RepoCloner clones a remote repository into a local path
type RepoCloner interface {
	Clone(ctx context.Context, url, targetPath string) error
}

// RepoUpdater refreshes an existing mirror
type RepoUpdater interface {
	Pull(ctx context.Context, repoPath, branch string) error
}

// RepoInspector queries an existing mirror
type RepoInspector interface {
	GetRemoteURL(repoPath string) string
}

// GitRepository is the composite interface
type GitRepository interface {
	GitAvailability
	RepoCloner
	RepoInspector
	RepoUpdater
}
