package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"codebridge/internal/domain"
	"codebridge/internal/logging"
	"codebridge/internal/ports"
)

// RepoOptions configures a RepoService
type RepoOptions struct {
	BaseDir      string
	Branches     []string
	CloneTimeout time.Duration
	DefaultHost  string
	IndexTimeout time.Duration
	Now          func() time.Time
	PullTimeout  time.Duration
}

// RepoService mirrors remote repositories under <BaseDir>/<userID>/<owner>/<repo>
// and tracks one active repository per user
type RepoService struct {
	active   map[int64]domain.RepoRecord
	activeMu sync.RWMutex
	gitRepo  ports.GitRepository
	locks    *keyedMutex
	opts     RepoOptions
}

// NewRepoService creates a RepoService
func NewRepoService(gitRepo ports.GitRepository, opts RepoOptions) *RepoService {
	if len(opts.Branches) == 0 {
		opts.Branches = []string{"main", "master"}
	}
	if opts.CloneTimeout <= 0 {
		opts.CloneTimeout = 60 * time.Second
	}
	if opts.PullTimeout <= 0 {
		opts.PullTimeout = 30 * time.Second
	}
	if opts.IndexTimeout <= 0 {
		opts.IndexTimeout = 60 * time.Second
	}
	if opts.DefaultHost == "" {
		opts.DefaultHost = domain.DefaultGitHost
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}

	return &RepoService{
		active:  make(map[int64]domain.RepoRecord),
		gitRepo: gitRepo,
		locks:   newKeyedMutex(),
		opts:    opts,
	}
}

// ParseSource validates and normalizes a repository reference
func (s *RepoService) ParseSource(input string) (*domain.RepoSource, error) {
	return domain.ParseRepoSource(input, s.opts.DefaultHost)
}

// CloneOrUpdate mirrors the repository for userID. An existing mirror is
// updated; otherwise the repository is cloned. On success the mirror is
// re-indexed and becomes the user's active repository.
func (s *RepoService) CloneOrUpdate(ctx context.Context, userID int64, input string) (*domain.CloneResult, error) {
	src, err := s.ParseSource(input)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.gitRepo.IsAvailable(ctx); err != nil {
		return nil, domain.NewError(domain.KindGitUnavailable, "git cannot be invoked", err)
	}

	localPath := domain.ScopedRepoPath(s.opts.BaseDir, userID, *src)
	action := domain.ActionCloned

	if _, statErr := os.Stat(localPath); statErr == nil {
		remote := s.gitRepo.GetRemoteURL(localPath)
		if remote == "" {
			// Leftover from an interrupted clone
			logging.Logger.Warn("Repairing incomplete mirror", "path", localPath)
			if err := os.RemoveAll(localPath); err != nil {
				return nil, domain.NewError(domain.KindCloneFailed, "failed to remove incomplete mirror "+localPath, err)
			}
			if err := s.clone(ctx, src, localPath); err != nil {
				return nil, err
			}
		} else {
			if err := s.update(ctx, src, localPath, remote); err != nil {
				return nil, err
			}
			action = domain.ActionUpdated
		}
	} else {
		if err := s.clone(ctx, src, localPath); err != nil {
			return nil, err
		}
	}

	index, err := s.index(ctx, src, localPath)
	if err != nil {
		return nil, err
	}

	record := domain.NewRepoRecord(s.opts.BaseDir, userID, *src, index, s.opts.Now())
	s.activeMu.Lock()
	s.active[userID] = record
	s.activeMu.Unlock()

	logging.Logger.Info("Repository ready",
		"user_id", userID,
		"repo", src.FullName(),
		"action", action,
		"files", index.TotalFiles)

	return &domain.CloneResult{
		Action:    action,
		Index:     index,
		LocalPath: localPath,
		Owner:     src.Owner,
		Repo:      src.Repo,
		URL:       src.URL(),
	}, nil
}

// Activate makes an existing mirror the user's active repository without
// touching the network
func (s *RepoService) Activate(ctx context.Context, userID int64, input string) (*domain.RepoRecord, error) {
	src, err := s.ParseSource(input)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	localPath := domain.ScopedRepoPath(s.opts.BaseDir, userID, *src)
	if info, err := os.Stat(localPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s for user %d: %w", src.FullName(), userID, domain.ErrMirrorNotFound)
	}

	index, err := s.index(ctx, src, localPath)
	if err != nil {
		return nil, err
	}

	record := domain.NewRepoRecord(s.opts.BaseDir, userID, *src, index, s.opts.Now())
	s.activeMu.Lock()
	s.active[userID] = record
	s.activeMu.Unlock()

	return &record, nil
}

// ActiveRepo returns the user's active repository
func (s *RepoService) ActiveRepo(userID int64) (domain.RepoRecord, bool) {
	s.activeMu.RLock()
	defer s.activeMu.RUnlock()

	record, ok := s.active[userID]
	return record, ok
}

// ListFiles lists relativePath inside the user's active repository.
// Returns false when the user has no active repository. Waits for any
// clone or update of the same user to finish first.
func (s *RepoService) ListFiles(userID int64, relativePath string) ([]domain.FileEntry, bool) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	s.activeMu.Lock()
	record, ok := s.active[userID]
	if ok {
		record.LastAccessed = s.opts.Now()
		s.active[userID] = record
	}
	s.activeMu.Unlock()

	if !ok {
		return nil, false
	}

	return listDirectory(record.LocalPath, relativePath), true
}

func (s *RepoService) clone(ctx context.Context, src *domain.RepoSource, localPath string) error {
	cloneCtx, cancel := context.WithTimeout(ctx, s.opts.CloneTimeout)
	defer cancel()

	if err := s.gitRepo.Clone(cloneCtx, src.URL(), localPath); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.NewError(domain.KindTimeout,
				fmt.Sprintf("clone of %s exceeded %s", src.URL(), s.opts.CloneTimeout), err)
		}
		return domain.NewError(domain.KindCloneFailed, "failed to clone "+src.URL(), err)
	}
	return nil
}

// update tries each candidate branch in order; a timeout stops the walk
func (s *RepoService) update(ctx context.Context, src *domain.RepoSource, localPath, remote string) error {
	if !domain.SameRepo(remote, src.URL()) {
		return domain.NewError(domain.KindUpdateFailed,
			fmt.Sprintf("mirror at %s tracks %s, not %s", localPath, remote, src.URL()), nil)
	}

	var failures []string
	var lastErr error
	for _, branch := range s.opts.Branches {
		pullCtx, cancel := context.WithTimeout(ctx, s.opts.PullTimeout)
		err := s.gitRepo.Pull(pullCtx, localPath, branch)
		cancel()

		if err == nil {
			logging.Logger.Debug("Mirror updated", "path", localPath, "branch", branch)
			return nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.NewError(domain.KindTimeout,
				fmt.Sprintf("pull of %s (%s) exceeded %s", src.URL(), branch, s.opts.PullTimeout), err)
		}

		logging.Logger.Debug("Pull failed, trying next branch", "path", localPath, "branch", branch, "error", err)
		failures = append(failures, branch)
		lastErr = err
	}

	return domain.NewError(domain.KindUpdateFailed,
		fmt.Sprintf("failed to update %s from branches %s", src.URL(), strings.Join(failures, ", ")), lastErr)
}

// index re-indexes the mirror. Only a timeout fails the request; other
// indexing errors are recorded on the metadata.
func (s *RepoService) index(ctx context.Context, src *domain.RepoSource, localPath string) (domain.IndexMetadata, error) {
	indexCtx, cancel := context.WithTimeout(ctx, s.opts.IndexTimeout)
	defer cancel()

	meta, err := IndexRepository(indexCtx, localPath)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.IndexMetadata{}, domain.NewError(domain.KindTimeout,
				fmt.Sprintf("indexing %s exceeded %s", localPath, s.opts.IndexTimeout), err)
		}
		logging.Logger.Warn("Indexing failed", "path", localPath, "error", err)
		meta.Error = err.Error()
	}

	meta.IndexedAt = s.opts.Now()
	meta.Owner = src.Owner
	meta.Repo = src.Repo
	meta.URL = src.URL()
	return meta, nil
}
