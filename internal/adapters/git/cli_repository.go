package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"codebridge/internal/logging"
	"codebridge/internal/ports"
)

// DefaultCheckTimeout bounds the "git --version" availability probe
const DefaultCheckTimeout = 5 * time.Second

// waitDelay is how long a killed git process may hold its output pipes
const waitDelay = 5 * time.Second

// CLIRepository implements ports.GitRepository using the local git binary
type CLIRepository struct {
	checkTimeout time.Duration
	group        singleflight.Group
	sem          *semaphore.Weighted
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a CLIRepository that runs at most maxParallel
// clone/pull processes at once
func NewCLIRepository(maxParallel int64, checkTimeout time.Duration) *CLIRepository {
	if maxParallel <= 0 {
		maxParallel = 1
	}
	if checkTimeout <= 0 {
		checkTimeout = DefaultCheckTimeout
	}
	return &CLIRepository{
		checkTimeout: checkTimeout,
		sem:          semaphore.NewWeighted(maxParallel),
	}
}

// IsAvailable implements GitAvailability.IsAvailable.
// Concurrent callers share a single probe.
func (r *CLIRepository) IsAvailable(ctx context.Context) error {
	_, err, _ := r.group.Do("git-version", func() (any, error) {
		if _, err := exec.LookPath("git"); err != nil {
			return nil, fmt.Errorf("git executable not found: %w", err)
		}

		checkCtx, cancel := context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()

		output, err := runGit(checkCtx, "", "--version")
		if err != nil {
			return nil, err
		}
		logging.Logger.Debug("Git available", "version", strings.TrimSpace(string(output)))
		return nil, nil
	})
	return err
}

// Clone implements RepoCloner.Clone
func (r *CLIRepository) Clone(ctx context.Context, url, targetPath string) error {
	logging.Logger.Info("Cloning repository", "url", url, "target", targetPath)

	parentDir := filepath.Dir(targetPath)
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		logging.Logger.Error("Failed to create parent directory", "error", err, "path", parentDir)
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for git slot: %w", err)
	}
	defer r.sem.Release(1)

	if _, err := runGit(ctx, "", "clone", "--quiet", "--", url, targetPath); err != nil {
		logging.Logger.Error("Git clone failed", "error", err, "url", url)
		return err
	}

	logging.Logger.Info("Repository cloned successfully", "path", targetPath)
	return nil
}

// Pull implements RepoUpdater.Pull, fast-forwarding from origin/<branch>
func (r *CLIRepository) Pull(ctx context.Context, repoPath, branch string) error {
	if err := validateBranchName(branch); err != nil {
		return fmt.Errorf("invalid branch %q: %w", branch, err)
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for git slot: %w", err)
	}
	defer r.sem.Release(1)

	logging.Logger.Debug("Pulling repository", "path", repoPath, "branch", branch)
	if _, err := runGit(ctx, repoPath, "pull", "--quiet", "--ff-only", "origin", branch); err != nil {
		logging.Logger.Warn("Git pull failed", "error", err, "path", repoPath, "branch", branch)
		return err
	}

	return nil
}

// GetRemoteURL implements RepoInspector.GetRemoteURL.
// Returns "" when the path is not a git checkout or has no origin.
func (r *CLIRepository) GetRemoteURL(repoPath string) string {
	cmd := exec.Command("git", "remote", "get-url", "origin")
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(output))
}

// runGit runs git with args in dir. Context errors are wrapped so callers can
// tell a timeout from a failed command.
func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.WaitDelay = waitDelay

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return output, fmt.Errorf("git %s interrupted: %w", args[0], ctxErr)
		}
		return output, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return output, nil
}
