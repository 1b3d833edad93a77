package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func gitCmd(t *testing.T, dir string, args ...string) {
	t.Helper()
	base := []string{"-c", "user.email=test@example.com", "-c", "user.name=Test", "-c", "commit.gpgsign=false"}
	cmd := exec.Command("git", append(base, args...)...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, output)
}

// setupRemoteRepo creates a local repository on branch "main" that tests use as origin
func setupRemoteRepo(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "remote")
	require.NoError(t, os.MkdirAll(dir, 0755))

	gitCmd(t, dir, "init", "--quiet", "-b", "main")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0644))
	gitCmd(t, dir, "add", ".")
	gitCmd(t, dir, "commit", "--quiet", "-m", "initial")

	return dir
}

func commitFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	gitCmd(t, dir, "add", name)
	gitCmd(t, dir, "commit", "--quiet", "-m", "add "+name)
}

func TestIsAvailable(t *testing.T) {
	requireGit(t)
	repo := NewCLIRepository(2, time.Second)

	assert.NoError(t, repo.IsAvailable(context.Background()))
}

func TestIsAvailable_MissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	repo := NewCLIRepository(2, time.Second)

	err := repo.IsAvailable(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git executable not found")
}

func TestCloneAndPull(t *testing.T) {
	requireGit(t)
	remote := setupRemoteRepo(t)
	target := filepath.Join(t.TempDir(), "42", "owner", "repo")
	repo := NewCLIRepository(2, time.Second)
	ctx := context.Background()

	require.NoError(t, repo.Clone(ctx, remote, target))
	assert.FileExists(t, filepath.Join(target, "README.md"))
	assert.Equal(t, remote, repo.GetRemoteURL(target))

	commitFile(t, remote, "main.go", "package main\n")

	require.NoError(t, repo.Pull(ctx, target, "main"))
	assert.FileExists(t, filepath.Join(target, "main.go"))
}

func TestPull_MissingBranch(t *testing.T) {
	requireGit(t)
	remote := setupRemoteRepo(t)
	target := filepath.Join(t.TempDir(), "mirror")
	repo := NewCLIRepository(1, time.Second)
	ctx := context.Background()

	require.NoError(t, repo.Clone(ctx, remote, target))

	err := repo.Pull(ctx, target, "master")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git pull failed")
}

func TestPull_InvalidBranch(t *testing.T) {
	repo := NewCLIRepository(1, time.Second)

	err := repo.Pull(context.Background(), t.TempDir(), "--upload-pack=touch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid branch")
}

func TestClone_Failure(t *testing.T) {
	requireGit(t)
	repo := NewCLIRepository(1, time.Second)
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	err := repo.Clone(context.Background(), missing, filepath.Join(t.TempDir(), "target"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git clone failed")
}

func TestClone_ContextCanceled(t *testing.T) {
	requireGit(t)
	remote := setupRemoteRepo(t)
	repo := NewCLIRepository(1, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Clone(ctx, remote, filepath.Join(t.TempDir(), "target"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGetRemoteURL_NotARepo(t *testing.T) {
	requireGit(t)
	repo := NewCLIRepository(1, time.Second)

	assert.Empty(t, repo.GetRemoteURL(t.TempDir()))
}
