package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codebridge/internal/domain"
	"codebridge/internal/ports"
)

func newTestRepositories(t *testing.T) map[string]ports.SessionRepository {
	t.Helper()
	dir := t.TempDir()

	sqliteRepo, err := NewSQLiteRepository(filepath.Join(dir, "db", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteRepo.Close() })

	jsonRepo, err := NewJSONRepository(filepath.Join(dir, "json", "sessions.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = jsonRepo.Close() })

	return map[string]ports.SessionRepository{
		"sqlite": sqliteRepo,
		"json":   jsonRepo,
	}
}

func testSession(token string, userID int64, active bool, created time.Time) domain.Session {
	return domain.Session{
		Active:     active,
		CreatedAt:  created,
		LastUsedAt: created.Add(time.Minute),
		Token:      token,
		UserID:     userID,
		UserName:   "user",
		WorkingDir: "/tmp/work",
	}
}

func TestRepositoryLoadEmpty(t *testing.T) {
	for name, repo := range newTestRepositories(t) {
		t.Run(name, func(t *testing.T) {
			sessions, err := repo.LoadAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, sessions)
		})
	}
}

func TestRepositorySaveAndLoadPreservesOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		testSession("cccccccc", 3, true, base),
		testSession("aaaaaaaa", 1, false, base.Add(time.Hour)),
		testSession("bbbbbbbb", 1, true, base.Add(2*time.Hour)),
	}

	for name, repo := range newTestRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.SaveAll(ctx, sessions))

			loaded, err := repo.LoadAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, sessions, loaded)
		})
	}
}

func TestRepositorySaveAllRemovesMissing(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, repo := range newTestRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.SaveAll(ctx, []domain.Session{
				testSession("aaaaaaaa", 1, true, base),
				testSession("bbbbbbbb", 2, true, base),
			}))

			updated := testSession("bbbbbbbb", 2, false, base)
			require.NoError(t, repo.SaveAll(ctx, []domain.Session{updated}))

			loaded, err := repo.LoadAll(ctx)
			require.NoError(t, err)
			require.Len(t, loaded, 1)
			assert.Equal(t, updated, loaded[0])

			require.NoError(t, repo.SaveAll(ctx, nil))
			loaded, err = repo.LoadAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, loaded)
		})
	}
}

func TestJSONRepositoryFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveAll(context.Background(), []domain.Session{
		testSession("abcd1234", 42, true, created),
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	for _, field := range []string{`"token": "abcd1234"`, `"user_id": 42`, `"is_active": true`, `"working_dir"`, `"last_used"`, `"created_at"`} {
		assert.Contains(t, content, field)
	}
}

func TestJSONRepositoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	_, err = repo.LoadAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse sessions file")
}

func TestJSONRepositoryEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	sessions, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestJSONRepositorySaveReplacesFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("renaming over an open file is not allowed on windows")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.json")
	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveAll(context.Background(), []domain.Session{testSession("aaaa1111", 1, true, created)}))

	previous, err := os.Open(path)
	require.NoError(t, err)
	defer previous.Close()

	require.NoError(t, repo.SaveAll(context.Background(), []domain.Session{testSession("bbbb2222", 2, true, created)}))

	// The old file is never rewritten in place
	var old []domain.Session
	require.NoError(t, json.NewDecoder(previous).Decode(&old))
	require.Len(t, old, 1)
	assert.Equal(t, "aaaa1111", old[0].Token)

	loaded, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "bbbb2222", loaded[0].Token)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"sessions.json", "sessions.json.lock"}, names)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestJSONRepositoryFailedSaveKeepsFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("needs directory permissions to be enforced")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.json")
	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveAll(context.Background(), []domain.Session{testSession("aaaa1111", 1, true, created)}))

	require.NoError(t, os.Chmod(dir, 0500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0700) })

	err = repo.SaveAll(context.Background(), []domain.Session{})
	require.Error(t, err)

	loaded, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "aaaa1111", loaded[0].Token)
}
