package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own CODEBRIDGE_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp CODEBRIDGE_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out CODEBRIDGE_* variables and sets:
//   - CODEBRIDGE_HOME to the temp directory
//   - CODEBRIDGE_DEBUG to empty string (disables debug logging)
//   - GIT_TERMINAL_PROMPT to 0
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := make(map[string]bool)
	overrideKeys["GIT_TERMINAL_PROMPT"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing CODEBRIDGE_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "CODEBRIDGE_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"CODEBRIDGE_HOME="+e.Home,
		"CODEBRIDGE_DEBUG=",
		"GIT_TERMINAL_PROMPT=0",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "state.db")
}

// SessionsFilePath returns the path used by the JSON store backend.
func (e *TestEnvironment) SessionsFilePath() string {
	return filepath.Join(e.Home, "sessions.json")
}

// WorkspacePath returns the default working directory for new sessions.
func (e *TestEnvironment) WorkspacePath() string {
	return filepath.Join(e.Home, "workspace")
}

// RepoPath returns the mirror directory of owner/repo for userID.
func (e *TestEnvironment) RepoPath(userID, owner, repo string) string {
	return filepath.Join(e.Home, "repos", userID, owner, repo)
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteFile writes content under the environment's temp home and returns its path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.Home, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
