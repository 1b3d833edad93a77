package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds the resolved runtime configuration
type Config struct {
	Branches          []string
	CloneTimeout      time.Duration
	DefaultHost       string
	DefaultWorkingDir string
	GitCheckTimeout   time.Duration
	Home              string
	IdleExpiry        time.Duration
	IndexTimeout      time.Duration
	ListenAddr        string
	MaxLogFiles       int
	MaxParallelGitOps int
	PullTimeout       time.Duration
	RepoBaseDir       string
	Retention         time.Duration
	StoreBackend      string
	StorePath         string
}

// Overrides carries values given explicitly on the command line.
// Empty fields leave the lower-precedence value in place.
type Overrides struct {
	Home         string
	ListenAddr   string
	RepoBaseDir  string
	StoreBackend string
	StorePath    string
}

// Defaults returns the built-in configuration rooted at home
func Defaults(home string) *Config {
	return &Config{
		Branches:          []string{"main", "master"},
		CloneTimeout:      60 * time.Second,
		DefaultHost:       "github.com",
		DefaultWorkingDir: GetWorkspaceDir(home),
		GitCheckTimeout:   5 * time.Second,
		Home:              home,
		IdleExpiry:        24 * time.Hour,
		IndexTimeout:      60 * time.Second,
		ListenAddr:        "127.0.0.1:8080",
		MaxLogFiles:       1000,
		MaxParallelGitOps: 4,
		PullTimeout:       30 * time.Second,
		RepoBaseDir:       GetRepoBaseDir(home),
		Retention:         7 * 24 * time.Hour,
		StoreBackend:      StoreSQLite,
	}
}

// Load resolves configuration with precedence
// overrides > environment (and .env) > settings.json > defaults
func Load(overrides Overrides) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	home := overrides.Home
	if home == "" {
		home = GetHome()
	}
	home = ExpandPath(home)

	cfg := Defaults(home)

	settings, err := LoadSettings(GetSettingsPath(home))
	if err != nil {
		return nil, err
	}
	cfg.applySettings(settings)
	cfg.applyEnv()
	cfg.applyOverrides(overrides)

	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath(cfg.StoreBackend, home)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are usable
func (c *Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory cannot be empty")
	}
	if c.StoreBackend != StoreSQLite && c.StoreBackend != StoreJSON {
		return fmt.Errorf("store backend must be %q or %q, got %q", StoreSQLite, StoreJSON, c.StoreBackend)
	}
	if c.StorePath == "" {
		return fmt.Errorf("store path cannot be empty")
	}
	if c.RepoBaseDir == "" {
		return fmt.Errorf("repository base directory cannot be empty")
	}
	if c.DefaultWorkingDir == "" {
		return fmt.Errorf("default working directory cannot be empty")
	}
	if len(c.Branches) == 0 {
		return fmt.Errorf("at least one candidate branch is required")
	}
	if c.DefaultHost == "" {
		return fmt.Errorf("default git host cannot be empty")
	}
	if c.MaxParallelGitOps <= 0 {
		return fmt.Errorf("max parallel git operations must be > 0")
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"clone timeout", c.CloneTimeout},
		{"git check timeout", c.GitCheckTimeout},
		{"idle expiry", c.IdleExpiry},
		{"index timeout", c.IndexTimeout},
		{"pull timeout", c.PullTimeout},
		{"retention", c.Retention},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, d.value)
		}
	}

	return nil
}

func (c *Config) applySettings(s *Settings) {
	if len(s.Branches) > 0 {
		c.Branches = s.Branches
	}
	if s.CloneTimeout != nil {
		c.CloneTimeout = time.Duration(*s.CloneTimeout)
	}
	if s.DefaultHost != "" {
		c.DefaultHost = s.DefaultHost
	}
	if s.DefaultWorkingDir != "" {
		c.DefaultWorkingDir = s.DefaultWorkingDir
	}
	if s.GitCheckTimeout != nil {
		c.GitCheckTimeout = time.Duration(*s.GitCheckTimeout)
	}
	if s.IdleExpiry != nil {
		c.IdleExpiry = time.Duration(*s.IdleExpiry)
	}
	if s.IndexTimeout != nil {
		c.IndexTimeout = time.Duration(*s.IndexTimeout)
	}
	if s.ListenAddr != "" {
		c.ListenAddr = s.ListenAddr
	}
	if s.MaxLogFiles != nil {
		c.MaxLogFiles = *s.MaxLogFiles
	}
	if s.MaxParallelGitOps != nil {
		c.MaxParallelGitOps = *s.MaxParallelGitOps
	}
	if s.PullTimeout != nil {
		c.PullTimeout = time.Duration(*s.PullTimeout)
	}
	if s.RepoBaseDir != "" {
		c.RepoBaseDir = s.RepoBaseDir
	}
	if s.Retention != nil {
		c.Retention = time.Duration(*s.Retention)
	}
	if s.StoreBackend != "" {
		c.StoreBackend = s.StoreBackend
	}
	if s.StorePath != "" {
		c.StorePath = s.StorePath
	}
}

func (c *Config) applyEnv() {
	if branches := getEnv("CODEBRIDGE_BRANCHES", ""); branches != "" {
		c.Branches = parseCommaSeparated(branches)
	}
	c.CloneTimeout = getEnvDuration("CODEBRIDGE_CLONE_TIMEOUT", c.CloneTimeout)
	c.DefaultHost = getEnv("CODEBRIDGE_GIT_HOST", c.DefaultHost)
	c.DefaultWorkingDir = ExpandPath(getEnv("CODEBRIDGE_WORKING_DIR", c.DefaultWorkingDir))
	c.GitCheckTimeout = getEnvDuration("CODEBRIDGE_GIT_CHECK_TIMEOUT", c.GitCheckTimeout)
	c.IdleExpiry = getEnvDuration("CODEBRIDGE_IDLE_EXPIRY", c.IdleExpiry)
	c.IndexTimeout = getEnvDuration("CODEBRIDGE_INDEX_TIMEOUT", c.IndexTimeout)
	c.ListenAddr = getEnv("CODEBRIDGE_LISTEN_ADDR", c.ListenAddr)
	c.MaxParallelGitOps = getEnvInt("CODEBRIDGE_MAX_GIT_OPS", c.MaxParallelGitOps)
	c.PullTimeout = getEnvDuration("CODEBRIDGE_PULL_TIMEOUT", c.PullTimeout)
	c.RepoBaseDir = ExpandPath(getEnv("CODEBRIDGE_REPO_DIR", c.RepoBaseDir))
	c.Retention = getEnvDuration("CODEBRIDGE_RETENTION", c.Retention)
	c.StoreBackend = strings.ToLower(getEnv("CODEBRIDGE_STORE", c.StoreBackend))
	c.StorePath = ExpandPath(getEnv("CODEBRIDGE_STORE_PATH", c.StorePath))
}

func (c *Config) applyOverrides(o Overrides) {
	if o.ListenAddr != "" {
		c.ListenAddr = o.ListenAddr
	}
	if o.RepoBaseDir != "" {
		c.RepoBaseDir = ExpandPath(o.RepoBaseDir)
	}
	if o.StoreBackend != "" {
		c.StoreBackend = strings.ToLower(o.StoreBackend)
	}
	if o.StorePath != "" {
		c.StorePath = ExpandPath(o.StorePath)
	}
}

func defaultStorePath(backend, home string) string {
	if backend == StoreJSON {
		return GetSessionsFilePath(home)
	}
	return GetDBPath(home)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

// getEnvDuration accepts Go durations ("90s") or a plain number of seconds
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	value = strings.TrimSpace(value)
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
