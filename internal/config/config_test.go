package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, home, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(home, 0755))
	require.NoError(t, os.WriteFile(GetSettingsPath(home), []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(Overrides{Home: home})
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, []string{"main", "master"}, cfg.Branches)
	assert.Equal(t, 24*time.Hour, cfg.IdleExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention)
	assert.Equal(t, 60*time.Second, cfg.CloneTimeout)
	assert.Equal(t, 30*time.Second, cfg.PullTimeout)
	assert.Equal(t, StoreSQLite, cfg.StoreBackend)
	assert.Equal(t, filepath.Join(home, "state.db"), cfg.StorePath)
	assert.Equal(t, filepath.Join(home, "repos"), cfg.RepoBaseDir)
	assert.Equal(t, filepath.Join(home, "workspace"), cfg.DefaultWorkingDir)
}

func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	writeSettings(t, home, `{
		"branches": "trunk, develop",
		"clone_timeout": "2m",
		"idle_expiry": 3600,
		"listen_addr": "127.0.0.1:9000",
		"store_backend": "json"
	}`)

	t.Setenv("CODEBRIDGE_LISTEN_ADDR", "127.0.0.1:9100")
	t.Setenv("CODEBRIDGE_PULL_TIMEOUT", "45")

	cfg, err := Load(Overrides{Home: home})
	require.NoError(t, err)

	assert.Equal(t, []string{"trunk", "develop"}, cfg.Branches)
	assert.Equal(t, 2*time.Minute, cfg.CloneTimeout)
	assert.Equal(t, time.Hour, cfg.IdleExpiry)
	assert.Equal(t, 45*time.Second, cfg.PullTimeout)
	assert.Equal(t, "127.0.0.1:9100", cfg.ListenAddr, "env beats settings")
	assert.Equal(t, StoreJSON, cfg.StoreBackend)
	assert.Equal(t, filepath.Join(home, "sessions.json"), cfg.StorePath)

	cfg, err = Load(Overrides{Home: home, ListenAddr: ":7000", StoreBackend: "sqlite"})
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.ListenAddr, "flags beat env")
	assert.Equal(t, filepath.Join(home, "state.db"), cfg.StorePath)
}

func TestLoadInvalidSettings(t *testing.T) {
	home := t.TempDir()
	writeSettings(t, home, `{"branches": `)

	_, err := Load(Overrides{Home: home})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.StoreBackend = "redis" },
			wantErr: "store backend",
		},
		{
			name:    "no branches",
			mutate:  func(c *Config) { c.Branches = nil },
			wantErr: "candidate branch",
		},
		{
			name:    "zero idle expiry",
			mutate:  func(c *Config) { c.IdleExpiry = 0 },
			wantErr: "idle expiry",
		},
		{
			name:    "negative retention",
			mutate:  func(c *Config) { c.Retention = -time.Hour },
			wantErr: "retention",
		},
		{
			name:    "no parallel git ops",
			mutate:  func(c *Config) { c.MaxParallelGitOps = 0 },
			wantErr: "parallel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults("/tmp/codebridge")
			cfg.StorePath = "/tmp/codebridge/state.db"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "repos"), ExpandPath("~/repos"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
