package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"codebridge/internal/config"
	"codebridge/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Home        string           `help:"Data directory (overrides $CODEBRIDGE_HOME)"`
	RepoDir     string           `help:"Directory holding repository mirrors"`
	Store       string           `help:"Session store backend (sqlite or json)"`
	StorePath   string           `help:"Path of the session database or JSON file"`

	Diff     DiffCmd     `cmd:"diff" help:"Show a unified diff of two files"`
	Repo     RepoCmd     `cmd:"repo" help:"Mirror and browse repositories"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the session, repository and diff API over HTTP"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage sessions (create, list, end, ...)"`

	// Internal fields (not flags)
	Config    *config.Config `kong:"-"`
	Container *Container     `kong:"-"`
}

// AfterApply loads configuration, initializes logging and wires the container
func (c *CLI) AfterApply() error {
	cfg, err := config.Load(config.Overrides{
		Home:         c.Home,
		RepoBaseDir:  c.RepoDir,
		StoreBackend: c.Store,
		StorePath:    c.StorePath,
	})
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.Config = cfg

	// The flag wins over settings only when it was moved off its default
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("CODEBRIDGE_MAX_LOG_FILES"); !hasEnv {
			c.MaxLogFiles = cfg.MaxLogFiles
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if c.Debug || c.DebugFile != "" {
		os.Setenv("CODEBRIDGE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("CODEBRIDGE_DEBUG_FILE", logFilePath)
		}
	}

	logging.Logger.Debug("Configuration loaded",
		"home", cfg.Home,
		"store", cfg.StoreBackend,
		"store_path", cfg.StorePath,
		"repo_dir", cfg.RepoBaseDir)

	// Create container AFTER logging is initialized so GORM logs through it
	container, err := NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
