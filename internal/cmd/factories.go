package cmd

import (
	"context"
	"fmt"

	adaptergit "codebridge/internal/adapters/git"
	adapterstorage "codebridge/internal/adapters/storage"
	"codebridge/internal/config"
	"codebridge/internal/ports"
	"codebridge/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	RepoService    *services.RepoService
	SessionService *services.SessionService

	// Internal - for cleanup only
	sessionRepo ports.SessionRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg *config.Config) (*Container, error) {
	sessionRepo, err := newSessionRepository(cfg)
	if err != nil {
		return nil, err
	}

	gitRepo := adaptergit.NewCLIRepository(int64(cfg.MaxParallelGitOps), cfg.GitCheckTimeout)

	sessionService, err := services.NewSessionService(context.Background(), sessionRepo, services.SessionOptions{
		DefaultWorkingDir: cfg.DefaultWorkingDir,
		IdleExpiry:        cfg.IdleExpiry,
		Retention:         cfg.Retention,
	})
	if err != nil {
		sessionRepo.Close()
		return nil, err
	}

	repoService := services.NewRepoService(gitRepo, services.RepoOptions{
		BaseDir:      cfg.RepoBaseDir,
		Branches:     cfg.Branches,
		CloneTimeout: cfg.CloneTimeout,
		DefaultHost:  cfg.DefaultHost,
		IndexTimeout: cfg.IndexTimeout,
		PullTimeout:  cfg.PullTimeout,
	})

	return &Container{
		RepoService:    repoService,
		SessionService: sessionService,
		sessionRepo:    sessionRepo,
	}, nil
}

func newSessionRepository(cfg *config.Config) (ports.SessionRepository, error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		return adapterstorage.NewSQLiteRepository(cfg.StorePath)
	case config.StoreJSON:
		return adapterstorage.NewJSONRepository(cfg.StorePath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.sessionRepo != nil {
		return c.sessionRepo.Close()
	}
	return nil
}
