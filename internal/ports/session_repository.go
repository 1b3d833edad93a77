package ports

import (
	"context"

	"codebridge/internal/domain"
)

// SessionLoader reads the full persisted session record set
type SessionLoader interface {
	LoadAll(ctx context.Context) ([]domain.Session, error)
}

// SessionSaver replaces the full persisted session record set
type SessionSaver interface {
	SaveAll(ctx context.Context, sessions []domain.Session) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionLoader
	SessionSaver
	Close() error
}
