package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"codebridge/internal/domain"
	"codebridge/internal/logging"
	"codebridge/internal/ports"
)

// JSONRepository implements ports.SessionRepository on a single JSON file
// holding an array of session records. Every save writes a complete new
// file next to the old one and renames it into place, so readers see either
// the previous or the new record set. Access is serialized through an
// exclusive lock on a sidecar "<path>.lock" file.
type JSONRepository struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*JSONRepository)(nil)

// NewJSONRepository creates a repository backed by the file at path.
// The file is created lazily on the first save.
func NewJSONRepository(path string) (*JSONRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &JSONRepository{path: path}, nil
}

// Close is a no-op; the file is only held open while reading or writing
func (r *JSONRepository) Close() error {
	return nil
}

// LoadAll implements SessionLoader.LoadAll.
// A missing or empty file is an empty record set.
func (r *JSONRepository) LoadAll(ctx context.Context) ([]domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock, err := r.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Session{}, nil
		}
		return nil, fmt.Errorf("failed to read sessions file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Session{}, nil
	}

	var sessions []domain.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to parse sessions file %s: %w", r.path, err)
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}

	logging.Logger.Debug("Loaded sessions file", "path", r.path, "count", len(sessions))
	return sessions, nil
}

// SaveAll implements SessionSaver.SaveAll
func (r *JSONRepository) SaveAll(ctx context.Context, sessions []domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	return writeFileAtomic(r.path, data, 0600)
}

// lock takes the exclusive sidecar lock and returns its release function
func (r *JSONRepository) lock() (func(), error) {
	file, err := os.OpenFile(r.path+".lock", os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	if err := lockFile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	return func() {
		if err := unlockFile(file); err != nil {
			logging.Logger.Warn("Failed to release sessions lock", "path", file.Name(), "error", err)
		}
		file.Close()
	}, nil
}

// writeFileAtomic writes data to a temp file in the target's directory,
// syncs it and renames it over path. On failure the old file is untouched.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write sessions: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync sessions file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace sessions file: %w", err)
	}
	committed = true

	return nil
}
