package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// TokenLength is the number of characters in a session token
const TokenLength = 8

// Session binds a chat user to a working directory for a bounded time.
// JSON field names match the persisted session file format.
type Session struct {
	Active     bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used"`
	Token      string    `json:"token"`
	UserID     int64     `json:"user_id"`
	UserName   string    `json:"user_name"`
	WorkingDir string    `json:"working_dir"`
}

// SessionStats summarises the stored session record set
type SessionStats struct {
	ActiveSessions  int        `json:"active_sessions"`
	NewestCreatedAt *time.Time `json:"newest_session,omitempty"`
	OldestCreatedAt *time.Time `json:"oldest_session,omitempty"`
	TotalSessions   int        `json:"total_sessions"`
	UniqueUsers     int        `json:"unique_users"`
}

// NewSession creates an active session, enforcing token and path invariants
func NewSession(token string, userID int64, userName, workingDir string, now time.Time) (Session, error) {
	if err := ValidateSessionRecord(Session{Token: token, UserID: userID, WorkingDir: workingDir}); err != nil {
		return Session{}, err
	}

	return Session{
		Active:     true,
		CreatedAt:  now,
		LastUsedAt: now,
		Token:      token,
		UserID:     userID,
		UserName:   userName,
		WorkingDir: workingDir,
	}, nil
}

// ValidateSessionRecord checks the fields every stored session must carry
func ValidateSessionRecord(s Session) error {
	if s.Token == "" {
		return fmt.Errorf("session token cannot be empty")
	}
	if s.UserID == 0 {
		return fmt.Errorf("session %s has no owner", s.Token)
	}
	if !filepath.IsAbs(s.WorkingDir) {
		return fmt.Errorf("session %s working directory must be absolute: %q", s.Token, s.WorkingDir)
	}
	return nil
}

// IsIdleExpired reports whether the session has gone unused for at least idle
func (s Session) IsIdleExpired(now time.Time, idle time.Duration) bool {
	return now.Sub(s.LastUsedAt) >= idle
}

// IsPurgeable reports whether an inactive session has outlived the retention window
func (s Session) IsPurgeable(now time.Time, retention time.Duration) bool {
	return !s.Active && s.CreatedAt.Before(now.Add(-retention))
}
