package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"codebridge/internal/domain"
	"codebridge/internal/logging"
	"codebridge/internal/ports"
)

// maxTokenAttempts bounds regeneration when a new token collides
const maxTokenAttempts = 100

// SessionOptions configures a SessionService
type SessionOptions struct {
	DefaultWorkingDir string
	IdleExpiry        time.Duration
	NewToken          func() string
	Now               func() time.Time
	Retention         time.Duration
}

// SessionService is the session registry: at most one active session per
// user, idle expiry discovered on validation, retention cleanup at start.
// All state lives in memory and the full record set is rewritten to the
// repository after every mutation.
type SessionService struct {
	activeByUser   map[int64]string
	lastPersistErr error
	mu             sync.Mutex
	opts           SessionOptions
	order          []string
	repo           ports.SessionRepository
	sessions       map[string]*domain.Session
}

// NewSessionService loads every stored session, purges inactive sessions
// older than the retention window and rebuilds the per-user active index.
// A load failure is returned so an unreadable store is never overwritten.
func NewSessionService(ctx context.Context, repo ports.SessionRepository, opts SessionOptions) (*SessionService, error) {
	if opts.IdleExpiry <= 0 {
		opts.IdleExpiry = 24 * time.Hour
	}
	if opts.Retention <= 0 {
		opts.Retention = 7 * 24 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewToken == nil {
		opts.NewToken = newShortToken
	}

	s := &SessionService{
		activeByUser: make(map[int64]string),
		opts:         opts,
		repo:         repo,
		sessions:     make(map[string]*domain.Session),
	}

	records, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, domain.NewError(domain.KindPersistenceFailure, "failed to load sessions", err)
	}

	now := opts.Now()
	purged := 0
	for i := range records {
		record := records[i]
		if record.Token == "" {
			logging.Logger.Warn("Skipping stored session without token", "user_id", record.UserID)
			continue
		}
		if _, dup := s.sessions[record.Token]; dup {
			logging.Logger.Warn("Skipping duplicate stored session", "token", record.Token)
			continue
		}
		if record.IsPurgeable(now, opts.Retention) {
			purged++
			continue
		}
		s.insertLocked(&record)
	}

	logging.Logger.Info("Sessions loaded",
		"total", len(s.order),
		"active_users", len(s.activeByUser),
		"purged", purged)

	if purged > 0 {
		s.persistLocked(ctx)
	}

	return s, nil
}

// newShortToken returns the first TokenLength characters of a random UUID
func newShortToken() string {
	return uuid.New().String()[:domain.TokenLength]
}

// CreateSession starts a new active session for userID. An empty workingDir
// selects the configured default; the directory is created if missing.
// A previous active session of the user stays stored but is no longer
// reachable through GetActiveSession.
func (s *SessionService) CreateSession(ctx context.Context, userID int64, userName, workingDir string) (*domain.Session, error) {
	if workingDir == "" {
		workingDir = s.opts.DefaultWorkingDir
	}
	if workingDir == "" {
		return nil, domain.NewError(domain.KindPersistenceFailure, "no working directory given and no default configured", nil)
	}

	absDir, err := filepath.Abs(workingDir)
	if err != nil {
		return nil, domain.NewError(domain.KindPersistenceFailure,
			fmt.Sprintf("failed to resolve working directory %q", workingDir), err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, domain.NewError(domain.KindPersistenceFailure, "failed to create working directory "+absDir, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.generateTokenLocked()
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(token, userID, userName, absDir, s.opts.Now())
	if err != nil {
		return nil, domain.NewError(domain.KindPersistenceFailure, "invalid session: "+err.Error(), err)
	}

	if previous, ok := s.activeByUser[userID]; ok {
		logging.Logger.Info("Superseding active session", "user_id", userID, "previous", previous, "token", token)
	}
	s.insertLocked(&session)
	s.persistLocked(ctx)

	logging.Logger.Info("Session created", "user_id", userID, "token", token, "working_dir", absDir)
	return copySession(&session), nil
}

// GetActiveSession returns the session reachable through the user's active
// index. A stale index entry (missing or inactive record) is cleared.
func (s *SessionService) GetActiveSession(ctx context.Context, userID int64) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.activeByUser[userID]
	if !ok {
		return nil, domain.NewError(domain.KindSessionNotFound, fmt.Sprintf("no active session for user %d", userID), nil)
	}

	session, ok := s.sessions[token]
	if !ok || !session.Active || session.UserID != userID {
		logging.Logger.Debug("Clearing stale active session mapping", "user_id", userID, "token", token)
		delete(s.activeByUser, userID)
		return nil, domain.NewError(domain.KindSessionNotFound, fmt.Sprintf("no active session for user %d", userID), nil)
	}

	return copySession(session), nil
}

// GetSession returns the session with token, active or not
func (s *SessionService) GetSession(token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.NewError(domain.KindSessionNotFound, fmt.Sprintf("session %s not found", token), nil)
	}
	return copySession(session), nil
}

// Validate returns the session only if it exists, is active, belongs to
// userID and was used within the idle expiry window. An idle session is
// marked inactive and SessionExpired is returned.
func (s *SessionService) Validate(ctx context.Context, token string, userID int64) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.NewError(domain.KindSessionNotFound, fmt.Sprintf("session %s not found", token), nil)
	}
	if !session.Active {
		return nil, domain.NewError(domain.KindSessionNotFound, fmt.Sprintf("session %s is not active", token), nil)
	}
	if session.UserID != userID {
		return nil, domain.NewError(domain.KindSessionNotFound, fmt.Sprintf("session %s does not belong to user %d", token, userID), nil)
	}

	now := s.opts.Now()
	if session.IsIdleExpired(now, s.opts.IdleExpiry) {
		session.Active = false
		s.clearActiveLocked(session)
		s.persistLocked(ctx)

		logging.Logger.Info("Session expired", "user_id", userID, "token", token, "last_used", session.LastUsedAt)
		return nil, domain.NewError(domain.KindSessionExpired,
			fmt.Sprintf("session %s unused since %s", token, session.LastUsedAt.Format(time.RFC3339)), nil)
	}

	return copySession(session), nil
}

// Touch refreshes the session's last-used time
func (s *SessionService) Touch(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return domain.NewError(domain.KindSessionNotFound, fmt.Sprintf("session %s not found", token), nil)
	}

	session.LastUsedAt = s.opts.Now()
	s.persistLocked(ctx)
	return nil
}

// EndSession marks the session inactive. Returns false when no active
// session with token exists.
func (s *SessionService) EndSession(ctx context.Context, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok || !session.Active {
		return false
	}

	session.Active = false
	s.clearActiveLocked(session)
	s.persistLocked(ctx)

	logging.Logger.Info("Session ended", "user_id", session.UserID, "token", token)
	return true
}

// EndUserSession ends the session reachable through the user's active index
func (s *SessionService) EndUserSession(ctx context.Context, userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.activeByUser[userID]
	if !ok {
		return false
	}
	delete(s.activeByUser, userID)

	session, ok := s.sessions[token]
	if !ok || !session.Active {
		return false
	}

	session.Active = false
	s.persistLocked(ctx)

	logging.Logger.Info("Session ended", "user_id", userID, "token", token)
	return true
}

// Stats summarises the stored record set
func (s *SessionService) Stats() domain.SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.SessionStats{TotalSessions: len(s.order)}
	users := make(map[int64]bool)

	for _, token := range s.order {
		session := s.sessions[token]
		users[session.UserID] = true
		if session.Active {
			stats.ActiveSessions++
		}

		created := session.CreatedAt
		if stats.OldestCreatedAt == nil || created.Before(*stats.OldestCreatedAt) {
			stats.OldestCreatedAt = &created
		}
		if stats.NewestCreatedAt == nil || created.After(*stats.NewestCreatedAt) {
			stats.NewestCreatedAt = &created
		}
	}

	stats.UniqueUsers = len(users)
	return stats
}

// Export returns copies of every stored session in storage order
func (s *SessionService) Export() []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(func(*domain.Session) bool { return true })
}

// ExportUser returns copies of the user's sessions in storage order
func (s *SessionService) ExportUser(userID int64) []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(func(session *domain.Session) bool { return session.UserID == userID })
}

// ListUserSessions returns the user's sessions, newest first
func (s *SessionService) ListUserSessions(userID int64) []domain.Session {
	sessions := s.ExportUser(userID)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions
}

// ListActiveSessions returns every session flagged active, in storage order
func (s *SessionService) ListActiveSessions() []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(func(session *domain.Session) bool { return session.Active })
}

// Import adds records whose token is not already stored and returns how
// many were added. Invalid records are skipped. Active records claim the
// owner's active index in input order.
func (s *SessionService) Import(ctx context.Context, records []domain.Session) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for i := range records {
		record := records[i]
		if err := domain.ValidateSessionRecord(record); err != nil {
			logging.Logger.Warn("Skipping invalid session on import", "token", record.Token, "error", err)
			continue
		}
		if _, exists := s.sessions[record.Token]; exists {
			continue
		}
		s.insertLocked(&record)
		added++
	}

	if added > 0 {
		s.persistLocked(ctx)
	}

	logging.Logger.Info("Sessions imported", "offered", len(records), "added", added)
	return added
}

// LastPersistError returns the most recent durable write failure, or nil
// once a later write succeeded
func (s *SessionService) LastPersistError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPersistErr
}

func (s *SessionService) generateTokenLocked() (string, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token := s.opts.NewToken()
		if token == "" {
			continue
		}
		if _, exists := s.sessions[token]; !exists {
			return token, nil
		}
		logging.Logger.Warn("Session token collision, regenerating", "attempt", attempt+1)
	}
	return "", domain.NewError(domain.KindPersistenceFailure,
		fmt.Sprintf("failed to generate a unique session token after %d attempts", maxTokenAttempts), nil)
}

// insertLocked stores a session; an active one becomes its owner's active session
func (s *SessionService) insertLocked(session *domain.Session) {
	s.sessions[session.Token] = session
	s.order = append(s.order, session.Token)
	if session.Active {
		s.activeByUser[session.UserID] = session.Token
	}
}

// clearActiveLocked drops the owner's index entry only if it points at session
func (s *SessionService) clearActiveLocked(session *domain.Session) {
	if s.activeByUser[session.UserID] == session.Token {
		delete(s.activeByUser, session.UserID)
	}
}

func (s *SessionService) snapshotLocked(keep func(*domain.Session) bool) []domain.Session {
	sessions := make([]domain.Session, 0, len(s.order))
	for _, token := range s.order {
		if session := s.sessions[token]; keep(session) {
			sessions = append(sessions, *session)
		}
	}
	return sessions
}

// persistLocked rewrites the full record set. Failures are logged and kept
// for LastPersistError; memory stays authoritative.
func (s *SessionService) persistLocked(ctx context.Context) {
	snapshot := s.snapshotLocked(func(*domain.Session) bool { return true })

	// A caller going away must not abort the durable write
	if err := s.repo.SaveAll(context.WithoutCancel(ctx), snapshot); err != nil {
		s.lastPersistErr = domain.NewError(domain.KindPersistenceFailure, "failed to save sessions", err)
		logging.Logger.Error("Failed to persist sessions",
			"error_kind", domain.KindPersistenceFailure,
			"error", err,
			"count", len(snapshot))
		return
	}
	s.lastPersistErr = nil
}

func copySession(session *domain.Session) *domain.Session {
	c := *session
	return &c
}
