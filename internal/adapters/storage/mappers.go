package storage

import (
	"codebridge/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	return domain.Session{
		Active:     m.IsActive,
		CreatedAt:  m.CreatedAt.UTC(),
		LastUsedAt: m.LastUsed.UTC(),
		Token:      m.Token,
		UserID:     m.UserID,
		UserName:   m.UserName,
		WorkingDir: m.WorkingDir,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session, position int) SessionModel {
	return SessionModel{
		CreatedAt:  s.CreatedAt.UTC(),
		IsActive:   s.Active,
		LastUsed:   s.LastUsedAt.UTC(),
		Position:   position,
		Token:      s.Token,
		UserID:     s.UserID,
		UserName:   s.UserName,
		WorkingDir: s.WorkingDir,
	}
}
