package storage

import "time"

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	CreatedAt  time.Time `gorm:"not null;index:idx_created_at"`
	IsActive   bool      `gorm:"not null;default:false;index:idx_user_active,priority:2"`
	LastUsed   time.Time `gorm:"not null"`
	Position   int       `gorm:"not null;default:0;index:idx_position"`
	Token      string    `gorm:"primaryKey"`
	UserID     int64     `gorm:"not null;index:idx_user_active,priority:1"`
	UserName   string    `gorm:"not null;default:''"`
	WorkingDir string    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }
