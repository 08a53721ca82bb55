package domain

import (
	"context"
	"time"
)

// User represents an authenticated account in the system.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session represents an active login session.
type Session struct {
	Token     string
	UserID    int64
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	CountUsers(ctx context.Context) (int, error)
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	CreateSession(ctx context.Context, userID int64, token, userAgent string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) error
}
