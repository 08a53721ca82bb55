package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"amped/internal/domain"
)

// GetByUsername retrieves a user by username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE username = $1",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a user by ID.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser creates a new user.
func (d *DB) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (username, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id, username, password_hash, created_at",
		username, passwordHash, time.Now(),
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CountUsers returns the total number of users.
func (d *DB) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// CreateSession stores a new session.
func (d *DB) CreateSession(ctx context.Context, userID int64, token, userAgent string, expiresAt time.Time) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO sessions (token, user_id, user_agent, expires_at, created_at) VALUES ($1, $2, $3, $4, $5)",
		token, userID, userAgent, expiresAt, time.Now(),
	)
	return err
}

// GetByToken retrieves a session by token, nil if not found.
func (d *DB) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := d.sql.QueryRowContext(ctx,
		"SELECT token, user_id, user_agent, expires_at, created_at FROM sessions WHERE token = $1",
		token,
	).Scan(&s.Token, &s.UserID, &s.UserAgent, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession deletes a session by token.
func (d *DB) DeleteSession(ctx context.Context, token string) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1", token)
	return err
}

// DeleteExpiredSessions deletes all expired sessions.
func (d *DB) DeleteExpiredSessions(ctx context.Context) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < $1", time.Now())
	return err
}

// Ensure interfaces are met.
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.MetricRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*DB)(nil)
