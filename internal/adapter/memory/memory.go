// Package memory implements in-memory repositories for development and
// testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"amped/internal/domain"
)

// DB implements every repository port against in-process storage.
type DB struct {
	mu       sync.Mutex
	profiles map[int64]domain.UserProfile
	metrics  []domain.HealthMetric
	users    []*domain.User
	sessions map[string]*domain.Session

	userIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]domain.UserProfile),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.MetricRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*DB)(nil)

// --- ProfileRepository ---

// GetProfile returns the stored profile, or nil when none exists.
func (db *DB) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// SaveProfile upserts the profile.
func (db *DB) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.profiles[p.ID] = p
	return nil
}

// --- MetricRepository ---

// AddMetric stores a reading.
func (db *DB) AddMetric(ctx context.Context, m domain.HealthMetric) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	m.RecordedAt = m.RecordedAt.UTC()
	db.metrics = append(db.metrics, m)
	return nil
}

// ListRecentMetrics lists the most recent readings, newest first.
func (db *DB) ListRecentMetrics(ctx context.Context, userID int64, limit int) ([]domain.HealthMetric, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.HealthMetric
	for _, m := range db.metrics {
		if m.UserID == userID {
			result = append(result, m)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].RecordedAt.After(result[j].RecordedAt)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// LatestByType returns the most recent reading per metric type.
func (db *DB) LatestByType(ctx context.Context, userID int64) (map[domain.MetricType]domain.HealthMetric, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	latest := make(map[domain.MetricType]domain.HealthMetric)
	for _, m := range db.metrics {
		if m.UserID != userID {
			continue
		}
		if prev, ok := latest[m.Type]; !ok || m.RecordedAt.After(prev.RecordedAt) {
			latest[m.Type] = m
		}
	}
	return latest, nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username, nil if not found.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID, nil if not found.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// CreateUser creates a new user.
func (db *DB) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// CountUsers returns the total number of users.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// CreateSession stores a new session.
func (db *DB) CreateSession(ctx context.Context, userID int64, token, userAgent string, expiresAt time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token, nil if not found.
func (db *DB) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if s, ok := db.sessions[token]; ok {
		return s, nil
	}
	return nil, nil
}

// DeleteSession removes a session.
func (db *DB) DeleteSession(ctx context.Context, token string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.sessions, token)
	return nil
}

// DeleteExpiredSessions removes all expired sessions.
func (db *DB) DeleteExpiredSessions(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	now := time.Now()
	for k, v := range db.sessions {
		if now.After(v.ExpiresAt) {
			delete(db.sessions, k)
		}
	}
	return nil
}
