package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"amped/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

const sessionTTL = 24 * time.Hour

// AuthService handles authentication and session management.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login authenticates a user and creates a session bound to the user agent.
func (s *AuthService) Login(ctx context.Context, username, password, userAgent string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.createSession(ctx, user.ID, userAgent)
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

// ValidateSession checks that a session token is valid and matches the
// user agent it was created with.
func (s *AuthService) ValidateSession(ctx context.Context, token, userAgent string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) || session.UserAgent != userAgent {
		_ = s.sessions.DeleteSession(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateInitialUser creates the first user if no users exist.
func (s *AuthService) CreateInitialUser(ctx context.Context, username, password string) error {
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("users already exist")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.CreateUser(ctx, username, string(hash))
	return err
}

// LoginWithUser creates a session for an already authenticated identity
// (e.g. via SSO), auto-provisioning the account on first sight. SSO users
// carry an empty password hash and cannot log in with a password.
func (s *AuthService) LoginWithUser(ctx context.Context, username, userAgent string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		user, err = s.users.CreateUser(ctx, username, "")
		if err != nil {
			// A concurrent callback may have created the account first.
			user, err = s.users.GetByUsername(ctx, username)
			if err != nil || user == nil {
				return "", err
			}
		}
	}

	return s.createSession(ctx, user.ID, userAgent)
}

func (s *AuthService) createSession(ctx context.Context, userID int64, userAgent string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(sessionTTL)
	if err := s.sessions.CreateSession(ctx, userID, token, userAgent, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
