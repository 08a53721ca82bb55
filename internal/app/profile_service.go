// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"time"

	"amped/internal/domain"
)

// ErrProfileNotFound indicates that the user has not set up a profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService encapsulates user-profile use cases.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetProfile returns the user's profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// SaveProfile validates and upserts the user's profile.
func (s *ProfileService) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	now := time.Now()
	if p.BirthYear < 1900 || p.BirthYear > now.Year() {
		return errors.New("birthYear must be between 1900 and the current year")
	}
	if p.Sex == "" {
		p.Sex = domain.SexUnspecified
	}
	if !p.Sex.Valid() {
		return errors.New("sex must be \"male\", \"female\" or \"unspecified\"")
	}
	if p.HeightCM <= 0 {
		return errors.New("heightCm must be > 0")
	}
	if p.WeightLB <= 0 {
		return errors.New("weightLb must be > 0")
	}
	return s.repo.SaveProfile(ctx, p)
}
