package app

import (
	"context"
	"errors"
	"time"

	"amped/internal/domain"
	"amped/internal/engine"
)

// ImpactService wires stored readings and the profile into the calculation
// engine. Results are computed fresh per request; nothing is cached.
type ImpactService struct {
	profiles domain.ProfileRepository
	metrics  domain.MetricRepository
}

// NewImpactService creates an ImpactService backed by the given repositories.
func NewImpactService(profiles domain.ProfileRepository, metrics domain.MetricRepository) *ImpactService {
	return &ImpactService{profiles: profiles, metrics: metrics}
}

// GetImpact computes the aggregate impact for the user over the requested
// period, plus the battery level derived from the daily total. An empty
// reading set is not an error: it yields a zero impact with zero evidence
// quality, which callers surface as "insufficient data".
func (s *ImpactService) GetImpact(ctx context.Context, userID int64, period domain.Period) (*domain.ImpactDataPoint, float64, error) {
	if !period.Valid() {
		return nil, 0, errors.New("period must be \"day\", \"month\" or \"year\"")
	}

	profile, latest, err := s.load(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	point, battery := engine.CalculateTotalImpact(*profile, time.Now(), latest, period)
	return &point, battery, nil
}

// GetProjection computes the life-expectancy projection from the user's
// current daily impact.
func (s *ImpactService) GetProjection(ctx context.Context, userID int64) (*domain.LifeProjection, error) {
	profile, latest, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	point, _ := engine.CalculateTotalImpact(*profile, now, latest, domain.PeriodDay)
	proj := engine.Project(*profile, now, point)
	return &proj, nil
}

func (s *ImpactService) load(ctx context.Context, userID int64) (*domain.UserProfile, []domain.HealthMetric, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, ErrProfileNotFound
	}

	byType, err := s.metrics.LatestByType(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	latest := make([]domain.HealthMetric, 0, len(byType))
	for _, m := range byType {
		latest = append(latest, m)
	}
	return profile, latest, nil
}
