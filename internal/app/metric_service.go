package app

import (
	"context"
	"errors"
	"time"

	"amped/internal/domain"
)

// MetricService encapsulates reading-acquisition use cases. Readings are
// immutable once stored; out-of-range values are kept as submitted and
// clamped at calculation time.
type MetricService struct {
	repo domain.MetricRepository
}

// NewMetricService creates a MetricService backed by the given repository.
func NewMetricService(repo domain.MetricRepository) *MetricService {
	return &MetricService{repo: repo}
}

// RecordMetric validates and stores a new reading.
func (s *MetricService) RecordMetric(ctx context.Context, userID int64, t domain.MetricType, value float64, recordedAt time.Time, prov domain.Provenance) (*domain.HealthMetric, error) {
	if !t.Valid() {
		return nil, errors.New("unknown metric type")
	}
	if prov == "" {
		prov = domain.ProvenanceManual
	}
	if prov != domain.ProvenanceSensor && prov != domain.ProvenanceManual {
		return nil, errors.New("provenance must be \"sensor\" or \"manual\"")
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	m := domain.NewHealthMetric(userID, t, value, recordedAt, prov)
	if err := s.repo.AddMetric(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListRecent returns the most recent readings up to limit.
func (s *MetricService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.HealthMetric, error) {
	return s.repo.ListRecentMetrics(ctx, userID, limit)
}
