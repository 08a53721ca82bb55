package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MetricType identifies one of the measured quantities the engine knows how
// to score. The set is closed: every type is bound to exactly one calculator
// formula and one valid input range.
type MetricType string

// All supported metric types.
const (
	MetricSteps                MetricType = "steps"
	MetricExerciseMinutes      MetricType = "exerciseMinutes"
	MetricActiveEnergyBurned   MetricType = "activeEnergyBurned"
	MetricSleepHours           MetricType = "sleepHours"
	MetricRestingHeartRate     MetricType = "restingHeartRate"
	MetricHeartRateVariability MetricType = "heartRateVariability"
	MetricBodyMass             MetricType = "bodyMass"
	MetricVO2Max               MetricType = "vo2Max"
	MetricOxygenSaturation     MetricType = "oxygenSaturation"
	MetricNutritionQuality     MetricType = "nutritionQuality"
	MetricStressLevel          MetricType = "stressLevel"
	MetricSmokingStatus        MetricType = "smokingStatus"
	MetricAlcoholConsumption   MetricType = "alcoholConsumption"
	MetricSocialConnections    MetricType = "socialConnectionsQuality"
)

// AllMetricTypes lists every supported metric type.
var AllMetricTypes = []MetricType{
	MetricSteps, MetricExerciseMinutes, MetricActiveEnergyBurned,
	MetricSleepHours, MetricRestingHeartRate, MetricHeartRateVariability,
	MetricBodyMass, MetricVO2Max, MetricOxygenSaturation,
	MetricNutritionQuality, MetricStressLevel, MetricSmokingStatus,
	MetricAlcoholConsumption, MetricSocialConnections,
}

// metricRanges holds the documented valid input range per metric type.
// Inputs outside the range are clamped before any formula runs, never
// rejected.
var metricRanges = map[MetricType][2]float64{
	MetricSteps:                {0, 50000},
	MetricExerciseMinutes:      {0, 1500},
	MetricActiveEnergyBurned:   {0, 3000},
	MetricSleepHours:           {0, 16},
	MetricRestingHeartRate:     {40, 120},
	MetricHeartRateVariability: {0, 200},
	MetricBodyMass:             {80, 400},
	MetricVO2Max:               {10, 90},
	MetricOxygenSaturation:     {80, 100},
	MetricNutritionQuality:     {1, 10},
	MetricStressLevel:          {1, 10},
	MetricSmokingStatus:        {1, 10},
	MetricAlcoholConsumption:   {1, 10},
	MetricSocialConnections:    {1, 10},
}

// Valid reports whether t is a supported metric type.
func (t MetricType) Valid() bool {
	_, ok := metricRanges[t]
	return ok
}

// Range returns the documented valid input range for the metric type.
func (t MetricType) Range() (min, max float64) {
	r := metricRanges[t]
	return r[0], r[1]
}

// Clamp pins v into the metric's documented valid range.
func (t MetricType) Clamp(v float64) float64 {
	r, ok := metricRanges[t]
	if !ok {
		return v
	}
	if v < r[0] {
		return r[0]
	}
	if v > r[1] {
		return r[1]
	}
	return v
}

// Provenance records how a reading was captured.
type Provenance string

// Recognised provenance values. The engine treats both identically;
// provenance is informational only.
const (
	ProvenanceSensor Provenance = "sensor"
	ProvenanceManual Provenance = "manual"
)

// HealthMetric is a single immutable reading. The engine never mutates a
// reading; computed impacts live in a separate value keyed by metric type.
type HealthMetric struct {
	ID         uuid.UUID  `json:"id"`
	UserID     int64      `json:"userId"`
	Type       MetricType `json:"type"`
	Value      float64    `json:"value"`
	RecordedAt time.Time  `json:"recordedAt"`
	Provenance Provenance `json:"provenance"`
}

// NewHealthMetric creates a reading with a fresh identifier.
func NewHealthMetric(userID int64, t MetricType, value float64, recordedAt time.Time, prov Provenance) HealthMetric {
	return HealthMetric{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       t,
		Value:      value,
		RecordedAt: recordedAt,
		Provenance: prov,
	}
}

// MetricRepository is the port for reading persistence.
type MetricRepository interface {
	AddMetric(ctx context.Context, m HealthMetric) error
	ListRecentMetrics(ctx context.Context, userID int64, limit int) ([]HealthMetric, error)
	// LatestByType returns the most recent reading per metric type for the
	// user. Types with no reading are simply absent from the map.
	LatestByType(ctx context.Context, userID int64) (map[MetricType]HealthMetric, error)
}
