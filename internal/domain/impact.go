package domain

import "time"

// EvidenceStrength labels the research quality behind a calculator's curve.
type EvidenceStrength string

// Recognised evidence strengths.
const (
	EvidenceHigh     EvidenceStrength = "high"
	EvidenceModerate EvidenceStrength = "moderate"
	EvidenceLow      EvidenceStrength = "low"
)

// ReliabilityWeight converts the qualitative label to the numeric weight
// used for aggregation. It is derived, never stored independently.
func (e EvidenceStrength) ReliabilityWeight() float64 {
	switch e {
	case EvidenceHigh:
		return 1.0
	case EvidenceModerate:
		return 0.8
	default:
		return 0.6
	}
}

// MetricImpactDetail is one calculator's output: the signed daily-minutes
// impact of a single metric plus its evidence label.
type MetricImpactDetail struct {
	MetricType         MetricType       `json:"metricType"`
	DailyImpactMinutes float64          `json:"dailyImpactMinutes"`
	Evidence           EvidenceStrength `json:"evidence"`
}

// Period selects the aggregation window for an impact calculation.
type Period string

// Recognised aggregation periods.
const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Valid reports whether p is a recognised period.
func (p Period) Valid() bool {
	return p == PeriodDay || p == PeriodMonth || p == PeriodYear
}

// Multiplier returns the fixed scaling factor for the period. Month and
// year are deliberately not calendar-accurate: the original system scales
// by flat 30 and 365 and downstream consumers expect exactly that.
func (p Period) Multiplier() float64 {
	switch p {
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 1
	}
}

// ImpactDataPoint is one aggregation result. It is created fresh per
// calculation and never mutated after construction.
type ImpactDataPoint struct {
	AsOfDate             time.Time                         `json:"asOfDate"`
	Period               Period                            `json:"period"`
	TotalImpactMinutes   float64                           `json:"totalImpactMinutes"`
	PerMetric            map[MetricType]MetricImpactDetail `json:"perMetric"`
	EvidenceQualityScore float64                           `json:"evidenceQualityScore"`
}

// ConfidenceIntervalYears is the fixed half-width reported on every
// projection.
const ConfidenceIntervalYears = 2.0

// LifeProjection is the multi-decade life-expectancy projection produced
// from an aggregate daily impact.
type LifeProjection struct {
	ComputedAt                   time.Time `json:"computedAt"`
	BaselineLifeExpectancyYears  float64   `json:"baselineLifeExpectancyYears"`
	ProjectedLifeExpectancyYears float64   `json:"projectedLifeExpectancyYears"`
	ConfidencePercentage         float64   `json:"confidencePercentage"`
	ConfidenceIntervalYears      float64   `json:"confidenceIntervalYears"`
}
