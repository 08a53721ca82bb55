package engine

import (
	"math"
	"time"

	"amped/internal/domain"
)

// Behavior-decay rates per year of projection distance. Habits backed by
// fitness behaviors fade fastest; substance-linked impacts persist longest.
const (
	decayRateActivity  = 0.15
	decayRateSubstance = 0.05
	decayRateLifestyle = 0.10
	decayRateDefault   = 0.12
)

// projectionSegmentYears is the resolution of the decay walk.
const projectionSegmentYears = 5.0

// Projection bounds.
const maxProjectedAge = 120.0

func decayRateFor(t domain.MetricType) float64 {
	switch t {
	case domain.MetricSteps, domain.MetricExerciseMinutes:
		return decayRateActivity
	case domain.MetricSmokingStatus, domain.MetricAlcoholConsumption:
		return decayRateSubstance
	case domain.MetricSleepHours, domain.MetricNutritionQuality:
		return decayRateLifestyle
	default:
		return decayRateDefault
	}
}

// blendedDecayRate collapses the per-metric decay rates into one rate for
// the aggregate impact, weighted by each metric's absolute impact share.
func blendedDecayRate(perMetric map[domain.MetricType]domain.MetricImpactDetail) float64 {
	var num, den float64
	for t, d := range perMetric {
		w := math.Abs(d.DailyImpactMinutes)
		num += decayRateFor(t) * w
		den += w
	}
	if den == 0 {
		return decayRateDefault
	}
	return num / den
}

// Project turns an aggregate daily impact into a multi-decade life
// expectancy. It walks the remaining years in five-year segments, decaying
// the daily impact exponentially at the segment midpoint, accumulates the
// decayed minutes, weights the result by evidence quality, and clamps the
// projection into [age+1, 120].
//
// With zero impact or zero evidence the projection collapses to the
// baseline, which callers surface as "insufficient data".
func Project(profile domain.UserProfile, asOf time.Time, point domain.ImpactDataPoint) domain.LifeProjection {
	age := profile.Age(asOf)
	baseline := BaselineLifeExpectancy(age, profile.Sex)

	remaining := baseline - float64(age)
	if remaining < 1 {
		remaining = 1
	}

	dailyImpact := point.TotalImpactMinutes / point.Period.Multiplier()
	rate := blendedDecayRate(point.PerMetric)

	var totalMinutes float64
	for start := 0.0; start < remaining; start += projectionSegmentYears {
		segYears := math.Min(projectionSegmentYears, remaining-start)
		midpoint := start + segYears/2
		decayed := dailyImpact * math.Exp(-rate*midpoint)
		totalMinutes += decayed * segYears * daysPerYear
	}

	impactYears := totalMinutes / (daysPerYear * minutesPerDay)
	evidenceAdjusted := impactYears * point.EvidenceQualityScore

	projected := baseline + evidenceAdjusted
	if floor := float64(age + 1); projected < floor {
		projected = floor
	}
	if projected > maxProjectedAge {
		projected = maxProjectedAge
	}

	return domain.LifeProjection{
		ComputedAt:                   asOf,
		BaselineLifeExpectancyYears:  baseline,
		ProjectedLifeExpectancyYears: projected,
		ConfidencePercentage:         point.EvidenceQualityScore * 100,
		ConfidenceIntervalYears:      domain.ConfidenceIntervalYears,
	}
}
