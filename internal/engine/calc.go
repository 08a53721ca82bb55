package engine

import "amped/internal/domain"

// calculatorFunc maps a clamped metric value to signed daily minutes.
type calculatorFunc func(value float64, age int, sex domain.Sex) float64

// calculators binds every metric type to exactly one formula. Family A
// entries go through the relative-risk conversion; Family B entries yield
// minutes directly.
var calculators = map[domain.MetricType]calculatorFunc{
	domain.MetricSteps: func(v float64, age int, _ domain.Sex) float64 {
		return rrToDailyMinutes(stepsRR(v), stepsScaling, age)
	},
	domain.MetricExerciseMinutes: func(v float64, age int, _ domain.Sex) float64 {
		return rrToDailyMinutes(exerciseRR(v), exerciseScaling, age)
	},
	domain.MetricSleepHours: func(v float64, age int, _ domain.Sex) float64 {
		return rrToDailyMinutes(sleepRR(v), sleepScaling, age)
	},
	domain.MetricRestingHeartRate: func(v float64, age int, _ domain.Sex) float64 {
		return rrToDailyMinutes(restingHeartRateRR(v), heartRateScaling, age)
	},
	domain.MetricStressLevel: func(v float64, age int, _ domain.Sex) float64 {
		return rrToDailyMinutes(stressRR(v), stressScaling, age)
	},
	domain.MetricHeartRateVariability: func(v float64, age int, _ domain.Sex) float64 {
		return hrvMinutes(v, age)
	},
	domain.MetricBodyMass: func(v float64, _ int, _ domain.Sex) float64 {
		return bodyMassMinutes(v)
	},
	domain.MetricVO2Max: func(v float64, age int, sex domain.Sex) float64 {
		return vo2Minutes(v, age, sex)
	},
	domain.MetricActiveEnergyBurned: func(v float64, _ int, _ domain.Sex) float64 {
		return activeEnergyMinutes(v)
	},
	domain.MetricOxygenSaturation: func(v float64, _ int, _ domain.Sex) float64 {
		return oxygenSaturationMinutes(v)
	},
	domain.MetricAlcoholConsumption: func(v float64, _ int, _ domain.Sex) float64 {
		return alcoholMinutes(v)
	},
	domain.MetricSmokingStatus: func(v float64, _ int, _ domain.Sex) float64 {
		return smokingMinutes(v)
	},
	domain.MetricNutritionQuality: func(v float64, _ int, _ domain.Sex) float64 {
		return nutritionMinutes(v)
	},
	domain.MetricSocialConnections: func(v float64, _ int, _ domain.Sex) float64 {
		return socialMinutes(v)
	},
}

// evidenceByMetric is the static research-quality label per metric. It is a
// property of the underlying literature, never computed from the input.
var evidenceByMetric = map[domain.MetricType]domain.EvidenceStrength{
	domain.MetricSteps:                domain.EvidenceHigh,
	domain.MetricExerciseMinutes:      domain.EvidenceHigh,
	domain.MetricSleepHours:           domain.EvidenceHigh,
	domain.MetricBodyMass:             domain.EvidenceHigh,
	domain.MetricVO2Max:               domain.EvidenceHigh,
	domain.MetricSmokingStatus:        domain.EvidenceHigh,
	domain.MetricAlcoholConsumption:   domain.EvidenceHigh,
	domain.MetricRestingHeartRate:     domain.EvidenceModerate,
	domain.MetricHeartRateVariability: domain.EvidenceModerate,
	domain.MetricActiveEnergyBurned:   domain.EvidenceModerate,
	domain.MetricNutritionQuality:     domain.EvidenceModerate,
	domain.MetricStressLevel:          domain.EvidenceModerate,
	domain.MetricSocialConnections:    domain.EvidenceModerate,
	domain.MetricOxygenSaturation:     domain.EvidenceLow,
}

// ComputeImpact runs a single raw reading through its calculator. The value
// is clamped to the metric's documented valid range first, so out-of-range
// inputs behave exactly like their clamped counterparts. The second return
// is false for unknown metric types.
func ComputeImpact(t domain.MetricType, rawValue float64, age int, sex domain.Sex) (domain.MetricImpactDetail, bool) {
	calc, ok := calculators[t]
	if !ok {
		return domain.MetricImpactDetail{}, false
	}
	v := t.Clamp(rawValue)
	return domain.MetricImpactDetail{
		MetricType:         t,
		DailyImpactMinutes: calc(v, age, sex),
		Evidence:           evidenceByMetric[t],
	}, true
}
