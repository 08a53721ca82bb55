package engine

import (
	"time"

	"amped/internal/domain"
)

// CalculateTotalImpact runs the full pipeline over one set of readings:
// per-metric calculators, interaction adjustments, mortality weighting,
// evidence-weighted summation, and period scaling. It returns the
// aggregation result plus the battery level derived from the daily total.
//
// Readings with unknown types are ignored; when a type appears more than
// once, the most recently recorded reading wins. A metric with no reading
// is simply absent, never a zero-impact placeholder.
func CalculateTotalImpact(profile domain.UserProfile, asOf time.Time, metrics []domain.HealthMetric, period domain.Period) (domain.ImpactDataPoint, float64) {
	age := profile.Age(asOf)

	raw := make(map[domain.MetricType]float64, len(metrics))
	recordedAt := make(map[domain.MetricType]time.Time, len(metrics))
	impacts := make(map[domain.MetricType]domain.MetricImpactDetail, len(metrics))

	for _, m := range metrics {
		if !m.Type.Valid() {
			continue
		}
		if prev, ok := recordedAt[m.Type]; ok && prev.After(m.RecordedAt) {
			continue
		}
		detail, ok := ComputeImpact(m.Type, m.Value, age, profile.Sex)
		if !ok {
			continue
		}
		raw[m.Type] = m.Type.Clamp(m.Value)
		recordedAt[m.Type] = m.RecordedAt
		impacts[m.Type] = detail
	}

	impacts = ApplyInteractions(impacts, raw, age)

	for t, d := range impacts {
		d.DailyImpactMinutes = AdjustForMortality(d.DailyImpactMinutes, age, profile.Sex)
		impacts[t] = d
	}

	var totalDaily, weightSum float64
	for _, d := range impacts {
		w := d.Evidence.ReliabilityWeight()
		totalDaily += d.DailyImpactMinutes * w
		weightSum += w
	}

	evidenceQuality := 0.0
	if len(impacts) > 0 {
		evidenceQuality = weightSum / float64(len(impacts))
	}

	point := domain.ImpactDataPoint{
		AsOfDate:             asOf,
		Period:               period,
		TotalImpactMinutes:   totalDaily * period.Multiplier(),
		PerMetric:            impacts,
		EvidenceQualityScore: evidenceQuality,
	}
	return point, BatteryLevel(totalDaily)
}

// BatteryLevel normalizes a total daily impact into a 0-100 display value:
// zero impact is 50, and ±120 min/day pins the extremes.
func BatteryLevel(totalDailyImpactMinutes float64) float64 {
	level := 50 + (totalDailyImpactMinutes/120)*50
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
