package engine

import (
	"math"

	"amped/internal/domain"
)

// interactionRule scales the impacts of target metrics when a joint
// condition on the raw (clamped) metric values holds. Rules are independent
// and compose multiplicatively in declaration order.
type interactionRule struct {
	name      string
	condition func(raw rawValues, age int) bool
	factor    func(raw rawValues) float64
	targets   []domain.MetricType
}

type rawValues map[domain.MetricType]float64

// get returns the raw value for t and whether a reading is present. Absent
// metrics can neither trigger nor receive a rule.
func (r rawValues) get(t domain.MetricType) (float64, bool) {
	v, ok := r[t]
	return v, ok
}

func constFactor(f float64) func(rawValues) float64 {
	return func(rawValues) float64 { return f }
}

// interactionRules is the full synergy/antagonism table, in the order the
// factors compose.
var interactionRules = []interactionRule{
	{
		name: "sleep-exercise synergy",
		condition: func(raw rawValues, _ int) bool {
			sleep, okS := raw.get(domain.MetricSleepHours)
			ex, okE := raw.get(domain.MetricExerciseMinutes)
			return okS && okE && sleep >= 7 && sleep <= 8 && ex > 150
		},
		factor:  constFactor(1.15),
		targets: []domain.MetricType{domain.MetricSleepHours},
	},
	{
		name: "exercise-hrv synergy",
		condition: func(raw rawValues, age int) bool {
			ex, okE := raw.get(domain.MetricExerciseMinutes)
			hrv, okH := raw.get(domain.MetricHeartRateVariability)
			return okE && okH && ex > 150 && hrv > hrvReference(age)
		},
		factor:  constFactor(1.10),
		targets: []domain.MetricType{domain.MetricHeartRateVariability},
	},
	{
		name: "nutrition-exercise synergy",
		condition: func(raw rawValues, _ int) bool {
			nq, okN := raw.get(domain.MetricNutritionQuality)
			ex, okE := raw.get(domain.MetricExerciseMinutes)
			return okN && okE && nq >= 8 && ex > 150
		},
		factor:  constFactor(1.12),
		targets: []domain.MetricType{domain.MetricNutritionQuality},
	},
	{
		name: "alcohol-hrv antagonism",
		condition: func(raw rawValues, _ int) bool {
			score, ok := raw.get(domain.MetricAlcoholConsumption)
			return ok && alcoholDrinksPerDay(score) > 2
		},
		factor:  constFactor(0.75),
		targets: []domain.MetricType{domain.MetricHeartRateVariability},
	},
	{
		name: "alcohol-sleep antagonism",
		condition: func(raw rawValues, _ int) bool {
			score, ok := raw.get(domain.MetricAlcoholConsumption)
			return ok && alcoholDrinksPerDay(score) > 2
		},
		factor:  constFactor(0.80),
		targets: []domain.MetricType{domain.MetricSleepHours},
	},
	{
		name: "stress-sleep antagonism",
		condition: func(raw rawValues, _ int) bool {
			stress, ok := raw.get(domain.MetricStressLevel)
			return ok && stress > 7
		},
		factor:  constFactor(0.85),
		targets: []domain.MetricType{domain.MetricSleepHours},
	},
	{
		name: "body-mass-activity interaction",
		condition: func(raw rawValues, _ int) bool {
			mass, ok := raw.get(domain.MetricBodyMass)
			return ok && mass > 200
		},
		factor: func(raw rawValues) float64 {
			mass, _ := raw.get(domain.MetricBodyMass)
			// 0.90 per full 20 lb over 200.
			steps := math.Floor((mass - 200) / 20)
			return math.Pow(0.90, steps)
		},
		targets: []domain.MetricType{
			domain.MetricSteps,
			domain.MetricExerciseMinutes,
			domain.MetricActiveEnergyBurned,
		},
	},
}

// ApplyInteractions returns a copy of impacts with every triggered rule's
// factor applied to its target metrics. The key set is preserved; targets
// without an impact in the input are skipped.
func ApplyInteractions(impacts map[domain.MetricType]domain.MetricImpactDetail, raw map[domain.MetricType]float64, age int) map[domain.MetricType]domain.MetricImpactDetail {
	out := make(map[domain.MetricType]domain.MetricImpactDetail, len(impacts))
	for t, d := range impacts {
		out[t] = d
	}

	rv := rawValues(raw)
	for _, rule := range interactionRules {
		if !rule.condition(rv, age) {
			continue
		}
		f := rule.factor(rv)
		for _, target := range rule.targets {
			d, ok := out[target]
			if !ok {
				continue
			}
			d.DailyImpactMinutes *= f
			out[target] = d
		}
	}
	return out
}
