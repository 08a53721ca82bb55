// Package engine implements the life impact calculation pipeline: per-metric
// dose-response calculators, cross-metric interaction adjustments, mortality
// weighting, aggregation, and the multi-decade life-expectancy projection.
//
// Everything here is a pure function of its arguments. The only package
// state is immutable lookup tables.
package engine

import "math"

// Constants shared by the relative-risk conversion.
const (
	referenceLifespanYears = 78
	daysPerYear            = 365.25
	minutesPerDay          = 24 * 60

	// baselineLifeMinutes is a reference lifespan expressed in minutes.
	baselineLifeMinutes = referenceLifespanYears * daysPerYear * minutesPerDay
)

// Impact scaling factors for the relative-risk family. Each calibrates how
// much of the mortality-risk change is attributed to the single behavior.
const (
	stepsScaling     = 0.082
	exerciseScaling  = 0.126
	sleepScaling     = 0.05
	heartRateScaling = 0.04
	stressScaling    = 0.04
)

// rrToDailyMinutes converts a relative risk into signed daily minutes of
// lifespan impact. RR below 1.0 is protective and yields a positive impact.
func rrToDailyMinutes(rr, impactScaling float64, age int) float64 {
	remainingYears := float64(referenceLifespanYears - age)
	if remainingYears < 1 {
		remainingYears = 1
	}
	riskReduction := 1 - rr
	return baselineLifeMinutes * riskReduction * impactScaling / (remainingYears * daysPerYear)
}

// stepsRR is the piecewise daily-step-count dose-response curve. The curve
// is continuous at every segment boundary and J-shaped: risk falls steeply
// up to ~10k steps, bottoms out, and creeps back up past ~12k.
func stepsRR(steps float64) float64 {
	switch {
	case steps < 2700:
		return 1.6 - 0.2*(steps/2700)
	case steps < 4000:
		ratio := (steps - 2700) / 1300
		return 1.4 - 0.1*ratio
	case steps < 10000:
		// Log interpolation: flattening benefit across the main range.
		ratio := (steps - 4000) / 6000
		return 1.3 - 0.35*math.Log(1+ratio*(math.E-1))
	case steps < 12000:
		ratio := (steps - 10000) / 2000
		return 0.95 - 0.05*ratio
	case steps < 20000:
		ratio := (steps - 12000) / 8000
		return 0.90 + 0.03*ratio
	case steps < 25000:
		ratio := (steps - 20000) / 5000
		return 0.93 + 0.07*ratio
	default:
		ratio := (steps - 25000) / 5000
		return 1.00 + 0.15*math.Min(ratio, 1)
	}
}

// exerciseRR maps weekly exercise minutes to relative risk. The benefit is
// logarithmic up to the 150 min/week guideline, then keeps shallowing.
func exerciseRR(weeklyMinutes float64) float64 {
	switch {
	case weeklyMinutes == 0:
		return 1.15
	case weeklyMinutes < 150:
		ratio := weeklyMinutes / 150
		return 1.15 - 0.38*math.Log(1+ratio*(math.E-1))
	case weeklyMinutes < 300:
		ratio := (weeklyMinutes - 150) / 150
		return 0.77 - 0.12*ratio
	default:
		ratio := (weeklyMinutes - 300) / 300
		return 0.65 - 0.05*math.Min(ratio, 1)
	}
}

// sleepRR maps nightly sleep hours to relative risk. 7-8h is the optimal
// band; both deficit and excess raise risk, with steeper slopes the further
// out the duration sits. Each branch stacks on the previous branch's edge
// value so the curve stays continuous.
func sleepRR(hours float64) float64 {
	switch {
	case hours >= 7 && hours <= 8:
		dev := math.Abs(hours - 7.5)
		if dev > 0.5 {
			dev = 0.5
		}
		return 1.0 + 0.02*(dev/0.5)
	case hours >= 6 && hours < 7:
		return 1.02 + 0.06*(7-hours)
	case hours < 6:
		return 1.08 + 0.08*(6-hours)
	case hours <= 9:
		return 1.02 + 0.06*(hours-8)
	default:
		return 1.08 + 0.10*(hours-9)
	}
}

// restingHeartRateRR is linear around a 60 bpm reference. Inputs arrive
// already clamped to [40,120].
func restingHeartRateRR(bpm float64) float64 {
	return 1.0 + ((bpm-60)/10)*0.16
}

// stressRR maps a 1-10 self-reported stress level to relative risk. Levels
// up to 3 are baseline; each higher band adds risk at an increasing slope.
func stressRR(level float64) float64 {
	switch {
	case level <= 3:
		return 1.0
	case level <= 6:
		return 1.0 + 0.03*(level-3)
	case level <= 8:
		return 1.09 + 0.05*(level-6)
	default:
		return 1.19 + 0.08*(level-8)
	}
}
