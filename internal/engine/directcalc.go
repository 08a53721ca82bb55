package engine

import (
	"math"

	"amped/internal/domain"
)

// Family B calculators: a reference value (fixed or age/sex-adjusted) and a
// linear or piecewise-linear slope yield daily minutes directly, usually
// with a plateau cap so extreme readings cannot extrapolate without bound.

// hrvReference is the age-adjusted expected heart-rate variability in ms.
func hrvReference(age int) float64 {
	ref := 40.0
	if age > 30 {
		ref -= float64(age-30) * 0.3
	}
	return ref
}

// hrvMinutes awards ±17.4 min per 10 ms deviation from the age reference,
// plateaued at ±70 ms.
func hrvMinutes(ms float64, age int) float64 {
	dev := ms - hrvReference(age)
	dev = capDeviation(dev, 70)
	return dev / 10 * 17.4
}

// bodyMassMinutes is linear around a 160 lb reference: lighter gains,
// heavier loses. The input range clamp (80-400 lb) bounds it.
func bodyMassMinutes(lb float64) float64 {
	return (160 - lb) / 20 * 17.4
}

// vo2Reference is the age-adjusted expected VO2max, scaled down for female
// physiology.
func vo2Reference(age int, sex domain.Sex) float64 {
	ref := 40.0
	if age > 30 {
		ref -= float64(age-30) * 0.4
	}
	if sex == domain.SexFemale {
		ref *= 0.88
	}
	return ref
}

// vo2Minutes awards ±21.8 min per 5 ml/kg/min deviation from the reference,
// plateaued at ±20 ml/kg/min.
func vo2Minutes(v float64, age int, sex domain.Sex) float64 {
	dev := v - vo2Reference(age, sex)
	dev = capDeviation(dev, 20)
	return dev / 5 * 21.8
}

// activeEnergyMinutes is linear around a 400 kcal/day reference, plateaued
// at ±400 kcal.
func activeEnergyMinutes(kcal float64) float64 {
	dev := capDeviation(kcal-400, 400)
	return dev / 100 * 8.7
}

// oxygenSaturationMinutes penalizes deviation from 98% in both directions:
// readings persistently above the reference are as suspect as those below.
func oxygenSaturationMinutes(pct float64) float64 {
	return -math.Abs(pct-98) / 2 * 8.7
}

// alcoholDrinksPerDay maps the 1-10 questionnaire score to average drinks
// per day. Higher scores mean less drinking; a score of 1 is five drinks a
// day.
var alcoholDrinksByScore = [11]float64{
	0,   // unused; scores start at 1
	5, 4, 3, 2.5, 2, 1.5, 1, 0.5, 0, 0,
}

func alcoholDrinksPerDay(score float64) float64 {
	i := int(math.Round(score))
	if i < 1 {
		i = 1
	}
	if i > 10 {
		i = 10
	}
	return alcoholDrinksByScore[i]
}

// alcoholMinutes costs 34.8 min per daily drink against a zero-drink
// reference.
func alcoholMinutes(score float64) float64 {
	drinks := alcoholDrinksPerDay(score)
	if drinks > 10 {
		drinks = 10
	}
	return -drinks * 34.8
}

// smokingCategory buckets the 1-10 questionnaire score into the discrete
// smoking statuses.
type smokingCategory int

const (
	smokingNever smokingCategory = iota
	smokingFormer
	smokingLight
	smokingHeavy
)

func smokingCategoryForScore(score float64) smokingCategory {
	switch {
	case score >= 8:
		return smokingNever
	case score >= 5:
		return smokingFormer
	case score >= 3:
		return smokingLight
	default:
		return smokingHeavy
	}
}

// smokingMinutesByCategory is a fixed table; smoking impact is discrete,
// not a slope.
var smokingMinutesByCategory = map[smokingCategory]float64{
	smokingNever:  0,
	smokingFormer: -116.1,
	smokingLight:  -232.2,
	smokingHeavy:  -348.3,
}

func smokingMinutes(score float64) float64 {
	return smokingMinutesByCategory[smokingCategoryForScore(score)]
}

// nutritionMinutes scores diet quality on a 1-10 scale against a reference
// of 7: the penalty below 7 is steeper than the bonus above 8, and 7-8 is
// neutral.
func nutritionMinutes(quality float64) float64 {
	switch {
	case quality < 7:
		return -(7 - quality) * (6.9 / 6)
	case quality <= 8:
		return 0
	default:
		return (quality - 8) * (3.3 / 2)
	}
}

// socialMinutes is linear around a reference of 8 on the 1-10 connection
// quality scale.
func socialMinutes(quality float64) float64 {
	return (quality - 8) * 2.9
}

// capDeviation pins dev into [-limit, limit].
func capDeviation(dev, limit float64) float64 {
	if dev > limit {
		return limit
	}
	if dev < -limit {
		return -limit
	}
	return dev
}
