package engine

import (
	"math"

	"amped/internal/domain"
)

// Static actuarial tables keyed by decade of age and sex, shaped after US
// period life tables. Loaded once, read-only, safe for concurrent use.

// remainingYears* hold expected remaining years of life at the start of
// each decade (index age/10, last entry covers 100+).
var (
	remainingYearsMale   = [11]float64{76.3, 66.6, 57.0, 47.8, 38.7, 29.9, 21.7, 14.3, 8.2, 4.1, 2.1}
	remainingYearsFemale = [11]float64{81.4, 71.6, 61.8, 52.2, 42.7, 33.4, 24.6, 16.4, 9.7, 4.9, 2.4}
)

// mortalityPer100k* hold annual deaths per 100,000 by decade of age.
var (
	mortalityPer100kMale   = [11]float64{120, 50, 150, 230, 400, 880, 1800, 4300, 10500, 24000, 40000}
	mortalityPer100kFemale = [11]float64{100, 30, 60, 120, 240, 520, 1100, 2900, 7800, 20000, 36000}
)

// baseMortalityRate is the annual rate (fraction per year) that anchors the
// mortality adjustment.
const baseMortalityRate = 0.001

func decadeIndex(age int) int {
	if age < 0 {
		return 0
	}
	i := age / 10
	if i > 10 {
		i = 10
	}
	return i
}

// remainingYears looks up expected remaining years for the age and sex.
// Unspecified sex takes the male/female mean.
func remainingYears(age int, sex domain.Sex) float64 {
	i := decadeIndex(age)
	switch sex {
	case domain.SexMale:
		return remainingYearsMale[i]
	case domain.SexFemale:
		return remainingYearsFemale[i]
	default:
		return (remainingYearsMale[i] + remainingYearsFemale[i]) / 2
	}
}

// mortalityRate returns the annual mortality rate as a fraction per year.
func mortalityRate(age int, sex domain.Sex) float64 {
	i := decadeIndex(age)
	var per100k float64
	switch sex {
	case domain.SexMale:
		per100k = mortalityPer100kMale[i]
	case domain.SexFemale:
		per100k = mortalityPer100kFemale[i]
	default:
		per100k = (mortalityPer100kMale[i] + mortalityPer100kFemale[i]) / 2
	}
	return per100k / 100000
}

// BaselineLifeExpectancy returns the expected age at death for the profile's
// age and sex: current age plus table remaining years.
func BaselineLifeExpectancy(age int, sex domain.Sex) float64 {
	return float64(age) + remainingYears(age, sex)
}

// AdjustForMortality rescales a daily impact by the cohort's baseline
// mortality. The square root compresses the factor so low- and
// high-mortality cohorts are not linearly over- or under-weighted; cohorts
// below the base rate are never amplified.
func AdjustForMortality(dailyImpactMinutes float64, age int, sex domain.Sex) float64 {
	rate := mortalityRate(age, sex)
	if rate < baseMortalityRate {
		rate = baseMortalityRate
	}
	return dailyImpactMinutes * math.Sqrt(baseMortalityRate/rate)
}
