package engine

import (
	"math"
	"testing"

	"amped/internal/domain"
)

func TestBaselineLifeExpectancy(t *testing.T) {
	tests := []struct {
		name string
		age  int
		sex  domain.Sex
		want float64
	}{
		{"male 30", 30, domain.SexMale, 77.8},
		{"female 30", 30, domain.SexFemale, 82.2},
		{"unspecified is the mean", 30, domain.SexUnspecified, 80.0},
		{"male 65", 65, domain.SexMale, 86.7},
		{"female newborn", 0, domain.SexFemale, 81.4},
		{"centenarian", 101, domain.SexMale, 103.1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BaselineLifeExpectancy(tc.age, tc.sex)
			if !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("BaselineLifeExpectancy(%d, %s) = %v; want %v", tc.age, tc.sex, got, tc.want)
			}
		})
	}
}

func TestBaselineExceedsAge(t *testing.T) {
	for age := 0; age <= 110; age += 5 {
		for _, sex := range []domain.Sex{domain.SexMale, domain.SexFemale, domain.SexUnspecified} {
			if b := BaselineLifeExpectancy(age, sex); b <= float64(age) {
				t.Errorf("baseline %v not beyond age %d (%s)", b, age, sex)
			}
		}
	}
}

func TestAdjustForMortality(t *testing.T) {
	// 30-year-old male: 230 per 100k -> sqrt(0.001/0.0023) compression.
	want := 10 * math.Sqrt(0.001/0.0023)
	got := AdjustForMortality(10, 30, domain.SexMale)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("AdjustForMortality(10, 30, male) = %v; want %v", got, want)
	}

	// Negative impacts compress identically.
	if got := AdjustForMortality(-10, 30, domain.SexMale); !almostEqual(got, -want, 1e-9) {
		t.Errorf("AdjustForMortality(-10, 30, male) = %v; want %v", got, -want)
	}
}

func TestAdjustForMortality_LowMortalityNeverAmplifies(t *testing.T) {
	// Teenage cohorts sit below the base rate; the floor keeps the factor
	// at exactly 1 rather than inflating their impacts.
	if got := AdjustForMortality(10, 15, domain.SexMale); !almostEqual(got, 10, 1e-9) {
		t.Errorf("AdjustForMortality(10, 15, male) = %v; want 10", got)
	}
	if got := AdjustForMortality(10, 15, domain.SexFemale); !almostEqual(got, 10, 1e-9) {
		t.Errorf("AdjustForMortality(10, 15, female) = %v; want 10", got)
	}
}

func TestAdjustForMortality_CompressesWithAge(t *testing.T) {
	// The sqrt transform shrinks the impact monotonically as cohort
	// mortality climbs through the decades.
	prev := math.Inf(1)
	for _, age := range []int{25, 35, 45, 55, 65, 75, 85, 95} {
		got := AdjustForMortality(10, age, domain.SexMale)
		if got > prev+1e-12 {
			t.Fatalf("adjustment grew with age %d: %v > %v", age, got, prev)
		}
		if got <= 0 {
			t.Fatalf("adjustment must preserve sign, got %v at age %d", got, age)
		}
		prev = got
	}
}
