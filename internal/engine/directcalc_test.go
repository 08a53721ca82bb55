package engine

import (
	"testing"

	"amped/internal/domain"
)

func TestHRVMinutes(t *testing.T) {
	tests := []struct {
		name string
		ms   float64
		age  int
		want float64
	}{
		{"at reference", 40, 30, 0},
		{"ten above reference", 50, 30, 17.4},
		{"ten below reference", 30, 30, -17.4},
		{"age-adjusted reference", 37, 40, 0},    // 40 - 10*0.3
		{"plateau cap", 200, 30, 7 * 17.4},       // deviation capped at 70
		{"young age keeps reference", 40, 20, 0}, // no adjustment below 30
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := hrvMinutes(tc.ms, tc.age)
			if !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("hrvMinutes(%v, %d) = %v; want %v", tc.ms, tc.age, got, tc.want)
			}
		})
	}
}

func TestBodyMassMinutes(t *testing.T) {
	if got := bodyMassMinutes(160); !almostEqual(got, 0, 1e-9) {
		t.Errorf("reference weight should be neutral, got %v", got)
	}
	if got := bodyMassMinutes(180); !almostEqual(got, -17.4, 1e-9) {
		t.Errorf("bodyMassMinutes(180) = %v; want -17.4", got)
	}
	if got := bodyMassMinutes(140); !almostEqual(got, 17.4, 1e-9) {
		t.Errorf("bodyMassMinutes(140) = %v; want 17.4", got)
	}
}

func TestVO2Minutes(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		age  int
		sex  domain.Sex
		want float64
	}{
		{"male at reference", 40, 30, domain.SexMale, 0},
		{"male five above", 45, 30, domain.SexMale, 21.8},
		{"female reference scaled", 35.2, 30, domain.SexFemale, 0}, // 40*0.88
		{"age-adjusted male", 36, 40, domain.SexMale, 0},           // 40 - 10*0.4
		{"plateau cap", 90, 30, domain.SexMale, 4 * 21.8},          // deviation capped at 20
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := vo2Minutes(tc.v, tc.age, tc.sex)
			if !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("vo2Minutes(%v, %d, %s) = %v; want %v", tc.v, tc.age, tc.sex, got, tc.want)
			}
		})
	}
}

func TestActiveEnergyMinutes(t *testing.T) {
	if got := activeEnergyMinutes(400); !almostEqual(got, 0, 1e-9) {
		t.Errorf("reference energy should be neutral, got %v", got)
	}
	if got := activeEnergyMinutes(500); !almostEqual(got, 8.7, 1e-9) {
		t.Errorf("activeEnergyMinutes(500) = %v; want 8.7", got)
	}
	// Plateau: 400 kcal deviation cap.
	if got := activeEnergyMinutes(3000); !almostEqual(got, 4*8.7, 1e-9) {
		t.Errorf("activeEnergyMinutes(3000) = %v; want %v", got, 4*8.7)
	}
}

func TestOxygenSaturationMinutes_PenalizesBothDirections(t *testing.T) {
	if got := oxygenSaturationMinutes(98); !almostEqual(got, 0, 1e-9) {
		t.Errorf("reference saturation should be neutral, got %v", got)
	}
	low := oxygenSaturationMinutes(94)
	high := oxygenSaturationMinutes(100)
	if low >= 0 || high >= 0 {
		t.Errorf("both directions must penalize: low=%v high=%v", low, high)
	}
	if !almostEqual(low, -2*8.7, 1e-9) {
		t.Errorf("oxygenSaturationMinutes(94) = %v; want %v", low, -2*8.7)
	}
}

func TestAlcoholBucketMapping(t *testing.T) {
	tests := []struct {
		score  float64
		drinks float64
	}{
		{1, 5},
		{2, 4},
		{5, 2},
		{7, 1},
		{9, 0},
		{10, 0},
	}
	for _, tc := range tests {
		if got := alcoholDrinksPerDay(tc.score); !almostEqual(got, tc.drinks, 1e-9) {
			t.Errorf("alcoholDrinksPerDay(%v) = %v; want %v", tc.score, got, tc.drinks)
		}
	}

	if got := alcoholMinutes(1); !almostEqual(got, -5*34.8, 1e-9) {
		t.Errorf("alcoholMinutes(1) = %v; want %v", got, -5*34.8)
	}
	if got := alcoholMinutes(10); !almostEqual(got, 0, 1e-9) {
		t.Errorf("alcoholMinutes(10) = %v; want 0", got)
	}
}

func TestSmokingBuckets(t *testing.T) {
	tests := []struct {
		score float64
		want  float64
	}{
		{10, 0},
		{8, 0},
		{7, -116.1},
		{5, -116.1},
		{4, -232.2},
		{3, -232.2},
		{1, -348.3},
	}
	for _, tc := range tests {
		if got := smokingMinutes(tc.score); !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("smokingMinutes(%v) = %v; want %v", tc.score, got, tc.want)
		}
	}
}

func TestNutritionMinutes(t *testing.T) {
	tests := []struct {
		quality float64
		want    float64
	}{
		{7, 0},
		{8, 0},
		{7.5, 0},
		{1, -6.9},         // (7-1) * 6.9/6
		{4, -3 * 6.9 / 6},
		{10, 3.3},         // (10-8) * 3.3/2
		{9, 3.3 / 2},
	}
	for _, tc := range tests {
		if got := nutritionMinutes(tc.quality); !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("nutritionMinutes(%v) = %v; want %v", tc.quality, got, tc.want)
		}
	}
}

func TestSocialMinutes(t *testing.T) {
	if got := socialMinutes(8); !almostEqual(got, 0, 1e-9) {
		t.Errorf("reference quality should be neutral, got %v", got)
	}
	if got := socialMinutes(10); !almostEqual(got, 2*2.9, 1e-9) {
		t.Errorf("socialMinutes(10) = %v; want %v", got, 2*2.9)
	}
	if got := socialMinutes(1); !almostEqual(got, -7*2.9, 1e-9) {
		t.Errorf("socialMinutes(1) = %v; want %v", got, -7*2.9)
	}
}
