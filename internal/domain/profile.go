// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Sex is the biological sex recorded on a profile. It indexes the mortality
// and life-expectancy tables and adjusts a few fitness references.
type Sex string

// Recognised Sex values.
const (
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
	SexUnspecified Sex = "unspecified"
)

// Valid reports whether s is one of the recognised values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale || s == SexUnspecified
}

// UserProfile describes the person a calculation is run for. It is supplied
// once per calculation and never mutated by the engine.
type UserProfile struct {
	ID        int64   `json:"id"`
	BirthYear int     `json:"birthYear"`
	Sex       Sex     `json:"sex"`
	HeightCM  float64 `json:"heightCm"`
	WeightLB  float64 `json:"weightLb"`
}

// Age returns the profile's whole-year age as of ref, floored at zero.
func (p UserProfile) Age(ref time.Time) int {
	age := ref.Year() - p.BirthYear
	if age < 0 {
		return 0
	}
	return age
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
	SaveProfile(ctx context.Context, p UserProfile) error
}
