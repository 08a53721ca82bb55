// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"amped/internal/domain"
)

// GetProfile retrieves the user's profile, nil if none has been saved.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := d.sql.QueryRowContext(ctx,
		"SELECT user_id, birth_year, sex, height_cm, weight_lb FROM profiles WHERE user_id = $1",
		userID,
	).Scan(&p.ID, &p.BirthYear, &p.Sex, &p.HeightCM, &p.WeightLB)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile upserts the user's profile.
func (d *DB) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles(user_id, birth_year, sex, height_cm, weight_lb) VALUES($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET birth_year = $2, sex = $3, height_cm = $4, weight_lb = $5`,
		p.ID, p.BirthYear, p.Sex, p.HeightCM, p.WeightLB,
	)
	return err
}
