package postgres

import (
	"context"

	"amped/internal/domain"
)

// AddMetric inserts a new reading.
func (d *DB) AddMetric(ctx context.Context, m domain.HealthMetric) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO health_metrics(id, user_id, type, value, recorded_at, provenance) VALUES($1, $2, $3, $4, $5, $6);",
		m.ID, m.UserID, m.Type, m.Value, m.RecordedAt.UTC(), m.Provenance,
	)
	return err
}

// ListRecentMetrics returns the most recent readings up to limit, newest
// first.
func (d *DB) ListRecentMetrics(ctx context.Context, userID int64, limit int) ([]domain.HealthMetric, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, type, value, recorded_at, provenance FROM health_metrics WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.HealthMetric, 0, limit)
	for rows.Next() {
		var m domain.HealthMetric
		if err := rows.Scan(&m.ID, &m.UserID, &m.Type, &m.Value, &m.RecordedAt, &m.Provenance); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// LatestByType returns the most recent reading per metric type.
func (d *DB) LatestByType(ctx context.Context, userID int64) (map[domain.MetricType]domain.HealthMetric, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT DISTINCT ON (type) id, user_id, type, value, recorded_at, provenance
		 FROM health_metrics WHERE user_id = $1 ORDER BY type, recorded_at DESC;`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.MetricType]domain.HealthMetric)
	for rows.Next() {
		var m domain.HealthMetric
		if err := rows.Scan(&m.ID, &m.UserID, &m.Type, &m.Value, &m.RecordedAt, &m.Provenance); err != nil {
			return nil, err
		}
		out[m.Type] = m
	}
	return out, rows.Err()
}
