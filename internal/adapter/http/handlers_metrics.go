package adapthttp

import (
	"net/http"
	"time"

	"amped/internal/domain"
)

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, ok := userFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		Type       domain.MetricType `json:"type"`
		Value      float64           `json:"value"`
		RecordedAt time.Time         `json:"recordedAt"`
		Provenance domain.Provenance `json:"provenance"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	m, err := s.metric.RecordMetric(r.Context(), user.ID, body.Type, body.Value, body.RecordedAt, body.Provenance)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleMetricsRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, ok := userFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := intQuery(r, "limit", 50)
	metrics, err := s.metric.ListRecent(r.Context(), user.ID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if metrics == nil {
		metrics = []domain.HealthMetric{}
	}
	writeJSON(w, http.StatusOK, metrics)
}
