package adapthttp

import (
	"errors"
	"net/http"

	"amped/internal/app"
	"amped/internal/domain"
)

func (s *Server) handleImpact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, ok := userFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	period := domain.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = domain.PeriodDay
	}

	point, battery, err := s.impact.GetImpact(r.Context(), user.ID, period)
	if errors.Is(err, app.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"impact":       point,
		"batteryLevel": battery,
	})
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, ok := userFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	proj, err := s.impact.GetProjection(r.Context(), user.ID)
	if errors.Is(err, app.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}
