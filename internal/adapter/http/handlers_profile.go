package adapthttp

import (
	"errors"
	"net/http"

	"amped/internal/app"
	"amped/internal/domain"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := s.profile.GetProfile(r.Context(), user.ID)
		if errors.Is(err, app.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		var body struct {
			BirthYear int        `json:"birthYear"`
			Sex       domain.Sex `json:"sex"`
			HeightCM  float64    `json:"heightCm"`
			WeightLB  float64    `json:"weightLb"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		p := domain.UserProfile{
			ID:        user.ID,
			BirthYear: body.BirthYear,
			Sex:       body.Sex,
			HeightCM:  body.HeightCM,
			WeightLB:  body.WeightLB,
		}
		if err := s.profile.SaveProfile(r.Context(), p); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
