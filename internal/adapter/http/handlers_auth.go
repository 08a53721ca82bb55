package adapthttp

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"amped/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	token, err := s.authSvc.Login(r.Context(), body.Username, body.Password, r.UserAgent())
	if errors.Is(err, app.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	setSessionCookie(w, token, 86400)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie("session"); err == nil {
		_ = s.authSvc.Logout(r.Context(), cookie.Value)
	}

	setSessionCookie(w, "", -1)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSetupUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.authSvc.CreateInitialUser(r.Context(), body.Username, body.Password); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sso_enabled": s.oidcConfig.Enabled})
}

func (s *Server) handleSSOLogin(w http.ResponseWriter, r *http.Request) {
	if !s.oidcConfig.Enabled {
		http.Error(w, "sso disabled", http.StatusNotFound)
		return
	}
	state := generateState()
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode, // Lax required for cross-site redirect returns
		MaxAge:   300,
	})
	http.Redirect(w, r, s.oidcConfig.OAuth2Config.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleSSOCallback(w http.ResponseWriter, r *http.Request) {
	if !s.oidcConfig.Enabled {
		http.Error(w, "sso disabled", http.StatusNotFound)
		return
	}

	state, err := r.Cookie("oauth_state")
	if err != nil || r.URL.Query().Get("state") != state.Value {
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "oauth_state", MaxAge: -1, Path: "/"})

	token, err := s.oidcConfig.OAuth2Config.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, "failed to exchange token", http.StatusInternalServerError)
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		http.Error(w, "no id_token", http.StatusInternalServerError)
		return
	}

	idToken, err := s.oidcConfig.Provider.Verifier(&oidc.Config{ClientID: s.oidcConfig.OAuth2Config.ClientID}).Verify(r.Context(), rawIDToken)
	if err != nil {
		http.Error(w, "failed to verify token", http.StatusInternalServerError)
		return
	}

	var claims struct {
		Email string `json:"email"`
		Sub   string `json:"sub"`
	}
	if err = idToken.Claims(&claims); err != nil {
		http.Error(w, "failed to parse claims", http.StatusInternalServerError)
		return
	}

	username := claims.Email
	if username == "" {
		username = claims.Sub
	}

	sessionToken, err := s.authSvc.LoginWithUser(r.Context(), username, r.UserAgent())
	if err != nil {
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, sessionToken, 86400)
	http.Redirect(w, r, "/", http.StatusFound)
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
}

func generateState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
