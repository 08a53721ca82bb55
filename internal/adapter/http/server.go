// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"amped/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	profile *app.ProfileService
	metric  *app.MetricService
	impact  *app.ImpactService
	authSvc *app.AuthService

	oidcConfig OIDCConfig

	// disableAuth skips session validation and injects a fixed dev user.
	// For tests only.
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(ps *app.ProfileService, ms *app.MetricService, is *app.ImpactService, as *app.AuthService, oidcCfg OIDCConfig) *Server {
	return &Server{profile: ps, metric: ms, impact: is, authSvc: as, oidcConfig: oidcCfg}
}

// WithoutAuth disables session validation. For tests only.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/config", s.handleConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	authed := http.NewServeMux()
	authed.HandleFunc("/profile", s.handleProfile)
	authed.HandleFunc("/metrics", s.handleMetrics)
	authed.HandleFunc("/metrics/recent", s.handleMetricsRecent)
	authed.HandleFunc("/impact", s.handleImpact)
	authed.HandleFunc("/projection", s.handleProjection)
	api.Handle("/", s.authMiddleware(authed))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(withNoCache(root))
}
