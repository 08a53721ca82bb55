package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "amped/internal/adapter/http"
	"amped/internal/adapter/memory"
	"amped/internal/adapter/postgres"
	"amped/internal/app"
	"amped/internal/domain"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	addr := env("ADDR", ":8080")

	var (
		profileRepo domain.ProfileRepository
		metricRepo  domain.MetricRepository
		userRepo    domain.UserRepository
		sessionRepo domain.SessionRepository
	)

	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		profileRepo, metricRepo, userRepo, sessionRepo = db, db, db, db
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage; data will not survive restarts")
		db := memory.New()
		profileRepo, metricRepo, userRepo, sessionRepo = db, db, db, db
	}

	profileSvc := app.NewProfileService(profileRepo)
	metricSvc := app.NewMetricService(metricRepo)
	impactSvc := app.NewImpactService(profileRepo, metricRepo)
	authSvc := app.NewAuthService(userRepo, sessionRepo)

	oidcCfg := loadOIDC()

	h := adapthttp.New(profileSvc, metricSvc, impactSvc, authSvc, oidcCfg).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func loadOIDC() adapthttp.OIDCConfig {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return adapthttp.OIDCConfig{}
	}

	cfg, err := adapthttp.NewOIDCConfig(
		context.Background(),
		issuer,
		os.Getenv("OIDC_CLIENT_ID"),
		os.Getenv("OIDC_CLIENT_SECRET"),
		os.Getenv("OIDC_REDIRECT_URL"),
	)
	if err != nil {
		log.Fatalf("oidc setup: %v", err)
	}
	log.Printf("sso enabled via %s", issuer)
	return cfg
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
