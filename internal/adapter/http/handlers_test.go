package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapthttp "amped/internal/adapter/http"
	"amped/internal/app"
	"amped/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock repositories (function-fields pattern)
// ---------------------------------------------------------------------------

type mockProfileRepo struct {
	getFn  func(ctx context.Context, userID int64) (*domain.UserProfile, error)
	saveFn func(ctx context.Context, p domain.UserProfile) error
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return &domain.UserProfile{ID: userID, BirthYear: 1980, Sex: domain.SexMale, HeightCM: 180, WeightLB: 170}, nil
}

func (m *mockProfileRepo) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, p)
	}
	return nil
}

type mockMetricRepo struct {
	addFn    func(ctx context.Context, m domain.HealthMetric) error
	listFn   func(ctx context.Context, userID int64, limit int) ([]domain.HealthMetric, error)
	latestFn func(ctx context.Context, userID int64) (map[domain.MetricType]domain.HealthMetric, error)
}

func (m *mockMetricRepo) AddMetric(ctx context.Context, hm domain.HealthMetric) error {
	if m.addFn != nil {
		return m.addFn(ctx, hm)
	}
	return nil
}

func (m *mockMetricRepo) ListRecentMetrics(ctx context.Context, userID int64, limit int) ([]domain.HealthMetric, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return []domain.HealthMetric{
		domain.NewHealthMetric(userID, domain.MetricSteps, 8000, time.Now(), domain.ProvenanceSensor),
	}, nil
}

func (m *mockMetricRepo) LatestByType(ctx context.Context, userID int64) (map[domain.MetricType]domain.HealthMetric, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, userID)
	}
	return map[domain.MetricType]domain.HealthMetric{}, nil
}

type mockUserRepo struct{}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	return &domain.User{ID: 1, Username: username}, nil
}

func (m *mockUserRepo) CountUsers(ctx context.Context) (int, error) {
	return 0, nil
}

type mockSessionRepo struct{}

func (m *mockSessionRepo) CreateSession(ctx context.Context, userID int64, token, userAgent string, expiresAt time.Time) error {
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	return nil, nil
}

func (m *mockSessionRepo) DeleteSession(ctx context.Context, token string) error {
	return nil
}

func (m *mockSessionRepo) DeleteExpiredSessions(ctx context.Context) error {
	return nil
}

// ---------------------------------------------------------------------------
// Test-server helper
// ---------------------------------------------------------------------------

func newTestServer(t *testing.T, pr *mockProfileRepo, mr *mockMetricRepo) *httptest.Server {
	t.Helper()

	if pr == nil {
		pr = &mockProfileRepo{}
	}
	if mr == nil {
		mr = &mockMetricRepo{}
	}

	ps := app.NewProfileService(pr)
	ms := app.NewMetricService(mr)
	is := app.NewImpactService(pr, mr)
	authSvc := app.NewAuthService(&mockUserRepo{}, &mockSessionRepo{})

	srv := adapthttp.New(ps, ms, is, authSvc, adapthttp.OIDCConfig{}).WithoutAuth()
	return httptest.NewServer(srv.Handler())
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return m
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
}

func TestProfileGet(t *testing.T) {
	ts := newTestServer(t, &mockProfileRepo{
		getFn: func(_ context.Context, userID int64) (*domain.UserProfile, error) {
			return &domain.UserProfile{ID: userID, BirthYear: 1990, Sex: domain.SexFemale, HeightCM: 165, WeightLB: 140}, nil
		},
	}, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/profile")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["birthYear"] != float64(1990) {
		t.Fatalf("expected birthYear=1990, got %v", body["birthYear"])
	}
	if body["sex"] != "female" {
		t.Fatalf("expected sex=female, got %v", body["sex"])
	}
}

func TestProfileGetNotFound(t *testing.T) {
	ts := newTestServer(t, &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.UserProfile, error) {
			return nil, nil
		},
	}, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/profile")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestProfilePut(t *testing.T) {
	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{
			name:       "valid",
			payload:    map[string]any{"birthYear": 1985, "sex": "male", "heightCm": 178, "weightLb": 175},
			wantStatus: http.StatusOK,
		},
		{
			name:       "sex defaults to unspecified",
			payload:    map[string]any{"birthYear": 1985, "heightCm": 178, "weightLb": 175},
			wantStatus: http.StatusOK,
		},
		{
			name:       "birth year too old",
			payload:    map[string]any{"birthYear": 1850, "sex": "male", "heightCm": 178, "weightLb": 175},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown sex",
			payload:    map[string]any{"birthYear": 1985, "sex": "other", "heightCm": 178, "weightLb": 175},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero height",
			payload:    map[string]any{"birthYear": 1985, "sex": "male", "heightCm": 0, "weightLb": 175},
			wantStatus: http.StatusBadRequest,
		},
	}

	ts := newTestServer(t, nil, nil)
	defer ts.Close()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := json.Marshal(tc.payload)
			req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/profile", bytes.NewReader(b))
			if err != nil {
				t.Fatalf("new request: %v", err)
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != tc.wantStatus {
				body := decodeBody(t, resp)
				t.Fatalf("expected %d, got %d; body: %v", tc.wantStatus, resp.StatusCode, body)
			}
		})
	}
}

func TestMetricsPost(t *testing.T) {
	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{
			name:       "valid steps",
			payload:    map[string]any{"type": "steps", "value": 10000},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "valid with provenance",
			payload:    map[string]any{"type": "sleepHours", "value": 7.5, "provenance": "sensor"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "out of range kept",
			payload:    map[string]any{"type": "steps", "value": 90000},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown type",
			payload:    map[string]any{"type": "bloodType", "value": 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad provenance",
			payload:    map[string]any{"type": "steps", "value": 8000, "provenance": "guessed"},
			wantStatus: http.StatusBadRequest,
		},
	}

	ts := newTestServer(t, nil, nil)
	defer ts.Close()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := json.Marshal(tc.payload)
			resp, err := http.Post(ts.URL+"/api/metrics", "application/json", bytes.NewReader(b))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != tc.wantStatus {
				body := decodeBody(t, resp)
				t.Fatalf("expected %d, got %d; body: %v", tc.wantStatus, resp.StatusCode, body)
			}

			if tc.wantStatus == http.StatusCreated {
				body := decodeBody(t, resp)
				if _, ok := body["id"]; !ok {
					t.Fatal("response missing 'id' field")
				}
			}
		})
	}
}

func TestMetricsRecent(t *testing.T) {
	readings := []domain.HealthMetric{
		domain.NewHealthMetric(1, domain.MetricSteps, 10000, time.Now(), domain.ProvenanceSensor),
		domain.NewHealthMetric(1, domain.MetricSleepHours, 7.5, time.Now().Add(-time.Hour), domain.ProvenanceManual),
	}
	ts := newTestServer(t, nil, &mockMetricRepo{
		listFn: func(_ context.Context, _ int64, limit int) ([]domain.HealthMetric, error) {
			if limit < len(readings) {
				return readings[:limit], nil
			}
			return readings, nil
		},
	})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/metrics/recent?limit=5")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var arr []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&arr); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if len(arr) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(arr))
	}
}

func TestImpactGet(t *testing.T) {
	ts := newTestServer(t, nil, &mockMetricRepo{
		latestFn: func(_ context.Context, userID int64) (map[domain.MetricType]domain.HealthMetric, error) {
			return map[domain.MetricType]domain.HealthMetric{
				domain.MetricSteps: domain.NewHealthMetric(userID, domain.MetricSteps, 10000, time.Now(), domain.ProvenanceSensor),
			}, nil
		},
	})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/impact")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	impact, ok := body["impact"].(map[string]any)
	if !ok {
		t.Fatal("response missing 'impact' object")
	}
	if impact["period"] != "day" {
		t.Fatalf("expected default period day, got %v", impact["period"])
	}
	battery, ok := body["batteryLevel"].(float64)
	if !ok {
		t.Fatal("response missing 'batteryLevel' field")
	}
	if battery <= 50 {
		t.Fatalf("expected battery above 50 for 10000 steps, got %v", battery)
	}
}

func TestImpactGetBadPeriod(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/impact?period=week")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestImpactGetNoProfile(t *testing.T) {
	ts := newTestServer(t, &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.UserProfile, error) {
			return nil, nil
		},
	}, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/impact")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestProjectionGet(t *testing.T) {
	ts := newTestServer(t, nil, &mockMetricRepo{
		latestFn: func(_ context.Context, userID int64) (map[domain.MetricType]domain.HealthMetric, error) {
			return map[domain.MetricType]domain.HealthMetric{
				domain.MetricExerciseMinutes: domain.NewHealthMetric(userID, domain.MetricExerciseMinutes, 200, time.Now(), domain.ProvenanceSensor),
			}, nil
		},
	})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/projection")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	baseline, ok := body["baselineLifeExpectancyYears"].(float64)
	if !ok {
		t.Fatal("response missing 'baselineLifeExpectancyYears' field")
	}
	projected, ok := body["projectedLifeExpectancyYears"].(float64)
	if !ok {
		t.Fatal("response missing 'projectedLifeExpectancyYears' field")
	}
	if projected <= baseline {
		t.Fatalf("expected projection above baseline for regular exercise, got %v vs %v", projected, baseline)
	}
	if body["confidenceIntervalYears"] != float64(2) {
		t.Fatalf("expected fixed 2-year interval, got %v", body["confidenceIntervalYears"])
	}
}

func TestAuthConfig(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/auth/config")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["sso_enabled"] != false {
		t.Fatalf("expected sso_enabled=false, got %v", body["sso_enabled"])
	}
}

func TestSSOLoginDisabled(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/auth/sso/login")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	defer ts.Close()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"DELETE profile", http.MethodDelete, "/api/profile"},
		{"GET metrics", http.MethodGet, "/api/metrics"},
		{"POST metrics/recent", http.MethodPost, "/api/metrics/recent"},
		{"POST impact", http.MethodPost, "/api/impact"},
		{"POST projection", http.MethodPost, "/api/projection"},
		{"GET auth/login", http.MethodGet, "/api/auth/login"},
		{"GET auth/logout", http.MethodGet, "/api/auth/logout"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, ts.URL+tc.path, nil)
			if err != nil {
				t.Fatalf("new request: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", resp.StatusCode)
			}
		})
	}
}
