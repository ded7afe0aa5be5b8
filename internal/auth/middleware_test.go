package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func authedHandler(t *testing.T, store *APIKeyStore) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return RequireAPIKey(store, next)
}

func TestPublicRoutesPassWithoutKey(t *testing.T) {
	store := testStore(t)
	handler := authedHandler(t, store)

	paths := []string{
		"/api/accommodations",
		"/api/accommodations/featured",
		"/api/accommodations/slug/palm-garden",
		"/api/islands",
		"/healthz",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestAdminRoutesRequireKey(t *testing.T) {
	store := testStore(t)
	handler := authedHandler(t, store)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/accommodations"},
		{http.MethodPut, "/api/accommodations/acc-1"},
		{http.MethodDelete, "/api/accommodations/acc-1"},
		{http.MethodGet, "/api/accommodations/acc-1"},
		{http.MethodPost, "/api/islands"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without key = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}

func TestValidKeyPasses(t *testing.T) {
	store := testStore(t)
	handler := authedHandler(t, store)

	raw, _, err := store.Create("ci")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/accommodations", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid key = %d, want 200", rec.Code)
	}
}

func TestInvalidKeyRejected(t *testing.T) {
	store := testStore(t)
	handler := authedHandler(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/accommodations", nil)
	req.Header.Set("Authorization", "Bearer cg_wrong")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("invalid key = %d, want 401", rec.Code)
	}
}

func TestRateLimiterTriggersAfterRepeatedFailures(t *testing.T) {
	rl := &rateLimiter{attempts: make(map[string][]time.Time)}

	for i := 0; i < rateLimitMaxFail; i++ {
		if rl.recordFailure("10.0.0.1:1234") {
			t.Fatalf("rate limited after %d failures", i+1)
		}
	}
	if !rl.recordFailure("10.0.0.1:1234") {
		t.Error("not rate limited past the failure budget")
	}
	// Other IPs are unaffected.
	if rl.recordFailure("10.0.0.2:1234") {
		t.Error("unrelated IP rate limited")
	}
}
