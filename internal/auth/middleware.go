package auth

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// rateLimiter tracks failed API key attempts per IP.
type rateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

var apiKeyLimiter = &rateLimiter{
	attempts: make(map[string][]time.Time),
}

const (
	rateLimitWindow  = 1 * time.Minute
	rateLimitMaxFail = 10
)

// recordFailure records a failed attempt and returns true if rate limited.
func (rl *rateLimiter) recordFailure(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rateLimitWindow)

	// Prune old entries
	valid := rl.attempts[ip][:0]
	for _, t := range rl.attempts[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	valid = append(valid, now)
	rl.attempts[ip] = valid

	return len(valid) > rateLimitMaxFail
}

// RequireAPIKey is middleware that validates Bearer token auth for admin
// routes. Public read endpoints pass through untouched; everything else
// under /api/ needs a valid key. Returns 401 for missing/invalid keys,
// 429 for rate-limited IPs.
func RequireAPIKey(apiKeys *APIKeyStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") || isPublicRoute(r) {
			next.ServeHTTP(w, r)
			return
		}

		ip := r.RemoteAddr

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "Authorization required", http.StatusUnauthorized)
			return
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")

		valid, err := apiKeys.Validate(key)
		if err != nil {
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		if !valid {
			if apiKeyLimiter.recordFailure(ip) {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			http.Error(w, "Invalid API key", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isPublicRoute reports whether the request targets a public read endpoint.
// The admin surface is every mutating request plus by-ID reads (those can
// see drafts).
func isPublicRoute(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}

	switch r.URL.Path {
	case "/api/accommodations", "/api/accommodations/featured", "/api/islands":
		return true
	}

	return strings.HasPrefix(r.URL.Path, "/api/accommodations/slug/")
}
