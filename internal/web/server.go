// Package web provides the JSON HTTP API for canariagids.
package web

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/canariagids/canariagids/internal/accommodation"
	"github.com/canariagids/canariagids/internal/auth"
	"github.com/canariagids/canariagids/internal/island"
	"github.com/canariagids/canariagids/internal/logging"
)

// featuredLimit caps the home page accommodation selection.
const featuredLimit = 6

// Server is the API HTTP server.
type Server struct {
	accRepo    *accommodation.Repository
	accService *accommodation.Service
	islRepo    *island.Repository
	apiKeys    *auth.APIKeyStore
	pageSize   int
	mux        *http.ServeMux
	handler    http.Handler
}

// NewServer creates an API server with the given database.
// pageSize is the default listing page size; 0 picks the standard default.
func NewServer(db *sql.DB, pageSize int) *Server {
	if pageSize < 1 {
		pageSize = accommodation.DefaultPageSize
	}

	accRepo := accommodation.NewRepository(db)
	s := &Server{
		accRepo:    accRepo,
		accService: accommodation.NewService(accRepo),
		islRepo:    island.NewRepository(db),
		apiKeys:    auth.NewAPIKeyStore(db),
		pageSize:   pageSize,
		mux:        http.NewServeMux(),
	}

	s.mux.HandleFunc("/healthz", s.handleHealthz)
	s.mux.HandleFunc("/api/accommodations", s.handleAPIAccommodations)
	s.mux.HandleFunc("/api/accommodations/", s.handleAPIAccommodations)
	s.mux.HandleFunc("/api/islands", s.handleAPIIslands)
	s.mux.HandleFunc("/api/islands/", s.handleAPIIslands)

	s.handler = logging.RequestLogger(auth.RequireAPIKey(s.apiKeys, s.mux))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting API on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s)
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
