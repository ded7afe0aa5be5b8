package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/canariagids/canariagids/internal/island"
)

// handleAPIIslands routes /api/islands requests.
func (s *Server) handleAPIIslands(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/islands")
	path = strings.TrimPrefix(path, "/")

	// /api/islands — list or add
	if path == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiListIslands(w)
		case http.MethodPost:
			s.apiSaveIsland(w, r, "")
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/islands/{id}
	switch r.Method {
	case http.MethodPut:
		s.apiSaveIsland(w, r, path)
	case http.MethodDelete:
		s.apiDeleteIsland(w, path)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiListIslands returns the active islands.
func (s *Server) apiListIslands(w http.ResponseWriter) {
	islands, err := s.islRepo.List(true)
	if err != nil {
		apiError(w, fmt.Sprintf("listing islands: %v", err), http.StatusInternalServerError)
		return
	}

	if islands == nil {
		islands = make([]*island.Island, 0)
	}

	apiJSON(w, islands, http.StatusOK)
}

// apiSaveIsland creates or updates an island.
func (s *Server) apiSaveIsland(w http.ResponseWriter, r *http.Request, id string) {
	var i island.Island
	if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	i.ID = id

	saved, err := s.islRepo.Save(&i)
	if err != nil {
		if errors.Is(err, island.ErrNotFound) {
			apiError(w, "island not found", http.StatusNotFound)
			return
		}
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	code := http.StatusOK
	if id == "" {
		code = http.StatusCreated
	}
	apiJSON(w, saved, code)
}

// apiDeleteIsland removes an island.
func (s *Server) apiDeleteIsland(w http.ResponseWriter, id string) {
	if err := s.islRepo.Delete(id); err != nil {
		if errors.Is(err, island.ErrNotFound) {
			apiError(w, "island not found", http.StatusNotFound)
			return
		}
		apiError(w, fmt.Sprintf("deleting island: %v", err), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]interface{}{"id": id, "removed": true}, http.StatusOK)
}
