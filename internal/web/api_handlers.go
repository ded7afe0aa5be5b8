package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/canariagids/canariagids/internal/accommodation"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleAPIAccommodations routes /api/accommodations requests.
func (s *Server) handleAPIAccommodations(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/accommodations")
	path = strings.TrimPrefix(path, "/")

	// /api/accommodations — query or create
	if path == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiQueryAccommodations(w, r)
		case http.MethodPost:
			s.apiCreateAccommodation(w, r)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/accommodations/featured — home page selection
	if path == "featured" {
		if r.Method != http.MethodGet {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiFeaturedAccommodations(w)
		return
	}

	// /api/accommodations/slug/{slug} — public detail page lookup
	if slug, ok := strings.CutPrefix(path, "slug/"); ok {
		if r.Method != http.MethodGet {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiGetAccommodationBySlug(w, slug)
		return
	}

	// /api/accommodations/{id} — admin show, update or remove
	switch r.Method {
	case http.MethodGet:
		s.apiGetAccommodation(w, path)
	case http.MethodPut:
		s.apiUpdateAccommodation(w, r, path)
	case http.MethodDelete:
		s.apiDeleteAccommodation(w, path)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiQueryAccommodations runs the listing pipeline: the full collection is
// loaded fresh from the store, filtered, sorted and paginated per the query
// parameters. This is the public search surface, so drafts never appear.
func (s *Server) apiQueryAccommodations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	searchQuery := q.Get("q")
	opts := accommodation.FilterOptions{
		SearchQuery:   &searchQuery,
		Islands:       q["island"],
		Locations:     q["location"],
		Types:         q["type"],
		Facilities:    q["facility"],
		Organizations: q["organization"],
	}

	minPriceStr := q.Get("min_price")
	maxPriceStr := q.Get("max_price")
	if minPriceStr != "" || maxPriceStr != "" {
		pr := accommodation.PriceRange{Min: 0, Max: math.Inf(1)}
		if minPriceStr != "" {
			min, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil || min < 0 {
				apiError(w, "min_price must be a non-negative number", http.StatusBadRequest)
				return
			}
			pr.Min = min
		}
		if maxPriceStr != "" {
			max, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil || max < 0 {
				apiError(w, "max_price must be a non-negative number", http.StatusBadRequest)
				return
			}
			pr.Max = max
		}
		opts.PriceRange = &pr
	}

	if minStarsStr := q.Get("min_stars"); minStarsStr != "" {
		minStars, err := strconv.Atoi(minStarsStr)
		if err != nil || minStars < 3 || minStars > 5 {
			apiError(w, "min_stars must be 3-5", http.StatusBadRequest)
			return
		}
		opts.MinStars = &minStars
	}

	sortBy := accommodation.SortRecommended
	if sortStr := q.Get("sort"); sortStr != "" {
		if !accommodation.ValidSortOption(sortStr) {
			apiError(w, "sort must be recommended, price-asc, price-desc or rating", http.StatusBadRequest)
			return
		}
		sortBy = accommodation.SortOption(sortStr)
	}

	pageNumber := 1
	if pageStr := q.Get("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			apiError(w, "page must be a positive integer", http.StatusBadRequest)
			return
		}
		pageNumber = p
	}

	pageSize := s.pageSize
	if sizeStr := q.Get("page_size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 || size > 100 {
			apiError(w, "page_size must be 1-100", http.StatusBadRequest)
			return
		}
		pageSize = size
	}

	accs, err := s.accRepo.List()
	if err != nil {
		apiError(w, fmt.Sprintf("listing accommodations: %v", err), http.StatusInternalServerError)
		return
	}

	filtered := accommodation.Filter(accs, opts)
	sorted := accommodation.Sort(filtered, sortBy)
	page := accommodation.Paginate(sorted, pageNumber, pageSize)

	apiJSON(w, page, http.StatusOK)
}

// apiFeaturedAccommodations returns the published home page selection.
func (s *Server) apiFeaturedAccommodations(w http.ResponseWriter) {
	accs, err := s.accRepo.Featured(featuredLimit)
	if err != nil {
		apiError(w, fmt.Sprintf("listing featured accommodations: %v", err), http.StatusInternalServerError)
		return
	}

	if accs == nil {
		accs = make([]*accommodation.Accommodation, 0)
	}

	apiJSON(w, accs, http.StatusOK)
}

// apiGetAccommodationBySlug returns a published accommodation by slug.
func (s *Server) apiGetAccommodationBySlug(w http.ResponseWriter, slug string) {
	a, err := s.accRepo.GetBySlug(slug)
	if err != nil || !a.Published() {
		apiError(w, "accommodation not found", http.StatusNotFound)
		return
	}
	apiJSON(w, a, http.StatusOK)
}

// apiGetAccommodation returns an accommodation by ID regardless of status.
func (s *Server) apiGetAccommodation(w http.ResponseWriter, id string) {
	a, err := s.accRepo.GetByID(id)
	if err != nil {
		apiError(w, "accommodation not found", http.StatusNotFound)
		return
	}
	apiJSON(w, a, http.StatusOK)
}

// apiCreateAccommodation stores a new accommodation.
func (s *Server) apiCreateAccommodation(w http.ResponseWriter, r *http.Request) {
	var a accommodation.Accommodation
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	a.ID = "" // the service assigns IDs

	saved, err := s.accService.Save(&a)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	apiJSON(w, saved, http.StatusCreated)
}

// apiUpdateAccommodation replaces an existing accommodation.
func (s *Server) apiUpdateAccommodation(w http.ResponseWriter, r *http.Request, id string) {
	var a accommodation.Accommodation
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	a.ID = id

	saved, err := s.accService.Save(&a)
	if err != nil {
		if errors.Is(err, accommodation.ErrNotFound) {
			apiError(w, "accommodation not found", http.StatusNotFound)
			return
		}
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	apiJSON(w, saved, http.StatusOK)
}

// apiDeleteAccommodation removes an accommodation.
func (s *Server) apiDeleteAccommodation(w http.ResponseWriter, id string) {
	if err := s.accRepo.Delete(id); err != nil {
		if errors.Is(err, accommodation.ErrNotFound) {
			apiError(w, "accommodation not found", http.StatusNotFound)
			return
		}
		apiError(w, fmt.Sprintf("deleting accommodation: %v", err), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]interface{}{"id": id, "removed": true}, http.StatusOK)
}
