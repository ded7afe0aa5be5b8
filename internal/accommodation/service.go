package accommodation

import (
	"fmt"
	"strings"

	"github.com/canariagids/canariagids/internal/idgen"
	"github.com/canariagids/canariagids/internal/slug"
)

// Service enforces save-time rules on top of the repository: required fields,
// vocabulary and range checks, slug derivation and slug uniqueness.
type Service struct {
	repo *Repository
}

// NewService creates an accommodation service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Save validates and stores an accommodation. A record without an ID is
// created (with a fresh ID); a record with an ID updates the existing row.
// An empty slug is derived from the name.
func (s *Service) Save(a *Accommodation) (*Accommodation, error) {
	if err := validate(a); err != nil {
		return nil, err
	}

	if a.Slug == "" {
		a.Slug = slug.Generate(a.Name)
	}
	if a.Slug == "" {
		return nil, fmt.Errorf("name %q does not produce a usable slug", a.Name)
	}

	exists, err := s.repo.SlugExists(a.Slug, a.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("slug %q is already in use", a.Slug)
	}

	if a.ID == "" {
		id, err := idgen.Accommodation()
		if err != nil {
			return nil, fmt.Errorf("assigning id: %w", err)
		}
		a.ID = id
		return s.repo.Insert(a)
	}

	return s.repo.Update(a)
}

// SetStatus publishes or unpublishes an accommodation.
func (s *Service) SetStatus(id string, status Status) (*Accommodation, error) {
	if !ValidStatus(string(status)) {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	a.Status = status
	return s.repo.Update(a)
}

func validate(a *Accommodation) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !ValidType(a.Type) {
		return fmt.Errorf("invalid type: %s", a.Type)
	}
	if !ValidStatus(string(a.Status)) {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	if a.Stars < 3 || a.Stars > 5 {
		return fmt.Errorf("stars must be 3-5, got %d", a.Stars)
	}
	if a.Rating < 1 || a.Rating > 10 {
		return fmt.Errorf("rating must be 1-10, got %g", a.Rating)
	}
	if a.PricePerNight < 0 {
		return fmt.Errorf("price per night must not be negative, got %g", a.PricePerNight)
	}
	if a.ReviewCount < 0 {
		return fmt.Errorf("review count must not be negative, got %d", a.ReviewCount)
	}
	if a.HomePageOrder != nil && *a.HomePageOrder < 1 {
		return fmt.Errorf("home page order must be positive, got %d", *a.HomePageOrder)
	}
	return nil
}
