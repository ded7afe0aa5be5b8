package accommodation

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no accommodation matches the given key.
var ErrNotFound = errors.New("accommodation not found")

// Repository provides CRUD operations for accommodations.
type Repository struct {
	db *sql.DB
}

// NewRepository creates an accommodation repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, name, slug, island, location, description, image_url, image_alt,
	price_per_night, rating, review_count, stars, type, facilities, organization,
	is_popular, home_page_order, status, created_at, updated_at`

const insertSQL = `INSERT INTO accommodations
	(id, name, slug, island, location, description, image_url, image_alt,
	 price_per_night, rating, review_count, stars, type, facilities, organization,
	 is_popular, home_page_order, status, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Insert adds a new accommodation. CreatedAt and UpdatedAt are assigned here
// unless the record already carries a creation time (seed data does).
func (r *Repository) Insert(a *Accommodation) (*Accommodation, error) {
	now := time.Now().UTC()
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := a.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	facilities, err := marshalFacilities(a.Facilities)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(insertSQL,
		a.ID, a.Name, a.Slug, a.Island, a.Location, a.Description,
		a.ImageURL, a.ImageAlt, a.PricePerNight, a.Rating, a.ReviewCount,
		a.Stars, a.Type, facilities, a.Organization, a.IsPopular,
		a.HomePageOrder, string(a.Status), createdAt, updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting accommodation: %w", err)
	}

	return r.GetByID(a.ID)
}

// Update replaces all mutable fields of an existing accommodation and
// refreshes UpdatedAt. The ID and CreatedAt never change.
func (r *Repository) Update(a *Accommodation) (*Accommodation, error) {
	facilities, err := marshalFacilities(a.Facilities)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(
		`UPDATE accommodations SET
			name = ?, slug = ?, island = ?, location = ?, description = ?,
			image_url = ?, image_alt = ?, price_per_night = ?, rating = ?,
			review_count = ?, stars = ?, type = ?, facilities = ?,
			organization = ?, is_popular = ?, home_page_order = ?, status = ?,
			updated_at = ?
		WHERE id = ?`,
		a.Name, a.Slug, a.Island, a.Location, a.Description,
		a.ImageURL, a.ImageAlt, a.PricePerNight, a.Rating,
		a.ReviewCount, a.Stars, a.Type, facilities,
		a.Organization, a.IsPopular, a.HomePageOrder, string(a.Status),
		time.Now().UTC(), a.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating accommodation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("accommodation %s: %w", a.ID, ErrNotFound)
	}

	return r.GetByID(a.ID)
}

// GetByID returns an accommodation by its ID.
func (r *Repository) GetByID(id string) (*Accommodation, error) {
	query := fmt.Sprintf("SELECT %s FROM accommodations WHERE id = ?", selectColumns)
	a, err := scanAccommodation(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("accommodation %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying accommodation %s: %w", id, err)
	}
	return a, nil
}

// GetBySlug returns an accommodation by its slug.
func (r *Repository) GetBySlug(slug string) (*Accommodation, error) {
	query := fmt.Sprintf("SELECT %s FROM accommodations WHERE slug = ?", selectColumns)
	a, err := scanAccommodation(r.db.QueryRow(query, slug))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("accommodation %s: %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying accommodation %s: %w", slug, err)
	}
	return a, nil
}

// List returns the full collection in insertion order. Filtering, sorting and
// pagination happen in memory downstream, so callers always start from the
// same stable ordering.
func (r *Repository) List() ([]*Accommodation, error) {
	query := fmt.Sprintf("SELECT %s FROM accommodations ORDER BY created_at, id", selectColumns)
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing accommodations: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var accs []*Accommodation
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning accommodation: %w", err)
		}
		accs = append(accs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accommodations: %w", err)
	}

	return accs, nil
}

// Featured returns published accommodations picked for the home page,
// ordered by their configured position and capped at limit.
func (r *Repository) Featured(limit int) ([]*Accommodation, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM accommodations
		WHERE status = ? AND home_page_order IS NOT NULL
		ORDER BY home_page_order LIMIT ?`, selectColumns)
	rows, err := r.db.Query(query, string(StatusPublished), limit)
	if err != nil {
		return nil, fmt.Errorf("listing featured accommodations: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var accs []*Accommodation
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning accommodation: %w", err)
		}
		accs = append(accs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accommodations: %w", err)
	}

	return accs, nil
}

// SlugExists reports whether another accommodation already uses slug.
// excludeID skips the record being edited.
func (r *Repository) SlugExists(slug, excludeID string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM accommodations WHERE slug = ? AND id != ?",
		slug, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking slug %s: %w", slug, err)
	}
	return count > 0, nil
}

// Count returns the total number of stored accommodations.
func (r *Repository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM accommodations").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting accommodations: %w", err)
	}
	return count, nil
}

// Delete removes an accommodation by ID.
func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM accommodations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting accommodation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("accommodation %s: %w", id, ErrNotFound)
	}

	return nil
}

func marshalFacilities(facilities []string) (string, error) {
	if facilities == nil {
		facilities = []string{}
	}
	data, err := json.Marshal(facilities)
	if err != nil {
		return "", fmt.Errorf("encoding facilities: %w", err)
	}
	return string(data), nil
}
