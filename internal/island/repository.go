package island

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canariagids/canariagids/internal/idgen"
	"github.com/canariagids/canariagids/internal/slug"
)

// ErrNotFound is returned when no island matches the given key.
var ErrNotFound = errors.New("island not found")

// Repository provides CRUD operations for islands.
type Repository struct {
	db *sql.DB
}

// NewRepository creates an island repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save validates and stores an island. An island without an ID is created;
// an empty slug is derived from the name.
func (r *Repository) Save(i *Island) (*Island, error) {
	if strings.TrimSpace(i.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if i.Slug == "" {
		i.Slug = slug.Generate(i.Name)
	}

	if i.ID == "" {
		id, err := idgen.Island()
		if err != nil {
			return nil, fmt.Errorf("assigning id: %w", err)
		}
		i.ID = id

		createdAt := i.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		_, err = r.db.Exec(
			"INSERT INTO islands (id, name, slug, is_active, created_at) VALUES (?, ?, ?, ?, ?)",
			i.ID, i.Name, i.Slug, i.IsActive, createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting island: %w", err)
		}
		return r.GetByID(i.ID)
	}

	result, err := r.db.Exec(
		"UPDATE islands SET name = ?, slug = ?, is_active = ? WHERE id = ?",
		i.Name, i.Slug, i.IsActive, i.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating island: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("island %s: %w", i.ID, ErrNotFound)
	}
	return r.GetByID(i.ID)
}

// GetByID returns an island by its ID.
func (r *Repository) GetByID(id string) (*Island, error) {
	row := r.db.QueryRow(
		"SELECT id, name, slug, is_active, created_at FROM islands WHERE id = ?", id,
	)

	var i Island
	err := row.Scan(&i.ID, &i.Name, &i.Slug, &i.IsActive, &i.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("island %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying island %s: %w", id, err)
	}

	return &i, nil
}

// List returns all islands in insertion order. When activeOnly is set,
// deactivated islands are excluded.
func (r *Repository) List(activeOnly bool) ([]*Island, error) {
	query := "SELECT id, name, slug, is_active, created_at FROM islands"
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing islands: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var islands []*Island
	for rows.Next() {
		var i Island
		if err := rows.Scan(&i.ID, &i.Name, &i.Slug, &i.IsActive, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning island: %w", err)
		}
		islands = append(islands, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating islands: %w", err)
	}

	return islands, nil
}

// SetActive toggles an island's visibility on public surfaces.
func (r *Repository) SetActive(id string, active bool) error {
	result, err := r.db.Exec("UPDATE islands SET is_active = ? WHERE id = ?", active, id)
	if err != nil {
		return fmt.Errorf("updating island: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("island %s: %w", id, ErrNotFound)
	}

	return nil
}

// Delete removes an island by ID.
func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM islands WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting island: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("island %s: %w", id, ErrNotFound)
	}

	return nil
}

// Seed inserts the seven Canary Islands into an empty repository.
func Seed(repo *Repository) (int, error) {
	existing, err := repo.List(false)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, fmt.Errorf("repository already contains %d islands", len(existing))
	}

	names := []string{
		"Gran Canaria",
		"Tenerife",
		"Lanzarote",
		"Fuerteventura",
		"La Palma",
		"La Gomera",
		"El Hierro",
	}
	base := time.Now().UTC()
	for n, name := range names {
		i := &Island{
			Name:     name,
			IsActive: true,
			// Spread creation times so List ordering stays deterministic.
			CreatedAt: base.Add(time.Duration(n) * time.Millisecond),
		}
		if _, err := repo.Save(i); err != nil {
			return 0, fmt.Errorf("seeding %s: %w", name, err)
		}
	}

	return len(names), nil
}
