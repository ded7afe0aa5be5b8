// Package island provides the island domain model and data access.
package island

import "time"

// Island represents one island that accommodations can be grouped under.
// Inactive islands stay in the store but disappear from public surfaces.
type Island struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
