// Package accommodation provides the accommodation domain model, the listing
// query engine (filter, sort, paginate) and data access.
package accommodation

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Status represents the publication state of an accommodation.
type Status string

const (
	StatusPublished Status = "Gepubliceerd"
	StatusDraft     Status = "Concept"
)

// ValidStatus returns true if s is a known publication status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPublished, StatusDraft:
		return true
	}
	return false
}

// Types enumerates the accommodation types offered by travel organizations.
var Types = []string{"Hotel", "Resort", "Appartement", "Villa", "Bungalow"}

// Islands lists the islands accommodations can be classified under.
var Islands = []string{"Gran Canaria", "Tenerife", "Lanzarote", "Fuerteventura"}

// LocationsByIsland maps each island to its known resort towns.
var LocationsByIsland = map[string][]string{
	"Gran Canaria": {
		"Playa del Inglés",
		"Puerto Rico",
		"Maspalomas",
		"Puerto de Mogán",
		"Las Palmas",
		"Meloneras",
	},
	"Tenerife": {
		"Playa de las Américas",
		"Los Cristianos",
		"Costa Adeje",
		"Puerto de la Cruz",
	},
	"Lanzarote":     {"Puerto del Carmen", "Playa Blanca", "Costa Teguise", "Arrecife"},
	"Fuerteventura": {"Corralejo", "Caleta de Fuste", "Costa Calma", "Jandía"},
}

// Facilities is the fixed facility vocabulary.
var Facilities = []string{
	"Zwembad",
	"WiFi",
	"Restaurant",
	"Spa",
	"Parkeren",
	"Kindvriendelijk",
	"All-inclusive",
	"Zeezicht",
	"Fitness",
	"Airco",
}

// Organizations lists the travel organizations accommodations are booked through.
var Organizations = []string{"TUI", "Corendon", "Sunweb", "Prijsvrij", "D-Reizen"}

// ValidType returns true if t is a known accommodation type.
func ValidType(t string) bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Accommodation represents one bookable listing.
type Accommodation struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Island        string    `json:"island"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url,omitempty"`
	ImageAlt      string    `json:"image_alt,omitempty"`
	PricePerNight float64   `json:"price_per_night"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	Stars         int       `json:"stars"`
	Type          string    `json:"type"`
	Facilities    []string  `json:"facilities"`
	Organization  string    `json:"organization"`
	IsPopular     bool      `json:"is_popular"`
	HomePageOrder *int      `json:"home_page_order,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Published returns true if the accommodation is visible on public surfaces.
func (a *Accommodation) Published() bool {
	return a.Status == StatusPublished
}

// scanAccommodation scans an accommodation from a database row.
func scanAccommodation(row interface{ Scan(...interface{}) error }) (*Accommodation, error) {
	var a Accommodation
	var facilities string
	var homePageOrder sql.NullInt64
	var status string

	err := row.Scan(
		&a.ID, &a.Name, &a.Slug, &a.Island, &a.Location, &a.Description,
		&a.ImageURL, &a.ImageAlt, &a.PricePerNight, &a.Rating, &a.ReviewCount,
		&a.Stars, &a.Type, &facilities, &a.Organization, &a.IsPopular,
		&homePageOrder, &status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if homePageOrder.Valid {
		order := int(homePageOrder.Int64)
		a.HomePageOrder = &order
	}
	a.Status = Status(status)
	if err := json.Unmarshal([]byte(facilities), &a.Facilities); err != nil {
		// Malformed rows degrade to no facilities rather than failing the read.
		a.Facilities = nil
	}

	return &a, nil
}
