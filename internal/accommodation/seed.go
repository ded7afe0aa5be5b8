package accommodation

import (
	"fmt"
	"time"
)

// Seed inserts the initial listing set into an empty repository. It refuses
// to run when records already exist so reseeding never duplicates rows.
func Seed(repo *Repository) (int, error) {
	count, err := repo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, fmt.Errorf("repository already contains %d accommodations", count)
	}

	seeds := SeedData()
	for _, a := range seeds {
		if _, err := repo.Insert(a); err != nil {
			return 0, fmt.Errorf("seeding %s: %w", a.Slug, err)
		}
	}

	return len(seeds), nil
}

func seedTime(day int) time.Time {
	return time.Date(2024, time.January, day, 10, 0, 0, 0, time.UTC)
}

func order(n int) *int { return &n }

// SeedData returns the initial accommodation listings for the four main
// islands, matching the content the site launched with.
func SeedData() []*Accommodation {
	return []*Accommodation{
		{
			ID:            "acc-seed00000001",
			Name:          "Abora Buenaventura by Lopesan",
			Slug:          "abora-buenaventura-by-lopesan",
			Island:        "Gran Canaria",
			Location:      "Playa del Inglés",
			Description:   "Modern hotel met prachtig zwembad en direct toegang tot het strand. Ideaal voor gezinnen en stellen die op zoek zijn naar zon en ontspanning.",
			ImageAlt:      "Abora Buenaventura hotel met zwembad",
			PricePerNight: 754,
			Rating:        8.5,
			ReviewCount:   1247,
			Stars:         4,
			Type:          "Hotel",
			Facilities:    []string{"Zwembad", "WiFi", "Parkeren", "Airco"},
			Organization:  "TUI",
			IsPopular:     true,
			HomePageOrder: order(1),
			Status:        StatusPublished,
			CreatedAt:     seedTime(15),
			UpdatedAt:     seedTime(15),
		},
		{
			ID:            "acc-seed00000002",
			Name:          "Cordial Santa Agueda",
			Slug:          "cordial-santa-agueda",
			Island:        "Gran Canaria",
			Location:      "Arguineguín",
			Description:   "Luxe appartement complex met alle gemakken. Perfect voor wie rust en privacy zoekt op loopafstand van het strand.",
			ImageAlt:      "Cordial Santa Agueda resort",
			PricePerNight: 926,
			Rating:        9.2,
			ReviewCount:   856,
			Stars:         5,
			Type:          "Appartement",
			Facilities:    []string{"Zwembad", "WiFi", "Parkeren", "Airco"},
			Organization:  "TUI",
			HomePageOrder: order(2),
			Status:        StatusPublished,
			CreatedAt:     seedTime(16),
			UpdatedAt:     seedTime(16),
		},
		{
			ID:            "acc-seed00000003",
			Name:          "Montemayor",
			Slug:          "montemayor",
			Island:        "Gran Canaria",
			Location:      "Playa del Inglés",
			Description:   "Gezellig appartementencomplex op korte loopafstand van het strand en het centrum. Ideaal voor actieve vakantiegangers.",
			ImageAlt:      "Montemayor appartementen",
			PricePerNight: 829,
			Rating:        7.8,
			ReviewCount:   623,
			Stars:         3,
			Type:          "Appartement",
			Facilities:    []string{"Zwembad", "WiFi"},
			Organization:  "TUI",
			HomePageOrder: order(3),
			Status:        StatusPublished,
			CreatedAt:     seedTime(17),
			UpdatedAt:     seedTime(17),
		},
		{
			ID:            "acc-seed00000004",
			Name:          "Tajaraste",
			Slug:          "tajaraste",
			Island:        "Gran Canaria",
			Location:      "Playa del Inglés",
			Description:   "Comfortabele appartementen met groot zwembad en zonneterras. Uitstekende prijs-kwaliteit verhouding voor een zorgeloze vakantie.",
			ImageAlt:      "Tajaraste complex",
			PricePerNight: 703,
			Rating:        8.1,
			ReviewCount:   912,
			Stars:         4,
			Type:          "Appartement",
			Facilities:    []string{"Zwembad", "WiFi", "Zeezicht"},
			Organization:  "TUI",
			HomePageOrder: order(4),
			Status:        StatusPublished,
			CreatedAt:     seedTime(18),
			UpdatedAt:     seedTime(18),
		},
		{
			ID:            "acc-seed00000005",
			Name:          "Rio Piedras",
			Slug:          "rio-piedras",
			Island:        "Gran Canaria",
			Location:      "Puerto Rico",
			Description:   "Modern appartementencomplex in het levendige Puerto Rico. Direct aan het strand met prachtig uitzicht op de baai.",
			ImageAlt:      "Rio Piedras Puerto Rico",
			PricePerNight: 696,
			Rating:        8.7,
			ReviewCount:   1534,
			Stars:         4,
			Type:          "Appartement",
			Facilities:    []string{"Zwembad", "WiFi", "Parkeren", "Zeezicht"},
			Organization:  "TUI",
			HomePageOrder: order(5),
			Status:        StatusPublished,
			CreatedAt:     seedTime(19),
			UpdatedAt:     seedTime(19),
		},
		{
			ID:            "acc-seed00000006",
			Name:          "Roca Verde",
			Slug:          "roca-verde",
			Island:        "Gran Canaria",
			Location:      "Playa del Inglés",
			Description:   "Rustige appartementen omringd door tropische tuinen. Perfect voor wie zoekt naar ontspanning in een groene omgeving.",
			ImageAlt:      "Roca Verde appartementen",
			PricePerNight: 550,
			Rating:        7.5,
			ReviewCount:   445,
			Stars:         3,
			Type:          "Appartement",
			Facilities:    []string{"Zwembad", "WiFi", "Parkeren"},
			Organization:  "TUI",
			HomePageOrder: order(6),
			Status:        StatusPublished,
			CreatedAt:     seedTime(20),
			UpdatedAt:     seedTime(20),
		},
		{
			ID:            "acc-seed00000007",
			Name:          "RIU Gran Canaria Golf",
			Slug:          "riu-gran-canaria-golf",
			Island:        "Gran Canaria",
			Location:      "Meloneras",
			Description:   "Luxe resort hotel met golfbaan, spa en meerdere restaurants. All-inclusive genieten in stijlvolle omgeving.",
			ImageAlt:      "RIU Gran Canaria Golf resort",
			PricePerNight: 1258,
			Rating:        9.0,
			ReviewCount:   2134,
			Stars:         5,
			Type:          "Hotel",
			Facilities:    []string{"Zwembad", "WiFi", "Restaurant", "Spa", "Parkeren", "All-inclusive", "Fitness", "Airco"},
			Organization:  "TUI",
			IsPopular:     true,
			Status:        StatusPublished,
			CreatedAt:     seedTime(21),
			UpdatedAt:     seedTime(21),
		},
		{
			ID:            "acc-seed00000008",
			Name:          "Bull Eugenia Victoria & Spa",
			Slug:          "bull-eugenia-victoria-spa",
			Island:        "Gran Canaria",
			Location:      "Playa del Inglés",
			Description:   "Elegant hotel met uitgebreide spa faciliteiten. Ideaal voor een wellness vakantie met zon, zee en strand.",
			ImageAlt:      "Bull Eugenia Victoria Hotel",
			PricePerNight: 761,
			Rating:        8.3,
			ReviewCount:   1876,
			Stars:         4,
			Type:          "Hotel",
			Facilities:    []string{"Zwembad", "WiFi", "Restaurant", "Spa", "Parkeren", "Fitness", "Airco"},
			Organization:  "TUI",
			Status:        StatusPublished,
			CreatedAt:     seedTime(22),
			UpdatedAt:     seedTime(22),
		},
		{
			ID:            "acc-seed00000009",
			Name:          "Lopesan Costa Meloneras Resort & Spa",
			Slug:          "lopesan-costa-meloneras-resort-spa",
			Island:        "Gran Canaria",
			Location:      "Meloneras",
			Description:   "Prestigieus 5-sterren resort met spectaculaire architectuur en eersteklas service. Ultieme luxe en comfort aan de kust.",
			ImageAlt:      "Lopesan Costa Meloneras Resort",
			PricePerNight: 1114,
			Rating:        9.3,
			ReviewCount:   3245,
			Stars:         5,
			Type:          "Resort",
			Facilities:    []string{"Zwembad", "WiFi", "Restaurant", "Spa", "Parkeren", "Kindvriendelijk", "Zeezicht", "Fitness", "Airco"},
			Organization:  "TUI",
			IsPopular:     true,
			Status:        StatusPublished,
			CreatedAt:     seedTime(23),
			UpdatedAt:     seedTime(23),
		},
		{
			ID:            "acc-seed00000010",
			Name:          "Babacan",
			Slug:          "babacan",
			Island:        "Gran Canaria",
			Location:      "Playa del Inglés",
			Description:   "Gezellig aparthotel met vriendelijke sfeer en goede faciliteiten. Perfecte uitvalsbasis voor een betaalbare strandvakantie.",
			ImageAlt:      "Babacan aparthotel",
			PricePerNight: 686,
			Rating:        7.9,
			ReviewCount:   734,
			Stars:         3,
			Type:          "Appartement",
			Facilities:    []string{"Zwembad", "WiFi", "Parkeren", "Airco"},
			Organization:  "TUI",
			Status:        StatusPublished,
			CreatedAt:     seedTime(24),
			UpdatedAt:     seedTime(24),
		},
		{
			ID:            "acc-seed00000011",
			Name:          "H10 Gran Tinerfe",
			Slug:          "h10-gran-tinerfe",
			Island:        "Tenerife",
			Location:      "Playa de las Américas",
			Description:   "Modern 4-sterren hotel direct aan het strand van Playa de las Américas. Volledige renovatie met eigentijdse kamers en faciliteiten.",
			ImageAlt:      "H10 Gran Tinerfe hotel Tenerife",
			PricePerNight: 845,
			Rating:        8.6,
			ReviewCount:   1923,
			Stars:         4,
			Type:          "Hotel",
			Facilities:    []string{"Zwembad", "WiFi", "Restaurant", "Parkeren", "Fitness", "Airco"},
			Organization:  "Corendon",
			IsPopular:     true,
			Status:        StatusPublished,
			CreatedAt:     seedTime(25),
			UpdatedAt:     seedTime(25),
		},
		{
			ID:            "acc-seed00000012",
			Name:          "Bitacora",
			Slug:          "bitacora",
			Island:        "Tenerife",
			Location:      "Playa de las Américas",
			Description:   "Populair familiehotel met uitstekende all-inclusive formule. Ruime zwembaden en animatie voor alle leeftijden.",
			ImageAlt:      "Hotel Bitacora Tenerife",
			PricePerNight: 892,
			Rating:        8.4,
			ReviewCount:   2156,
			Stars:         4,
			Type:          "Hotel",
			Facilities:    []string{"Zwembad", "WiFi", "Restaurant", "Parkeren", "Kindvriendelijk", "All-inclusive", "Airco"},
			Organization:  "TUI",
			Status:        StatusPublished,
			CreatedAt:     seedTime(26),
			UpdatedAt:     seedTime(26),
		},
		{
			ID:            "acc-seed00000013",
			Name:          "Royal Hideaway Corales Suites",
			Slug:          "royal-hideaway-corales-suites",
			Island:        "Tenerife",
			Location:      "Costa Adeje",
			Description:   "Exclusief 5-sterren resort met Michelinster restaurant en infinity pools. Absolute luxe met spectaculair uitzicht op de Atlantische Oceaan.",
			ImageAlt:      "Royal Hideaway Corales Suites",
			PricePerNight: 1650,
			Rating:        9.7,
			ReviewCount:   876,
			Stars:         5,
			Type:          "Resort",
			Facilities:    []string{"Zwembad", "WiFi", "Restaurant", "Spa", "Parkeren", "Zeezicht", "Fitness", "Airco"},
			Organization:  "Sunweb",
			IsPopular:     true,
			Status:        StatusPublished,
			CreatedAt:     seedTime(27),
			UpdatedAt:     seedTime(27),
		},
		{
			ID:            "acc-seed00000014",
			Name:          "Papagayo Beach Resort",
			Slug:          "papagayo-beach-resort",
			Island:        "Lanzarote",
			Location:      "Playa Blanca",
			Description:   "Luxe strandresort met privéstrand en spa. Moderne kamers met zeezicht en uitstekende Canarische keuken in het restaurant.",
			ImageAlt:      "Papagayo Beach Resort Lanzarote",
			PricePerNight: 1120,
			Rating:        9.1,
			ReviewCount:   1456,
			Stars:         5,
			Type:          "Resort",
			Facilities:    []string{"Zwembad", "WiFi", "Restaurant", "Spa", "Parkeren", "Zeezicht", "Fitness", "Airco"},
			Organization:  "Prijsvrij",
			IsPopular:     true,
			Status:        StatusPublished,
			CreatedAt:     seedTime(28),
			UpdatedAt:     seedTime(28),
		},
		{
			ID:            "acc-seed00000015",
			Name:          "Los Hibiscos",
			Slug:          "los-hibiscos",
			Island:        "Lanzarote",
			Location:      "Puerto del Carmen",
			Description:   "Charmante appartementen in tropische tuin met verwarmde zwembaden. Ideale locatie op loopafstand van strand en boulevard.",
			ImageAlt:      "Los Hibiscos Lanzarote",
			PricePerNight: 695,
			Rating:        8.2,
			ReviewCount:   1087,
			Stars:         3,
			Type:          "Appartement",
			Facilities:    []string{"Zwembad", "WiFi", "Parkeren", "Airco"},
			Organization:  "Corendon",
			Status:        StatusPublished,
			CreatedAt:     seedTime(29),
			UpdatedAt:     seedTime(29),
		},
		{
			ID:            "acc-seed00000016",
			Name:          "Barceló Castillo Beach Resort",
			Slug:          "barcelo-castillo-beach-resort",
			Island:        "Fuerteventura",
			Location:      "Caleta de Fuste",
			Description:   "Groot familieresort direct aan zee met uitgebreid activiteitenprogramma. Perfect voor gezinnen die alles op één plek willen.",
			ImageAlt:      "Barceló Castillo Beach Resort",
			PricePerNight: 978,
			Rating:        8.8,
			ReviewCount:   2345,
			Stars:         4,
			Type:          "Resort",
			Facilities:    []string{"Zwembad", "WiFi", "Restaurant", "Spa", "Parkeren", "Kindvriendelijk", "All-inclusive", "Fitness", "Airco"},
			Organization:  "TUI",
			IsPopular:     true,
			Status:        StatusPublished,
			CreatedAt:     seedTime(30),
			UpdatedAt:     seedTime(30),
		},
		{
			ID:            "acc-seed00000017",
			Name:          "Atlantis Dunapark",
			Slug:          "atlantis-dunapark",
			Island:        "Fuerteventura",
			Location:      "Corralejo",
			Description:   "Moderne appartementen met zwembadcomplex en alle gemakken. Uitstekende uitvalsbasis om Corralejo en de duinen te ontdekken.",
			ImageAlt:      "Atlantis Dunapark Fuerteventura",
			PricePerNight: 745,
			Rating:        8.0,
			ReviewCount:   923,
			Stars:         4,
			Type:          "Appartement",
			Facilities:    []string{"Zwembad", "WiFi", "Parkeren", "Airco"},
			Organization:  "D-Reizen",
			Status:        StatusPublished,
			CreatedAt:     seedTime(31),
			UpdatedAt:     seedTime(31),
		},
		{
			ID:            "acc-seed00000018",
			Name:          "Seaside Los Jameos Playa",
			Slug:          "seaside-los-jameos-playa",
			Island:        "Lanzarote",
			Location:      "Puerto del Carmen",
			Description:   "Luxe adults-only resort direct aan het strand. Rust, comfort en service van topniveau voor een zorgeloze vakantie.",
			ImageAlt:      "Seaside Los Jameos Playa",
			PricePerNight: 1234,
			Rating:        9.4,
			ReviewCount:   1567,
			Stars:         5,
			Type:          "Hotel",
			Facilities:    []string{"Zwembad", "WiFi", "Restaurant", "Spa", "Parkeren", "Zeezicht", "Fitness", "Airco"},
			Organization:  "Sunweb",
			IsPopular:     true,
			Status:        StatusPublished,
			CreatedAt:     time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}
