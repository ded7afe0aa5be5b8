package accommodation

import (
	"fmt"
	"testing"
)

func pageFixture(n int) []*Accommodation {
	accs := make([]*Accommodation, n)
	for i := range accs {
		accs[i] = testRecord(fmt.Sprintf("%d", i+1), fmt.Sprintf("Record %d", i+1), nil)
	}
	return accs
}

func TestPaginateSplitsWithoutLossOrOverlap(t *testing.T) {
	accs := pageFixture(30)

	seen := make(map[string]bool)
	first := Paginate(accs, 1, 12)
	if first.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", first.TotalPages)
	}
	for p := 1; p <= first.TotalPages; p++ {
		page := Paginate(accs, p, 12)
		for _, a := range page.Items {
			if seen[a.ID] {
				t.Fatalf("record %s appears on more than one page", a.ID)
			}
			seen[a.ID] = true
		}
	}
	if len(seen) != 30 {
		t.Fatalf("pages cover %d records, want 30", len(seen))
	}

	last := Paginate(accs, 3, 12)
	if len(last.Items) != 6 {
		t.Fatalf("last page has %d items, want 6", len(last.Items))
	}
}

func TestPaginatePreservesOrder(t *testing.T) {
	accs := pageFixture(5)

	page := Paginate(accs, 2, 2)
	assertIDs(t, page.Items, "3", "4")
	if page.TotalItems != 5 || page.TotalPages != 3 {
		t.Fatalf("metadata = %d items / %d pages, want 5 / 3", page.TotalItems, page.TotalPages)
	}
}

func TestPaginateBeyondRange(t *testing.T) {
	accs := pageFixture(5)

	page := Paginate(accs, 9, 2)
	if len(page.Items) != 0 {
		t.Fatalf("out-of-range page returned %d items, want 0", len(page.Items))
	}
	if page.PageNumber != 9 || page.TotalItems != 5 || page.TotalPages != 3 {
		t.Fatalf("unexpected metadata: %+v", page)
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate(nil, 1, 12)
	if len(page.Items) != 0 || page.TotalItems != 0 || page.TotalPages != 0 {
		t.Fatalf("unexpected page for empty input: %+v", page)
	}
}

func TestPaginateDefaultsInvalidArguments(t *testing.T) {
	accs := pageFixture(15)

	page := Paginate(accs, 0, 0)
	if page.PageNumber != 1 {
		t.Errorf("PageNumber = %d, want 1", page.PageNumber)
	}
	if page.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", page.PageSize, DefaultPageSize)
	}
	if len(page.Items) != 12 {
		t.Errorf("len(Items) = %d, want 12", len(page.Items))
	}
}

// Filter, Sort and Paginate composed the way the public listing surface runs
// them.
func TestListingPipeline(t *testing.T) {
	accs := []*Accommodation{
		testRecord("1", "Palm Garden Resort", func(a *Accommodation) {
			a.Island = "Tenerife"
			a.PricePerNight = 850
			a.Rating = 8.8
		}),
		testRecord("2", "Hotel Atlántico", func(a *Accommodation) {
			a.Island = "Tenerife"
			a.PricePerNight = 620
			a.Rating = 7.9
		}),
		testRecord("3", "Palmeras Suites", func(a *Accommodation) {
			a.Island = "Tenerife"
			a.PricePerNight = 990
			a.Rating = 9.2
			a.Status = StatusDraft
		}),
		testRecord("4", "Palm Beach Club", func(a *Accommodation) {
			a.PricePerNight = 720
			a.Rating = 8.1
		}),
	}

	filtered := Filter(accs, FilterOptions{
		SearchQuery: strPtr("palm"),
		Islands:     []string{"Tenerife"},
	})
	sorted := Sort(filtered, SortPriceAsc)
	page := Paginate(sorted, 1, 12)

	// The draft and the Gran Canaria record drop out; only one survivor.
	assertIDs(t, page.Items, "1")
	if page.TotalItems != 1 {
		t.Fatalf("TotalItems = %d, want 1", page.TotalItems)
	}
}
