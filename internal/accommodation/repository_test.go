package accommodation

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/canariagids/canariagids/internal/db"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})
	return d
}

func testRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(testDB(t))
}

func storedRecord(id, name string, mutate func(*Accommodation)) *Accommodation {
	a := testRecord(id, name, mutate)
	if a.Slug == "" {
		a.Slug = "slug-" + id
	}
	return a
}

func TestRepositoryInsertAndGet(t *testing.T) {
	repo := testRepo(t)

	a := storedRecord("acc-1", "Palm Garden", func(a *Accommodation) {
		a.HomePageOrder = order(2)
	})
	saved, err := repo.Insert(a)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("timestamps not assigned on insert")
	}

	got, err := repo.GetByID("acc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Palm Garden" {
		t.Errorf("Name = %q, want %q", got.Name, "Palm Garden")
	}
	if got.HomePageOrder == nil || *got.HomePageOrder != 2 {
		t.Errorf("HomePageOrder = %v, want 2", got.HomePageOrder)
	}
	if len(got.Facilities) != 2 {
		t.Errorf("Facilities = %v, want 2 entries", got.Facilities)
	}

	bySlug, err := repo.GetBySlug("slug-acc-1")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if bySlug.ID != "acc-1" {
		t.Errorf("GetBySlug returned %s, want acc-1", bySlug.ID)
	}
}

func TestRepositoryInsertKeepsSeedTimestamps(t *testing.T) {
	repo := testRepo(t)

	stamp := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	a := storedRecord("acc-1", "Palm Garden", func(a *Accommodation) {
		a.CreatedAt = stamp
		a.UpdatedAt = stamp
	})

	saved, err := repo.Insert(a)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !saved.CreatedAt.Equal(stamp) {
		t.Errorf("CreatedAt = %v, want %v", saved.CreatedAt, stamp)
	}
}

func TestRepositoryGetNotFound(t *testing.T) {
	repo := testRepo(t)

	if _, err := repo.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBySlug error = %v, want ErrNotFound", err)
	}
}

func TestRepositoryUpdate(t *testing.T) {
	repo := testRepo(t)

	a := storedRecord("acc-1", "Palm Garden", nil)
	saved, err := repo.Insert(a)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	saved.Name = "Palm Garden Resort"
	saved.PricePerNight = 820
	saved.Status = StatusDraft
	updated, err := repo.Update(saved)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Palm Garden Resort" || updated.PricePerNight != 820 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Status != StatusDraft {
		t.Errorf("Status = %q, want %q", updated.Status, StatusDraft)
	}
	if !updated.CreatedAt.Equal(saved.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}

	missing := storedRecord("acc-404", "Ghost", nil)
	if _, err := repo.Update(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update error = %v, want ErrNotFound", err)
	}
}

func TestRepositoryListInsertionOrder(t *testing.T) {
	repo := testRepo(t)

	for i, id := range []string{"acc-b", "acc-a", "acc-c"} {
		a := storedRecord(id, "Record "+id, func(a *Accommodation) {
			a.CreatedAt = seedTime(10 + i)
			a.UpdatedAt = seedTime(10 + i)
		})
		if _, err := repo.Insert(a); err != nil {
			t.Fatalf("Insert %s: %v", id, err)
		}
	}

	got, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	assertIDs(t, got, "acc-b", "acc-a", "acc-c")
}

func TestRepositoryFeatured(t *testing.T) {
	repo := testRepo(t)

	inserts := []*Accommodation{
		storedRecord("acc-1", "Third", func(a *Accommodation) { a.HomePageOrder = order(3) }),
		storedRecord("acc-2", "First", func(a *Accommodation) { a.HomePageOrder = order(1) }),
		storedRecord("acc-3", "Unranked", nil),
		storedRecord("acc-4", "Hidden", func(a *Accommodation) {
			a.HomePageOrder = order(2)
			a.Status = StatusDraft
		}),
	}
	for _, a := range inserts {
		if _, err := repo.Insert(a); err != nil {
			t.Fatalf("Insert %s: %v", a.ID, err)
		}
	}

	got, err := repo.Featured(6)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	// Drafts and unranked records never appear, ranked ones come in order.
	assertIDs(t, got, "acc-2", "acc-1")

	got, err = repo.Featured(1)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	assertIDs(t, got, "acc-2")
}

func TestRepositorySlugExists(t *testing.T) {
	repo := testRepo(t)

	if _, err := repo.Insert(storedRecord("acc-1", "Palm Garden", nil)); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	exists, err := repo.SlugExists("slug-acc-1", "")
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if !exists {
		t.Error("SlugExists = false for taken slug")
	}

	// The record being edited does not collide with itself.
	exists, err = repo.SlugExists("slug-acc-1", "acc-1")
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if exists {
		t.Error("SlugExists = true when excluding the owner")
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo := testRepo(t)

	if _, err := repo.Insert(storedRecord("acc-1", "Palm Garden", nil)); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := repo.Delete("acc-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID("acc-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete("acc-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestRepositoryMalformedFacilitiesScanAsEmpty(t *testing.T) {
	d := testDB(t)
	repo := NewRepository(d)

	if _, err := repo.Insert(storedRecord("acc-1", "Palm Garden", nil)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := d.Exec("UPDATE accommodations SET facilities = 'not json' WHERE id = 'acc-1'"); err != nil {
		t.Fatalf("corrupting facilities: %v", err)
	}

	got, err := repo.GetByID("acc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Facilities) != 0 {
		t.Errorf("Facilities = %v, want empty for malformed column", got.Facilities)
	}
}

func TestSeed(t *testing.T) {
	repo := testRepo(t)

	n, err := Seed(repo)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != len(SeedData()) {
		t.Fatalf("Seed inserted %d records, want %d", n, len(SeedData()))
	}

	accs, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(accs) != n {
		t.Fatalf("List returned %d records, want %d", len(accs), n)
	}

	// Reseeding a populated repository must refuse.
	if _, err := Seed(repo); err == nil {
		t.Error("second Seed succeeded, want error")
	}

	featured, err := repo.Featured(6)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(featured) == 0 {
		t.Error("seed data contains no featured accommodations")
	}
}
