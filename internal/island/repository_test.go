package island

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/canariagids/canariagids/internal/db"
)

func testRepo(t *testing.T) *Repository {
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
	return NewRepository(d)
}

func TestSaveCreatesWithIDAndSlug(t *testing.T) {
	repo := testRepo(t)

	saved, err := repo.Save(&Island{Name: "Gran Canaria", IsActive: true})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Error("no ID assigned")
	}
	if saved.Slug != "gran-canaria" {
		t.Errorf("Slug = %q, want %q", saved.Slug, "gran-canaria")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}
}

func TestSaveRequiresName(t *testing.T) {
	repo := testRepo(t)

	if _, err := repo.Save(&Island{Name: "  "}); err == nil {
		t.Error("Save succeeded with blank name")
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	repo := testRepo(t)

	saved, err := repo.Save(&Island{Name: "Gran Canaria", IsActive: true})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	saved.Name = "Gran Canaria (GC)"
	updated, err := repo.Save(saved)
	if err != nil {
		t.Fatalf("Save update: %v", err)
	}
	if updated.Name != "Gran Canaria (GC)" {
		t.Errorf("Name = %q after update", updated.Name)
	}

	if _, err := repo.Save(&Island{ID: "isl-missing", Name: "Ghost"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("updating missing island = %v, want ErrNotFound", err)
	}
}

func TestListActiveOnly(t *testing.T) {
	repo := testRepo(t)

	a, err := repo.Save(&Island{Name: "Tenerife", IsActive: true})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.Save(&Island{Name: "La Graciosa", IsActive: false}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	all, err := repo.List(false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List(false) returned %d islands, want 2", len(all))
	}

	active, err := repo.List(true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 1 || active[0].ID != a.ID {
		t.Fatalf("List(true) = %v, want only %s", active, a.ID)
	}
}

func TestSetActive(t *testing.T) {
	repo := testRepo(t)

	saved, err := repo.Save(&Island{Name: "Tenerife", IsActive: true})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := repo.SetActive(saved.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	got, err := repo.GetByID(saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.IsActive {
		t.Error("island still active after SetActive(false)")
	}

	if err := repo.SetActive("isl-missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetActive on missing island = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	repo := testRepo(t)

	saved, err := repo.Save(&Island{Name: "Tenerife"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := repo.Delete(saved.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(saved.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
}

func TestSeed(t *testing.T) {
	repo := testRepo(t)

	n, err := Seed(repo)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 7 {
		t.Fatalf("Seed inserted %d islands, want 7", n)
	}

	islands, err := repo.List(true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(islands) != 7 {
		t.Fatalf("List returned %d islands, want 7", len(islands))
	}
	if islands[0].Name != "Gran Canaria" || islands[6].Name != "El Hierro" {
		t.Errorf("unexpected seed order: first=%s last=%s", islands[0].Name, islands[6].Name)
	}

	if _, err := Seed(repo); err == nil {
		t.Error("second Seed succeeded, want error")
	}
}
