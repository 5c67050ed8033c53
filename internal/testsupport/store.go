package testsupport

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/menudb"
)

// WriteStore writes a menu database document into a fresh temp directory and
// returns its path.
func WriteStore(t testing.TB, doc string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(t.TempDir(), "data", "menu_db.json"), doc)
}

// LoadStore reads the menu database at path, failing the test on error.
func LoadStore(t testing.TB, path string) *menudb.Store {
	t.Helper()

	store, err := menudb.NewFile(path, nil).Load()
	if err != nil {
		t.Fatalf("load menu database %s: %v", path, err)
	}
	return store
}

// RequireItems fails the test unless category lists exactly want, in order.
func RequireItems(t testing.TB, store *menudb.Store, category string, want ...string) {
	t.Helper()

	if want == nil {
		want = []string{}
	}
	if !store.Has(category) {
		t.Fatalf("category %q missing", category)
	}
	if got := store.Items(category); !slices.Equal(got, want) {
		t.Fatalf("category %q = %q, want %q", category, got, want)
	}
}

// WriteMoves writes a TOML move table and returns its path.
func WriteMoves(t testing.TB, doc string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(t.TempDir(), "moves.toml"), doc)
}
