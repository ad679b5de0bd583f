package taxonomy

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestFileCache_MissingFileIsEmpty(t *testing.T) {
	c := NewFileCache(filepath.Join(t.TempDir(), "taxonomy_cache.json"))
	tax, err := c.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tax.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tax.Len())
	}
}

func TestFileCache_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "taxonomy_cache.json")
	c := NewFileCache(path)

	want := New(
		Entry{Code: "math.AG", Name: "Algebraic Geometry", Description: "Varieties", Group: GroupMath},
		Entry{Code: "cs.AI", Name: "Artificial Intelligence", Description: "Agents", Group: "cs"},
	)
	if err := c.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading cache: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"math.AG\": {\n") {
		t.Errorf("cache is not pretty-printed:\n%s", data)
	}

	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got.Entries(), want.Entries()) {
		t.Errorf("Load() = %+v, want %+v", got.Entries(), want.Entries())
	}

	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".taxonomy-*"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestFileCache_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy_cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileCache(path).Load(); err == nil {
		t.Error("Load() on corrupt file succeeded, want error")
	}
}
