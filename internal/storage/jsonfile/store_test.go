package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
)

func TestLoadAll_MissingFile(t *testing.T) {
	store := NewJSONFileStore(filepath.Join(t.TempDir(), "packages.json"))

	packages, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(packages) != 0 {
		t.Errorf("LoadAll() = %v, want empty catalog for a missing file", packages)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	store := NewJSONFileStore(path)
	ctx := context.Background()

	packages := []domain.Package{
		{
			ID:          "abc",
			Name:        "ryton-http",
			GitHubURL:   "https://github.com/rejzi/ryton-http",
			Stars:       42,
			Topics:      []string{"library", "network"},
			Owner:       domain.Owner{Login: "rejzi", Status: domain.StatusCLTeamMember},
			SubmittedBy: "rejzi",
		},
		{ID: "def", Name: "rydb"},
	}

	if err := store.SaveAll(ctx, packages); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	loaded, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("LoadAll() returned %d packages, want 2", len(loaded))
	}
	if loaded[0].ID != "abc" || loaded[0].Stars != 42 || loaded[0].Owner.Login != "rejzi" {
		t.Errorf("loaded[0] = %+v, want the saved record", loaded[0])
	}
	if loaded[1].Name != "rydb" {
		t.Errorf("loaded[1].Name = %q, want %q", loaded[1].Name, "rydb")
	}
}

func TestSaveAll_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	store := NewJSONFileStore(path)
	ctx := context.Background()

	if err := store.SaveAll(ctx, []domain.Package{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}
	if err := store.SaveAll(ctx, []domain.Package{{ID: "c"}}); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	loaded, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "c" {
		t.Errorf("LoadAll() = %v, want only the second write", loaded)
	}
}

func TestSaveAll_NilWritesEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	store := NewJSONFileStore(path)

	if err := store.SaveAll(context.Background(), nil); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("file contents = %q, want %q", string(data), "[]")
	}
}

func TestLoadAll_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewJSONFileStore(path)
	if _, err := store.LoadAll(context.Background()); err == nil {
		t.Error("LoadAll() of corrupt file succeeded, want error")
	}
}
