package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ImTheFrack/VibeManga/internal/models"
)

func TestLoadMissingFileReturnsEmptyMetadata(t *testing.T) {
	dir := t.TempDir()
	m, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Empty() {
		t.Fatalf("expected empty metadata for missing file")
	}
}

func TestLoadMalformedFileReturnsPerItemError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(dir)
	if err == nil {
		t.Fatalf("expected an error for malformed series.json")
	}
	if !m.Empty() {
		t.Fatalf("expected empty metadata alongside the error")
	}
}

func TestSaveAndLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	id := int64(42)
	volumes := 12
	original := models.Metadata{
		ID:             &id,
		RomanizedTitle: "Kaijuu Naito",
		EnglishTitle:   "Kaiju No. 8",
		Synonyms:       []string{"Monster #8"},
		Status:         models.StatusOngoing,
		TotalVolumes:   &volumes,
	}

	if err := Save(dir, original); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if *loaded.ID != id {
		t.Fatalf("expected ID %d, got %v", id, loaded.ID)
	}
	if loaded.EnglishTitle != original.EnglishTitle {
		t.Fatalf("expected english title %q, got %q", original.EnglishTitle, loaded.EnglishTitle)
	}
	if len(loaded.Synonyms) != 1 || loaded.Synonyms[0] != "Monster #8" {
		t.Fatalf("expected synonyms to round-trip, got %v", loaded.Synonyms)
	}
	if loaded.Status != models.StatusOngoing {
		t.Fatalf("expected status ongoing, got %v", loaded.Status)
	}
}

// TestSaveUsesSpecSchemaKeysInSortedOrder pins the on-disk key names and
// ordering spec section 6 fixes: mal_id, title, title_english,
// title_japanese, year, … written alphabetically so an external
// collaborator's sorted-keys series.json round-trips byte-equal.
func TestSaveUsesSpecSchemaKeysInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	id := int64(7)
	year := 2020
	if err := Save(dir, models.Metadata{ID: &id, RomanizedTitle: "R", EnglishTitle: "E", NativeTitle: "N", ReleaseYear: &year}); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(data)

	for _, key := range []string{`"mal_id"`, `"title"`, `"title_english"`, `"title_japanese"`, `"year"`} {
		if !strings.Contains(content, key) {
			t.Fatalf("expected %s in series.json, got:\n%s", key, content)
		}
	}

	idIdx := strings.Index(content, `"mal_id"`)
	statusIdx := strings.Index(content, `"status"`)
	titleIdx := strings.Index(content, `"title"`)
	yearIdx := strings.Index(content, `"year"`)
	if !(idIdx < statusIdx && statusIdx < titleIdx && titleIdx < yearIdx) {
		t.Fatalf("expected keys in sorted order, got:\n%s", content)
	}
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	dir := t.TempDir()
	payload := `{"title_english": "Test", "unknown_field": "value", "another": 5}`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.EnglishTitle != "Test" {
		t.Fatalf("expected english title to load, got %q", m.EnglishTitle)
	}
}
