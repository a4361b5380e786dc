package models

import "testing"

func TestSeriesAllVolumesIncludesSubGroups(t *testing.T) {
	s := Series{
		Volumes: []Volume{{Stem: "v01"}},
		SubGroups: []SubGroup{
			{Name: "v02-v03", Volumes: []Volume{{Stem: "v02"}, {Stem: "v03"}}},
		},
	}
	got := s.AllVolumes()
	if len(got) != 3 {
		t.Fatalf("expected 3 volumes, got %d", len(got))
	}
}

func TestSeriesIdentitiesDropsEmptyFields(t *testing.T) {
	s := Series{
		FolderName: "One Piece",
		Metadata: Metadata{
			EnglishTitle: "Another Title",
			NativeTitle:  "",
			Synonyms:     []string{"OP", ""},
		},
	}
	got := s.Identities()
	want := []string{"One Piece", "Another Title", "OP"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

// TestSeriesIdentitiesDedupesCaseInsensitively covers spec section 3's
// identity set definition: when the folder name equals one of the titles
// (the common case), Identities must report it once, not once per field
// it came from.
func TestSeriesIdentitiesDedupesCaseInsensitively(t *testing.T) {
	s := Series{
		FolderName: "Attack on Titan",
		Metadata: Metadata{
			EnglishTitle: "ATTACK ON TITAN",
			Synonyms:     []string{"attack on titan"},
		},
	}
	got := s.Identities()
	if len(got) != 1 {
		t.Fatalf("expected a single deduped identity, got %v", got)
	}
	if got[0] != "Attack on Titan" {
		t.Fatalf("expected the first-seen form to be kept, got %q", got[0])
	}
}

func TestLibraryTotalsAggregateRecursively(t *testing.T) {
	lib := Library{
		Categories: []Category{
			{
				Name: "Manga",
				Categories: []Category{
					{
						Name: "Action",
						Series: []Series{
							{Volumes: []Volume{{SizeBytes: 100}, {SizeBytes: 200}}},
						},
					},
				},
			},
		},
	}
	if got := lib.TotalSeriesCount(); got != 1 {
		t.Fatalf("expected 1 series, got %d", got)
	}
	if got := lib.TotalVolumeCount(); got != 2 {
		t.Fatalf("expected 2 volumes, got %d", got)
	}
	if got := lib.TotalSizeBytes(); got != 300 {
		t.Fatalf("expected 300 bytes, got %d", got)
	}
}

func TestMetadataEmpty(t *testing.T) {
	if !NewEmptyMetadata().Empty() {
		t.Fatalf("expected NewEmptyMetadata to be Empty")
	}
	id := int64(5)
	m := Metadata{ID: &id}
	if m.Empty() {
		t.Fatalf("expected metadata with ID set to not be Empty")
	}
}
