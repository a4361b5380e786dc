package renamer

import (
	"os"
	"testing"

	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/parser"
)

func parserOpts() parser.Options {
	return parser.Options{MaxRangeSize: 200, YearMin: 1950, YearMax: 2035}
}

func TestSanitizeStripsIllegalCharsAndTrailingDots(t *testing.T) {
	got := Sanitize(`My:Series<Name>?  .`)
	if got != "MySeriesName" {
		t.Fatalf("unexpected sanitized name: %q", got)
	}
}

func TestTargetSeriesNameFallsBackThroughPolicy(t *testing.T) {
	series := models.Series{FolderName: "Folder Name", Metadata: models.Metadata{RomanizedTitle: "Romaji Title"}}
	if got := targetSeriesName(series, "english"); got != "Romaji Title" {
		t.Fatalf("expected fallback to romanized title, got %q", got)
	}
}

func TestTargetSeriesNameFolderPolicyIgnoresMetadata(t *testing.T) {
	series := models.Series{FolderName: "Folder Name", Metadata: models.Metadata{EnglishTitle: "English Title"}}
	if got := targetSeriesName(series, "folder"); got != "Folder Name" {
		t.Fatalf("expected folder policy to ignore metadata titles, got %q", got)
	}
}

func TestPlanRenamesFolderWhenTargetDiffers(t *testing.T) {
	series := models.Series{
		Path:       "/lib/Manga/Action/Old Folder",
		FolderName: "Old Folder",
		Metadata:   models.Metadata{EnglishTitle: "New Title"},
	}
	plan := BuildPlan(series, Options{PreferredTitle: "english"}, parserOpts())

	found := false
	for _, e := range plan {
		if e.Kind == KindFolder {
			found = true
			if e.NewPath != "/lib/Manga/Action/New Title" {
				t.Fatalf("unexpected folder target: %q", e.NewPath)
			}
			if e.Safety != SafetyStandard {
				t.Fatalf("expected standard safety for a real rename, got %d", e.Safety)
			}
		}
	}
	if !found {
		t.Fatalf("expected a folder rename entry, got %+v", plan)
	}
}

func TestPlanNormalizesLegacyExtensions(t *testing.T) {
	series := models.Series{
		Path:       "/lib/Manga/Action/Series",
		FolderName: "Series",
		Volumes:    []models.Volume{{Path: "/lib/Manga/Action/Series/Series v01.zip", Stem: "Series v01"}},
	}
	plan := BuildPlan(series, Options{PreferredTitle: "folder"}, parserOpts())

	var extEntry *Entry
	for i := range plan {
		if plan[i].Kind == KindFileExtension {
			extEntry = &plan[i]
		}
	}
	if extEntry == nil {
		t.Fatalf("expected a file-extension entry, got %+v", plan)
	}
	if extEntry.NewPath != "/lib/Manga/Action/Series/Series v01.cbz" {
		t.Fatalf("unexpected extension target: %q", extEntry.NewPath)
	}
	if extEntry.Safety != SafetyCosmetic {
		t.Fatalf("expected cosmetic safety for an extension swap, got %d", extEntry.Safety)
	}
}

func TestPlanMarksUncertainFileNameRenameWhenNoRangeParsed(t *testing.T) {
	series := models.Series{
		Path:       "/lib/Manga/Action/Series",
		FolderName: "Series",
		Metadata:   models.Metadata{EnglishTitle: "Series"},
		Volumes:    []models.Volume{{Path: "/lib/Manga/Action/Series/Untitled Scan.cbz", Stem: "Untitled Scan"}},
	}
	plan := BuildPlan(series, Options{PreferredTitle: "english"}, parserOpts())

	var fileEntry *Entry
	for i := range plan {
		if plan[i].Kind == KindFileName {
			fileEntry = &plan[i]
		}
	}
	if fileEntry == nil {
		t.Fatalf("expected a file-name entry, got %+v", plan)
	}
	if !fileEntry.Uncertain || fileEntry.Safety != SafetyUncertain {
		t.Fatalf("expected an uncertain, safety-3 entry for a rangeless filename, got %+v", fileEntry)
	}
}

func TestPlanSkipsWhitelistedSeries(t *testing.T) {
	series := models.Series{Path: "/lib/Manga/Action/Series", FolderName: "Series", Metadata: models.Metadata{EnglishTitle: "Renamed"}}
	plan := BuildPlan(series, Options{PreferredTitle: "english", Whitelist: map[string]bool{"Series": true}}, parserOpts())
	if len(plan) != 0 {
		t.Fatalf("expected whitelisted series to produce no plan entries, got %+v", plan)
	}
}

func TestPlanMarksCollisionsAndOrdersDepthDescending(t *testing.T) {
	series := models.Series{
		Path:       "/lib/Manga/Action/Series",
		FolderName: "Series",
		Metadata:   models.Metadata{EnglishTitle: "Series"},
		Volumes: []models.Volume{
			{Path: "/lib/Manga/Action/Series/A.zip", Stem: "A"},
			{Path: "/lib/Manga/Action/Series/B.rar", Stem: "B"},
			{Path: "/lib/Manga/Action/Series/C.zip", Stem: "C"},
		},
	}
	plan := BuildPlan(series, Options{PreferredTitle: "english"}, parserOpts())
	// A.zip and C.zip both rename to "Series.cbz", so both entries collide.
	collisions := 0
	for _, e := range plan {
		if e.Collision {
			collisions++
		}
	}
	if collisions != 2 {
		t.Fatalf("expected 2 colliding entries, got %d in %+v", collisions, plan)
	}
	for i := 1; i < len(plan); i++ {
		if plan[i-1].depth() < plan[i].depth() {
			t.Fatalf("expected depth-descending plan order, got %+v", plan)
		}
	}
}

func TestApplyStopsOnFirstErrorAndReportsLastSuccess(t *testing.T) {
	dir := t.TempDir()
	good := dir + "/a.txt"
	if err := os.WriteFile(good, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	plan := Plan{
		{OldPath: good, NewPath: dir + "/a2.txt"},
		{OldPath: dir + "/missing.txt", NewPath: dir + "/missing2.txt"},
	}
	last, err := Apply(plan)
	if err == nil {
		t.Fatalf("expected an error from the missing source file")
	}
	if last != 0 {
		t.Fatalf("expected last successful index 0, got %d", last)
	}
}
