package dedupe

import (
	"context"
	"testing"

	"github.com/ImTheFrack/VibeManga/internal/models"
)

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }

func seriesWithID(folder string, id int64) models.Series {
	return models.Series{
		Path:       "/lib/main/sub/" + folder,
		FolderName: folder,
		Metadata:   models.Metadata{ID: int64p(id)},
	}
}

func libraryOf(series ...models.Series) models.Library {
	return models.Library{
		RootPath: "/lib",
		Categories: []models.Category{
			{
				Name: "main",
				Path: "/lib/main",
				Categories: []models.Category{
					{Name: "sub", Path: "/lib/main/sub", Series: series},
				},
			},
		},
	}
}

func TestDetectIDCollisionsGroupsSharedIDs(t *testing.T) {
	a := seriesWithID("One Piece", 100)
	b := seriesWithID("One Piece (Digital)", 100)
	c := seriesWithID("Naruto", 200)
	lib := libraryOf(a, b, c)

	report := detectIDCollisions(lib)

	if report.SeriesScanned != 3 {
		t.Fatalf("SeriesScanned = %d, want 3", report.SeriesScanned)
	}
	if report.SeriesWithID != 3 {
		t.Fatalf("SeriesWithID = %d, want 3", report.SeriesWithID)
	}
	if report.DistinctIDSeen != 2 {
		t.Fatalf("DistinctIDSeen = %d, want 2", report.DistinctIDSeen)
	}
	if len(report.Groups) != 1 {
		t.Fatalf("Groups = %d, want 1", len(report.Groups))
	}
	group := report.Groups[0]
	if group.ID != 100 || len(group.Series) != 2 || group.Confidence != idCollisionConfidence {
		t.Fatalf("unexpected group: %+v", group)
	}
}

func TestDetectIDCollisionsSkipsSeriesWithoutID(t *testing.T) {
	lib := libraryOf(models.Series{Path: "/lib/main/sub/x", FolderName: "x"})
	report := detectIDCollisions(lib)
	if report.SeriesWithID != 0 || len(report.Groups) != 0 {
		t.Fatalf("expected no ID-bearing series, got %+v", report)
	}
}

func seriesWithVolume(folder string, size int64, pageCount *int) models.Series {
	return models.Series{
		Path:       "/lib/main/sub/" + folder,
		FolderName: folder,
		Metadata:   models.NewEmptyMetadata(),
		Volumes: []models.Volume{
			{Path: "/lib/main/sub/" + folder + "/v01.cbz", Stem: "v01", SizeBytes: size, PageCount: pageCount},
		},
	}
}

func TestDetectContentCollisionsGroupsBySizeAndPageCount(t *testing.T) {
	a := seriesWithVolume("A", 1000, intp(20))
	b := seriesWithVolume("B", 1000, intp(20))
	c := seriesWithVolume("C", 1000, intp(99))
	lib := libraryOf(a, b, c)

	groups := detectContentCollisions(lib)

	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].Confidence != contentCollisionWithPageCount {
		t.Fatalf("confidence = %v, want %v", groups[0].Confidence, contentCollisionWithPageCount)
	}
	if len(groups[0].Volumes) != 2 {
		t.Fatalf("volumes = %d, want 2", len(groups[0].Volumes))
	}
}

func TestDetectContentCollisionsFallsBackToSizeAloneWithoutPageCount(t *testing.T) {
	a := seriesWithVolume("A", 2000, nil)
	b := seriesWithVolume("B", 2000, nil)
	lib := libraryOf(a, b)

	groups := detectContentCollisions(lib)

	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].Confidence != contentCollisionWithoutPageCount {
		t.Fatalf("confidence = %v, want %v", groups[0].Confidence, contentCollisionWithoutPageCount)
	}
}

func TestDetectContentCollisionsIgnoresUniqueSizes(t *testing.T) {
	a := seriesWithVolume("A", 1000, nil)
	b := seriesWithVolume("B", 2000, nil)
	lib := libraryOf(a, b)

	if groups := detectContentCollisions(lib); len(groups) != 0 {
		t.Fatalf("expected no collisions, got %+v", groups)
	}
}

func bareSeries(folder string) models.Series {
	return models.Series{Path: "/lib/main/sub/" + folder, FolderName: folder, Metadata: models.NewEmptyMetadata()}
}

func TestDetectFuzzyCollisionsFindsNearIdenticalFolderNames(t *testing.T) {
	a := bareSeries("Attack on Titan")
	b := bareSeries("Attack on Titans")
	lib := libraryOf(a, b)

	pairs := detectFuzzyCollisions(context.Background(), lib, Options{FuzzyThreshold: 0.8, PoolSize: 2})

	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}
	if pairs[0].Score < 0.8 {
		t.Fatalf("score = %v, want >= 0.8", pairs[0].Score)
	}
}

func TestDetectFuzzyCollisionsRejectsPairsOutsideTokenLengthRatio(t *testing.T) {
	a := bareSeries("One")
	b := bareSeries("One Two Three Four Five")
	lib := libraryOf(a, b)

	pairs := detectFuzzyCollisions(context.Background(), lib, Options{FuzzyThreshold: 0.1, PoolSize: 2})

	if len(pairs) != 0 {
		t.Fatalf("expected ratio filter to reject the pair, got %+v", pairs)
	}
}

func TestDetectFuzzyCollisionsIgnoresUnrelatedTitles(t *testing.T) {
	a := bareSeries("One Piece")
	b := bareSeries("Naruto")
	lib := libraryOf(a, b)

	pairs := detectFuzzyCollisions(context.Background(), lib, Options{FuzzyThreshold: 0.95, PoolSize: 2})

	if len(pairs) != 0 {
		t.Fatalf("expected no collisions, got %+v", pairs)
	}
}

func TestRunCombinesAllThreeDetectors(t *testing.T) {
	idA, idB := seriesWithID("One Piece", 100), seriesWithID("One Piece Digital", 100)
	lib := libraryOf(idA, idB, bareSeries("Naruto"))

	report := Run(context.Background(), lib, Options{}, nil, nil)

	if len(report.IDCollisions.Groups) != 1 {
		t.Fatalf("expected 1 ID collision group, got %+v", report.IDCollisions)
	}
	if report.ContentCollisions == nil && len(report.ContentCollisions) != 0 {
		t.Fatalf("expected a (possibly empty) content collisions slice")
	}
}

func TestRunAppliesDefaultsWhenOptionsZeroValued(t *testing.T) {
	lib := libraryOf(bareSeries("Solo"))
	report := Run(context.Background(), lib, Options{}, nil, nil)
	if report.IDCollisions.SeriesScanned != 1 {
		t.Fatalf("SeriesScanned = %d, want 1", report.IDCollisions.SeriesScanned)
	}
}

func TestRunRespectsCancellationDuringFuzzyDetection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a, b := bareSeries("Attack on Titan"), bareSeries("Attack on Titans")
	lib := libraryOf(a, b)

	report := Run(ctx, lib, Options{FuzzyThreshold: 0.1, PoolSize: 2}, nil, nil)

	if len(report.FuzzyCollisions) != 0 {
		t.Fatalf("expected cancellation to suppress fuzzy results, got %+v", report.FuzzyCollisions)
	}
}
