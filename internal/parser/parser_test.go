package parser

import "testing"

func defaultOptions() Options {
	return Options{
		UndersizedVolumeBytes:  35 * 1024 * 1024,
		UndersizedChapterBytes: 4 * 1024 * 1024,
		MaxRangeSize:           200,
		YearMin:                1900,
		YearMax:                2150,
		NoisePhrases:           []string{"complete edition", "special issue", "official", "digital"},
		ProtectedTokens:        []string{`(?i)\bpart\s+\d+\b`, `(?i)\bno\.?\s*\d+\b`},
	}
}

func TestParseClassifiesLightNovel(t *testing.T) {
	r := Parse("Some Series Light Novel v03", 1000, defaultOptions())
	if r.Type != TypeLightNovel {
		t.Fatalf("expected light novel, got %v", r.Type)
	}
}

func TestParseStandardVolumeRange(t *testing.T) {
	r := Parse("Berserk v01-03 [Digital]", 100*1024*1024, defaultOptions())
	if len(r.VolumeRanges) != 1 {
		t.Fatalf("expected one volume range, got %v", r.VolumeRanges)
	}
	got := r.VolumeRanges[0]
	if got.Low != 1 || got.High != 3 {
		t.Fatalf("expected [1,3], got %+v", got)
	}
	if r.CleanedTitle != "Berserk" {
		t.Fatalf("expected cleaned title %q, got %q", "Berserk", r.CleanedTitle)
	}
}

func TestParseMessyVolume(t *testing.T) {
	r := Parse("Some Manga v01v02v03", 50*1024*1024, defaultOptions())
	if len(r.VolumeRanges) != 1 {
		t.Fatalf("expected one volume range, got %v", r.VolumeRanges)
	}
	got := r.VolumeRanges[0]
	if got.Low != 1 || got.High != 3 {
		t.Fatalf("expected [1,3], got %+v", got)
	}
}

func TestParseStandardChapterRange(t *testing.T) {
	r := Parse("One Piece Chapter 1050-1052", 10*1024*1024, defaultOptions())
	if len(r.ChapterRanges) != 1 {
		t.Fatalf("expected one chapter range, got %v", r.ChapterRanges)
	}
	got := r.ChapterRanges[0]
	if got.Low != 1050 || got.High != 1052 {
		t.Fatalf("expected [1050,1052], got %+v", got)
	}
}

func TestParseUndersizedVolume(t *testing.T) {
	r := Parse("Some Manga v01", 1024, defaultOptions())
	if r.Type != TypeUndersized {
		t.Fatalf("expected undersized classification, got %v", r.Type)
	}
}

func TestParseUndersizedChapterOnly(t *testing.T) {
	r := Parse("Some Manga Chapter 5", 1024, defaultOptions())
	if r.Type != TypeUndersized {
		t.Fatalf("expected undersized classification, got %v", r.Type)
	}
}

func TestParseRejectsOversizedRange(t *testing.T) {
	opts := defaultOptions()
	r := Parse("Some Manga Chapter 1-5000", 10*1024*1024, opts)
	if len(r.ChapterRanges) != 0 {
		t.Fatalf("expected oversized range to be dropped, got %v", r.ChapterRanges)
	}
}

func TestParseDropsYearLikeEndpoints(t *testing.T) {
	r := Parse("Some Manga Chapter 1-2021", 10*1024*1024, defaultOptions())
	if len(r.ChapterRanges) != 0 {
		t.Fatalf("expected range touching year window to be dropped, got %v", r.ChapterRanges)
	}
}

func TestParseTagExtractionCapturesNotes(t *testing.T) {
	r := Parse("Solo Leveling [Webtoon] [Color] v01", 50*1024*1024, defaultOptions())
	if len(r.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %v", r.Notes)
	}
}

// TestParseKaijuNo8MasksTheNumberWithoutDroppingIt is spec section 8
// scenario 3: "No. 8" is a protected token, so its digit must never be read
// as a volume or chapter number, but the text itself stays in the title.
func TestParseKaijuNo8MasksTheNumberWithoutDroppingIt(t *testing.T) {
	r := Parse("Kaiju No. 8 v05", 80*1024*1024, defaultOptions())
	if len(r.VolumeRanges) != 1 || r.VolumeRanges[0].Low != 5 || r.VolumeRanges[0].High != 5 {
		t.Fatalf("expected volume range [5,5], got %+v", r.VolumeRanges)
	}
	if len(r.ChapterRanges) != 0 {
		t.Fatalf("expected no chapter ranges, got %+v", r.ChapterRanges)
	}
	if r.CleanedTitle != "Kaiju No. 8" {
		t.Fatalf("expected cleaned title %q, got %q", "Kaiju No. 8", r.CleanedTitle)
	}
}

// TestParseMessyVolumeAcceptsHyphenSeparator is spec section 4.2 step 8's
// token grammar v\d+(?:[vV_-]\d+)+, which lists '-' as a valid separator
// alongside 'v', 'V', and '_'.
func TestParseMessyVolumeAcceptsHyphenSeparator(t *testing.T) {
	r := Parse("Some Manga v01-03-05", 50*1024*1024, defaultOptions())
	if len(r.VolumeRanges) != 1 {
		t.Fatalf("expected one volume range, got %v", r.VolumeRanges)
	}
	got := r.VolumeRanges[0]
	if got.Low != 1 || got.High != 5 {
		t.Fatalf("expected [1,5], got %+v", got)
	}
}

func TestParseUndersizedVolumeAtZeroBytes(t *testing.T) {
	r := Parse("Some Manga v01", 0, defaultOptions())
	if r.Type != TypeUndersized {
		t.Fatalf("expected a zero-byte volume to classify as undersized, got %v", r.Type)
	}
}

func TestParseSkipsUndersizedClassificationForUnknownSize(t *testing.T) {
	r := Parse("Some Manga v01", -1, defaultOptions())
	if r.Type != TypeManga {
		t.Fatalf("expected unknown size (-1) to skip Undersized classification, got %v", r.Type)
	}
}

func TestParseNakedTrailingNumberBecomesChapter(t *testing.T) {
	r := Parse("Attack on Titan 005", 5*1024*1024, defaultOptions())
	if len(r.ChapterRanges) != 1 {
		t.Fatalf("expected a naked trailing number to parse as a chapter range, got %+v", r)
	}
	if r.ChapterRanges[0].Low != 5 {
		t.Fatalf("expected chapter 5, got %+v", r.ChapterRanges[0])
	}
}

func TestParseNakedTrailingNumbersPeelsRecursively(t *testing.T) {
	r := Parse("Attack on Titan 1,2,3", 5*1024*1024, defaultOptions())
	if len(r.ChapterRanges) != 3 {
		t.Fatalf("expected 3 peeled chapter ranges, got %+v", r.ChapterRanges)
	}
	for i, want := range []float64{1, 2, 3} {
		if r.ChapterRanges[i].Low != want || r.ChapterRanges[i].High != want {
			t.Fatalf("expected chapter %v at position %d, got %+v", want, i, r.ChapterRanges[i])
		}
	}
	if r.CleanedTitle != "Attack on Titan" {
		t.Fatalf("expected residual title to drop all peeled numbers, got %q", r.CleanedTitle)
	}
}

func TestParseNakedTrailingNumbersStopAtUnseparatedNumber(t *testing.T) {
	r := Parse("Attack on Titan 100 5", 5*1024*1024, defaultOptions())
	if len(r.ChapterRanges) != 1 {
		t.Fatalf("expected peeling to stop at the unseparated number, got %+v", r.ChapterRanges)
	}
	if r.ChapterRanges[0].Low != 5 {
		t.Fatalf("expected only the trailing 5 to peel, got %+v", r.ChapterRanges[0])
	}
}

func TestParseIsDeterministic(t *testing.T) {
	opts := defaultOptions()
	a := Parse("Vinland Saga Chapters 210-220 V2", 10*1024*1024, opts)
	b := Parse("Vinland Saga Chapters 210-220 V2", 10*1024*1024, opts)
	if a.CleanedTitle != b.CleanedTitle {
		t.Fatalf("expected deterministic output, got %q vs %q", a.CleanedTitle, b.CleanedTitle)
	}
}
