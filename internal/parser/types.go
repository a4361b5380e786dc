package parser

// EntryType classifies a parsed filename into a content category.
type EntryType string

const (
	TypeManga       EntryType = "manga"
	TypeLightNovel  EntryType = "light_novel"
	TypeVisualNovel EntryType = "visual_novel"
	TypeAudiobook   EntryType = "audiobook"
	TypeAnthology   EntryType = "anthology"
	TypePeriodical  EntryType = "periodical"
	TypeUndersized  EntryType = "undersized"
)

// Range is an inclusive numeric interval with an optional decimal tail,
// e.g. chapter 44.5 through 52.
type Range struct {
	Low  float64
	High float64
}

// Options configures the thresholds and vocabularies the parser consults.
// Callers build this from internal/config.Parsing.
type Options struct {
	UndersizedVolumeBytes  int64
	UndersizedChapterBytes int64
	MaxRangeSize           int
	YearMin                int
	YearMax                int
	NoisePhrases           []string
	ProtectedTokens        []string
}

// Record is the Parser's output: spec section 3's "Parsed record".
type Record struct {
	Source        string
	CleanedTitle  string
	Type          EntryType
	VolumeRanges  []Range
	ChapterRanges []Range
	Notes         []string
	SizeBytes     int64
}
