package matcher

import "github.com/ImTheFrack/VibeManga/internal/models"

// Reason identifies which cascade step produced a Result.
type Reason string

const (
	ReasonID      Reason = "id"
	ReasonSynonym Reason = "synonym"
	ReasonFuzzy   Reason = "fuzzy"
	ReasonNone    Reason = "none"
)

// Hint carries out-of-band information extracted from an external source
// alongside the title the matcher would otherwise have to guess from, e.g.
// an ID parsed out of a release's accompanying description text.
type Hint struct {
	ID *int64
}

// Result is the matcher's verdict for a single input: either a matched
// Series with a confidence and the cascade step that found it, or NoMatch
// (Reason == ReasonNone, Matched == false).
type Result struct {
	Matched    bool
	Series     models.Series
	Confidence float64
	Reason     Reason
}

// NoMatch is the canonical unmatched Result.
var NoMatch = Result{Reason: ReasonNone}

// Options configures the matcher's fuzzy-cascade thresholds. Callers build
// this from internal/config.Matching.
type Options struct {
	FuzzyAcceptThreshold float64
	FuzzyRefineThreshold float64
}
