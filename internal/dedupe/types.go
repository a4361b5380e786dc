package dedupe

import "github.com/ImTheFrack/VibeManga/internal/models"

// IDCollisionGroup is a set of two or more Series sharing a non-nil
// external ID.
type IDCollisionGroup struct {
	ID         int64
	Series     []models.Series
	Confidence float64
}

// IDCollisionReport carries the detector's findings plus the scan
// diagnostics the original MAL-ID detector logged: how many Series were
// scanned and how many distinct IDs were observed.
type IDCollisionReport struct {
	Groups         []IDCollisionGroup
	SeriesScanned  int
	SeriesWithID   int
	DistinctIDSeen int
}

// ContentCollisionGroup is a set of two or more Volumes sharing
// (size, page_count) or, absent a page count, size alone.
type ContentCollisionGroup struct {
	SizeBytes  int64
	PageCount  *int
	Volumes    []models.Volume
	Confidence float64
}

// FuzzyCollision is a pair of Series whose identities scored at or above
// the fuzzy-duplicate threshold.
type FuzzyCollision struct {
	A, B  models.Series
	Score float64
}

// Report is the combined result of all three detectors.
type Report struct {
	IDCollisions      IDCollisionReport
	ContentCollisions []ContentCollisionGroup
	FuzzyCollisions   []FuzzyCollision
}

// Options configures the fuzzy detector's thresholds and pool sizing.
type Options struct {
	FuzzyThreshold float64
	PoolSize       int
}
