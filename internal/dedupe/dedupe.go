// Package dedupe finds duplicate Series and Volumes across a scanned
// Library using three independent detectors: exact external-ID collisions,
// exact content collisions (size and, when known, page count), and fuzzy
// name collisions across Series identities.
package dedupe

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/progress"
)

const defaultFuzzyThreshold = 0.95

// Run executes all three detectors concurrently against lib and returns the
// combined Report once all have finished. The ID and content detectors are
// cheap single passes; the fuzzy detector is the O(n^2) one and is the only
// one that shares work across opts.PoolSize and observes ctx cancellation
// between pairs.
func Run(ctx context.Context, lib models.Library, opts Options, sink progress.Sink, logger *slog.Logger) Report {
	sink = progress.Or(sink)
	if opts.FuzzyThreshold <= 0 {
		opts.FuzzyThreshold = defaultFuzzyThreshold
	}
	if opts.PoolSize < 1 {
		opts.PoolSize = 1
	}

	var (
		wg            sync.WaitGroup
		idReport      IDCollisionReport
		contentGroups []ContentCollisionGroup
		fuzzy         []FuzzyCollision
	)
	wg.Add(3)
	sink.Emit(progress.Event{Phase: progress.PhaseDedupe, Label: "id collisions"})
	go func() { defer wg.Done(); idReport = detectIDCollisions(lib) }()
	sink.Emit(progress.Event{Phase: progress.PhaseDedupe, Label: "content collisions"})
	go func() { defer wg.Done(); contentGroups = detectContentCollisions(lib) }()
	sink.Emit(progress.Event{Phase: progress.PhaseDedupe, Label: "fuzzy name collisions"})
	go func() { defer wg.Done(); fuzzy = detectFuzzyCollisions(ctx, lib, opts) }()
	wg.Wait()

	if logger != nil {
		logger.Debug("id collision scan complete",
			slog.Int("series_scanned", idReport.SeriesScanned),
			slog.Int("series_with_id", idReport.SeriesWithID),
			slog.Int("distinct_ids", idReport.DistinctIDSeen),
			slog.Int("groups", len(idReport.Groups)))
	}

	return Report{
		IDCollisions:      idReport,
		ContentCollisions: contentGroups,
		FuzzyCollisions:   fuzzy,
	}
}
