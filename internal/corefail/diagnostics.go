package corefail

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Entry is a single recorded non-fatal failure. ID is a unique correlation
// handle so a CLI or log consumer can reference one entry among many
// recorded during the same run.
type Entry struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Diagnostics aggregates every non-fatal failure kind produced during a
// single operation (scan, match, rename-plan, or dedupe run), per spec
// section 7's propagation rule: Precondition and Cancelled escape as errors,
// everything else accumulates here and rides alongside the successful
// result.
//
// Safe for concurrent use by the scanner's and deduper's worker pools.
type Diagnostics struct {
	mu      sync.Mutex
	entries []Entry
}

// NewDiagnostics returns an empty Diagnostics record.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Record appends err to the diagnostics list if it carries a non-fatal
// sentinel kind. Fatal errors (Precondition, Cancelled) and unclassified
// errors are ignored — callers should have already handled those by
// returning them directly. ErrParseWarning is also ignored: spec section 7
// says it is logged at debug only and never surfaced.
func (d *Diagnostics) Record(err error) {
	if d == nil || err == nil {
		return
	}
	marker, ok := Severity(err)
	if !ok || marker == ErrParseWarning || Fatal(marker) {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, Entry{ID: uuid.NewString(), Kind: kindLabel(marker), Message: err.Error()})
}

// RecordKind appends a synthetic entry under the given marker without
// requiring a wrapped error, for call sites that just need to note a
// recovered condition (e.g. an index collision noticed outside Wrap).
func (d *Diagnostics) RecordKind(marker error, message string) {
	if d == nil || marker == nil || marker == ErrParseWarning || Fatal(marker) {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, Entry{ID: uuid.NewString(), Kind: kindLabel(marker), Message: message})
}

// Entries returns a copy of the recorded diagnostics, in recording order.
func (d *Diagnostics) Entries() []Entry {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len reports how many diagnostics have been recorded.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Merge appends other's entries into d, for combining per-worker
// diagnostics collected by a worker pool into a single result.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if d == nil || other == nil {
		return
	}
	other.mu.Lock()
	entries := make([]Entry, len(other.entries))
	copy(entries, other.entries)
	other.mu.Unlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, entries...)
}

func kindLabel(marker error) string {
	switch marker {
	case ErrPerItem:
		return "per_item"
	case ErrCacheRead:
		return "cache_read"
	case ErrCacheWrite:
		return "cache_write"
	case ErrIndexCollision:
		return "index_collision"
	default:
		return fmt.Sprintf("%v", marker)
	}
}
