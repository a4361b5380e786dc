package corefail

import (
	"errors"
	"testing"
)

func TestWrapPreservesMarkerForErrorsIs(t *testing.T) {
	underlying := errors.New("disk full")
	err := Wrap(ErrCacheWrite, "cache", "write", "temp file", underlying)

	if !errors.Is(err, ErrCacheWrite) {
		t.Fatalf("expected wrapped error to match ErrCacheWrite")
	}
	if !errors.Is(err, underlying) {
		t.Fatalf("expected wrapped error to match underlying cause")
	}
}

func TestFatalOnlyPreconditionAndCancelled(t *testing.T) {
	cases := []struct {
		marker error
		fatal  bool
	}{
		{ErrPrecondition, true},
		{ErrCancelled, true},
		{ErrPerItem, false},
		{ErrCacheRead, false},
		{ErrIndexCollision, false},
	}
	for _, tc := range cases {
		if got := Fatal(tc.marker); got != tc.fatal {
			t.Fatalf("Fatal(%v) = %v, want %v", tc.marker, got, tc.fatal)
		}
	}
}

func TestDiagnosticsRecordSkipsFatalAndParseWarning(t *testing.T) {
	diag := NewDiagnostics()
	diag.Record(Wrap(ErrPrecondition, "scan", "root", "missing", nil))
	diag.Record(Wrap(ErrCancelled, "scan", "root", "stopped", nil))
	diag.Record(Wrap(ErrParseWarning, "parser", "range", "bad range", nil))

	if diag.Len() != 0 {
		t.Fatalf("expected no entries recorded, got %d", diag.Len())
	}
}

func TestDiagnosticsRecordKeepsRecoverableKinds(t *testing.T) {
	diag := NewDiagnostics()
	diag.Record(Wrap(ErrPerItem, "scanner", "series.json", "malformed", nil))
	diag.Record(Wrap(ErrIndexCollision, "index", "bind", "duplicate id", nil))

	entries := diag.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != "per_item" {
		t.Fatalf("expected first entry kind per_item, got %q", entries[0].Kind)
	}
	if entries[1].Kind != "index_collision" {
		t.Fatalf("expected second entry kind index_collision, got %q", entries[1].Kind)
	}
}

func TestDiagnosticsMergeCombinesWorkerResults(t *testing.T) {
	a := NewDiagnostics()
	a.Record(Wrap(ErrPerItem, "scanner", "worker-1", "unreadable dir", nil))

	b := NewDiagnostics()
	b.Record(Wrap(ErrCacheRead, "cache", "worker-2", "bad magic", nil))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("expected merged length 2, got %d", a.Len())
	}
}

func TestDiagnosticsNilReceiverIsSafe(t *testing.T) {
	var d *Diagnostics
	d.Record(Wrap(ErrPerItem, "scanner", "worker", "unreadable dir", nil))
	d.RecordKind(ErrCacheRead, "bad magic")
	if got := d.Len(); got != 0 {
		t.Fatalf("expected nil Diagnostics to report length 0, got %d", got)
	}
	if got := d.Entries(); got != nil {
		t.Fatalf("expected nil Diagnostics to report nil entries, got %v", got)
	}
}

func TestDiagnosticsEntriesGetDistinctIDs(t *testing.T) {
	diag := NewDiagnostics()
	diag.Record(Wrap(ErrPerItem, "scanner", "series.json", "malformed", nil))
	diag.RecordKind(ErrIndexCollision, "duplicate id")

	entries := diag.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID == "" || entries[1].ID == "" {
		t.Fatalf("expected every entry to carry a non-empty ID, got %q and %q", entries[0].ID, entries[1].ID)
	}
	if entries[0].ID == entries[1].ID {
		t.Fatalf("expected distinct entry IDs, both were %q", entries[0].ID)
	}
}

func TestSeverityUnclassifiedErrorReturnsNotOk(t *testing.T) {
	_, ok := Severity(errors.New("unrelated"))
	if ok {
		t.Fatalf("expected Severity to report false for an unclassified error")
	}
}
