package corefail

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds, one per spec section 7 variant.
var (
	// ErrPrecondition marks a failure that must abort the operation and be
	// reported to the caller: a missing, non-directory, or unreadable
	// library root.
	ErrPrecondition = errors.New("precondition error")

	// ErrPerItem marks a failure scoped to a single series directory: an
	// unreadable directory or malformed series.json. The series is emitted
	// with empty metadata and zero volumes, or skipped, and the failure is
	// appended to the Library's diagnostics.
	ErrPerItem = errors.New("per-item error")

	// ErrParseWarning marks a range rejected for validity reasons. Logged
	// at debug level only; never surfaced to callers or diagnostics.
	ErrParseWarning = errors.New("parse warning")

	// ErrCacheRead marks an incompatible or corrupt fast cache snapshot.
	// Recovered by falling back to the JSON cache or a fresh scan.
	ErrCacheRead = errors.New("cache read error")

	// ErrCacheWrite marks a failed cache persistence attempt. Reported as a
	// non-fatal warning; the in-memory Library remains valid.
	ErrCacheWrite = errors.New("cache write error")

	// ErrIndexCollision marks two Series sharing a non-empty external ID.
	// The first Series bound is kept in the identity index; the collision
	// is recorded as a diagnostic.
	ErrIndexCollision = errors.New("index collision")

	// ErrCancelled marks caller-requested cancellation. The result is
	// partial and cache writes are suppressed.
	ErrCancelled = errors.New("cancelled")
)

// Wrap builds an error that carries stage/operation context and is tagged
// with marker for later classification by Severity. The marker should be
// one of the sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrPerItem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether err must abort the calling operation rather than be
// folded into a Diagnostics record.
func Fatal(err error) bool {
	return errors.Is(err, ErrPrecondition) || errors.Is(err, ErrCancelled)
}

// Severity classifies err into the sentinel kind it carries, for routing to
// the right Diagnostics bucket. Returns ok=false if err matches none of the
// known kinds (treated as an ErrPerItem by callers that need a default).
func Severity(err error) (marker error, ok bool) {
	switch {
	case errors.Is(err, ErrPrecondition):
		return ErrPrecondition, true
	case errors.Is(err, ErrCancelled):
		return ErrCancelled, true
	case errors.Is(err, ErrPerItem):
		return ErrPerItem, true
	case errors.Is(err, ErrParseWarning):
		return ErrParseWarning, true
	case errors.Is(err, ErrCacheRead):
		return ErrCacheRead, true
	case errors.Is(err, ErrCacheWrite):
		return ErrCacheWrite, true
	case errors.Is(err, ErrIndexCollision):
		return ErrIndexCollision, true
	default:
		return nil, false
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "core failure"
	}
	return strings.Join(parts, ": ")
}
