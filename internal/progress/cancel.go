package progress

import "context"

// Cancelled reports whether ctx has been cancelled, the idiom the scanner
// and deduper worker pools use to poll between series or chunks per spec
// section 5's cancellation model.
func Cancelled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
