// Package progress defines the orchestration contracts the scanner,
// matcher, and deduper use to report progress and honor cancellation,
// without depending on any particular CLI or UI layer.
//
// Per spec section 6, progress events and cancellation tokens are the only
// two hooks the core exposes to callers: a Sink receives (phase, done,
// total, label) events and must never block the caller, and cancellation is
// the standard context.Context mechanism so workers can select on ctx.Done()
// between series or chunks.
package progress
