// Package corefail classifies the error kinds that flow out of VibeManga's
// core components and decides how each one propagates.
//
// Most subsystem failures are not fatal to the overall operation: a
// malformed series.json, a stale cache snapshot, or an ID collision are all
// recovered locally and recorded for the caller rather than aborting the
// run. Only Precondition and Cancelled escape as errors; everything else is
// folded into a Diagnostics record returned alongside the successful
// result, following the teacher's sentinel-error-plus-wrap idiom from
// internal/services.
package corefail
