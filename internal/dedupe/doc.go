// Package dedupe runs the three duplicate detectors described in spec
// section 4.9 — ID collisions, content collisions, and fuzzy name
// collisions — concurrently over a Library, sharing a fixed worker pool
// for the fuzzy detector's O(n^2) all-pairs comparison.
package dedupe
