// Package cache implements the two-file content-addressed Library cache:
// a fast binary snapshot and a durable JSON sibling, both keyed by a hash
// of the normalized library root path and written atomically.
//
// Reads prefer the binary snapshot and fall back to JSON on version
// mismatch, corruption, or absence. Writes are serialized with an
// advisory file lock (github.com/gofrs/flock, the same library the
// teacher uses to guard its own daemon lock file) so two concurrent
// VibeManga processes never interleave a write to the same cache files.
package cache
