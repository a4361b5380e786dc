// Package normalize implements the canonical comparison key used across
// indexing and matching: a pure, idempotent function that folds case,
// strips bracketed groups and leading/trailing articles, and collapses
// non-alphanumeric runs to single spaces.
//
// Unicode category decisions follow golang.org/x/text, not ASCII alone, so
// accented Latin titles normalize the same as their unaccented spellings.
package normalize
