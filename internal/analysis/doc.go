// Package analysis provides the three helpers consumed across the
// scanner, matcher, and renamer: FormatRanges renders a set of numeric
// ranges as a human-readable label, FindGaps reports missing entries in a
// sequence, and ClassifyUnit buckets a Parsed record by which kind of
// range it carries.
package analysis
