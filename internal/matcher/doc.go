// Package matcher resolves a parser.Record against an index.Index via the
// ID, synonym, and fuzzy cascade described in spec section 4.7, and
// consolidates multiple matched records belonging to the same Series.
package matcher
