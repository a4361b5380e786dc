// Package parser turns a raw filename stem or torrent title into a
// Parsed record: an entry type, a cleaned title, and the volume/chapter
// ranges it names.
//
// Parse is a pure function — no I/O, no global state — that runs a fixed,
// ordered pipeline of regular expressions against the input, each stage
// consuming the tokens it recognizes before handing the residual string to
// the next stage. The pipeline and its pattern vocabulary are grounded on
// the filename-parsing heuristics of the system this package replaces.
package parser
