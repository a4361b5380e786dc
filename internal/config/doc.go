// Package config loads, normalizes, and validates VibeManga configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and centralizes every knob the scanner,
// parser, matcher, renamer, and deduper need: the library root, worker-pool
// size, cache max-age, the fuzzy-match threshold, the Undersized byte
// thresholds, the noise-phrase and protected-token lists, and the preferred
// title policy.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and validated, range-checked values rather than reaching
// for package-level globals.
package config
