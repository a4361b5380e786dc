// Package scanner walks a library root into a models.Library: four levels
// of directory enumeration (main category, sub category, series, volume)
// followed by a parallel per-series read phase that reuses unchanged
// Volumes from a prior Library by comparing (size, mtime).
package scanner
