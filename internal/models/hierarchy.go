package models

import (
	"path/filepath"
	"time"

	"github.com/ImTheFrack/VibeManga/internal/normalize"
)

// Volume is a leaf file: a single manga volume or chapter archive on disk.
// Identity within a Series is its filename stem (Stem).
type Volume struct {
	Path       string
	Stem       string
	SizeBytes  int64
	ModifiedAt time.Time
	PageCount  *int
	Corrupt    bool
}

// SubGroup is a named subdirectory inside a Series folder (e.g. "v01-v10",
// "Side Stories") holding an ordered sequence of Volumes.
type SubGroup struct {
	Name    string
	Path    string
	Volumes []Volume
}

// TotalSizeBytes sums the size of every Volume in sg.
func (sg SubGroup) TotalSizeBytes() int64 {
	var total int64
	for _, v := range sg.Volumes {
		total += v.SizeBytes
	}
	return total
}

// Series is a titled unit of the library: a folder containing Volumes
// either directly or through exactly one level of SubGroups, plus a
// Metadata record that is always present (possibly empty).
type Series struct {
	Path       string
	FolderName string
	Volumes    []Volume
	SubGroups  []SubGroup
	Metadata   Metadata
}

// AllVolumes returns every Volume owned by s, whether directly under the
// series folder or nested inside a SubGroup.
func (s Series) AllVolumes() []Volume {
	out := make([]Volume, 0, len(s.Volumes))
	out = append(out, s.Volumes...)
	for _, sg := range s.SubGroups {
		out = append(out, sg.Volumes...)
	}
	return out
}

// Identities returns the derived identity set used only by the index:
// folder name, romanized/English/native titles, and synonyms, with
// empty strings removed. It is a set, not a list: when two candidates
// normalize to the same key (e.g. folder name equal to the English
// title), only the first is kept, so callers never see the same Series
// bound twice under what is really one identity.
func (s Series) Identities() []string {
	candidates := make([]string, 0, 4+len(s.Metadata.Synonyms))
	candidates = append(candidates, s.FolderName, s.Metadata.RomanizedTitle, s.Metadata.EnglishTitle, s.Metadata.NativeTitle)
	candidates = append(candidates, s.Metadata.Synonyms...)

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		key := normalize.Title(c)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// TotalVolumeCount counts every Volume owned by s, directly or via a
// SubGroup.
func (s Series) TotalVolumeCount() int {
	count := len(s.Volumes)
	for _, sg := range s.SubGroups {
		count += len(sg.Volumes)
	}
	return count
}

// TotalSizeBytes sums the size of every Volume owned by s.
func (s Series) TotalSizeBytes() int64 {
	var total int64
	for _, v := range s.Volumes {
		total += v.SizeBytes
	}
	for _, sg := range s.SubGroups {
		total += sg.TotalSizeBytes()
	}
	return total
}

// IsComplex reports whether s has any SubGroups.
func (s Series) IsComplex() bool {
	return len(s.SubGroups) > 0
}

// Category is a node in the two-level Main/Sub category tree. A depth-1
// Category holds child Categories; a depth-2 Category holds Series.
type Category struct {
	Name       string
	Path       string
	Categories []Category
	Series     []Series
}

// IsLeaf reports whether c sits at depth 2 (holds Series rather than child
// Categories).
func (c Category) IsLeaf() bool {
	return len(c.Categories) == 0
}

// TotalSeriesCount counts every Series under c, recursing through child
// Categories.
func (c Category) TotalSeriesCount() int {
	count := len(c.Series)
	for _, sub := range c.Categories {
		count += sub.TotalSeriesCount()
	}
	return count
}

// TotalVolumeCount counts every Volume under c, recursing through child
// Categories and Series.
func (c Category) TotalVolumeCount() int {
	count := 0
	for _, s := range c.Series {
		count += s.TotalVolumeCount()
	}
	for _, sub := range c.Categories {
		count += sub.TotalVolumeCount()
	}
	return count
}

// TotalSizeBytes sums the size of every Volume under c.
func (c Category) TotalSizeBytes() int64 {
	var total int64
	for _, s := range c.Series {
		total += s.TotalSizeBytes()
	}
	for _, sub := range c.Categories {
		total += sub.TotalSizeBytes()
	}
	return total
}

// Library is the root container: an ordered sequence of Main Categories
// plus the root path they were scanned from.
type Library struct {
	RootPath   string
	Categories []Category
	// Incomplete is set when a scan was cancelled before finishing; an
	// incomplete Library is never written to cache.
	Incomplete bool
}

// TotalSeriesCount counts every Series in the library.
func (l Library) TotalSeriesCount() int {
	count := 0
	for _, c := range l.Categories {
		count += c.TotalSeriesCount()
	}
	return count
}

// TotalVolumeCount counts every Volume in the library.
func (l Library) TotalVolumeCount() int {
	count := 0
	for _, c := range l.Categories {
		count += c.TotalVolumeCount()
	}
	return count
}

// TotalSizeBytes sums the size of every Volume in the library.
func (l Library) TotalSizeBytes() int64 {
	var total int64
	for _, c := range l.Categories {
		total += c.TotalSizeBytes()
	}
	return total
}

// FolderNameFromPath derives the display folder name the spec requires to
// equal the tail of a Series/Category/SubGroup path.
func FolderNameFromPath(path string) string {
	return filepath.Base(filepath.Clean(path))
}
