package matcher

import (
	"github.com/ImTheFrack/VibeManga/internal/analysis"
	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/parser"
)

// MatchedRecord pairs a parser.Record with the Result the cascade produced
// for it, the unit Consolidate operates over.
type MatchedRecord struct {
	Record parser.Record
	Result Result
}

// Consolidated groups every MatchedRecord that matched the same Series and
// carries their merged volume/chapter ranges.
type Consolidated struct {
	Series        models.Series
	VolumeRanges  []parser.Range
	ChapterRanges []parser.Range
	Sources       []parser.Record
}

// Consolidate groups matched records by the Series they resolved to and
// merges their ranges via analysis.MergeRanges, per spec section 4.7's
// consolidation step. Unmatched records are dropped; groups are returned
// in first-seen order.
func Consolidate(matches []MatchedRecord) []Consolidated {
	order := make([]string, 0)
	groups := make(map[string]*Consolidated)

	for _, m := range matches {
		if !m.Result.Matched {
			continue
		}
		key := m.Result.Series.Path
		group, ok := groups[key]
		if !ok {
			group = &Consolidated{Series: m.Result.Series}
			groups[key] = group
			order = append(order, key)
		}
		group.VolumeRanges = append(group.VolumeRanges, m.Record.VolumeRanges...)
		group.ChapterRanges = append(group.ChapterRanges, m.Record.ChapterRanges...)
		group.Sources = append(group.Sources, m.Record)
	}

	out := make([]Consolidated, 0, len(order))
	for _, key := range order {
		group := groups[key]
		group.VolumeRanges = analysis.MergeRanges(group.VolumeRanges)
		group.ChapterRanges = analysis.MergeRanges(group.ChapterRanges)
		out = append(out, *group)
	}
	return out
}
