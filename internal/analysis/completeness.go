package analysis

import (
	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/parser"
)

// SeriesGapReport is the result of ClassifySeriesCompleteness: the gaps
// found, if any, and the rule that produced that verdict.
type SeriesGapReport struct {
	VolumeGaps  []string
	ChapterGaps []string
	// Complete is true when the series has no detectable numbering at all
	// (e.g. artbooks, one-shots) or its volume sequence has no gaps, which
	// per the "volumes-complete implies ignore chapter gaps" rule also
	// suppresses any reported chapter gaps.
	Complete bool
}

// ClassifySeriesCompleteness parses every Volume's filename stem in s,
// aggregates the volume and chapter numbers found, and reports gaps
// following two rules carried over from the system's gap-detection report:
// a series with no detectable numbering at all is treated as complete
// rather than gappy (it's probably an artbook or one-shot collection), and
// a series whose volume sequence has no gaps is treated as complete even
// if its chapter numbering looks gappy — volume numbering is the more
// reliable signal once it's present.
func ClassifySeriesCompleteness(s models.Series, opts parser.Options) SeriesGapReport {
	volumes := s.AllVolumes()
	if len(volumes) == 0 {
		return SeriesGapReport{Complete: true}
	}

	var volRanges, chapRanges []parser.Range
	for _, v := range volumes {
		record := parser.Parse(v.Stem, v.SizeBytes, opts)
		volRanges = append(volRanges, record.VolumeRanges...)
		chapRanges = append(chapRanges, record.ChapterRanges...)
	}

	if len(volRanges) == 0 && len(chapRanges) == 0 {
		return SeriesGapReport{Complete: true}
	}

	volGaps := FindGaps(volRanges, 0)
	if len(volRanges) > 0 && len(volGaps) == 0 {
		return SeriesGapReport{Complete: true}
	}

	chapGaps := FindGaps(chapRanges, 0)
	return SeriesGapReport{
		VolumeGaps:  volGaps,
		ChapterGaps: chapGaps,
		Complete:    len(volGaps) == 0 && len(chapGaps) == 0,
	}
}
