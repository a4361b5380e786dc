package analysis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ImTheFrack/VibeManga/internal/parser"
)

// Unit classifies a Parsed record by which kind of numeric range it
// carries.
type Unit string

const (
	UnitVolumesOnly  Unit = "volumes_only"
	UnitChaptersOnly Unit = "chapters_only"
	UnitMixed        Unit = "mixed"
	UnitEmpty        Unit = "empty"
)

// ClassifyUnit buckets a Parsed record per spec section 4.3.
func ClassifyUnit(record parser.Record) Unit {
	hasVolumes := len(record.VolumeRanges) > 0
	hasChapters := len(record.ChapterRanges) > 0
	switch {
	case hasVolumes && hasChapters:
		return UnitMixed
	case hasVolumes:
		return UnitVolumesOnly
	case hasChapters:
		return UnitChaptersOnly
	default:
		return UnitEmpty
	}
}

// FormatRanges renders ranges as a human-readable label: adjacent or
// overlapping ranges merge, singletons render as "prefix{N:0pad}", true
// ranges render as "prefix{LOW}-{HIGH}", and the list is comma-separated.
func FormatRanges(ranges []parser.Range, prefix string, pad int) string {
	merged := mergeRanges(ranges)
	if len(merged) == 0 {
		return ""
	}

	parts := make([]string, 0, len(merged))
	for _, r := range merged {
		if r.Low == r.High {
			parts = append(parts, prefix+padNumber(r.Low, pad))
		} else {
			parts = append(parts, fmt.Sprintf("%s%s-%s", prefix, formatNumber(r.Low), formatNumber(r.High)))
		}
	}
	return strings.Join(parts, ", ")
}

// MergeRanges exposes the same adjacent/overlapping merge rule FormatRanges
// uses internally, for callers (the matcher's consolidation step) that
// need merged Range values rather than a rendered label.
func MergeRanges(ranges []parser.Range) []parser.Range {
	return mergeRanges(ranges)
}

// mergeRanges merges two ranges [a,b] and [c,d] with a <= c whenever
// c <= b+1, per spec section 4.3's merge rule.
func mergeRanges(ranges []parser.Range) []parser.Range {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]parser.Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Low < sorted[j].Low })

	merged := []parser.Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Low <= last.High+1 {
			if r.High > last.High {
				last.High = r.High
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// FindGaps returns the ordered list of missing single values or
// sub-ranges in [1, expectedTotal]. When expectedTotal is 0 (unknown),
// only internal gaps between the observed minimum and maximum are
// reported.
func FindGaps(ranges []parser.Range, expectedTotal int) []string {
	if len(ranges) == 0 {
		return nil
	}
	merged := mergeRanges(ranges)

	lowBound := int(math.Floor(merged[0].Low))
	highBound := int(math.Ceil(merged[len(merged)-1].High))
	if expectedTotal > 0 {
		lowBound = 1
		highBound = expectedTotal
	}

	present := make(map[int]bool)
	for _, r := range merged {
		for v := int(math.Floor(r.Low)); v <= int(math.Ceil(r.High)); v++ {
			present[v] = true
		}
	}

	var missing []int
	for v := lowBound; v <= highBound; v++ {
		if !present[v] {
			missing = append(missing, v)
		}
	}
	return formatGapRanges(missing)
}

func formatGapRanges(missing []int) []string {
	if len(missing) == 0 {
		return nil
	}
	var gaps []string
	start := missing[0]
	end := missing[0]
	flush := func() {
		if start == end {
			gaps = append(gaps, strconv.Itoa(start))
		} else {
			gaps = append(gaps, fmt.Sprintf("%d-%d", start, end))
		}
	}
	for _, v := range missing[1:] {
		if v == end+1 {
			end = v
			continue
		}
		flush()
		start, end = v, v
	}
	flush()
	return gaps
}

func padNumber(v float64, pad int) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%0*d", pad, int(v))
	}
	return formatNumber(v)
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
