package parser

import (
	"strconv"
	"strings"
)

// Parse runs the filename-parsing pipeline described in spec section 4.2
// against raw, consulting opts for thresholds and vocabularies, and
// sizeBytes for the Undersized classification step. Parse never returns an
// error: recoverable conditions (an unparsable fragment, an invalid range)
// are dropped silently rather than surfaced, per the parser's
// no-exceptions-as-control-flow contract.
func Parse(raw string, sizeBytes int64, opts Options) Record {
	entryType := classifyType(raw)

	working, notes := extractTags(raw)
	working = stripNoise(working, opts.NoisePhrases)
	working = elideYears(working, opts.YearMin, opts.YearMax)

	var masked []protectedMatch
	working, masked = maskProtected(working, opts.ProtectedTokens)

	working, dualNote := splitDualLanguage(working)
	if dualNote != "" {
		notes = append(notes, dualNote)
	}

	var volumeRanges, chapterRanges []Range

	if residual, volR, chapR, ok := extractVolAsChapter(working); ok {
		working = residual
		if volR != nil {
			volumeRanges = append(volumeRanges, *volR)
		}
		if chapR != nil {
			chapterRanges = append(chapterRanges, *chapR)
		}
	}

	if residual, volR, ok := extractMessyVolume(working); ok {
		working = residual
		volumeRanges = append(volumeRanges, *volR)
	} else if residual, volR, ok := extractStandardVolume(working); ok {
		working = residual
		volumeRanges = append(volumeRanges, *volR)
	}

	if residual, chapR, ok := extractStandardChapter(working); ok {
		working = residual
		chapterRanges = append(chapterRanges, *chapR)
	} else if len(volumeRanges) == 0 {
		if residual, chapRs, ok := extractNakedNumbers(working); ok {
			working = residual
			chapterRanges = append(chapterRanges, chapRs...)
		}
	}

	working = stripTrailingVersionTag(working)

	// Put masked protected tokens back into the title text now that the
	// number extractors they were shielded from have already run.
	working = restoreProtected(working, masked)

	volumeRanges = filterValidRanges(volumeRanges, opts)
	chapterRanges = filterValidRanges(chapterRanges, opts)

	cleanedTitle := cleanResidual(working)

	if entryType == TypeManga {
		entryType = classifyUndersized(entryType, volumeRanges, chapterRanges, sizeBytes, opts)
	}

	return Record{
		Source:        raw,
		CleanedTitle:  cleanedTitle,
		Type:          entryType,
		VolumeRanges:  volumeRanges,
		ChapterRanges: chapterRanges,
		Notes:         notes,
		SizeBytes:     sizeBytes,
	}
}

func classifyType(raw string) EntryType {
	for _, d := range typeDiscriminators {
		if d.pattern.MatchString(raw) {
			return d.entryType
		}
	}
	return TypeManga
}

// classifyUndersized implements the spec's "at least one volume range (or,
// absent that, chapter range) and size below the configured threshold =>
// Undersized" property. sizeBytes is a real reported size, including zero;
// a negative sizeBytes means the size is unknown and skips classification
// rather than being treated as "below every threshold".
func classifyUndersized(entryType EntryType, volRanges, chapRanges []Range, sizeBytes int64, opts Options) EntryType {
	if sizeBytes < 0 {
		return entryType
	}
	if len(volRanges) > 0 {
		if sizeBytes < opts.UndersizedVolumeBytes {
			return TypeUndersized
		}
		return entryType
	}
	if len(chapRanges) > 0 {
		if sizeBytes < opts.UndersizedChapterBytes {
			return TypeUndersized
		}
	}
	return entryType
}

func filterValidRanges(ranges []Range, opts Options) []Range {
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if validRange(r, opts) {
			out = append(out, r)
		}
	}
	return out
}

func validRange(r Range, opts Options) bool {
	if !(0 <= r.Low && r.Low <= r.High) {
		return false
	}
	maxSize := float64(opts.MaxRangeSize)
	if maxSize <= 0 {
		maxSize = 200
	}
	if r.High-r.Low > maxSize {
		return false
	}
	if inYearWindow(r.Low, opts) || inYearWindow(r.High, opts) {
		return false
	}
	return true
}

func inYearWindow(v float64, opts Options) bool {
	if opts.YearMin == 0 && opts.YearMax == 0 {
		return false
	}
	return v == float64(int64(v)) && int(v) >= opts.YearMin && int(v) <= opts.YearMax
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func makeRange(low, high string) (*Range, bool) {
	l, ok := parseFloat(low)
	if !ok {
		return nil, false
	}
	h := l
	if high != "" {
		if parsed, ok := parseFloat(high); ok {
			h = parsed
		}
	}
	if h < l {
		l, h = h, l
	}
	return &Range{Low: l, High: h}, true
}
