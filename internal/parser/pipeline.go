package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// extractTags strips every bracketed tag group from working and returns
// the residual string plus the stripped groups' inner content as notes
// (spec section 4.2 step 2).
func extractTags(raw string) (residual string, notes []string) {
	matches := tagPattern.FindAllString(raw, -1)
	residual = tagPattern.ReplaceAllString(raw, " ")
	for _, m := range matches {
		inner := strings.TrimSpace(m[1 : len(m)-1])
		if inner != "" {
			notes = append(notes, inner)
		}
	}
	return residual, notes
}

// stripNoise removes a fixed vocabulary of release-noise phrases plus
// season markers, leaving volume/version tokens untouched so later steps
// can still recognize them (spec section 4.2 step 3).
func stripNoise(s string, phrases []string) string {
	for _, phrase := range phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
		s = pattern.ReplaceAllString(s, " ")
	}
	return seasonMarker.ReplaceAllString(s, " ")
}

var volChapMarkerBefore = regexp.MustCompile(`(?i)(?:\bv|\bvol|\bvolume|\bch|\bchapter|\bc|#|\bparts?)\.?\s*$`)

var hyphenBefore = regexp.MustCompile(`-\s*$`)
var hyphenAfter = regexp.MustCompile(`^\s*-`)

// isHyphenRangeEndpoint reports whether the match spanning [start,end) in s
// sits immediately on either side of a hyphen, i.e. is one endpoint of an
// "N-M" style range token rather than a bare standalone year.
func isHyphenRangeEndpoint(s string, start, end int) bool {
	return hyphenBefore.MatchString(s[:start]) || hyphenAfter.MatchString(s[end:])
}

// elideYears removes standalone four-digit years inside [yearMin, yearMax]
// that are not immediately preceded by a volume/chapter marker and are not
// one endpoint of a hyphenated range token. A marker-prefixed number (rare,
// but possible for long-running series) is left for the volume/chapter
// extractors to validate; a year glued to a range via a hyphen (e.g.
// "1-2021") is left in place so the range-extraction and range-validity
// steps discard the whole token, per spec section 4.2 step 4's worked
// example.
func elideYears(s string, yearMin, yearMax int) string {
	if yearMin == 0 && yearMax == 0 {
		return s
	}
	matches := standaloneYear.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		valStr := s[m[2]:m[3]]
		val, err := strconv.Atoi(valStr)
		if err != nil || val < yearMin || val > yearMax {
			continue
		}
		if volChapMarkerBefore.MatchString(s[:start]) {
			continue
		}
		if isHyphenRangeEndpoint(s, start, end) {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(" ")
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

// protectedMatch pairs a placeholder inserted by maskProtected with the
// original text it stands in for, so restoreProtected can put the text back
// once the number extractors that the mask was shielding it from have run.
type protectedMatch struct {
	placeholder string
	text        string
}

// maskProtected replaces every protected-token match with an opaque
// placeholder so number extraction can't mistake it for a volume or
// chapter, returning the placeholder/original-text pairs needed to restore
// the text in place afterward (spec section 4.2 step 5).
func maskProtected(s string, patterns []string) (masked string, restored []protectedMatch) {
	masked = s
	for i, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		matches := re.FindAllString(masked, -1)
		for _, m := range matches {
			placeholder := fmt.Sprintf("__PROTECTED_%d_%d__", i, len(restored))
			restored = append(restored, protectedMatch{placeholder: placeholder, text: m})
			masked = strings.Replace(masked, m, placeholder, 1)
		}
	}
	return masked, restored
}

// restoreProtected substitutes each placeholder in s back with the text it
// masked. Masking only needs to shield that text from steps 7-11's number
// extraction; the text itself stays in the title.
func restoreProtected(s string, matches []protectedMatch) string {
	for _, m := range matches {
		s = strings.Replace(s, m.placeholder, m.text, 1)
	}
	return s
}

// splitDualLanguage detects an ASCII title segment paired with a non-ASCII
// (native-script) segment and keeps the longer one — ties broken by ASCII
// letter count — returning the other as a note (spec section 4.2 step 6).
func splitDualLanguage(s string) (kept string, note string) {
	m := dualLangSplit.FindStringSubmatch(s)
	if m == nil {
		return s, ""
	}
	left := strings.TrimSpace(m[1])
	right := strings.TrimSpace(m[2])

	keepLeft := len(left) > len(right) || (len(left) == len(right) && asciiLetters(left) >= asciiLetters(right))
	if keepLeft {
		return left, right
	}
	return right, left
}

func asciiLetters(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			count++
		}
	}
	return count
}

// extractVolAsChapter recognizes "chapters N-M as volK" and returns the
// chapter and volume ranges it names (spec section 4.2 step 7).
func extractVolAsChapter(s string) (residual string, volRange, chapRange *Range, ok bool) {
	m := volAsChapter.FindStringSubmatchIndex(s)
	if m == nil {
		return s, nil, nil, false
	}
	chapStart := s[m[2]:m[3]]
	chapEnd := ""
	if m[4] != -1 {
		chapEnd = s[m[4]:m[5]]
	}
	volStart := s[m[6]:m[7]]

	chapRange, _ = makeRange(chapStart, chapEnd)
	volRange, _ = makeRange(volStart, "")

	residual = s[:m[0]] + " " + s[m[1]:]
	return residual, volRange, chapRange, true
}

// extractMessyVolume recognizes compound volume tokens like "v01v02v03" or
// "v01_14" and reduces them to the widest consistent range (spec section
// 4.2 step 8).
func extractMessyVolume(s string) (residual string, r *Range, ok bool) {
	m := messyVolume.FindStringIndex(s)
	if m == nil {
		return s, nil, false
	}
	token := s[m[0]:m[1]]
	digits := messyVolumeDigits.FindAllString(token, -1)
	if len(digits) < 2 {
		return s, nil, false
	}

	low, high := digits[0], digits[0]
	lowVal, _ := strconv.Atoi(low)
	highVal := lowVal
	for _, d := range digits[1:] {
		v, err := strconv.Atoi(d)
		if err != nil {
			continue
		}
		if v < lowVal {
			lowVal, low = v, d
		}
		if v > highVal {
			highVal, high = v, d
		}
	}
	r, _ = makeRange(low, high)
	residual = s[:m[0]] + " " + s[m[1]:]
	return residual, r, true
}

// extractStandardVolume recognizes every "v N", "volume N-M", or "part N"
// token in s and merges them into a single enclosing range (spec section
// 4.2 step 9).
func extractStandardVolume(s string) (residual string, r *Range, ok bool) {
	return extractMergedRange(s, standardVolume)
}

// extractStandardChapter recognizes every "ch N", "chapter N-M", or "#N"
// token in s and merges them into a single enclosing range (spec section
// 4.2 step 10).
func extractStandardChapter(s string) (residual string, r *Range, ok bool) {
	return extractMergedRange(s, standardChapter)
}

func extractMergedRange(s string, pattern *regexp.Regexp) (residual string, r *Range, ok bool) {
	matches := pattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil, false
	}

	var low, high float64
	first := true
	spans := make([][2]int, 0, len(matches))
	for _, m := range matches {
		lowStr := s[m[2]:m[3]]
		highStr := ""
		if m[4] != -1 {
			highStr = s[m[4]:m[5]]
		}
		candidate, ok := makeRange(lowStr, highStr)
		if !ok {
			continue
		}
		if first {
			low, high = candidate.Low, candidate.High
			first = false
		} else {
			if candidate.Low < low {
				low = candidate.Low
			}
			if candidate.High > high {
				high = candidate.High
			}
		}
		spans = append(spans, [2]int{m[0], m[1]})
	}
	if first {
		return s, nil, false
	}

	residual = removeSpans(s, spans)
	r = &Range{Low: low, High: high}
	return residual, r, true
}

func removeSpans(s string, spans [][2]int) string {
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(s[last:sp[0]])
		b.WriteString(" ")
		last = sp[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// extractNakedNumbers recursively peels trailing numeric ranges or
// singletons off the residual, separated by commas or plus signs, stopping
// once the next token from the right is non-numeric or peeling further
// would empty the residual (spec section 4.2 step 11). Every peeled range
// is treated as a chapter range: a bare trailing number with no volume or
// chapter marker conventionally denotes a chapter count.
func extractNakedNumbers(s string) (residual string, ranges []Range, ok bool) {
	residual = s
	pattern := nakedNumberTrailing
	for {
		m := pattern.FindStringSubmatchIndex(residual)
		if m == nil || m[2] == -1 {
			break
		}
		lowStr := residual[m[2]:m[3]]
		highStr := ""
		if m[4] != -1 {
			highStr = residual[m[4]:m[5]]
		}
		candidate, made := makeRange(lowStr, highStr)
		if !made {
			break
		}
		trimmedPrefix := strings.TrimSpace(residual[:m[0]])
		if trimmedPrefix == "" {
			break
		}

		residual = residual[:m[0]]
		ranges = append([]Range{*candidate}, ranges...)
		ok = true
		pattern = nakedNumberContinuation
	}
	return residual, ranges, ok
}

func stripTrailingVersionTag(s string) string {
	return versionTag.ReplaceAllString(strings.TrimRight(s, " "), "")
}

var residualTrimPattern = regexp.MustCompile(`^[\s\-:._,]+|[\s\-:._,]+$`)
var residualCollapse = regexp.MustCompile(`\s+`)

func cleanResidual(s string) string {
	s = residualCollapse.ReplaceAllString(s, " ")
	s = residualTrimPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
