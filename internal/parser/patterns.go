package parser

import "regexp"

var typeDiscriminators = []struct {
	entryType EntryType
	pattern   *regexp.Regexp
}{
	{TypeLightNovel, regexp.MustCompile(`(?i)light\s*novel|\bln\b|j-novel|web\s*novel`)},
	{TypeVisualNovel, regexp.MustCompile(`(?i)visual\s*novel|\bvn\b`)},
	{TypeAudiobook, regexp.MustCompile(`(?i)audiobook`)},
	{TypeAnthology, regexp.MustCompile(`(?i)archives\s*[a-z]-[a-z]`)},
	{TypePeriodical, regexp.MustCompile(`(?i)weekly|alpha manga`)},
}

var tagPattern = regexp.MustCompile(`\[[^\[\]]*\]|\([^()]*\)|\{[^{}]*\}`)

var seasonMarker = regexp.MustCompile(`(?i)\bseason\s+\d+\b`)
var versionTag = regexp.MustCompile(`(?i)\bv\d+\b`)

var standaloneYear = regexp.MustCompile(`\b(\d{4})\b`)

var dualLangSplit = regexp.MustCompile(`^([ -~]{3,})[|•]([^\x00-\x7F].*)$`)

var volAsChapter = regexp.MustCompile(`(?i)chapters?\s*(\d+(?:\.\d+)?)(?:\s*-\s*(\d+(?:\.\d+)?))?\s+as\s+(?:vol(?:ume)?\.?|v)\s*(\d+(?:\.\d+)?)`)

var messyVolume = regexp.MustCompile(`(?i)\bv(\d+(?:[vV_-]\d+)+)\b`)
var messyVolumeDigits = regexp.MustCompile(`\d+`)

var standardVolume = regexp.MustCompile(`(?i)\b(?:v|vol(?:ume)?|parts?)\.?\s*(\d+(?:\.\d+)?)(?:\s*-\s*(\d+(?:\.\d+)?))?\b`)

var standardChapter = regexp.MustCompile(`(?i)\b(?:ch(?:apter)?|c|#)\.?\s*(\d+(?:\.\d+)?)(?:\s*-\s*(\d+(?:\.\d+)?))?\b`)

var nakedNumberTrailing = regexp.MustCompile(`(\d+(?:\.\d+)?)(?:\s*-\s*(\d+(?:\.\d+)?))?\s*$`)

// nakedNumberContinuation peels a further trailing numeric range or
// singleton once the first has already been peeled by nakedNumberTrailing;
// unlike the first peel, the number must be followed by the comma or plus
// separator that stood between it and the number peeled before it, so
// peeling stops at a number separated only by whitespace.
var nakedNumberContinuation = regexp.MustCompile(`(\d+(?:\.\d+)?)(?:\s*-\s*(\d+(?:\.\d+)?))?\s*[,+]\s*$`)
