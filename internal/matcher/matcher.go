package matcher

import (
	"sort"

	"github.com/ImTheFrack/VibeManga/internal/index"
	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/normalize"
	"github.com/ImTheFrack/VibeManga/internal/parser"
)

const fuzzyAcceptFloor = 0.90

// Match runs the ID → synonym → fuzzy cascade described in spec section
// 4.7 against idx for a single parsed record. hint carries an optional ID
// extracted from context outside the filename itself. Match never mutates
// idx and, given identical inputs, always returns identical output: no
// step consults randomness or time.
func Match(record parser.Record, hint Hint, idx *index.Index, opts Options) Result {
	if hint.ID != nil {
		if series, ok := idx.GetByID(*hint.ID); ok {
			return Result{Matched: true, Series: series, Confidence: 1.0, Reason: ReasonID}
		}
	}

	if result, ok := matchSynonym(record, idx); ok {
		return result
	}

	if result, ok := matchFuzzy(record, idx, opts); ok {
		return result
	}

	return NoMatch
}

func matchSynonym(record parser.Record, idx *index.Index) (Result, bool) {
	candidates := idx.Search(record.CleanedTitle)
	switch len(candidates) {
	case 0:
		return Result{}, false
	case 1:
		return Result{Matched: true, Series: candidates[0], Confidence: 0.95, Reason: ReasonSynonym}, true
	default:
		chosen := breakSynonymTie(record.CleanedTitle, candidates)
		return Result{Matched: true, Series: chosen, Confidence: 0.85, Reason: ReasonSynonym}, true
	}
}

// breakSynonymTie implements spec section 4.7 step 2's tie-break order:
// prefer the Series whose folder-name identity matched the query; then the
// Series with the longest normalized identity; then lexicographically
// first by folder name.
func breakSynonymTie(query string, candidates []models.Series) models.Series {
	normalizedQuery := normalize.Title(query)

	type scored struct {
		series        models.Series
		folderMatched bool
		longestIDLen  int
	}
	scoredCandidates := make([]scored, len(candidates))
	for i, c := range candidates {
		scoredCandidates[i] = scored{
			series:        c,
			folderMatched: normalize.Title(c.FolderName) == normalizedQuery,
			longestIDLen:  longestNormalizedIdentityLen(c),
		}
	}

	sort.SliceStable(scoredCandidates, func(i, j int) bool {
		a, b := scoredCandidates[i], scoredCandidates[j]
		if a.folderMatched != b.folderMatched {
			return a.folderMatched
		}
		if a.longestIDLen != b.longestIDLen {
			return a.longestIDLen > b.longestIDLen
		}
		return a.series.FolderName < b.series.FolderName
	})
	return scoredCandidates[0].series
}

func longestNormalizedIdentityLen(series models.Series) int {
	longest := 0
	for _, identity := range series.Identities() {
		if n := len([]rune(normalize.Title(identity))); n > longest {
			longest = n
		}
	}
	return longest
}

func matchFuzzy(record parser.Record, idx *index.Index, opts Options) (Result, bool) {
	query := normalize.Title(record.CleanedTitle)
	if query == "" {
		return Result{}, false
	}

	type candidate struct {
		series models.Series
		score  float64
	}
	var best candidate
	found := false

	for _, entry := range idx.Identities() {
		if entry.NormalizedTitle == "" {
			continue
		}
		score := refinedSimilarity(query, entry.NormalizedTitle, opts.FuzzyRefineThreshold)
		if !found || score > best.score ||
			(score == best.score && entry.Series.FolderName < best.series.FolderName) {
			best = candidate{series: entry.Series, score: score}
			found = true
		}
	}

	threshold := opts.FuzzyAcceptThreshold
	if threshold <= 0 {
		threshold = fuzzyAcceptFloor
	}
	if !found || best.score < threshold {
		return Result{}, false
	}
	return Result{Matched: true, Series: best.series, Confidence: best.score, Reason: ReasonFuzzy}, true
}
