package matcher

import "strings"

// tokenize splits a normalized title into its whitespace-separated tokens.
func tokenize(s string) []string {
	return strings.Fields(s)
}

// jaccardSimilarity returns the token-set Jaccard similarity between a and
// b: |intersection| / |union| of their whitespace-split token sets. Two
// empty token sets are similarity 0 (there is nothing to match).
func jaccardSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for token := range setA {
		if setB[token] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]bool {
	tokens := tokenize(s)
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// lcsRatio returns the character-level longest-common-subsequence ratio
// between a and b: 2*|LCS(a,b)| / (|a|+|b|), in [0,1]. Used to refine
// Jaccard once either measure reaches a threshold, per spec section 4.7
// step 3.
func lcsRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcsLen := prev[len(rb)]
	return 2 * float64(lcsLen) / float64(len(ra)+len(rb))
}

// Jaccard exposes jaccardSimilarity for callers outside this package (the
// deduper's fuzzy-collision detector) that need the same token-set
// similarity spec section 4.7 step 3 defines.
func Jaccard(a, b string) float64 { return jaccardSimilarity(a, b) }

// LCSRatio exposes lcsRatio for the same reason as Jaccard.
func LCSRatio(a, b string) float64 { return lcsRatio(a, b) }

// RefinedSimilarity exposes refinedSimilarity for the same reason as
// Jaccard.
func RefinedSimilarity(a, b string, refineThreshold float64) float64 {
	return refinedSimilarity(a, b, refineThreshold)
}

// refinedSimilarity combines the Jaccard score with an LCS refinement. If
// neither measure reaches refineThreshold, Jaccard alone is trusted — there
// is nothing close enough to refine. Otherwise the stronger of the two
// measures wins: a token inserted or dropped (e.g. "Spy x Family" vs "Spy
// Family") depresses Jaccard without touching the LCS ratio, since the
// surviving tokens still appear in order, so LCS recovers the match that
// averaging would have pulled back down below the accept floor.
func refinedSimilarity(a, b string, refineThreshold float64) float64 {
	jaccard := jaccardSimilarity(a, b)
	lcs := lcsRatio(a, b)
	if jaccard < refineThreshold && lcs < refineThreshold {
		return jaccard
	}
	if lcs > jaccard {
		return lcs
	}
	return jaccard
}
