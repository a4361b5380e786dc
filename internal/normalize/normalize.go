package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	foldCase  = cases.Fold()
	stripMark = runes.Remove(runes.In(unicode.Mn))

	bracketPattern = regexp.MustCompile(`\[[^\[\]]*\]|\([^()]*\)|\{[^{}]*\}`)
	nonAlnumRun    = regexp.MustCompile(`[^0-9A-Za-z]+`)

	leadingArticle  = regexp.MustCompile(`(?i)^(the|an?|les?|la)\s+`)
	trailingArticle = regexp.MustCompile(`(?i)\s+(the|an?|les?|la)\s*$`)
)

// Title returns the canonical comparison key for s, following the pipeline:
// case-fold, strip bracketed groups, collapse non-alphanumeric runs to
// single spaces, then strip leading/trailing articles.
//
// Articles are stripped after the collapse, not before: an article glued
// to the rest of the title by punctuation instead of whitespace (a comma,
// as in "Title, The", or a dot/hyphen as in torrent-style names like
// "A.Silent.Voice") only gets a word boundary once the collapse has turned
// that punctuation into a space. Stripping first would miss those cases on
// the first pass and then remove them on a second pass, breaking the
// idempotence Title is required to have.
//
// Title is deterministic and idempotent: Title(Title(s)) == Title(s).
func Title(s string) string {
	folded := foldAndStripAccents(s)

	stripped := stripBrackets(folded)

	collapsed := nonAlnumRun.ReplaceAllString(stripped, " ")
	collapsed = strings.TrimSpace(collapsed)

	return stripArticles(collapsed)
}

func foldAndStripAccents(s string) string {
	decomposed := norm.NFD.String(s)
	withoutMarks, _, err := transform.String(stripMark, decomposed)
	if err != nil {
		withoutMarks = decomposed
	}

	folded, _, err := transform.String(foldCase, withoutMarks)
	if err != nil {
		return strings.ToLower(withoutMarks)
	}
	return cases.Lower(language.Und).String(folded)
}

// stripBrackets removes unnested bracketed groups, repeatedly, so that
// nested groups resolve from the innermost outward (spec section 4.1 step 2).
func stripBrackets(s string) string {
	for {
		next := bracketPattern.ReplaceAllString(s, " ")
		if next == s {
			return next
		}
		s = next
	}
}

// stripArticles removes leading or trailing articles repeatedly until
// stable, so that Title stays idempotent even when the same article
// appears more than once (spec section 4.1 step 3).
func stripArticles(s string) string {
	for {
		next := trailingArticle.ReplaceAllString(s, " ")
		next = leadingArticle.ReplaceAllString(next, " ")
		next = strings.TrimSpace(next)
		if next == strings.TrimSpace(s) {
			return next
		}
		s = next
	}
}
