package normalize

import (
	"regexp"
	"strings"
)

var (
	quoteUnescaper = strings.NewReplacer(`\"`, `"`, `\'`, `'`)

	// A pair opened with a double mark and closed with a single mark, or
	// vice versa. The opening mark must follow start-of-text or
	// whitespace and the closing mark must not run into a word, so
	// apostrophes inside contractions are left alone. The span may not
	// itself contain a quote mark and is bounded to 150 characters;
	// anything longer is almost always two unrelated marks on either
	// side of a paragraph break.
	doubleSingleRe = regexp.MustCompile(`(^|\s)"([^"']{1,150})'(\W|$)`)
	singleDoubleRe = regexp.MustCompile(`(^|\s)'([^"']{1,150})"(\W|$)`)

	// Whitespace just inside a quote pair. An opening quote is one
	// preceded by start-of-text or whitespace; a closing quote is one
	// followed by whitespace, trailing punctuation, or end-of-text.
	afterOpenRe   = regexp.MustCompile(`(^|\s)"\s+`)
	beforeCloseRe = regexp.MustCompile(`\s+"(\s|[.,;:!?)]|$)`)

	// A word butted directly against a complete double-quoted span. The
	// far side of the span must sit on a real boundary, otherwise the
	// text between two adjacent pairs would itself look like a pair.
	wordThenQuoteRe = regexp.MustCompile(`(\w)("[^"]{1,150}")(\W|$)`)
	quoteThenWordRe = regexp.MustCompile(`(^|\s)("[^"]{1,150}")(\w)`)
)

// FixQuotes repairs quote-mark artifacts: backslash-escaped quotes,
// mismatched open/close marks, whitespace trapped inside a pair, and a
// missing space between a quote pair and an adjacent word. It is
// idempotent: applying it twice yields the same result as once.
//
// Pair matching is span-bounded pattern matching, not a parser; nested
// quotes and pairs spanning paragraph breaks get best-effort treatment.
func FixQuotes(text string) string {
	if text == "" {
		return ""
	}
	text = unescapeQuotes(text)
	text = fixpoint(text, matchQuotePairs)
	text = fixpoint(text, trimInsideQuotes)
	text = fixpoint(text, spaceAroundQuotes)
	return text
}

// fixpoint reapplies a pass until the text stops changing. The boundary
// groups in the pass regexes consume the character they anchor on, so a
// single ReplaceAll can skip a match that starts inside the boundary of
// the previous one (two pairs separated by one space). Every pass
// strictly shrinks what it targets, so this terminates.
func fixpoint(text string, pass func(string) string) string {
	for {
		next := pass(text)
		if next == text {
			return text
		}
		text = next
	}
}

// unescapeQuotes drops stray backslashes before quote marks.
func unescapeQuotes(text string) string {
	return quoteUnescaper.Replace(text)
}

// matchQuotePairs coerces a pair with mismatched open and close marks to
// a matching double-quote pair.
func matchQuotePairs(text string) string {
	text = doubleSingleRe.ReplaceAllString(text, `$1"$2"$3`)
	text = singleDoubleRe.ReplaceAllString(text, `$1"$2"$3`)
	return text
}

// trimInsideQuotes removes whitespace immediately inside a quote pair:
// `" text "` becomes `"text"`.
func trimInsideQuotes(text string) string {
	text = afterOpenRe.ReplaceAllString(text, `$1"`)
	text = beforeCloseRe.ReplaceAllString(text, `"$1`)
	return text
}

// spaceAroundQuotes restores a space that was dropped between a word and
// an adjacent quote pair.
func spaceAroundQuotes(text string) string {
	text = wordThenQuoteRe.ReplaceAllString(text, `$1 $2$3`)
	text = quoteThenWordRe.ReplaceAllString(text, `$1$2 $3`)
	return text
}
