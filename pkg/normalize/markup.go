// Package normalize provides the deterministic text transforms applied
// around editing-service calls. Every function is pure: identical input
// yields identical output, with no I/O and no hidden state.
package normalize

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// markdownLinkRe matches bracketed hyperlink wrappers, keeping the
	// link text.
	markdownLinkRe = regexp.MustCompile(`\[([^\[\]]*)\]\([^)]*\)`)

	// adPlaceholderRe matches ad-placeholder tokens left behind by the
	// publishing platform.
	adPlaceholderRe = regexp.MustCompile(`(?i)\[/?(?:ads?|sponsored?)\]`)

	// blockBreakRe matches markup that implies a paragraph or line break.
	blockBreakRe = regexp.MustCompile(`(?i)</p>|<br\s*/?>`)

	// tagRe matches remaining tag-like markup.
	tagRe = regexp.MustCompile(`<[^>]*>`)

	// spaceRunRe matches runs of two or more spaces. Newlines are left
	// alone so paragraph boundaries survive.
	spaceRunRe = regexp.MustCompile(` {2,}`)
)

// StripMarkup converts stored HTML-ish text to plain text: bracketed
// hyperlink wrappers are unwrapped to their text, ad-placeholder tokens
// and remaining tag-like markup are removed, and runs of two or more
// spaces collapse to one. Closing paragraph tags and line breaks become
// blank lines so paragraph boundaries are preserved for later
// re-segmentation. Empty input yields an empty string.
func StripMarkup(text string) string {
	if text == "" {
		return ""
	}
	text = markdownLinkRe.ReplaceAllString(text, "$1")
	text = adPlaceholderRe.ReplaceAllString(text, "")
	text = blockBreakRe.ReplaceAllString(text, "\n\n")
	text = stripTags(text)
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripTags removes tag-like markup. Content is run through a real HTML
// parse so entity-bearing and nested markup unwraps cleanly; if the parse
// fails the tags are stripped with a regex instead.
func stripTags(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return tagRe.ReplaceAllString(text, "")
	}
	var buf bytes.Buffer
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		buf.WriteString(s.Text())
	})
	return buf.String()
}
