package normalize

import (
	"regexp"
	"strings"
)

var (
	// blankLineRe matches a paragraph boundary: two or more consecutive
	// newlines, ignoring horizontal whitespace on the blank lines.
	blankLineRe = regexp.MustCompile(`\n[ \t]*\n[\s]*`)

	// innerNewlineRe matches line breaks within a paragraph.
	innerNewlineRe = regexp.MustCompile(`[ \t]*\n[ \t]*`)
)

// ToParagraphHTML converts plain text with blank-line paragraph breaks
// into concatenated <p> blocks. Newlines within a paragraph collapse to
// single spaces, empty paragraphs are dropped, and the blocks are joined
// with no separator. Empty input yields empty output.
func ToParagraphHTML(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var b strings.Builder
	for _, para := range blankLineRe.Split(text, -1) {
		para = innerNewlineRe.ReplaceAllString(para, " ")
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(para)
		b.WriteString("</p>")
	}
	return b.String()
}
