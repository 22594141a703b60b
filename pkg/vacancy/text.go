package vacancy

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var reHTMLTag = regexp.MustCompile(`(?i)<\s*(?:html|body|p|div|br|li|ul|ol|h[1-6]|span|strong|b|em|table|tr|td)\b[^>]*>`)

const blockSelectors = "p, div, li, br, h1, h2, h3, h4, h5, h6, tr, section, article"

// LooksLikeHTML reports whether desc contains common HTML markup.
func LooksLikeHTML(desc string) bool {
	return reHTMLTag.MatchString(desc)
}

// PlainText returns the job description as plain text. Descriptions pasted
// from job boards often arrive as HTML; block elements become line breaks.
// Anything that is not HTML is returned unchanged.
func PlainText(desc string) string {
	if !LooksLikeHTML(desc) {
		return desc
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
	if err != nil {
		return desc
	}
	doc.Find("script, style, noscript").Remove()
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})
	return cleanWhitespace(doc.Find("body").Text())
}

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
