package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches elements that never carry job description content
const noiseSelector = "nav, footer, header, script, style, noscript, iframe, .ad, .advertisement, .cookie-banner, .popup"

var (
	htmlTagPattern = regexp.MustCompile(`(?i)<(?:p|div|ul|ol|li|br|h[1-6]|span|strong|b|em|section|article|body|html)\b[^>]*>`)

	paragraphElements = map[string]bool{
		"p": true, "div": true, "section": true, "article": true, "main": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
		"table": true, "tr": true, "blockquote": true,
	}
	listElements = map[string]bool{"ul": true, "ol": true}
)

// LooksLikeHTML reports whether text contains common HTML markup.
func LooksLikeHTML(text string) bool {
	return htmlTagPattern.MatchString(text)
}

// HTMLToText converts an HTML job description to plain text.
// List items become "- item" lines directly under the preceding line, so a "Requirements:"
// heading followed by a list reads as a skills section. Paragraphs are separated by blank lines.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	writeSelection(&sb, root)

	return CleanText(attachBullets(sb.String())), nil
}

func writeSelection(sb *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		switch {
		case name == "#text":
			sb.WriteString(whitespaceRun.ReplaceAllString(s.Text(), " "))
		case name == "br":
			sb.WriteString("\n")
		case name == "li":
			item := strings.TrimSpace(whitespaceRun.ReplaceAllString(s.Text(), " "))
			if item != "" {
				sb.WriteString("\n- ")
				sb.WriteString(item)
			}
		case listElements[name]:
			sb.WriteString("\n")
			writeSelection(sb, s)
			sb.WriteString("\n\n")
		case paragraphElements[name]:
			sb.WriteString("\n\n")
			writeSelection(sb, s)
			sb.WriteString("\n\n")
		default:
			writeSelection(sb, s)
		}
	})
}

// attachBullets trims every line and drops blank lines directly above a bullet.
func attachBullets(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if isBulletLine(line) {
			for len(out) > 0 && out[len(out)-1] == "" {
				out = out[:len(out)-1]
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
