package fetcher

import (
	"html"
	"regexp"
	"strings"

	"github.com/abhishek622/careercraft/pkg/model"
)

var (
	titleExpr = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	metaExpr  = regexp.MustCompile(`(?is)<meta\b[^>]*>`)
	attrExpr  = regexp.MustCompile(`(?is)([a-z][a-z0-9:_-]*)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	spaceExpr = regexp.MustCompile(`\s+`)
)

// Extract pulls the <title> and meta description out of raw HTML with regular
// expressions. The title is nil when the page has no title element.
func Extract(page string) *model.JobScrapeResult {
	res := model.EmptyJobScrape()

	if m := titleExpr.FindStringSubmatch(page); m != nil {
		title := cleanText(m[1])
		res.Title = &title
	}
	res.JD = metaContent(page, "name", "description")
	return res
}

// metaContent returns the content attribute of the first <meta> tag whose
// key attribute (name or property) equals value, in either attribute order.
func metaContent(page, key, value string) string {
	for _, tag := range metaExpr.FindAllString(page, -1) {
		attrs := parseAttrs(tag)
		if strings.EqualFold(attrs[key], value) {
			return cleanText(attrs["content"])
		}
	}
	return ""
}

func parseAttrs(tag string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrExpr.FindAllStringSubmatch(tag, -1) {
		name := strings.ToLower(m[1])
		if _, seen := attrs[name]; seen {
			continue
		}
		val := m[2]
		if val == "" {
			val = m[3]
		}
		attrs[name] = val
	}
	return attrs
}

// cleanText decodes entities and collapses whitespace runs.
func cleanText(text string) string {
	text = html.UnescapeString(text)
	return strings.TrimSpace(spaceExpr.ReplaceAllString(text, " "))
}
