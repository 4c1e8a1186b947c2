package fetcher

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/abhishek622/careercraft/pkg/model"
)

// enrichStructured fills company and location from a schema.org JobPosting
// JSON-LD block and falls back to OpenGraph tags for a missing title or jd.
func enrichStructured(page string, res *model.JobScrapeResult) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return
	}

	var posting map[string]interface{}
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		var data interface{}
		if err := json.Unmarshal([]byte(strings.TrimSpace(s.Text())), &data); err != nil {
			return true
		}
		posting = findJobPosting(data)
		return posting == nil
	})

	if posting != nil {
		if company := organizationName(posting["hiringOrganization"]); company != "" {
			res.Company = &company
		}
		if location := jobLocation(posting["jobLocation"]); location != "" {
			res.Location = &location
		}
		if res.Title == nil || *res.Title == "" {
			if title := cleanText(stringField(posting, "title")); title != "" {
				res.Title = &title
			}
		}
		if res.JD == "" {
			res.JD = htmlToText(stringField(posting, "description"))
		}
	}

	if res.Title == nil || *res.Title == "" {
		if og := ogContent(doc, "og:title"); og != "" {
			res.Title = &og
		}
	}
	if res.JD == "" {
		res.JD = ogContent(doc, "og:description")
	}
}

// findJobPosting walks JSON-LD (objects, arrays and @graph) for the first JobPosting.
func findJobPosting(data interface{}) map[string]interface{} {
	switch v := data.(type) {
	case []interface{}:
		for _, item := range v {
			if p := findJobPosting(item); p != nil {
				return p
			}
		}
	case map[string]interface{}:
		if hasType(v["@type"], "JobPosting") {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return findJobPosting(graph)
		}
	}
	return nil
}

func hasType(t interface{}, want string) bool {
	switch v := t.(type) {
	case string:
		return v == want
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}

func organizationName(org interface{}) string {
	switch v := org.(type) {
	case string:
		return cleanText(v)
	case map[string]interface{}:
		return cleanText(stringField(v, "name"))
	}
	return ""
}

func jobLocation(loc interface{}) string {
	switch v := loc.(type) {
	case []interface{}:
		for _, item := range v {
			if s := jobLocation(item); s != "" {
				return s
			}
		}
	case map[string]interface{}:
		addr, ok := v["address"].(map[string]interface{})
		if !ok {
			return cleanText(stringField(v, "name"))
		}
		parts := make([]string, 0, 3)
		for _, key := range []string{"addressLocality", "addressRegion"} {
			if s := cleanText(stringField(addr, key)); s != "" {
				parts = append(parts, s)
			}
		}
		switch country := addr["addressCountry"].(type) {
		case string:
			if s := cleanText(country); s != "" {
				parts = append(parts, s)
			}
		case map[string]interface{}:
			if s := cleanText(stringField(country, "name")); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func ogContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(`meta[property="` + property + `"]`).First().Attr("content")
	return cleanText(content)
}

// htmlToText flattens an HTML fragment, as JobPosting descriptions often are.
func htmlToText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return cleanText(fragment)
	}
	return cleanText(doc.Text())
}
