package pkg

import (
	"regexp"
	"strings"
)

var slugExpr = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug lowercases s and joins alphanumeric runs with dashes.
func GenerateSlug(s string) string {
	slug := slugExpr.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "untitled"
	}
	return slug
}
