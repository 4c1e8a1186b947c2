package learning

import (
	"net/url"
	"regexp"
	"strings"
)

var videoIDExpr = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// path prefixes on youtube.com that carry the id as the next segment
var pathForms = []string{"embed", "shorts", "v", "live"}

// YouTubeVideoID returns the 11-character video id in rawURL, or "" when
// rawURL is not a recognizable YouTube link.
func YouTubeVideoID(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var id string
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "m.youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if segments[0] == "watch" {
			id = u.Query().Get("v")
			break
		}
		if len(segments) < 2 {
			return ""
		}
		for _, form := range pathForms {
			if segments[0] == form {
				id = segments[1]
				break
			}
		}
	default:
		return ""
	}

	if !videoIDExpr.MatchString(id) {
		return ""
	}
	return id
}
