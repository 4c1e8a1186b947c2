package learning

import (
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}

	all := c.List("")
	if len(all) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, r := range all {
		if r.ID == "" || r.Title == "" || r.URL == "" {
			t.Errorf("incomplete resource %+v", r)
		}
		if r.VideoID == "" {
			t.Errorf("resource %s has no video id for %s", r.ID, r.URL)
		}
	}
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
- title: Go Basics
  topic: Programming
  url: https://youtu.be/dQw4w9WgXcQ
- title: Go Basics
  topic: programming
  url: https://example.com/article
- title: Offer Letters
  topic: career
  url: https://www.youtube.com/watch?v=oBt53YbR9Kk
`)
	c, err := ParseCatalog(data)
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}

	first, ok := c.Get("go-basics")
	if !ok || first.VideoID != "dQw4w9WgXcQ" || first.Topic != "programming" {
		t.Fatalf("unexpected first resource %+v", first)
	}
	second, ok := c.Get("go-basics-2")
	if !ok || second.VideoID != "" {
		t.Fatalf("expected suffixed id with no video, got %+v (ok=%v)", second, ok)
	}

	if got := c.List(" PROGRAMMING "); len(got) != 2 {
		t.Fatalf("topic filter should be case-insensitive, got %d", len(got))
	}
	if got := c.List("unknown"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
	if got := strings.Join(c.Topics(), ","); got != "career,programming" {
		t.Fatalf("unexpected topics %q", got)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("unexpected hit for unknown id")
	}
}

func TestParseCatalog_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "- title: [unterminated",
		"missing url":   "- title: Something\n  topic: x\n",
		"missing title": "- url: https://youtu.be/dQw4w9WgXcQ\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCatalog([]byte(data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
