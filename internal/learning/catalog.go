package learning

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/abhishek622/careercraft/pkg"
	"github.com/abhishek622/careercraft/pkg/model"
	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var defaultCatalog []byte

// Catalog is an immutable, ordered list of learning resources.
type Catalog struct {
	resources []model.LearningResource
	byID      map[string]int
}

// DefaultCatalog loads the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// ParseCatalog decodes a YAML list of resources. Titles and urls are
// required; ids are slugs of the title, suffixed on collision.
func ParseCatalog(data []byte) (*Catalog, error) {
	var resources []model.LearningResource
	if err := yaml.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		resources: make([]model.LearningResource, 0, len(resources)),
		byID:      make(map[string]int, len(resources)),
	}
	for i, r := range resources {
		r.Title = strings.TrimSpace(r.Title)
		r.URL = strings.TrimSpace(r.URL)
		r.Topic = strings.ToLower(strings.TrimSpace(r.Topic))
		if r.Title == "" || r.URL == "" {
			return nil, fmt.Errorf("parse catalog: resource %d needs a title and url", i)
		}

		base := pkg.GenerateSlug(r.Title)
		r.ID = base
		for n := 2; ; n++ {
			if _, taken := c.byID[r.ID]; !taken {
				break
			}
			r.ID = fmt.Sprintf("%s-%d", base, n)
		}
		r.VideoID = YouTubeVideoID(r.URL)

		c.byID[r.ID] = len(c.resources)
		c.resources = append(c.resources, r)
	}
	return c, nil
}

// List returns the resources for topic, or all of them when topic is empty.
func (c *Catalog) List(topic string) []model.LearningResource {
	topic = strings.ToLower(strings.TrimSpace(topic))
	out := make([]model.LearningResource, 0, len(c.resources))
	for _, r := range c.resources {
		if topic == "" || r.Topic == topic {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) Get(id string) (model.LearningResource, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.LearningResource{}, false
	}
	return c.resources[i], true
}

// Topics returns the distinct topics in sorted order.
func (c *Catalog) Topics() []string {
	seen := make(map[string]struct{})
	topics := make([]string, 0)
	for _, r := range c.resources {
		if r.Topic == "" {
			continue
		}
		if _, ok := seen[r.Topic]; ok {
			continue
		}
		seen[r.Topic] = struct{}{}
		topics = append(topics, r.Topic)
	}
	sort.Strings(topics)
	return topics
}
