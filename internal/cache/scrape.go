package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const scrapeKeyPrefix = "ccai:scrape:"

// ScrapeCache keeps job-scrape results in Redis for a fixed TTL.
// Redis errors are logged and treated as misses.
type ScrapeCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewScrapeCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *ScrapeCache {
	return &ScrapeCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *ScrapeCache) Get(ctx context.Context, url string) (*model.JobScrapeResult, bool) {
	b, err := c.rdb.Get(ctx, scrapeKey(url)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("scrape_cache: get failed", zap.String("url", url), zap.Error(err))
		}
		return nil, false
	}

	var res model.JobScrapeResult
	if err := json.Unmarshal(b, &res); err != nil {
		c.logger.Warn("scrape_cache: corrupt entry", zap.String("url", url), zap.Error(err))
		return nil, false
	}
	return &res, true
}

func (c *ScrapeCache) Set(ctx context.Context, url string, res *model.JobScrapeResult) {
	b, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, scrapeKey(url), b, c.ttl).Err(); err != nil {
		c.logger.Warn("scrape_cache: set failed", zap.String("url", url), zap.Error(err))
	}
}

func scrapeKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return scrapeKeyPrefix + hex.EncodeToString(sum[:])
}
