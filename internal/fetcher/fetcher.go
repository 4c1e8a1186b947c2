package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abhishek622/careercraft/pkg/model"
	"go.uber.org/zap"
)

// Cache stores successful scrape results by URL.
type Cache interface {
	Get(ctx context.Context, url string) (*model.JobScrapeResult, bool)
	Set(ctx context.Context, url string, res *model.JobScrapeResult)
}

type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	// Structured enables goquery JSON-LD / OpenGraph enrichment on top of
	// the regex title and description.
	Structured bool
	Cache      Cache
	// Client overrides the default HTTP client; Timeout is ignored when set.
	Client *http.Client
}

// Fetcher scrapes job pages. Scrape failures never surface as errors.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	maxBody    int64
	structured bool
	cache      Cache
	logger     *zap.Logger
}

func NewFetcher(opts Options, logger *zap.Logger) *Fetcher {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 2 << 20
	}
	return &Fetcher{
		client:     client,
		userAgent:  opts.UserAgent,
		maxBody:    maxBody,
		structured: opts.Structured,
		cache:      opts.Cache,
		logger:     logger,
	}
}

// ScrapeJob fetches rawURL and extracts the page title and meta description.
// Any failure yields the empty result.
func (f *Fetcher) ScrapeJob(ctx context.Context, rawURL string) *model.JobScrapeResult {
	if f.cache != nil {
		if cached, ok := f.cache.Get(ctx, rawURL); ok {
			return cached
		}
	}

	body, err := f.fetchPage(ctx, rawURL)
	if err != nil {
		f.logger.Warn("job_scrape: fetch failed", zap.String("url", rawURL), zap.Error(err))
		return model.EmptyJobScrape()
	}

	res := Extract(body)
	if f.structured {
		enrichStructured(body, res)
	}

	if f.cache != nil {
		f.cache.Set(ctx, rawURL, res)
	}
	return res
}

func (f *Fetcher) fetchPage(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("url has no host")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	// Non-2xx pages are parsed like any other, the way a browser fetch resolves them.
	if resp.StatusCode >= http.StatusBadRequest {
		f.logger.Debug("job_scrape: non-success status", zap.String("url", rawURL), zap.Int("status", resp.StatusCode))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(b), nil
}
