// Package fetcher wraps the HTTP fetching side of a scan: polite delayed
// GETs with custom headers, and <script src> discovery in fetched HTML.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Config controls request behavior for one scan run.
type Config struct {
	UserAgent string
	Headers   map[string]string
	Timeout   time.Duration
	// Delay is slept before every request when set.
	Delay time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Get fetches a URL and returns its body as text.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	if c.cfg.Delay > 0 {
		select {
		case <-time.After(c.cfg.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rawURL, err)
	}
	return string(body), nil
}

// ScriptSources returns the src of every external <script> in an HTML
// document, resolved against baseURL. Inline scripts have no src and are
// skipped; the caller scans the page body for those separately if it wants.
func ScriptSources(html, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %s: %w", baseURL, err)
	}

	var sources []string
	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || strings.TrimSpace(src) == "" {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(src))
		if err != nil {
			return
		}
		sources = append(sources, base.ResolveReference(ref).String())
	})
	return sources, nil
}

// ParseHeaders parses the CLI header format "Header1:Value1,Header2:Value2".
// Malformed pairs are ignored.
func ParseHeaders(spec string) map[string]string {
	headers := make(map[string]string)
	if spec == "" {
		return headers
	}
	for _, pair := range strings.Split(spec, ",") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers
}
