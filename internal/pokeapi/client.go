package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/five82/pokedex/internal/roster"
)

// Ensure Client implements roster.Service at compile time.
var _ roster.Service = (*Client)(nil)

// Client talks to the PokéAPI REST service.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public PokéAPI v2 root.
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "pokedex/0.1"
	defaultTimeout   = 10 * time.Second
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient builds a Client rooted at baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client resolves requests against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListPage retrieves one page of summaries.
func (c *Client) ListPage(ctx context.Context, page roster.Page) ([]roster.Summary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if page.Limit <= 0 {
		return nil, fmt.Errorf("page limit must be positive")
	}
	if page.Offset < 0 {
		return nil, fmt.Errorf("page offset must not be negative")
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(page.Limit))
	values.Set("offset", strconv.Itoa(page.Offset))
	rel := &url.URL{Path: "pokemon", RawQuery: values.Encode()}

	var payload ListResponse
	if err := c.doURL(ctx, c.resolve(rel), &payload); err != nil {
		return nil, err
	}
	return payload.Summaries(), nil
}

// FetchDetail retrieves the full record a summary points at.
func (c *Client) FetchDetail(ctx context.Context, summary roster.Summary) (roster.Entity, error) {
	if c == nil {
		return roster.Entity{}, fmt.Errorf("client is nil")
	}
	target, err := c.detailURL(summary)
	if err != nil {
		return roster.Entity{}, err
	}
	var payload Pokemon
	if err := c.doURL(ctx, target, &payload); err != nil {
		return roster.Entity{}, err
	}
	return payload.Entity(), nil
}

func (c *Client) detailURL(summary roster.Summary) (*url.URL, error) {
	raw := strings.TrimSpace(summary.URL)
	if raw == "" {
		name := strings.TrimSpace(summary.Name)
		if name == "" {
			return nil, fmt.Errorf("summary has neither url nor name")
		}
		return c.resolve(&url.URL{Path: "pokemon/" + url.PathEscape(name)}), nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse detail url %q: %w", raw, err)
	}
	if !u.IsAbs() {
		u = c.resolve(u)
	}
	return u, nil
}

// resolve joins rel onto the base path, keeping the /api/v2 prefix.
func (c *Client) resolve(rel *url.URL) *url.URL {
	base := *c.baseURL
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(rel)
}

func (c *Client) doURL(ctx context.Context, target *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", target.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
