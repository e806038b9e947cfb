package items

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultUserAgent = "dfhelper/1.0"
	defaultTimeout   = 15 * time.Second
	maxBodyBytes     = 20 * 1024 * 1024
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the item list from the API.
type Client struct {
	http      HTTPClient
	url       string
	userAgent string
	timeout   time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout bounds each Fetch. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a Client for url using the given HTTP client.
func NewClient(httpClient HTTPClient, url string, opts ...Option) *Client {
	c := &Client{
		http:      httpClient,
		url:       url,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL is the endpoint the client fetches.
func (c *Client) URL() string { return c.url }

// Fetch downloads and decodes the item list.
func (c *Client) Fetch(ctx context.Context) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	list, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return list, nil
}

// Decode parses either a bare JSON array of items or an object with an
// "items" array. Items without an id are dropped.
func Decode(body []byte) ([]Item, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty body")
	}

	var raw []Item
	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, err
		}
	case '{':
		var wrapped struct {
			Items *[]Item `json:"items"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, err
		}
		if wrapped.Items == nil {
			return nil, errors.New(`object has no "items" array`)
		}
		raw = *wrapped.Items
	default:
		return nil, fmt.Errorf("unexpected leading byte %q", body[0])
	}

	list := make([]Item, 0, len(raw))
	for _, it := range raw {
		if it.ID == 0 {
			continue
		}
		list = append(list, it)
	}
	return list, nil
}
