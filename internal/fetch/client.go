package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL   = "https://api.tdytech.cn/api"
	DefaultUserAgent = "welfare-lottery-app/0.1.0"
	DefaultTimeout   = 30 * time.Second
)

// Client talks to the lottery history API. It holds no per-call state and
// is safe for concurrent use.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

func NewClient() *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: DefaultTimeout},
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
	}
}

// URL joins urlPath (like "/history/last") and query onto the base URL.
func (c *Client) URL(urlPath string, query url.Values) string {
	u := c.BaseURL + urlPath
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// FetchJSON performs a single GET and decodes the body into a generic JSON
// value. Transport errors, non-2xx statuses and undecodable bodies are all
// returned as errors; there are no retries.
func (c *Client) FetchJSON(ctx context.Context, urlPath string, query url.Values) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(urlPath, query), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", urlPath, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", urlPath, resp.StatusCode, string(body))
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("GET %s: decode body: %w", urlPath, err)
	}
	return v, nil
}
