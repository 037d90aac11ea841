package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

const (
	// DefaultProgramURL is the live conference program page
	DefaultProgramURL = "https://www.ndss-symposium.org/ndss-program/symposium-2026/"
	UserAgent         = "conf-schedule/1.0 (github.com/pfrederiksen/conf-schedule)"
	Timeout           = 30 * time.Second
)

// Client fetches program pages with a bounded timeout
type Client struct {
	client *http.Client
}

// New creates a new fetch client
func New() *Client {
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Fetch downloads url and returns the response body as a UTF-8 string,
// decoded according to the charset declared in the Content-Type header or
// a meta tag in the document itself.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return string(body), nil
}
