// Package websearch wraps the Google Custom Search API, constrained to
// PDF results.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultLimit is the number of results requested when the caller
// passes a non-positive limit.
const DefaultLimit = 10

// ProviderError is an error reported by the search API itself (quota
// exceeded, bad key), as opposed to a transport failure.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "Google Search API Error: " + e.Message
}

type Client struct {
	BaseURL  string
	APIKey   string
	EngineID string
	client   *http.Client
}

func NewClient(baseURL, apiKey, engineID string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://www.googleapis.com"
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		APIKey:   apiKey,
		EngineID: engineID,
		client:   &http.Client{Timeout: timeout},
	}
}

// SearchPDFs runs the query with a filetype:pdf constraint and returns
// the result links that end in ".pdf". The suffix match is
// case-sensitive. An empty slice is a valid result, not an error.
func (c *Client) SearchPDFs(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	params := url.Values{}
	params.Set("q", query+" filetype:pdf")
	params.Set("key", c.APIKey)
	params.Set("cx", c.EngineID)
	params.Set("num", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/customsearch/v1?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("unexpected search error: %w", err)
	}
	log.Printf("[SEARCH] GET %s/customsearch/v1 q=%q num=%d", c.BaseURL, query, limit)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error connecting to Google Search API: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("network error connecting to Google Search API: %w", err)
	}

	var out struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Items []struct {
			Link string `json:"link"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unexpected search error: %w", err)
	}
	if out.Error != nil {
		return nil, &ProviderError{Message: out.Error.Message}
	}

	links := make([]string, 0, len(out.Items))
	for _, item := range out.Items {
		if strings.HasSuffix(item.Link, ".pdf") {
			links = append(links, item.Link)
		}
	}
	return links, nil
}
