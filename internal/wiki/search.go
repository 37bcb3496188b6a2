package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Search issues one search call and returns candidate titles in ranking
// order, truncated to limit. ErrNoResults is returned when the endpoint
// reports zero matches. Transport and decode failures are returned as-is;
// retry policy belongs to the caller.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	u, err := url.Parse(c.baseURL())
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("list", "search")
	q.Set("srsearch", query)
	q.Set("srlimit", fmt.Sprintf("%d", limit))
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search status: %d", resp.StatusCode)
	}
	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, err
	}
	if len(sr.Query.Search) == 0 {
		return nil, ErrNoResults
	}
	titles := make([]string, 0, len(sr.Query.Search))
	for _, hit := range sr.Query.Search {
		if hit.Title == "" {
			continue
		}
		titles = append(titles, hit.Title)
		if len(titles) >= limit {
			break
		}
	}
	if len(titles) == 0 {
		return nil, ErrNoResults
	}
	return titles, nil
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}
