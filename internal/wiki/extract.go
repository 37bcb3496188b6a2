package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/jkorri/wikiresearch/internal/textutil"
)

// Extract retrieves the plain-text extract for an exact title, truncated to
// the configured cap. When the response maps the title to several page ids,
// ids are visited in sorted order and the first page with a non-empty
// extract wins; the rest are ignored. ErrNoExtract is returned when no page
// carries text.
func (c *Client) Extract(ctx context.Context, title string) (string, error) {
	u, err := url.Parse(c.baseURL())
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("titles", title)
	q.Set("prop", "extracts")
	q.Set("explaintext", "1")
	q.Set("exintro", "0")
	q.Set("exlimit", "1")
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("extract status: %d", resp.StatusCode)
	}
	var er extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return "", err
	}

	ids := make([]string, 0, len(er.Query.Pages))
	for id := range er.Query.Pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		text := er.Query.Pages[id].Extract
		if text == "" {
			continue
		}
		max := c.ExtractMaxChars
		if max <= 0 {
			max = DefaultExtractMaxChars
		}
		return textutil.Truncate(text, max), nil
	}
	return "", ErrNoExtract
}

type extractResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}
