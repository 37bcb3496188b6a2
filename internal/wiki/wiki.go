// Package wiki talks to the MediaWiki Action API: one call to search for
// candidate titles, one call per title to retrieve a plain-text extract.
package wiki

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the English Wikipedia Action API endpoint.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

// DefaultArticleBase is the prefix for canonical article URLs.
const DefaultArticleBase = "https://en.wikipedia.org/wiki/"

// DefaultExtractMaxChars bounds the extract returned per title.
const DefaultExtractMaxChars = 1200

// ErrNoResults indicates the search endpoint reported zero matches.
var ErrNoResults = errors.New("no search results")

// ErrNoExtract indicates no returned page carried extractable text.
var ErrNoExtract = errors.New("no extract available")

// Client issues search and extract requests against a MediaWiki endpoint.
// The zero value targets English Wikipedia with a 10s per-request timeout.
type Client struct {
	BaseURL     string
	ArticleBase string
	UserAgent   string
	HTTPClient  *http.Client
	// Timeout bounds each request. Zero means 10s.
	Timeout time.Duration
	// ExtractMaxChars truncates extracts. Zero means DefaultExtractMaxChars.
	ExtractMaxChars int
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return 10 * time.Second
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: c.timeout()}
}

// PageURL derives the canonical article URL for a title. Titles are used
// verbatim apart from replacing spaces with underscores.
func (c *Client) PageURL(title string) string {
	base := c.ArticleBase
	if base == "" {
		base = DefaultArticleBase
	}
	return base + strings.ReplaceAll(title, " ", "_")
}
