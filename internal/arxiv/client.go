// Package arxiv fetches recent article metadata from the arXiv Atom API.
package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/nkrishelie/arxiv-graph-viz/internal/article"
)

const (
	// BaseURL is the arXiv API query endpoint.
	BaseURL = "http://export.arxiv.org/api/query"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// RequestInterval is the pause arXiv asks clients to keep between requests.
	RequestInterval = 3 * time.Second

	// PageSize is the number of entries requested per page.
	PageSize = 100

	// DefaultUserAgent identifies the client to arXiv.
	DefaultUserAgent = "arxivgraph/1.0 (+https://github.com/nkrishelie/arxiv-graph-viz)"
)

// Client is a rate-limited HTTP client for the arXiv API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	pageSize   int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithLimiter replaces the request pacing limiter.
func WithLimiter(l *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithPageSize sets the number of entries requested per page.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient creates a new arXiv API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(RequestInterval), 1),
		baseURL:    BaseURL,
		userAgent:  DefaultUserAgent,
		pageSize:   PageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Query describes a window of recent submissions.
type Query struct {
	Search     string    // arXiv search_query, e.g. "cat:math.*"
	Since      time.Time // oldest publication time to keep
	MaxResults int       // upper bound on entries read from the API
}

// CategorySet reports whether a subject code is known.
type CategorySet interface {
	Has(code string) bool
}

// Recent pages through submissions matching q, newest first, and stops at the
// first entry published before q.Since. Each entry's categories are filtered
// to known; entries left with no category are skipped.
func (c *Client) Recent(ctx context.Context, q Query, known CategorySet) ([]article.Record, error) {
	if q.MaxResults <= 0 {
		return nil, nil
	}

	var out []article.Record
	for start := 0; start < q.MaxResults; start += c.pageSize {
		size := min(c.pageSize, q.MaxResults-start)

		feed, err := c.fetchPage(ctx, q.Search, start, size)
		if err != nil {
			return nil, err
		}

		for _, item := range feed.Items {
			published := itemPublished(item)
			if published.Before(q.Since) {
				return out, nil
			}
			rec, ok := toRecord(item, published, known)
			if !ok {
				continue
			}
			out = append(out, rec)
		}

		if len(feed.Items) < size {
			break
		}
	}

	return out, nil
}

// fetchPage requests one page of results and parses the Atom body.
func (c *Client) fetchPage(ctx context.Context, search string, start, size int) (*gofeed.Feed, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("search_query", search)
	params.Set("start", strconv.Itoa(start))
	params.Set("max_results", strconv.Itoa(size))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/atom+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return feed, nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}
	return nil
}
