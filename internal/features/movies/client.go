package movies

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// popularTimeout bounds the popular listing call; the other catalog calls
// ride on the request context and the transport defaults.
const popularTimeout = 5 * time.Second

// UpstreamError carries a non-2xx catalog response so handlers can relay
// the upstream status and body verbatim.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

// Client talks to the TMDB API. The API key is held server-side and
// injected on every call; it never appears in responses or errors.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Popular returns the first page of the popular-movies listing.
func (c *Client) Popular(ctx context.Context) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, popularTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("page", "1")
	return c.get(ctx, "/movie/popular", params)
}

// Search runs a text search against the catalog.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	return c.get(ctx, "/search/movie", params)
}

// Detail fetches the full record for one movie.
func (c *Client) Detail(ctx context.Context, movieID int) (json.RawMessage, error) {
	return c.get(ctx, "/movie/"+strconv.Itoa(movieID), nil)
}

// Similar fetches movies similar to the given one.
func (c *Client) Similar(ctx context.Context, movieID int) (json.RawMessage, error) {
	return c.get(ctx, "/movie/"+strconv.Itoa(movieID)+"/similar", nil)
}

// Genres fetches the genre ID/name listing.
func (c *Client) Genres(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/genre/movie/list", nil)
}

// DiscoverQuery is the filter set forwarded to the catalog's discover
// endpoint when building recommendations.
type DiscoverQuery struct {
	Genres    []int
	MinRating float64
	YearStart int
	YearEnd   int
}

// Discover runs a filtered discovery query.
func (c *Client) Discover(ctx context.Context, q DiscoverQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("page", "1")

	if len(q.Genres) > 0 {
		ids := make([]string, len(q.Genres))
		for i, id := range q.Genres {
			ids[i] = strconv.Itoa(id)
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}
	if q.MinRating > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(q.MinRating, 'f', 1, 64))
	}
	if q.YearStart != 0 {
		params.Set("primary_release_date.gte", fmt.Sprintf("%d-01-01", q.YearStart))
	}
	if q.YearEnd != 0 {
		params.Set("primary_release_date.lte", fmt.Sprintf("%d-12-31", q.YearEnd))
	}

	return c.get(ctx, "/discover/movie", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("catalog API key not configured")
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", "en-US")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error would echo the full URL, API key included; keep the
		// key out of logs by reporting only the path and cause.
		if urlErr, ok := err.(*url.Error); ok {
			return nil, fmt.Errorf("GET %s: %w", path, urlErr.Err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: reading response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
