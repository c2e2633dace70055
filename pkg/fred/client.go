// Package fred is a minimal client for the FRED series observations endpoint.
package fred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const observationsPath = "/fred/series/observations"

// ErrNoObservations is returned when a series/year window contains no usable
// monthly values. Callers treat the yearly mean as absent, not as zero.
var ErrNoObservations = errors.New("no usable observations")

type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Option func(*Options)

func WithBaseURL(base string) Option {
	return func(o *Options) { o.BaseURL = base }
}

func WithAPIKey(key string) Option {
	return func(o *Options) { o.APIKey = key }
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) { o.Timeout = timeout }
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) { o.HTTPClient = client }
}

// Client fetches BLS Average Price observations from FRED. It issues exactly
// one request per YearAverage call: no retries, no backoff, no caching.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a FRED client using the provided options.
func New(opts ...Option) (*Client, error) {
	options := &Options{
		BaseURL: "https://api.stlouisfed.org",
		Timeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.APIKey == "" {
		return nil, fmt.Errorf("fred: API key cannot be empty")
	}
	if options.BaseURL == "" {
		return nil, fmt.Errorf("fred: base URL cannot be empty")
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	return &Client{
		baseURL: options.BaseURL,
		apiKey:  options.APIKey,
		http:    httpClient,
	}, nil
}

type observation struct {
	Value string `json:"value"`
}

type observationsResponse struct {
	Observations []observation `json:"observations"`
}

// YearAverage requests the monthly observations of one series restricted to a
// calendar year and returns their arithmetic mean. FRED marks missing months
// with "" or "."; those are excluded from the mean. When nothing usable
// remains the error wraps ErrNoObservations.
func (c *Client) YearAverage(ctx context.Context, seriesID string, year int) (float64, error) {
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", c.apiKey)
	q.Set("file_type", "json")
	q.Set("observation_start", fmt.Sprintf("%d-01-01", year))
	q.Set("observation_end", fmt.Sprintf("%d-12-31", year))
	q.Set("frequency", "m")
	q.Set("units", "lin")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+observationsPath+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build request for %s: %w", seriesID, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", seriesID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("fetch %s: unexpected status %s", seriesID, resp.Status)
	}

	var payload observationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode %s response: %w", seriesID, err)
	}

	var sum float64
	var count int
	for _, obs := range payload.Observations {
		if obs.Value == "" || obs.Value == "." {
			continue
		}
		v, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		sum += v
		count++
	}

	if count == 0 {
		return 0, fmt.Errorf("%w: %s in %d", ErrNoObservations, seriesID, year)
	}
	return sum / float64(count), nil
}
