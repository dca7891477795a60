package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"bilreport/pkg/log"
	"bilreport/pkg/models"
)

// DefaultURL is where the Brain Image Library publishes today's report.
const DefaultURL = "https://download.brainimagelibrary.org//inventory/daily/reports/today.json"

const defaultTimeout = 30 * time.Second

// Client fetches the daily inventory report.
type Client struct {
	url    string
	client *http.Client
}

// New creates a report client for the given URL. An empty URL falls back to
// DefaultURL, a non-positive timeout to the default.
func New(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the report URL this client reads from.
func (c *Client) URL() string {
	return c.url
}

// Fetch downloads and decodes today's inventory snapshot. There is exactly
// one attempt per call; every failure comes back as a *LoadError.
func (c *Client) Fetch(ctx context.Context) ([]models.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &LoadError{Stage: StageFetch, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &LoadError{Stage: StageFetch, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close report response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Stage: StageFetch, Status: resp.StatusCode}
	}

	var datasets []models.Dataset
	if err := json.NewDecoder(resp.Body).Decode(&datasets); err != nil {
		return nil, &LoadError{Stage: StageDecode, Err: err}
	}

	log.Debug().Int("datasets", len(datasets)).Str("url", c.url).Msg("Report fetched")
	return datasets, nil
}
