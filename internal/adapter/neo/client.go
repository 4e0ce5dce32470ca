// Package neo implements domain.NeoCatalog against the NASA NeoWs lookup API.
package neo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/impact-effects-service/internal/domain"
	"github.com/couchcryptid/impact-effects-service/internal/observability"
)

// Client performs single-attempt NeoWs lookups. No retry or backoff: the
// resolver treats any failure as "no enrichment", so retrying would only add
// latency to an already best-effort path.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a NeoWs lookup client.
func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.nasa.gov/neo/rest/v1/neo",
		metrics: metrics,
		logger:  logger,
	}
}

// Lookup fetches a NEO record by identifier. Failures map onto the domain
// sentinel variants so callers can classify without string matching.
func (c *Client) Lookup(ctx context.Context, id string) (domain.NeoObject, error) {
	params := url.Values{"api_key": {c.apiKey}}
	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(id), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.NeoObject{}, fmt.Errorf("%w: create request: %v", domain.ErrNeoTransport, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.NeoAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.NeoObject{}, c.fail(fmt.Errorf("%w: %v", domain.ErrNeoTransport, err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NeoObject{}, c.fail(fmt.Errorf("%w: id %q", domain.ErrNeoNotFound, id))
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return domain.NeoObject{}, c.fail(fmt.Errorf("%w: status %d: %s", domain.ErrNeoTransport, resp.StatusCode, body))
	}

	var rec lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return domain.NeoObject{}, c.fail(fmt.Errorf("%w: %v", domain.ErrNeoDecode, err))
	}
	if rec.EstimatedDiameter == nil || rec.EstimatedDiameter.Meters == nil {
		return domain.NeoObject{}, c.fail(fmt.Errorf("%w: estimated diameter missing for id %q", domain.ErrNeoDecode, id))
	}

	c.metrics.NeoLookups.WithLabelValues("success").Inc()
	return domain.NeoObject{
		ID:           rec.ID,
		Name:         rec.Name,
		MaxDiameterM: rec.EstimatedDiameter.Meters.EstimatedDiameterMax,
	}, nil
}

func (c *Client) fail(err error) error {
	c.metrics.NeoLookups.WithLabelValues(domain.NeoLookupOutcome(err)).Inc()
	return err
}

// NeoWs lookup response types (the subset this service reads).

type lookupResponse struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	EstimatedDiameter *estimatedDiameter `json:"estimated_diameter"`
}

type estimatedDiameter struct {
	Meters *diameterRange `json:"meters"`
}

type diameterRange struct {
	EstimatedDiameterMin float64 `json:"estimated_diameter_min"`
	EstimatedDiameterMax float64 `json:"estimated_diameter_max"`
}
