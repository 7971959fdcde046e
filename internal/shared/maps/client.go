// Package maps wraps the Apps Script distance endpoint used for routing
// estimates, with an optional Redis cache in front of it.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DistanceClient resolves road distance in km between two free-form
// addresses. Lookups are slow (the endpoint drives the Maps API), so results
// are cached per origin/destination pair when a Redis client is configured.
type DistanceClient struct {
	endpointURL string
	httpClient  *http.Client
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewDistanceClient(endpointURL string, timeout time.Duration, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *DistanceClient {
	return &DistanceClient{
		endpointURL: endpointURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Configured reports whether an endpoint URL is set. Without one every lookup
// fails and callers fall back to zero distances.
func (c *DistanceClient) Configured() bool {
	return c.endpointURL != ""
}

// Distance returns the road distance in km from origin to destination.
func (c *DistanceClient) Distance(ctx context.Context, origin, destination string) (float64, error) {
	if !c.Configured() {
		return 0, fmt.Errorf("distance endpoint not configured")
	}

	cacheKey := fmt.Sprintf("distance:%s|%s", origin, destination)
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Float64(); err == nil {
			return cached, nil
		}
	}

	query := url.Values{}
	query.Set("origin", origin)
	query.Set("destination", destination)
	req, err := http.NewRequestWithContext(ctx, "GET", c.endpointURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build distance request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("distance endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Success  bool            `json:"success"`
		Distance json.RawMessage `json:"distance"`
		Error    string          `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode distance response: %w", err)
	}
	if result.Error != "" {
		return 0, fmt.Errorf("distance lookup failed: %s", result.Error)
	}

	km := parseDistance(result.Success, result.Distance)

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, km, c.cacheTTL).Err(); err != nil {
			c.logger.Warn("failed to cache distance result",
				zap.String("origin", origin),
				zap.String("destination", destination),
				zap.Error(err))
		}
	}
	return km, nil
}

// parseDistance handles both response shapes the endpoint produces: a plain
// km number, or a Maps-style {"value": <meters>} object. Anything else
// counts as zero. The result is rounded to 3 decimals.
func parseDistance(success bool, raw json.RawMessage) float64 {
	if !success || len(raw) == 0 {
		return 0
	}
	var km float64
	if err := json.Unmarshal(raw, &km); err != nil {
		var obj struct {
			Value float64 `json:"value"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return 0
		}
		km = obj.Value / 1000
	}
	return math.Round(km*1000) / 1000
}
