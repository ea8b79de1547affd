package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/jwebster45206/portal-router/internal/logger"
	"github.com/jwebster45206/portal-router/internal/metrics"
	"github.com/jwebster45206/portal-router/pkg/route"
)

// RouteCache stores route results in a Cache. Keys include the dataset
// fingerprint, so results from a different dataset are never served.
type RouteCache struct {
	cache   Cache
	router  *route.Router
	ttl     time.Duration
	prefix  string
	logger  *slog.Logger
	metrics *metrics.Registry
}

// NewRouteCache wraps router with cache. metrics may be nil.
func NewRouteCache(cache Cache, router *route.Router, ttl time.Duration, logger *slog.Logger, m *metrics.Registry) *RouteCache {
	return &RouteCache{
		cache:   cache,
		router:  router,
		ttl:     ttl,
		prefix:  "route:" + router.Dataset().Fingerprint()[:16],
		logger:  logger,
		metrics: m,
	}
}

// Key returns the cache key for a request.
func (c *RouteCache) Key(start, end route.Location, held route.CapabilitySet) string {
	return fmt.Sprintf("%s:%d:%s:%s", c.prefix, uint8(held), url.QueryEscape(string(start)), url.QueryEscape(string(end)))
}

// Get looks up a cached result.
func (c *RouteCache) Get(ctx context.Context, start, end route.Location, held route.CapabilitySet) (route.Result, bool, error) {
	raw, err := c.cache.Get(ctx, c.Key(start, end, held))
	if err != nil {
		return route.Result{}, false, fmt.Errorf("failed to read cached route: %w", err)
	}
	if raw == "" {
		return route.Result{}, false, nil
	}

	var res route.Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return route.Result{}, false, fmt.Errorf("failed to unmarshal cached route: %w", err)
	}
	return res, true, nil
}

// Put stores a result under its request key.
func (c *RouteCache) Put(ctx context.Context, res route.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal route: %w", err)
	}
	if err := c.cache.Set(ctx, c.Key(res.Start, res.End, res.Capabilities), string(data), c.ttl); err != nil {
		return fmt.Errorf("failed to cache route: %w", err)
	}
	return nil
}

// Route answers from the cache when possible and otherwise searches and
// stores the result. Cache failures are logged and never fail the request.
// Only the search path is counted as a search in metrics.
func (c *RouteCache) Route(ctx context.Context, start, end route.Location, held route.CapabilitySet) route.Result {
	res, ok, err := c.Get(ctx, start, end, held)
	switch {
	case err != nil:
		logger.WithError(c.logger, err).Warn("Route cache lookup failed", "start", start, "end", end)
		c.record("error")
	case ok:
		c.record("hit")
		return res
	default:
		c.record("miss")
	}

	began := time.Now()
	res = c.router.Route(start, end, held)
	if c.metrics != nil {
		c.metrics.RecordSearch(res, time.Since(began))
	}
	if err := c.Put(ctx, res); err != nil {
		logger.WithError(c.logger, err).Warn("Route cache store failed", "start", start, "end", end)
	}
	return res
}

func (c *RouteCache) record(result string) {
	if c.metrics != nil {
		c.metrics.RecordCacheLookup(result)
	}
}
