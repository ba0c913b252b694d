package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kofalt/go-memoize"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

// CachedGeocoder memoizes successful searches. Concurrent identical
// searches share a single upstream call; failures are not cached.
type CachedGeocoder struct {
	next  Geocoder
	cache *memoize.Memoizer
}

func NewCachedGeocoder(next Geocoder, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		next:  next,
		cache: memoize.NewMemoizer(ttl, 2*ttl),
	}
}

func (c *CachedGeocoder) Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error) {
	key := fmt.Sprintf("%d|%s", limit, strings.ToLower(strings.Join(strings.Fields(query), " ")))
	value, err, _ := c.cache.Memoize(key, func() (interface{}, error) {
		return c.next.Search(ctx, query, limit)
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.Suggestion), nil
}

// CachedRouter memoizes route lookups per coordinate pair.
type CachedRouter struct {
	next  Router
	cache *memoize.Memoizer
}

func NewCachedRouter(next Router, ttl time.Duration) *CachedRouter {
	return &CachedRouter{
		next:  next,
		cache: memoize.NewMemoizer(ttl, 2*ttl),
	}
}

func (c *CachedRouter) Route(ctx context.Context, from, to models.Coordinates) (*models.RouteLookup, error) {
	key := from.String() + ";" + to.String()
	value, err, _ := c.cache.Memoize(key, func() (interface{}, error) {
		return c.next.Route(ctx, from, to)
	})
	if err != nil {
		return nil, err
	}
	cached, _ := value.(*models.RouteLookup)
	if cached == nil {
		return nil, ErrNoRoute
	}
	lookup := *cached
	return &lookup, nil
}
