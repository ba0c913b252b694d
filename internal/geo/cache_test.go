package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

func TestCachedGeocoder(t *testing.T) {
	inner := &fakeGeocoder{results: places}
	cached := NewCachedGeocoder(inner, time.Minute)

	for range 3 {
		results, err := cached.Search(context.Background(), "Warszawa", 5)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	}
	assert.Equal(t, 1, inner.Calls())

	_, err := cached.Search(context.Background(), "Warszawa", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.Calls(), "limit is part of the key")
}

func TestCachedGeocoderDoesNotCacheErrors(t *testing.T) {
	inner := &fakeGeocoder{err: errors.New("unavailable")}
	cached := NewCachedGeocoder(inner, time.Minute)

	_, err := cached.Search(context.Background(), "Warszawa", 5)
	require.Error(t, err)
	_, err = cached.Search(context.Background(), "Warszawa", 5)
	require.Error(t, err)
	assert.Equal(t, 2, inner.Calls())
}

func TestCachedRouter(t *testing.T) {
	inner := &fakeRouter{replies: []routeReply{
		{lookup: &models.RouteLookup{DistanceKm: 294.6, DurationSeconds: 12000}},
		{lookup: &models.RouteLookup{DistanceKm: 340}},
	}}
	cached := NewCachedRouter(inner, time.Minute)

	first, err := cached.Route(context.Background(), warsaw, krakow)
	require.NoError(t, err)
	first.DistanceKm = 1

	second, err := cached.Route(context.Background(), warsaw, krakow)
	require.NoError(t, err)
	assert.Equal(t, 294.6, second.DistanceKm)
	assert.Equal(t, 1, inner.Calls())

	other, err := cached.Route(context.Background(), krakow, warsaw)
	require.NoError(t, err)
	assert.Equal(t, 340.0, other.DistanceKm)
	assert.Equal(t, 2, inner.Calls())
}
