package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

func resolvedTrip(t *testing.T, router Router, from, to string) *Trip {
	trip := NewTrip(&fakeGeocoder{results: places}, router, 5)
	trip.From.Type(from)
	trip.To.Type(to)
	require.True(t, trip.From.Blur(context.Background()))
	require.True(t, trip.To.Blur(context.Background()))
	return trip
}

func TestTripResolve(t *testing.T) {
	router := &fakeRouter{replies: []routeReply{
		{lookup: &models.RouteLookup{DistanceKm: 294.6, DurationSeconds: 12300}},
	}}
	trip := resolvedTrip(t, router, "Warszawa", "Kraków")

	require.True(t, trip.Resolve(context.Background()))
	assert.False(t, trip.Loading())

	lookup, ok := trip.Lookup()
	require.True(t, ok)
	assert.Equal(t, 294.6, lookup.DistanceKm)

	assert.True(t, trip.Resolve(context.Background()))
	assert.Equal(t, 1, router.Calls(), "same pair is not looked up twice")

	var in models.TripInput
	trip.Fill(&in)
	assert.Equal(t, models.RouteMode, in.Mode)
	require.NotNil(t, in.RouteDistance)
	assert.Equal(t, 294.6, *in.RouteDistance)
	require.NotNil(t, in.DurationSeconds)
	assert.Equal(t, 12300.0, *in.DurationSeconds)
	assert.Contains(t, in.From, "Warszawa")
}

func TestTripNeedsBothEndpoints(t *testing.T) {
	router := &fakeRouter{}
	trip := NewTrip(&fakeGeocoder{results: places}, router, 5)
	trip.From.Type("Warszawa")
	require.True(t, trip.From.Blur(context.Background()))

	assert.False(t, trip.Resolve(context.Background()))
	assert.Equal(t, 0, router.Calls())

	var in models.TripInput
	trip.Fill(&in)
	assert.Nil(t, in.RouteDistance)
}

func TestTripFailureKeepsPriorResult(t *testing.T) {
	router := &fakeRouter{replies: []routeReply{
		{lookup: &models.RouteLookup{DistanceKm: 294.6}},
		{err: errors.New("service unavailable")},
	}}
	trip := resolvedTrip(t, router, "Warszawa", "Kraków")
	require.True(t, trip.Resolve(context.Background()))

	trip.To.Type("Gdańsk")
	require.True(t, trip.To.Blur(context.Background()))
	_, ok := trip.Lookup()
	assert.False(t, ok, "a moved endpoint hides the old distance")

	assert.False(t, trip.Resolve(context.Background()))
	assert.False(t, trip.Loading())
	_, ok = trip.Lookup()
	assert.False(t, ok)

	trip.To.Type("Kraków")
	require.True(t, trip.To.Blur(context.Background()))
	lookup, ok := trip.Lookup()
	require.True(t, ok, "the earlier result survives the failed lookup")
	assert.Equal(t, 294.6, lookup.DistanceKm)
}

func TestTripDropsStaleLookup(t *testing.T) {
	router := &fakeRouter{
		gates:   []chan routeReply{make(chan routeReply), make(chan routeReply)},
		started: make(chan struct{}),
	}
	trip := resolvedTrip(t, router, "Warszawa", "Kraków")

	first := make(chan bool)
	go func() { first <- trip.Resolve(context.Background()) }()
	<-router.started
	assert.True(t, trip.Loading())

	trip.To.Type("Gdańsk")
	require.True(t, trip.To.Blur(context.Background()))

	second := make(chan bool)
	go func() { second <- trip.Resolve(context.Background()) }()
	<-router.started

	router.gates[1] <- routeReply{lookup: &models.RouteLookup{DistanceKm: 340}}
	assert.True(t, <-second)

	router.gates[0] <- routeReply{lookup: &models.RouteLookup{DistanceKm: 294.6}}
	assert.False(t, <-first)

	assert.False(t, trip.Loading())
	lookup, ok := trip.Lookup()
	require.True(t, ok)
	assert.Equal(t, 340.0, lookup.DistanceKm)
}
