package geo

import (
	"context"
	"log"
	"sync"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

// Trip pairs the origin and destination fields with a guarded distance
// lookup. A lookup result is kept together with the coordinate pair it
// was computed for, so moving either endpoint hides the old distance until
// the new lookup succeeds.
type Trip struct {
	From *Field
	To   *Field

	router Router

	mu         sync.Mutex
	generation uint64
	loading    bool
	pair       string
	lookup     *models.RouteLookup
}

func NewTrip(geocoder Geocoder, router Router, limit int) *Trip {
	return &Trip{
		From:   NewField(geocoder, limit),
		To:     NewField(geocoder, limit),
		router: router,
	}
}

func (t *Trip) currentPair() (models.Coordinates, models.Coordinates, string, bool) {
	from, okFrom := t.From.Coordinates()
	to, okTo := t.To.Coordinates()
	if !okFrom || !okTo {
		return from, to, "", false
	}
	return from, to, from.String() + ";" + to.String(), true
}

// Resolve looks up the driving distance once both endpoints are resolved.
// A failed lookup is logged and the previous result is kept. A result that
// arrives after a newer lookup has started is dropped. The loading flag is
// cleared whatever the outcome.
func (t *Trip) Resolve(ctx context.Context) bool {
	from, to, pair, ok := t.currentPair()
	if !ok {
		return false
	}

	t.mu.Lock()
	if t.pair == pair && t.lookup != nil {
		t.mu.Unlock()
		return true
	}
	t.generation++
	gen := t.generation
	t.loading = true
	t.mu.Unlock()

	lookup, err := t.router.Route(ctx, from, to)

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		return false
	}
	t.loading = false
	if err != nil {
		log.Printf("error fetching distance: %v", err)
		return false
	}
	t.pair = pair
	t.lookup = lookup
	return true
}

func (t *Trip) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Lookup returns the distance for the current coordinate pair, if known.
func (t *Trip) Lookup() (*models.RouteLookup, bool) {
	_, _, pair, ok := t.currentPair()
	if !ok {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.lookup == nil || t.pair != pair {
		return nil, false
	}
	lookup := *t.lookup
	return &lookup, true
}

// Fill copies the endpoints and, when known, the looked-up distance and
// duration into a route-mode calculator input.
func (t *Trip) Fill(in *models.TripInput) {
	in.Mode = models.RouteMode
	in.From = t.From.Query()
	in.To = t.To.Query()
	in.RouteDistance = nil
	in.DurationSeconds = nil

	if lookup, ok := t.Lookup(); ok {
		distance := lookup.DistanceKm
		in.RouteDistance = &distance
		if lookup.DurationSeconds > 0 {
			duration := lookup.DurationSeconds
			in.DurationSeconds = &duration
		}
	}
}
