package geo

import (
	"context"
	"sync"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

type fakeGeocoder struct {
	mu      sync.Mutex
	calls   int
	results map[string][]models.Suggestion
	err     error
}

func (f *fakeGeocoder) Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	results := f.results[query]
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (f *fakeGeocoder) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type routeReply struct {
	lookup *models.RouteLookup
	err    error
}

// fakeRouter answers from a queue. When gates is set, call n blocks until
// a reply arrives on gates[n].
type fakeRouter struct {
	mu      sync.Mutex
	calls   int
	replies []routeReply
	gates   []chan routeReply
	started chan struct{}
}

func (f *fakeRouter) Route(ctx context.Context, from, to models.Coordinates) (*models.RouteLookup, error) {
	f.mu.Lock()
	n := f.calls
	f.calls++
	var reply routeReply
	var gate chan routeReply
	if n < len(f.gates) {
		gate = f.gates[n]
	} else if len(f.replies) > 0 {
		reply = f.replies[0]
		f.replies = f.replies[1:]
	}
	f.mu.Unlock()

	if gate != nil {
		if f.started != nil {
			f.started <- struct{}{}
		}
		reply = <-gate
	}
	return reply.lookup, reply.err
}

func (f *fakeRouter) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var places = map[string][]models.Suggestion{
	"Warszawa": {
		{DisplayName: "Warszawa, województwo mazowieckie, Polska", Lat: "52.2297", Lon: "21.0122"},
		{DisplayName: "Warszawa, Indiana", Lat: "41.2", Lon: "-85.8"},
	},
	"Kraków": {
		{DisplayName: "Kraków, województwo małopolskie, Polska", Lat: "50.0647", Lon: "19.9450"},
	},
	"Gdańsk": {
		{DisplayName: "Gdańsk, województwo pomorskie, Polska", Lat: "54.3520", Lon: "18.6466"},
	},
}
