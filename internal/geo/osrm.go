package geo

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
	"github.com/rm-hull/trip-cost-calculator/internal/obs"
)

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64  `json:"distance"`
		Duration *float64 `json:"duration"`
	} `json:"routes"`
}

// OSRMClient is the fallback router, backed by the public OSRM demo server.
type OSRMClient struct {
	baseURL string
	http    *httpClient
}

func NewOSRMClient(opts Options) *OSRMClient {
	return &OSRMClient{
		baseURL: strings.TrimSuffix(opts.OSRMBaseURL, "/"),
		http:    newHTTPClient(opts, nil),
	}
}

func (o *OSRMClient) Route(ctx context.Context, from, to models.Coordinates) (_ *models.RouteLookup, err error) {
	defer obs.Time(ctx, "osrm.route")(&err)

	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		o.baseURL, from.Lon, from.Lat, to.Lon, to.Lat)

	var resp osrmResponse
	if err := o.http.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if len(resp.Routes) == 0 {
		return nil, ErrNoRoute
	}

	route := resp.Routes[0]
	lookup := &models.RouteLookup{
		DistanceKm: metresToKm(route.Distance),
		Provider:   "osrm",
	}
	if route.Duration != nil {
		lookup.DurationSeconds = *route.Duration
	}
	return lookup, nil
}

// NewRouter returns the OpenRouteService router when an API key is
// configured and the OSRM router otherwise.
func NewRouter(opts Options) Router {
	if opts.ORSAPIKey == "" {
		log.Println("OpenRouteService API key not configured, falling back to OSRM")
		return NewOSRMClient(opts)
	}
	return NewORSClient(opts)
}
