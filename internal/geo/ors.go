package geo

import (
	"context"
	"fmt"
	"strings"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
	"github.com/rm-hull/trip-cost-calculator/internal/obs"
)

type orsResponse struct {
	Features []struct {
		Properties struct {
			Segments []struct {
				Distance float64  `json:"distance"`
				Duration *float64 `json:"duration"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// ORSClient is the primary router, backed by OpenRouteService. It needs an
// API key.
type ORSClient struct {
	baseURL string
	http    *httpClient
}

func NewORSClient(opts Options) *ORSClient {
	return &ORSClient{
		baseURL: strings.TrimSuffix(opts.ORSBaseURL, "/"),
		http:    newHTTPClient(opts, map[string]string{"Authorization": opts.ORSAPIKey}),
	}
}

func (o *ORSClient) Route(ctx context.Context, from, to models.Coordinates) (_ *models.RouteLookup, err error) {
	defer obs.Time(ctx, "ors.route")(&err)

	url := fmt.Sprintf("%s/v2/directions/driving-car?start=%f,%f&end=%f,%f",
		o.baseURL, from.Lon, from.Lat, to.Lon, to.Lat)

	var resp orsResponse
	if err := o.http.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if len(resp.Features) == 0 || len(resp.Features[0].Properties.Segments) == 0 {
		return nil, ErrNoRoute
	}

	segment := resp.Features[0].Properties.Segments[0]
	lookup := &models.RouteLookup{
		DistanceKm: metresToKm(segment.Distance),
		Provider:   "openrouteservice",
	}
	if segment.Duration != nil {
		lookup.DurationSeconds = *segment.Duration
	}
	return lookup, nil
}
