package geo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
	"github.com/rm-hull/trip-cost-calculator/internal/obs"
)

// NominatimClient searches places via the OpenStreetMap Nominatim API.
type NominatimClient struct {
	baseURL string
	http    *httpClient
}

func NewNominatimClient(opts Options) *NominatimClient {
	return &NominatimClient{
		baseURL: strings.TrimSuffix(opts.NominatimBaseURL, "/"),
		http:    newHTTPClient(opts, map[string]string{"Accept-Language": "pl,en"}),
	}
}

func (n *NominatimClient) Search(ctx context.Context, query string, limit int) (_ []models.Suggestion, err error) {
	defer obs.Time(ctx, "nominatim.search")(&err)

	query = strings.Join(strings.Fields(query), " ")
	if len([]rune(query)) < MinQueryLength {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", fmt.Sprint(limit))

	var results []models.Suggestion
	if err := n.http.getJSON(ctx, n.baseURL+"/search?"+params.Encode(), &results); err != nil {
		return nil, err
	}
	return results, nil
}
