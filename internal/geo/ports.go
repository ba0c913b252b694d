package geo

import (
	"context"
	"math"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

// MinQueryLength is the shortest place query worth sending to the search
// service.
const MinQueryLength = 3

// Geocoder turns free-text place names into ranked candidates.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error)
}

// Router looks up the driving distance and duration between two points.
type Router interface {
	Route(ctx context.Context, from, to models.Coordinates) (*models.RouteLookup, error)
}

// metresToKm converts to kilometres with one decimal place.
func metresToKm(m float64) float64 {
	return math.Round(m/1000*10) / 10
}
