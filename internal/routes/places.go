package routes

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rm-hull/trip-cost-calculator/internal/calculator"
	"github.com/rm-hull/trip-cost-calculator/internal/geo"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

const maxSearchLimit = 10

func SearchPlaces(geocoder geo.Geocoder, defaultLimit int) func(c *gin.Context) {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))

		limit := defaultLimit
		if limitStr := c.Query("limit"); limitStr != "" {
			l, err := strconv.Atoi(limitStr)
			if err != nil || l < 1 || l > maxSearchLimit {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
				return
			}
			limit = l
		}

		if len([]rune(query)) < geo.MinQueryLength {
			c.JSON(http.StatusOK, gin.H{"results": []models.Suggestion{}})
			return
		}

		results, err := geocoder.Search(c.Request.Context(), query, limit)
		if err != nil {
			log.Printf("error while searching places: %v", err)
			upstreamErrors.WithLabelValues("geocoder").Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": "place search is unavailable"})
			return
		}
		if results == nil {
			results = []models.Suggestion{}
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
	}
}

// Distance looks up the driving distance between two "lat,lon" points.
func Distance(router geo.Router) func(c *gin.Context) {
	return func(c *gin.Context) {
		from, err := parseCoordinates(c.Query("from"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from: " + err.Error()})
			return
		}
		to, err := parseCoordinates(c.Query("to"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to: " + err.Error()})
			return
		}

		lookup, err := router.Route(c.Request.Context(), from, to)
		if errors.Is(err, geo.ErrNoRoute) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no driving route between the points"})
			return
		}
		if err != nil {
			log.Printf("error while looking up route: %v", err)
			upstreamErrors.WithLabelValues("router").Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": "routing is unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"result":   lookup,
			"duration": calculator.FormatDuration(lookup.DurationSeconds),
		})
	}
}

func parseCoordinates(s string) (models.Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return models.Coordinates{}, fmt.Errorf("must be two comma-separated values: lat,lon")
	}

	vals := make([]float64, 2)
	for i, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return models.Coordinates{}, fmt.Errorf("invalid value '%s': not a valid float", part)
		}
		vals[i] = val
	}

	if vals[0] < -90 || vals[0] > 90 || vals[1] < -180 || vals[1] > 180 {
		return models.Coordinates{}, fmt.Errorf("coordinates out of range")
	}
	return models.Coordinates{Lat: vals[0], Lon: vals[1]}, nil
}
