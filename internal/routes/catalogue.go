package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rm-hull/trip-cost-calculator/internal/calculator"
	"github.com/rm-hull/trip-cost-calculator/internal/dataset"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
	"github.com/rm-hull/trip-cost-calculator/internal/stats"
)

const (
	relatedRoutes  = 6
	costBucketSize = 50 // zł
)

func ListRoutes(ds *dataset.Dataset, prices PriceSource) func(c *gin.Context) {
	return func(c *gin.Context) {
		snapshot := prices.Current()
		c.JSON(http.StatusOK, models.RoutesResponse{
			Routes:      ds.Routes,
			Attribution: dataset.ATTRIBUTION,
			Statistics:  stats.Derive(ds.Routes, snapshot, costBucketSize),
			Prices:      snapshot,
		})
	}
}

func GetRoute(ds *dataset.Dataset) func(c *gin.Context) {
	return func(c *gin.Context) {
		route, ok := ds.RouteBySlug(c.Param("slug"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"route":    route,
			"variants": calculator.EstimateRoute(route),
			"related":  ds.RelatedRoutes(route.Slug, relatedRoutes),
		})
	}
}

// MatchRoute looks up a known route by place names, in either direction.
func MatchRoute(ds *dataset.Dataset) func(c *gin.Context) {
	return func(c *gin.Context) {
		route, reversed, ok := ds.MatchRoute(c.Query("from"), c.Query("to"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no matching route"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"route": route, "reversed": reversed})
	}
}

func FuelPrices(prices PriceSource) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, prices.Current())
	}
}

func VehicleClasses(ds *dataset.Dataset) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"vehicle_classes": ds.VehicleClasses})
	}
}
