package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rm-hull/trip-cost-calculator/internal/dataset"
	"github.com/rm-hull/trip-cost-calculator/internal/geo"
)

type Deps struct {
	Dataset     *dataset.Dataset
	Prices      PriceSource
	Geocoder    geo.Geocoder
	Router      geo.Router
	SearchLimit int
}

// Register mounts the v1 API on r.
func Register(r gin.IRouter, d Deps) {
	v1 := r.Group("/v1", RequestID())

	trip := v1.Group("/trip")
	trip.POST("/calculate", Calculate(d.Dataset, d.Prices))
	trip.GET("/compare", Compare(d.Prices))

	routes := v1.Group("/routes")
	routes.GET("", ListRoutes(d.Dataset, d.Prices))
	routes.GET("/match", MatchRoute(d.Dataset))
	routes.GET("/:slug", GetRoute(d.Dataset))

	v1.GET("/fuel-prices", FuelPrices(d.Prices))
	v1.GET("/vehicle-classes", VehicleClasses(d.Dataset))

	places := v1.Group("/places")
	places.GET("/search", SearchPlaces(d.Geocoder, d.SearchLimit))
	places.GET("/distance", Distance(d.Router))
}
