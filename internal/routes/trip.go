package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rm-hull/trip-cost-calculator/internal/calculator"
	"github.com/rm-hull/trip-cost-calculator/internal/dataset"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

// PriceSource hands out the current price snapshot.
type PriceSource interface {
	Current() models.FuelPrices
}

// Calculate prices a trip from the calculator form. Incomplete input is not
// an error: the response carries a null result.
func Calculate(ds *dataset.Dataset, prices PriceSource) func(c *gin.Context) {
	return func(c *gin.Context) {
		var in models.TripInput
		if err := c.ShouldBindJSON(&in); err != nil {
			calculations.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := normalizeInput(&in); err != nil {
			calculations.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := calculator.Calculate(in, prices.Current())
		if errors.Is(err, calculator.ErrNoResult) {
			calculations.WithLabelValues("no_result").Inc()
			c.JSON(http.StatusOK, gin.H{"result": nil})
			return
		}
		if err != nil {
			log.Printf("error while calculating trip cost: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
			return
		}

		if in.Mode == models.RouteMode {
			if route, _, ok := ds.MatchRoute(in.From, in.To); ok {
				calculator.WithRoute(result, route)
			}
		}
		calculations.WithLabelValues("ok").Inc()
		c.JSON(http.StatusOK, gin.H{"result": result})
	}
}

func normalizeInput(in *models.TripInput) error {
	mode, err := models.ParseMode(string(in.Mode))
	if err != nil {
		return err
	}
	in.Mode = mode

	vehicle, err := models.ParseVehicleType(string(in.Vehicle))
	if err != nil {
		return err
	}
	in.Vehicle = vehicle

	if in.FuelType != "" {
		ft, err := models.ParseFuelType(string(in.FuelType))
		if err != nil {
			return err
		}
		in.FuelType = ft
	}
	return nil
}

// Compare prices a distance with every fuel type, and the selected fuel
// against a typical electric car on fast charging.
func Compare(prices PriceSource) func(c *gin.Context) {
	return func(c *gin.Context) {
		distance, ok := calculator.ParsePositive(c.Query("distance"))
		if !ok {
			c.JSON(http.StatusOK, gin.H{"result": nil})
			return
		}
		consumption, ok := calculator.ParsePositive(c.Query("consumption"))
		if !ok {
			c.JSON(http.StatusOK, gin.H{"result": nil})
			return
		}

		roundTrip := false
		if rt := c.Query("round_trip"); rt != "" {
			b, err := strconv.ParseBool(rt)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round_trip parameter"})
				return
			}
			roundTrip = b
		}

		fuelType := models.PB95
		if f := c.Query("fuel"); f != "" {
			ft, err := models.ParseFuelType(f)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			fuelType = ft
		}

		snapshot := prices.Current()
		unitPrice := snapshot.Price(fuelType)
		if p, ok := calculator.ParsePositive(c.Query("price")); ok {
			unitPrice = p
		}

		effective := calculator.EffectiveDistance(distance, roundTrip)
		response := gin.H{
			"distance":            effective,
			"fuel_comparison":     calculator.CompareFuels(effective, consumption, snapshot),
			"electric_comparison": calculator.CompareElectric(effective, consumption, unitPrice, fuelType, snapshot),
		}
		c.JSON(http.StatusOK, gin.H{"result": response})
	}
}
