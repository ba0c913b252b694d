package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

func TestDerive(t *testing.T) {
	routes := []models.RouteData{
		{
			Slug:               "a-b",
			Distance:           100,
			DefaultConsumption: 10,
			Variants:           []models.RouteVariant{{Name: "A", Distance: 100}},
		},
		{
			Slug:               "c-d",
			Distance:           200,
			DefaultConsumption: 10,
			HasTolls:           true,
			Variants:           []models.RouteVariant{{Name: "C", Distance: 200, TollIndices: []int{0}}},
			TollSections:       []models.TollSection{{Name: "A2", Cost: 20}},
		},
	}
	prices := models.FuelPrices{PB95: 5, PB98: 6, Diesel: 5, LPG: 2.5, Electric: 1}

	stats := Derive(routes, prices, 50)

	assert.Equal(t, 50.0, stats.LowestCost[models.PB95])
	assert.Equal(t, 120.0, stats.HighestCost[models.PB95])
	assert.Equal(t, 85.0, stats.AverageCost[models.PB95])
	assert.Equal(t, 35.0, stats.StandardDeviation[models.PB95])
	assert.Equal(t, []string{"a-b"}, stats.CheapestRoutes[models.PB95])
	assert.Equal(t, map[string]int{"50-99": 1, "100-149": 1}, stats.CostDistribution[models.PB95])

	assert.Equal(t, 30.0, stats.LowestCost[models.LPG])
	assert.Equal(t, 80.0, stats.HighestCost[models.LPG])
	assert.Equal(t, 55.0, stats.AverageCost[models.LPG])

	assert.Equal(t, map[string]int{"tolled": 1, "toll_free": 1}, stats.TollDistribution)
}

func TestDeriveSingleRouteHasNoDeviation(t *testing.T) {
	routes := []models.RouteData{{
		Slug:               "a-b",
		DefaultConsumption: 7,
		Variants:           []models.RouteVariant{{Distance: 295}},
	}}
	prices := models.FuelPrices{PB95: 5.89, PB98: 6.59, Diesel: 6.17, LPG: 2.69, Electric: 0.65}

	stats := Derive(routes, prices, 0)

	assert.Equal(t, 121.63, stats.LowestCost[models.PB95])
	_, ok := stats.StandardDeviation[models.PB95]
	assert.False(t, ok)
	assert.Equal(t, map[string]int{"100-149": 1}, stats.CostDistribution[models.PB95])
}

func TestDeriveEmpty(t *testing.T) {
	stats := Derive(nil, models.FuelPrices{}, 50)
	assert.Empty(t, stats.LowestCost)
	assert.Empty(t, stats.TollDistribution)
}
