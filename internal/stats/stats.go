package stats

import (
	"fmt"
	"math"

	"github.com/rm-hull/trip-cost-calculator/internal/calculator"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

// Derive prices the primary variant of every route with each fuel type, at
// the route's default consumption adjusted per fuel, and summarises the
// spread. Costs are bucketed in bucketSize złoty bands.
func Derive(routes []models.RouteData, prices models.FuelPrices, bucketSize int) *models.RouteStatistics {
	if bucketSize <= 0 {
		bucketSize = 50
	}
	stats := &models.RouteStatistics{
		CheapestRoutes:    make(map[models.FuelType][]string),
		LowestCost:        make(map[models.FuelType]float64),
		AverageCost:       make(map[models.FuelType]float64),
		HighestCost:       make(map[models.FuelType]float64),
		CostDistribution:  make(map[models.FuelType]map[string]int),
		StandardDeviation: make(map[models.FuelType]float64),
		TollDistribution:  make(map[string]int),
	}

	fuelTypeCosts := make(map[models.FuelType][]float64)
	fuelTypeRoutes := make(map[models.FuelType]map[float64][]string) // cost -> slugs

	for i := range routes {
		route := &routes[i]
		if len(route.Variants) == 0 {
			continue
		}
		primary := route.Primary()
		tolls := calculator.TollCost(route, primary)

		for _, ft := range models.FuelTypes {
			consumption := calculator.AdjustedConsumption(route.DefaultConsumption, ft)
			cost := calculator.Cost(primary.Distance, consumption, prices.Price(ft), tolls)
			fuelTypeCosts[ft] = append(fuelTypeCosts[ft], cost)

			if fuelTypeRoutes[ft] == nil {
				fuelTypeRoutes[ft] = make(map[float64][]string)
			}
			fuelTypeRoutes[ft][cost] = append(fuelTypeRoutes[ft][cost], route.Slug)
		}
	}

	for fuelType, costs := range fuelTypeCosts {
		lowest := costs[0]
		highest := costs[0]
		sum := 0.0

		for _, c := range costs {
			if c < lowest {
				lowest = c
			}
			if c > highest {
				highest = c
			}
			sum += c
		}
		stats.LowestCost[fuelType] = lowest
		stats.HighestCost[fuelType] = highest
		stats.CheapestRoutes[fuelType] = fuelTypeRoutes[fuelType][lowest]

		avg := sum / float64(len(costs))
		stats.AverageCost[fuelType] = calculator.Round2(avg)

		if len(costs) > 1 {
			variance := 0.0
			for _, c := range costs {
				variance += math.Pow(c-avg, 2)
			}
			variance /= float64(len(costs))
			stats.StandardDeviation[fuelType] = calculator.Round2(math.Sqrt(variance))
		}

		stats.CostDistribution[fuelType] = make(map[string]int)
		for _, c := range costs {
			bucketStart := (int(c) / bucketSize) * bucketSize
			bucketEnd := bucketStart + bucketSize - 1
			stats.CostDistribution[fuelType][fmt.Sprintf("%d-%d", bucketStart, bucketEnd)]++
		}
	}

	for _, route := range routes {
		if route.HasTolls {
			stats.TollDistribution["tolled"]++
		} else {
			stats.TollDistribution["toll_free"]++
		}
	}

	return stats
}
