package calculator

import "github.com/rm-hull/trip-cost-calculator/internal/models"

// TollCost sums the toll sections a variant passes through.
func TollCost(route *models.RouteData, variant models.RouteVariant) float64 {
	if !route.HasTolls {
		return 0
	}
	total := 0.0
	for _, idx := range variant.TollIndices {
		if idx >= 0 && idx < len(route.TollSections) {
			total += route.TollSections[idx].Cost
		}
	}
	return total
}

// EstimateVariant prices variant i at the route's default consumption and
// fuel price.
func EstimateVariant(route *models.RouteData, i int) models.VariantEstimate {
	variant := route.Variants[i]
	fuelCost := Cost(variant.Distance, route.DefaultConsumption, route.DefaultFuelPrice, 0)
	tollCost := TollCost(route, variant)
	return models.VariantEstimate{
		Variant:  variant,
		FuelCost: fuelCost,
		TollCost: tollCost,
		Total:    Round2(fuelCost + tollCost),
	}
}

func EstimateRoute(route *models.RouteData) []models.VariantEstimate {
	estimates := make([]models.VariantEstimate, len(route.Variants))
	for i := range route.Variants {
		estimates[i] = EstimateVariant(route, i)
	}
	return estimates
}
