package calculator

import (
	"math"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

// Consumption relative to petrol for the same car. LPG burns more by
// volume, diesel a little less.
var consumptionMultipliers = map[models.FuelType]float64{
	models.PB95:   1.00,
	models.PB98:   1.00,
	models.Diesel: 0.95,
	models.LPG:    1.20,
}

func multiplier(ft models.FuelType) float64 {
	if m, ok := consumptionMultipliers[ft]; ok {
		return m
	}
	return 1
}

func AdjustedConsumption(base float64, ft models.FuelType) float64 {
	return Round2(base * multiplier(ft))
}

// CompareFuels prices the distance with every fuel type, each at its own
// adjusted consumption and snapshot price. The cheapest fuel is chosen on
// unrounded costs so that display rounding cannot produce false ties.
func CompareFuels(distance, baseConsumption float64, prices models.FuelPrices) *models.FuelComparison {
	comparison := &models.FuelComparison{
		Costs: make([]models.FuelCost, 0, len(models.FuelTypes)),
	}

	lowest := math.Inf(1)
	for _, ft := range models.FuelTypes {
		consumption := AdjustedConsumption(baseConsumption, ft)
		price := prices.Price(ft)
		cost := Cost(distance, consumption, price, 0)
		exact := distance / 100 * baseConsumption * multiplier(ft) * price

		comparison.Costs = append(comparison.Costs, models.FuelCost{
			FuelType:    ft,
			Consumption: consumption,
			Price:       price,
			Cost:        cost,
		})
		if exact < lowest {
			lowest = exact
			comparison.Cheapest = ft
		}
		comparison.Highest = math.Max(comparison.Highest, cost)
	}
	return comparison
}

// CompareElectric sets the selected fuel against a typical EV charged at
// the fast-charging price.
func CompareElectric(distance, consumption, price float64, ft models.FuelType, prices models.FuelPrices) *models.ElectricComparison {
	fuelCost := Cost(distance, consumption, price, 0)
	evPrice := prices.FastChargingPrice()
	evCost := Cost(distance, DefaultElectricConsumption, evPrice, 0)

	diff := fuelCost - evCost
	cheaper := models.Combustion
	if diff > 0 {
		cheaper = models.Electric
	}

	percent := 0
	if fuelCost > 0 {
		percent = int(math.Round(math.Abs(diff) / math.Max(fuelCost, evCost) * 100))
	}

	return &models.ElectricComparison{
		FuelType:            ft,
		FuelCost:            fuelCost,
		ElectricCost:        evCost,
		ElectricConsumption: DefaultElectricConsumption,
		ElectricPrice:       evPrice,
		Difference:          Round2(math.Abs(diff)),
		Percent:             percent,
		Cheaper:             cheaper,
	}
}
