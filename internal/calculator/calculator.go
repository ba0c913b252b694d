package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

// ErrNoResult means the inputs are incomplete or not positive numbers. It
// is not a failure: callers show no cost rather than an error message.
var ErrNoResult = errors.New("no result")

const (
	DefaultElectricConsumption = 18.0 // kWh/100km, typical EV profile
	DefaultAverageSpeed        = 90.0 // km/h, used when no route duration is known
)

func EffectiveDistance(distance float64, roundTrip bool) float64 {
	if roundTrip {
		return distance * 2
	}
	return distance
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Cost is distance/100 × consumption × unitPrice + toll, rounded to grosze.
func Cost(distance, consumption, unitPrice, toll float64) float64 {
	return Round2(distance/100*consumption*unitPrice + toll)
}

// ParsePositive parses free-text numeric input, accepting a comma as the
// decimal separator. Anything that is not a finite number above zero is
// rejected.
func ParsePositive(text string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func SplitPassengers(total float64, passengers int) float64 {
	if passengers < 1 {
		passengers = 1
	}
	return Round2(total / float64(passengers))
}

// Calculate derives the trip cost and the comparison figures from the
// form input. Missing unit prices fall back to the snapshot's price for
// the selected fuel; electric consumption falls back to the typical EV
// profile. ErrNoResult is returned whenever distance, consumption or price
// is absent or not positive.
func Calculate(in models.TripInput, prices models.FuelPrices) (*models.TripResult, error) {
	distance, ok := resolveDistance(in)
	if !ok {
		return nil, ErrNoResult
	}

	fuelType := in.FuelType
	if fuelType == "" {
		fuelType = models.PB95
	}
	vehicle := in.Vehicle
	if vehicle == "" {
		vehicle = models.Combustion
	}

	var consumption, unitPrice float64
	switch vehicle {
	case models.Electric:
		consumption, ok = parseOrDefault(in.Consumption, DefaultElectricConsumption)
		if !ok {
			return nil, ErrNoResult
		}
		unitPrice, ok = parseOrDefault(in.UnitPrice, prices.Electric)
	default:
		consumption, ok = ParsePositive(in.Consumption)
		if !ok {
			return nil, ErrNoResult
		}
		unitPrice, ok = parseOrDefault(in.UnitPrice, prices.Price(fuelType))
	}
	if !ok {
		return nil, ErrNoResult
	}

	tolls, ok := ParsePositive(in.Tolls)
	if !ok {
		tolls = 0
	}

	passengers := 1
	if n, err := strconv.Atoi(strings.TrimSpace(in.Passengers)); err == nil && n > 1 {
		passengers = n
	}

	effective := EffectiveDistance(distance, in.RoundTrip)
	cost := Cost(effective, consumption, unitPrice, tolls)

	result := &models.TripResult{
		Cost:              cost,
		Distance:          distance,
		EffectiveDistance: effective,
		RoundTrip:         in.RoundTrip,
		Vehicle:           vehicle,
		Consumption:       consumption,
		UnitPrice:         unitPrice,
		Tolls:             tolls,
		EnergyAmount:      round1(effective / 100 * consumption),
		Passengers:        passengers,
		CostPerPerson:     SplitPassengers(cost, passengers),
	}

	if in.Mode == models.RouteMode && in.DurationSeconds != nil && *in.DurationSeconds > 0 {
		result.DurationSeconds = EffectiveDistance(*in.DurationSeconds, in.RoundTrip)
	} else {
		result.DurationSeconds = EstimateDurationSeconds(effective, DefaultAverageSpeed)
	}
	result.Duration = FormatDuration(result.DurationSeconds)

	if vehicle == models.Combustion {
		result.FuelType = fuelType
		result.FuelComparison = CompareFuels(effective, consumption, prices)
		result.Electric = CompareElectric(effective, consumption, unitPrice, fuelType, prices)
	}

	return result, nil
}

func resolveDistance(in models.TripInput) (float64, bool) {
	if in.Mode == models.RouteMode {
		if in.RouteDistance == nil || *in.RouteDistance <= 0 {
			return 0, false
		}
		return *in.RouteDistance, true
	}
	return ParsePositive(in.ManualDistance)
}

func parseOrDefault(text string, fallback float64) (float64, bool) {
	if strings.TrimSpace(text) == "" {
		return fallback, fallback > 0
	}
	return ParsePositive(text)
}

// WithRoute attaches a matched dataset route and its per-variant estimates.
func WithRoute(result *models.TripResult, route *models.RouteData) {
	if result == nil || route == nil {
		return
	}
	result.MatchedRoute = route
	result.RouteVariants = EstimateRoute(route)
}
