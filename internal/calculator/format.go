package calculator

import (
	"fmt"
	"math"
	"strings"
)

// FormatDuration renders seconds as Polish hours and minutes, e.g.
// "3 godz. 25 min". Non-positive input yields an empty string.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return ""
	}

	totalMinutes := int(math.Round(seconds / 60))
	h, m := totalMinutes/60, totalMinutes%60

	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d godz.", h)
	default:
		return fmt.Sprintf("%d godz. %d min", h, m)
	}
}

// EstimateDurationSeconds assumes a constant average speed with no stops.
func EstimateDurationSeconds(distanceKm, speedKmh float64) float64 {
	if distanceKm <= 0 || speedKmh <= 0 || math.IsInf(distanceKm, 0) || math.IsInf(speedKmh, 0) {
		return 0
	}
	return distanceKm / speedKmh * 3600
}

// FormatMoney renders an amount in złoty with two decimals and a decimal
// comma, e.g. "121,63 zł".
func FormatMoney(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f zł", v), ".", ",", 1)
}

// FormatApprox renders a rounded estimate, e.g. "~122 zł".
func FormatApprox(v float64) string {
	return fmt.Sprintf("~%.0f zł", v)
}

func FormatKm(v float64) string {
	return strings.Replace(strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0"), ".", ",", 1) + " km"
}
