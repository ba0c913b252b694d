package models

import (
	"fmt"
	"strings"
)

type Mode string

const (
	RouteMode  Mode = "route"
	ManualMode Mode = "manual"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case RouteMode:
		return RouteMode, nil
	case ManualMode, "":
		return ManualMode, nil
	default:
		return "", fmt.Errorf("unknown mode %q: must be route or manual", s)
	}
}

// TripInput mirrors the calculator form. Numeric fields that come from free
// text entry are kept as strings so that unparseable input can be told
// apart from zero.
type TripInput struct {
	Mode            Mode        `json:"mode"`
	From            string      `json:"from,omitempty"`
	To              string      `json:"to,omitempty"`
	ManualDistance  string      `json:"manual_distance,omitempty"`
	RouteDistance   *float64    `json:"route_distance,omitempty"`
	DurationSeconds *float64    `json:"duration_seconds,omitempty"`
	RoundTrip       bool        `json:"round_trip"`
	Vehicle         VehicleType `json:"vehicle"`
	FuelType        FuelType    `json:"fuel_type"`
	Consumption     string      `json:"consumption"`
	UnitPrice       string      `json:"unit_price"`
	Tolls           string      `json:"tolls,omitempty"`
	Passengers      string      `json:"passengers,omitempty"`
}

type TripResult struct {
	Cost              float64             `json:"cost"`
	Distance          float64             `json:"distance"`
	EffectiveDistance float64             `json:"effective_distance"`
	RoundTrip         bool                `json:"round_trip"`
	Vehicle           VehicleType         `json:"vehicle"`
	FuelType          FuelType            `json:"fuel_type,omitempty"`
	Consumption       float64             `json:"consumption"`
	UnitPrice         float64             `json:"unit_price"`
	Tolls             float64             `json:"tolls"`
	EnergyAmount      float64             `json:"energy_amount"`
	DurationSeconds   float64             `json:"duration_seconds,omitempty"`
	Duration          string              `json:"duration,omitempty"`
	Passengers        int                 `json:"passengers"`
	CostPerPerson     float64             `json:"cost_per_person"`
	FuelComparison    *FuelComparison     `json:"fuel_comparison,omitempty"`
	Electric          *ElectricComparison `json:"electric_comparison,omitempty"`
	MatchedRoute      *RouteData          `json:"matched_route,omitempty"`
	RouteVariants     []VariantEstimate   `json:"route_variants,omitempty"`
}

type FuelCost struct {
	FuelType    FuelType `json:"fuel_type"`
	Consumption float64  `json:"consumption"`
	Price       float64  `json:"price"`
	Cost        float64  `json:"cost"`
}

type FuelComparison struct {
	Costs    []FuelCost `json:"costs"`
	Cheapest FuelType   `json:"cheapest"`
	Highest  float64    `json:"highest"`
}

type ElectricComparison struct {
	FuelType            FuelType    `json:"fuel_type"`
	FuelCost            float64     `json:"fuel_cost"`
	ElectricCost        float64     `json:"electric_cost"`
	ElectricConsumption float64     `json:"electric_consumption"`
	ElectricPrice       float64     `json:"electric_price"`
	Difference          float64     `json:"difference"`
	Percent             int         `json:"percent"`
	Cheaper             VehicleType `json:"cheaper"`
}
