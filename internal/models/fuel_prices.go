package models

import (
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type FuelType string

const (
	PB95   FuelType = "pb95"
	PB98   FuelType = "pb98"
	Diesel FuelType = "diesel"
	LPG    FuelType = "lpg"
)

// FuelTypes lists every fuel type in display order.
var FuelTypes = []FuelType{PB95, PB98, Diesel, LPG}

var fuelLabels = map[FuelType]string{
	PB95:   "Pb95",
	PB98:   "Pb98",
	Diesel: "Diesel",
	LPG:    "LPG",
}

func (ft FuelType) Label() string {
	if label, ok := fuelLabels[ft]; ok {
		return label
	}
	return "Paliwo"
}

func ParseFuelType(s string) (FuelType, error) {
	ft := FuelType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := fuelLabels[ft]; !ok {
		return "", fmt.Errorf("unknown fuel type %q: must be one of pb95, pb98, diesel, lpg", s)
	}
	return ft, nil
}

type VehicleType string

const (
	Combustion VehicleType = "fuel"
	Electric   VehicleType = "electric"
)

func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(strings.ToLower(strings.TrimSpace(s))) {
	case Combustion, "":
		return Combustion, nil
	case Electric:
		return Electric, nil
	default:
		return "", fmt.Errorf("unknown vehicle type %q: must be fuel or electric", s)
	}
}

// FuelPrices is an immutable snapshot of unit prices, in zł per litre
// (or per kWh for the electric fields).
type FuelPrices struct {
	PB95        float64 `json:"pb95" yaml:"pb95"`
	PB98        float64 `json:"pb98" yaml:"pb98"`
	Diesel      float64 `json:"diesel" yaml:"diesel"`
	LPG         float64 `json:"lpg" yaml:"lpg"`
	Electric    float64 `json:"electric" yaml:"electric"`
	ElectricDC  float64 `json:"electric_dc,omitempty" yaml:"electric_dc"`
	LastUpdated Date    `json:"last_updated" yaml:"last_updated"`
	Source      string  `json:"source" yaml:"source"`
}

func (fp FuelPrices) Price(ft FuelType) float64 {
	switch ft {
	case PB95:
		return fp.PB95
	case PB98:
		return fp.PB98
	case Diesel:
		return fp.Diesel
	case LPG:
		return fp.LPG
	default:
		return 0
	}
}

// FastChargingPrice returns the DC price, falling back to the home
// charging price when the snapshot carries no separate DC figure.
func (fp FuelPrices) FastChargingPrice() float64 {
	if fp.ElectricDC > 0 {
		return fp.ElectricDC
	}
	return fp.Electric
}

func (fp FuelPrices) Validate() error {
	for _, ft := range FuelTypes {
		if fp.Price(ft) <= 0 {
			return fmt.Errorf("price for %s must be positive, got %v", ft, fp.Price(ft))
		}
	}
	if fp.Electric <= 0 {
		return fmt.Errorf("electric price must be positive, got %v", fp.Electric)
	}
	if fp.ElectricDC < 0 {
		return fmt.Errorf("electric DC price must not be negative, got %v", fp.ElectricDC)
	}
	return nil
}

// Date is a calendar day, serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
