package models

import (
	"fmt"
	"strconv"
)

// VehicleClass is a typical consumption figure for a class of car, offered
// when the driver does not know their own figure.
type VehicleClass struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Consumption float64 `json:"consumption"`
	Description string  `json:"description"`
}

func VehicleClassFromCSV(record, headers []string) (*VehicleClass, error) {
	if len(record) != 4 {
		return nil, fmt.Errorf("expected 4 fields, got %d", len(record))
	}
	consumption, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid consumption %q for %s: %w", record[2], record[0], err)
	}
	return &VehicleClass{
		Key:         record[0],
		Label:       record[1],
		Consumption: consumption,
		Description: record[3],
	}, nil
}
