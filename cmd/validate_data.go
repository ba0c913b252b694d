package cmd

import (
	"fmt"
	"log"

	"github.com/rm-hull/trip-cost-calculator/internal/dataset"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

// ValidateData checks the bundled dataset and, when given, an external
// price snapshot, without starting anything.
func ValidateData(pricesPath string) error {

	ds, err := dataset.Load()
	if err != nil {
		return err
	}
	log.Printf("dataset ok: %d routes, %d FAQ entries, %d vehicle classes",
		len(ds.Routes), len(ds.FAQ), len(ds.VehicleClasses))

	tolled := 0
	for _, route := range ds.Routes {
		if route.HasTolls {
			tolled++
		}
	}
	log.Printf("%d routes have toll sections", tolled)

	if pricesPath == "" {
		return nil
	}
	snapshot, err := dataset.LoadPrices(pricesPath)
	if err != nil {
		return fmt.Errorf("price snapshot %s: %w", pricesPath, err)
	}
	log.Printf("price snapshot ok: %s dated %s (%s %.2f zł)", pricesPath, snapshot.LastUpdated, models.PB95.Label(), snapshot.PB95)
	return nil
}
