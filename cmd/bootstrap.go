package cmd

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/godx"

	"github.com/rm-hull/trip-cost-calculator/internal/config"
	"github.com/rm-hull/trip-cost-calculator/internal/dataset"
	"github.com/rm-hull/trip-cost-calculator/internal/prices"
)

// bootstrap initialises the resources shared by every command: the
// configuration, the bundled dataset and the price book, seeded from the
// external snapshot when one is configured.
func bootstrap(cfgPath string) (*config.Config, *dataset.Dataset, *prices.PriceBook, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	godx.GitVersion()
	godx.EnvironmentVars()
	godx.UserInfo()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ds, err := dataset.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	book, err := prices.NewPriceBook(ds.Prices)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialise price book: %w", err)
	}
	if cfg.PricesFile != "" {
		if err := book.Reload(cfg.PricesFile); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load price snapshot: %w", err)
		}
	}

	return cfg, ds, book, nil
}
