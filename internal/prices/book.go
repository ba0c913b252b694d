package prices

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/rm-hull/trip-cost-calculator/internal/dataset"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
	"github.com/tavsec/gin-healthcheck/checks"
)

// MaxAge is how old a snapshot read from a prices file may get before the
// health check fails. The bundled snapshot is never considered stale.
const MaxAge = 30 * 24 * time.Hour

// PriceBook holds the current price snapshot. Readers get an immutable copy;
// Update is the only way to replace it.
type PriceBook struct {
	mu       sync.RWMutex
	current  models.FuelPrices
	loadedAt time.Time
	external bool
	now      func() time.Time
}

func NewPriceBook(initial models.FuelPrices) (*PriceBook, error) {
	book := &PriceBook{now: time.Now}
	if err := book.Update(initial); err != nil {
		return nil, err
	}
	return book, nil
}

func (b *PriceBook) Current() models.FuelPrices {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

func (b *PriceBook) Update(prices models.FuelPrices) error {
	b.mu.RLock()
	external := b.external
	b.mu.RUnlock()
	return b.apply(prices, external)
}

func (b *PriceBook) apply(prices models.FuelPrices, external bool) error {
	if err := prices.Validate(); err != nil {
		return fmt.Errorf("rejected price snapshot: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = prices
	b.loadedAt = b.now()
	b.external = external
	return nil
}

// Reload reads a snapshot file and applies it. An empty path restores the
// bundled snapshot.
func (b *PriceBook) Reload(path string) error {
	prices, err := dataset.LoadPrices(path)
	if err != nil {
		return err
	}
	if err := b.apply(*prices, path != ""); err != nil {
		return err
	}
	log.Printf("Loaded fuel prices from %s (last updated %s)", describe(path), prices.LastUpdated)
	return nil
}

func describe(path string) string {
	if path == "" {
		return "bundled snapshot"
	}
	return path
}

type priceCheck struct {
	book *PriceBook
}

func (c priceCheck) Name() string {
	return "fuel-prices"
}

// Pass fails once a snapshot loaded from a prices file is dated more than
// MaxAge ago. Undated and bundled snapshots always pass.
func (c priceCheck) Pass() bool {
	c.book.mu.RLock()
	prices, external := c.book.current, c.book.external
	c.book.mu.RUnlock()

	if !external || prices.LastUpdated.IsZero() {
		return true
	}
	return c.book.now().Sub(prices.LastUpdated.Time) <= MaxAge
}

func (b *PriceBook) Check() checks.Check {
	return priceCheck{book: b}
}
