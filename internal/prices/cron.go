package prices

import (
	"log"

	"github.com/robfig/cron/v3"
)

const CRON_SCHEDULE_PRICES = "10 */1 * * *" // Every hour

// StartCron periodically reloads the price snapshot file. A failed reload
// is logged and the previous snapshot stays in place.
func StartCron(book *PriceBook, path string) (*cron.Cron, error) {
	c := cron.New()

	log.Printf("Starting CRON job to reload fuel prices from %s", describe(path))

	if _, err := c.AddFunc(CRON_SCHEDULE_PRICES, func() {
		if err := book.Reload(path); err != nil {
			log.Printf("Error reloading fuel prices: %v\n", err)
		}
	}); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
