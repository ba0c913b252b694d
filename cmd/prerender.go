package cmd

import (
	"log"

	"github.com/rm-hull/trip-cost-calculator/internal/prerender"
	"github.com/rm-hull/trip-cost-calculator/internal/progress"
)

// Prerender bakes the SEO pages into the frontend build output. distDir
// overrides the configured directory when set.
func Prerender(cfgPath, distDir string) error {

	cfg, ds, book, err := bootstrap(cfgPath)
	if err != nil {
		return err
	}
	if distDir != "" {
		cfg.DistDir = distDir
	}

	generator := prerender.NewGenerator(cfg.DistDir, cfg.BaseURL, cfg.PageRoot, ds, book.Current())
	generator.Reporter = progress.NewReporter()

	count, err := generator.Generate()
	if err != nil {
		return err
	}
	log.Printf("prerendered %d pages", count)
	return nil
}
