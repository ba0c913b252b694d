package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Depado/ginprom"
	"github.com/aurowora/compress"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"

	"github.com/rm-hull/trip-cost-calculator/internal/geo"
	"github.com/rm-hull/trip-cost-calculator/internal/prices"
	"github.com/rm-hull/trip-cost-calculator/internal/routes"
)

func ApiServer(cfgPath string, port int, debug bool) error {

	cfg, ds, book, err := bootstrap(cfgPath)
	if err != nil {
		return err
	}

	if cfg.PricesFile != "" {
		c, err := prices.StartCron(book, cfg.PricesFile)
		if err != nil {
			return fmt.Errorf("failed to start CRON jobs: %w", err)
		}
		defer c.Stop()
	}

	opts := cfg.GeoOptions()
	geocoder := geo.NewCachedGeocoder(geo.NewNominatimClient(opts), cfg.LookupCacheTTL)
	router := geo.NewCachedRouter(geo.NewRouter(opts), cfg.LookupCacheTTL)

	r := gin.New()

	prometheus := ginprom.New(
		ginprom.Engine(r),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		prometheus.Instrument(),
		compress.Compress(),
		cors.Default(),
	)

	if debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	err = healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{
		book.Check(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize healthcheck: %v", err)
	}

	routes.Register(r, routes.Deps{
		Dataset:     ds,
		Prices:      book,
		Geocoder:    geocoder,
		Router:      router,
		SearchLimit: cfg.SearchLimit,
	})

	if info, err := os.Stat(cfg.DistDir); err == nil && info.IsDir() {
		log.Printf("Serving site from %s", cfg.DistDir)
		r.NoRoute(routes.Static(cfg.DistDir))
	} else {
		log.Printf("No build output at %s, serving the API only", cfg.DistDir)
	}

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting HTTP API Server on port %d...", port)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP API Server failed to start on port %d: %v", port, err)
	}

	return nil
}
