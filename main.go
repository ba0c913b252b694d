package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rm-hull/trip-cost-calculator/cmd"
	"github.com/rm-hull/trip-cost-calculator/internal/config"
)

func main() {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:          "tripcost",
		Short:        "Trip cost calculator and SEO page generator",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")

	var port int
	var debug bool
	apiServerCmd := &cobra.Command{
		Use:   "api-server",
		Short: "Start the HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.ApiServer(cfgFile, port, debug)
		},
	}
	apiServerCmd.Flags().IntVar(&port, "port", 8080, "port to run HTTP server on")
	apiServerCmd.Flags().BoolVar(&debug, "debug", false, "enable pprof endpoints")

	var distDir string
	prerenderCmd := &cobra.Command{
		Use:   "prerender",
		Short: "Write prerendered route and content pages into the build output",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Prerender(cfgFile, distDir)
		},
	}
	prerenderCmd.Flags().StringVar(&distDir, "dist", "", "build output directory (overrides dist_dir)")

	var calc cmd.CalcOptions
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the cost of a trip",
		Example: `  tripcost calc --distance 295 --consumption 7
  tripcost calc --from Warszawa --to Kraków --round-trip --passengers 3`,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Calc(cfgFile, calc, c.OutOrStdout())
		},
	}
	calcCmd.Flags().StringVar(&calc.Distance, "distance", "", "distance in km")
	calcCmd.Flags().StringVar(&calc.From, "from", "", "starting place")
	calcCmd.Flags().StringVar(&calc.To, "to", "", "destination")
	calcCmd.Flags().BoolVar(&calc.RoundTrip, "round-trip", false, "double the distance for the way back")
	calcCmd.Flags().StringVar(&calc.Vehicle, "vehicle", "fuel", "fuel or electric")
	calcCmd.Flags().StringVar(&calc.Fuel, "fuel", "pb95", "pb95, pb98, diesel or lpg")
	calcCmd.Flags().StringVar(&calc.Consumption, "consumption", "", "L/100km (kWh/100km for electric)")
	calcCmd.Flags().StringVar(&calc.Price, "price", "", "price per litre or kWh (defaults to the current snapshot)")
	calcCmd.Flags().StringVar(&calc.Toll, "toll", "", "toll charges in zł")
	calcCmd.Flags().StringVar(&calc.Passengers, "passengers", "", "number of people sharing the cost")
	calcCmd.Flags().StringVar(&calc.CarClass, "car-class", "", "typical consumption for small, compact, sedan, suv or van")
	calcCmd.Flags().BoolVar(&calc.JSON, "json", false, "print the result as JSON")
	calcCmd.MarkFlagsRequiredTogether("from", "to")
	calcCmd.MarkFlagsMutuallyExclusive("distance", "from")

	var pricesFile string
	validateCmd := &cobra.Command{
		Use:   "validate-data",
		Short: "Check the bundled dataset and an optional price snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.ValidateData(pricesFile)
		},
	}
	validateCmd.Flags().StringVar(&pricesFile, "prices", "", "price snapshot file to check")

	rootCmd.AddCommand(apiServerCmd, prerenderCmd, calcCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
