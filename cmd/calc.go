package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/rm-hull/trip-cost-calculator/internal/calculator"
	"github.com/rm-hull/trip-cost-calculator/internal/config"
	"github.com/rm-hull/trip-cost-calculator/internal/dataset"
	"github.com/rm-hull/trip-cost-calculator/internal/geo"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CalcOptions struct {
	Distance    string
	From        string
	To          string
	RoundTrip   bool
	Vehicle     string
	Fuel        string
	Consumption string
	Price       string
	Toll        string
	Passengers  string
	CarClass    string
	JSON        bool
}

func Calc(cfgPath string, opts CalcOptions, out io.Writer) error {

	cfg, ds, book, err := bootstrap(cfgPath)
	if err != nil {
		return err
	}

	in, err := buildInput(opts, ds)
	if err != nil {
		return err
	}

	if opts.From != "" || opts.To != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.HTTPTimeout)
		defer cancel()
		resolveTrip(ctx, cfg, ds, opts.From, opts.To, &in)
	}

	result, err := calculator.Calculate(in, book.Current())
	if errors.Is(err, calculator.ErrNoResult) {
		_, err := fmt.Fprintln(out, "no result")
		return err
	}
	if err != nil {
		return err
	}
	if in.Mode == models.RouteMode {
		if route, _, ok := ds.MatchRoute(in.From, in.To); ok {
			calculator.WithRoute(result, route)
		}
	}

	if opts.JSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return printResult(out, result)
}

func buildInput(opts CalcOptions, ds *dataset.Dataset) (models.TripInput, error) {
	vehicle, err := models.ParseVehicleType(opts.Vehicle)
	if err != nil {
		return models.TripInput{}, err
	}
	in := models.TripInput{
		Mode:           models.ManualMode,
		ManualDistance: opts.Distance,
		RoundTrip:      opts.RoundTrip,
		Vehicle:        vehicle,
		Consumption:    opts.Consumption,
		UnitPrice:      opts.Price,
		Tolls:          opts.Toll,
		Passengers:     opts.Passengers,
	}
	if opts.Fuel != "" {
		ft, err := models.ParseFuelType(opts.Fuel)
		if err != nil {
			return models.TripInput{}, err
		}
		in.FuelType = ft
	}

	if opts.CarClass != "" {
		vc, ok := ds.VehicleClass(opts.CarClass)
		if !ok {
			keys := make([]string, 0, len(ds.VehicleClasses))
			for _, c := range ds.VehicleClasses {
				keys = append(keys, c.Key)
			}
			return models.TripInput{}, fmt.Errorf("unknown car class %q: must be one of %s", opts.CarClass, strings.Join(keys, ", "))
		}
		if strings.TrimSpace(in.Consumption) == "" && vehicle == models.Combustion {
			in.Consumption = strconv.FormatFloat(vc.Consumption, 'f', -1, 64)
		}
	}
	return in, nil
}

// resolveTrip geocodes both endpoints and looks up the driving distance.
// When the services cannot help, a matching bundled route supplies the
// distance instead.
func resolveTrip(ctx context.Context, cfg *config.Config, ds *dataset.Dataset, from, to string, in *models.TripInput) {
	geoOpts := cfg.GeoOptions()
	trip := geo.NewTrip(geo.NewNominatimClient(geoOpts), geo.NewRouter(geoOpts), cfg.SearchLimit)
	trip.From.Type(from)
	trip.To.Type(to)

	if trip.From.Blur(ctx) && trip.To.Blur(ctx) {
		trip.Resolve(ctx)
	}
	trip.Fill(in)
	in.From, in.To = from, to

	if in.RouteDistance != nil {
		return
	}
	if route, _, ok := ds.MatchRoute(from, to); ok {
		log.Printf("using bundled distance for %s", route.Slug)
		distance := route.Distance
		in.RouteDistance = &distance
	}
}

func printResult(out io.Writer, r *models.TripResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Dystans:         %s", calculator.FormatKm(r.EffectiveDistance))
	if r.RoundTrip {
		b.WriteString(" (w obie strony)")
	}
	b.WriteString("\n")
	if r.Duration != "" {
		fmt.Fprintf(&b, "Czas przejazdu:  %s\n", r.Duration)
	}

	unit := "L"
	if r.Vehicle == models.Electric {
		unit = "kWh"
	}
	fmt.Fprintf(&b, "Zużycie:         %.1f %s\n", r.EnergyAmount, unit)
	if r.Tolls > 0 {
		fmt.Fprintf(&b, "Opłaty drogowe:  %s\n", calculator.FormatMoney(r.Tolls))
	}
	fmt.Fprintf(&b, "Koszt:           %s\n", calculator.FormatMoney(r.Cost))
	if r.Passengers > 1 {
		fmt.Fprintf(&b, "Na osobę (%d):    %s\n", r.Passengers, calculator.FormatMoney(r.CostPerPerson))
	}

	if r.FuelComparison != nil {
		b.WriteString("\nPorównanie paliw:\n")
		for _, fc := range r.FuelComparison.Costs {
			marker := ""
			if fc.FuelType == r.FuelComparison.Cheapest {
				marker = "  najtaniej"
			}
			fmt.Fprintf(&b, "  %-7s %5.2f L/100km  %s%s\n", fc.FuelType.Label(), fc.Consumption, calculator.FormatMoney(fc.Cost), marker)
		}
	}

	if e := r.Electric; e != nil {
		who := "auto spalinowe"
		if e.Cheaper == models.Electric {
			who = "auto elektryczne"
		}
		fmt.Fprintf(&b, "\nElektryk (%.0f kWh/100km): %s, taniej: %s o %s (%d%%)\n",
			e.ElectricConsumption, calculator.FormatMoney(e.ElectricCost), who, calculator.FormatMoney(e.Difference), e.Percent)
	}

	if r.MatchedRoute != nil {
		fmt.Fprintf(&b, "\nZnana trasa %s → %s:\n", r.MatchedRoute.From, r.MatchedRoute.To)
		for _, v := range r.RouteVariants {
			fmt.Fprintf(&b, "  %s: %s, %s\n", v.Variant.Name, calculator.FormatKm(v.Variant.Distance), calculator.FormatMoney(v.Total))
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}
