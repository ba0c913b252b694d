package dataset

import (
	"bytes"
	_ "embed"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/rm-hull/trip-cost-calculator/internal"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

//go:embed data/routes.yaml
var routesYAML []byte

//go:embed data/faq.yaml
var faqYAML []byte

//go:embed data/fuel_prices.yaml
var pricesYAML []byte

//go:embed data/vehicle_classes.csv
var vehicleClassesCSV string

const ATTRIBUTION = "Dane tras: © OpenStreetMap contributors"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Dataset is the single read-only source of routes, FAQ entries, the
// bundled price snapshot and vehicle classes. Both the calculator and the
// page generator read from it.
type Dataset struct {
	Routes         []models.RouteData
	FAQ            []models.FAQItem
	Prices         models.FuelPrices
	VehicleClasses []*models.VehicleClass

	bySlug map[string]*models.RouteData
}

func Load() (*Dataset, error) {
	var routes []models.RouteData
	if err := decodeYAML(routesYAML, &routes); err != nil {
		return nil, errors.Wrap(err, "failed to parse routes")
	}
	if err := Validate(routes); err != nil {
		return nil, errors.Wrap(err, "invalid route data")
	}

	var faq []models.FAQItem
	if err := decodeYAML(faqYAML, &faq); err != nil {
		return nil, errors.Wrap(err, "failed to parse FAQ")
	}
	for i, item := range faq {
		if strings.TrimSpace(item.Question) == "" || strings.TrimSpace(item.Answer) == "" {
			return nil, errors.Newf("FAQ entry %d is missing a question or answer", i)
		}
	}

	prices, err := parsePrices(pricesYAML)
	if err != nil {
		return nil, errors.Wrap(err, "invalid bundled fuel prices")
	}

	classes, err := VehicleClasses()
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		Routes:         routes,
		FAQ:            faq,
		Prices:         *prices,
		VehicleClasses: classes,
		bySlug:         make(map[string]*models.RouteData, len(routes)),
	}
	for i := range ds.Routes {
		ds.bySlug[ds.Routes[i].Slug] = &ds.Routes[i]
	}
	return ds, nil
}

// LoadPrices reads a price snapshot from a YAML file. An empty path returns
// the bundled snapshot.
func LoadPrices(path string) (*models.FuelPrices, error) {
	if path == "" {
		return parsePrices(pricesYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read prices file %s", path)
	}
	prices, err := parsePrices(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid prices file %s", path)
	}
	return prices, nil
}

func parsePrices(data []byte) (*models.FuelPrices, error) {
	var prices models.FuelPrices
	if err := decodeYAML(data, &prices); err != nil {
		return nil, err
	}
	if err := prices.Validate(); err != nil {
		return nil, err
	}
	return &prices, nil
}

func decodeYAML(data []byte, out any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	return decoder.Decode(out)
}

// Validate checks the structural invariants of the route table.
func Validate(routes []models.RouteData) error {
	if len(routes) == 0 {
		return errors.New("no routes defined")
	}

	seen := make(map[string]bool, len(routes))
	for i := range routes {
		route := &routes[i]
		if !slugPattern.MatchString(route.Slug) {
			return errors.Newf("route %d: slug %q is not URL-safe", i, route.Slug)
		}
		if seen[route.Slug] {
			return errors.Newf("duplicate slug detected: %s", route.Slug)
		}
		seen[route.Slug] = true

		if err := validateRoute(route); err != nil {
			return errors.Wrapf(err, "route %s", route.Slug)
		}
	}
	return nil
}

func validateRoute(route *models.RouteData) error {
	if strings.TrimSpace(route.From) == "" || strings.TrimSpace(route.To) == "" {
		return errors.New("from and to are required")
	}
	if route.DefaultConsumption <= 0 {
		return errors.Newf("default consumption must be positive, got %v", route.DefaultConsumption)
	}
	if route.DefaultFuelPrice <= 0 {
		return errors.Newf("default fuel price must be positive, got %v", route.DefaultFuelPrice)
	}
	if len(route.Variants) == 0 {
		return errors.New("at least one variant is required")
	}
	if route.Distance != route.Primary().Distance {
		return errors.Newf("distance %v does not match primary variant distance %v", route.Distance, route.Primary().Distance)
	}
	if route.HasTolls != (len(route.TollSections) > 0) {
		return errors.Newf("has_tolls is %t but %d toll sections are listed", route.HasTolls, len(route.TollSections))
	}
	for _, toll := range route.TollSections {
		if toll.Cost < 0 {
			return errors.Newf("toll %q has negative cost %v", toll.Name, toll.Cost)
		}
	}
	for _, variant := range route.Variants {
		if variant.Distance <= 0 {
			return errors.Newf("variant %q: distance must be positive, got %v", variant.Name, variant.Distance)
		}
		for _, idx := range variant.TollIndices {
			if idx < 0 || idx >= len(route.TollSections) {
				return errors.Newf("variant %q: toll index %d out of range [0, %d)", variant.Name, idx, len(route.TollSections))
			}
		}
	}
	return nil
}

func (ds *Dataset) RouteBySlug(slug string) (*models.RouteData, bool) {
	route, ok := ds.bySlug[slug]
	return route, ok
}

// MatchRoute finds a route whose endpoints match the given place names,
// ignoring case and diacritics and accepting either name containing the
// other. A route listed in the opposite direction also matches; the
// second return value reports that.
func (ds *Dataset) MatchRoute(from, to string) (route *models.RouteData, reversed bool, ok bool) {
	f, t := normalize(from), normalize(to)
	if f == "" || t == "" {
		return nil, false, false
	}

	for i := range ds.Routes {
		r := &ds.Routes[i]
		if placeMatches(f, normalize(r.From)) && placeMatches(t, normalize(r.To)) {
			return r, false, true
		}
	}
	for i := range ds.Routes {
		r := &ds.Routes[i]
		if placeMatches(f, normalize(r.To)) && placeMatches(t, normalize(r.From)) {
			return r, true, true
		}
	}
	return nil, false, false
}

// RelatedRoutes returns up to limit routes other than the one named by slug,
// in dataset order.
func (ds *Dataset) RelatedRoutes(slug string, limit int) []models.RouteData {
	related := make([]models.RouteData, 0, limit)
	for _, route := range ds.Routes {
		if len(related) >= limit {
			break
		}
		if route.Slug != slug {
			related = append(related, route)
		}
	}
	return related
}

func (ds *Dataset) VehicleClass(key string) (*models.VehicleClass, bool) {
	for _, vc := range ds.VehicleClasses {
		if vc.Key == key {
			return vc, true
		}
	}
	return nil, false
}

func VehicleClasses() ([]*models.VehicleClass, error) {
	arr := make([]*models.VehicleClass, 0, 5)
	reader := strings.NewReader(vehicleClassesCSV)

	for record := range internal.ParseCSV(reader, false, models.VehicleClassFromCSV) {
		if record.Error != nil {
			return nil, errors.Wrap(record.Error, "failed to load vehicle classes")
		}
		arr = append(arr, record.Value)
	}

	keys := make(map[string]bool, len(arr))
	for _, vc := range arr {
		if keys[vc.Key] {
			return nil, errors.Newf("duplicate key detected: %s", vc.Key)
		}
		keys[vc.Key] = true
	}
	return arr, nil
}

// Shorter fragments would match almost any place name.
const minPlaceLength = 3

func placeMatches(a, b string) bool {
	if utf8.RuneCountInString(a) < minPlaceLength || utf8.RuneCountInString(b) < minPlaceLength {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// ł has no canonical decomposition, so it is folded by hand.
var strokeFolder = strings.NewReplacer("ł", "l")

func normalize(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.TrimSpace(strokeFolder.Replace(folded))
}
