package models

// TollSection is a single named charge (operator + segment, or a vignette).
type TollSection struct {
	Name string  `json:"name" yaml:"name"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// RouteVariant is one named path option between a route's endpoints.
// TollIndices refer into the parent route's TollSections; an empty list
// means the variant is toll-free even when other variants are not.
type RouteVariant struct {
	Name        string   `json:"name" yaml:"name"`
	Via         []string `json:"via" yaml:"via"`
	Distance    float64  `json:"distance" yaml:"distance"`
	Time        string   `json:"time" yaml:"time"`
	AvgCost     float64  `json:"avg_cost" yaml:"avg_cost"`
	TollIndices []int    `json:"toll_indices,omitempty" yaml:"toll_indices"`
}

type RouteData struct {
	From               string         `json:"from" yaml:"from"`
	To                 string         `json:"to" yaml:"to"`
	Slug               string         `json:"slug" yaml:"slug"`
	Distance           float64        `json:"distance" yaml:"distance"`
	DefaultConsumption float64        `json:"default_consumption" yaml:"default_consumption"`
	DefaultFuelPrice   float64        `json:"default_fuel_price" yaml:"default_fuel_price"`
	Variants           []RouteVariant `json:"variants" yaml:"variants"`
	HasTolls           bool           `json:"has_tolls" yaml:"has_tolls"`
	TollSections       []TollSection  `json:"toll_sections" yaml:"toll_sections"`
	Description        string         `json:"description,omitempty" yaml:"description"`
}

// Primary returns the first variant, which carries the canonical distance.
func (r *RouteData) Primary() RouteVariant {
	return r.Variants[0]
}

// TotalTolls sums every toll section on the route regardless of variant.
func (r *RouteData) TotalTolls() float64 {
	total := 0.0
	for _, toll := range r.TollSections {
		total += toll.Cost
	}
	return total
}

// VariantEstimate holds the derived display figures for one variant at the
// route's default consumption and fuel price.
type VariantEstimate struct {
	Variant  RouteVariant `json:"variant"`
	FuelCost float64      `json:"fuel_cost"`
	TollCost float64      `json:"toll_cost"`
	Total    float64      `json:"total"`
}

type FAQItem struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// RouteStatistics summarises primary-variant trip costs across a set of
// routes, per fuel type.
type RouteStatistics struct {
	CheapestRoutes    map[FuelType][]string       `json:"cheapest_routes"`
	LowestCost        map[FuelType]float64        `json:"lowest_cost"`
	AverageCost       map[FuelType]float64        `json:"average_cost"`
	HighestCost       map[FuelType]float64        `json:"highest_cost"`
	CostDistribution  map[FuelType]map[string]int `json:"cost_distribution"`
	StandardDeviation map[FuelType]float64        `json:"standard_deviation"`
	TollDistribution  map[string]int              `json:"toll_distribution"`
}

type RoutesResponse struct {
	Routes      []RouteData      `json:"routes"`
	Attribution string           `json:"attribution"`
	Statistics  *RouteStatistics `json:"statistics"`
	Prices      FuelPrices       `json:"prices"`
}
