package prerender

import (
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const schemaContext = "https://schema.org"

type offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

type SoftwareApplication struct {
	Context             string `json:"@context"`
	Type                string `json:"@type"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	URL                 string `json:"url"`
	ApplicationCategory string `json:"applicationCategory"`
	OperatingSystem     string `json:"operatingSystem"`
	InLanguage          string `json:"inLanguage"`
	Offers              offer  `json:"offers"`
}

type answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer answer `json:"acceptedAnswer"`
}

type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []question `json:"mainEntity"`
}

type listItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []listItem `json:"itemListElement"`
}

func NewSoftwareApplication(baseURL, description string) SoftwareApplication {
	return SoftwareApplication{
		Context:             schemaContext,
		Type:                "SoftwareApplication",
		Name:                siteName,
		Description:         description,
		URL:                 strings.TrimSuffix(baseURL, "/") + "/",
		ApplicationCategory: "TravelApplication",
		OperatingSystem:     "Web",
		InLanguage:          "pl-PL",
		Offers:              offer{Type: "Offer", Price: "0", PriceCurrency: "PLN"},
	}
}

func NewFAQPage(items []models.FAQItem) FAQPage {
	page := FAQPage{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: make([]question, 0, len(items)),
	}
	for _, item := range items {
		page.MainEntity = append(page.MainEntity, question{
			Type:           "Question",
			Name:           item.Question,
			AcceptedAnswer: answer{Type: "Answer", Text: item.Answer},
		})
	}
	return page
}

// Crumb is one step of a breadcrumb trail; URL must be absolute.
type Crumb struct {
	Name string
	URL  string
}

func NewBreadcrumbList(crumbs ...Crumb) BreadcrumbList {
	list := BreadcrumbList{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: make([]listItem, 0, len(crumbs)),
	}
	for i, c := range crumbs {
		list.ItemListElement = append(list.ItemListElement, listItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     c.Name,
			Item:     c.URL,
		})
	}
	return list
}

// marshalJSONLD encodes a structured-data block for a script element. HTML
// escaping keeps "</script>" from ever appearing in the output.
func marshalJSONLD(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
