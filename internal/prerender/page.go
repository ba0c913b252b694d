package prerender

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/rm-hull/trip-cost-calculator/internal/calculator"
	"github.com/rm-hull/trip-cost-calculator/internal/dataset"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

const (
	siteName       = "Kalkulator Paliwa"
	relatedLimit   = 6
	DefaultBaseURL = "https://kalkulatorpaliwa.pl"
	DefaultRoot    = "trasa"
)

// Page is one document to be baked into the build output.
type Page struct {
	Path           string
	Title          string
	Description    string
	Canonical      string
	Body           template.HTML
	StructuredData []any
}

// OutputFile maps the page path onto a file under dist. The home page
// replaces the shell itself.
func (p Page) OutputFile(dist, shellFile string) string {
	trimmed := strings.Trim(p.Path, "/")
	if trimmed == "" {
		return filepath.Join(dist, shellFile)
	}
	return filepath.Join(dist, filepath.FromSlash(trimmed), "index.html")
}

type link struct {
	Href  string
	Route models.RouteData
}

type popular struct {
	link
	Estimate models.VariantEstimate
}

type layoutData struct {
	Nav []link
}

type homeData struct {
	layoutData
	Prices  models.FuelPrices
	Popular []popular
	Guide   template.HTML
	About   template.HTML
	FAQ     []models.FAQItem
}

type routeData struct {
	layoutData
	Route          *models.RouteData
	Hero           string
	Comparison     string
	CalculatorHref string
	Variants       []models.VariantEstimate
	Related        []link
}

type staticData struct {
	layoutData
	Content template.HTML
}

// Site builds every page from one dataset and price snapshot.
type Site struct {
	BaseURL  string
	PageRoot string
	Dataset  *dataset.Dataset
	Prices   models.FuelPrices

	home   *template.Template
	route  *template.Template
	static *template.Template
}

func NewSite(baseURL, pageRoot string, ds *dataset.Dataset, prices models.FuelPrices) (*Site, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if pageRoot == "" {
		pageRoot = DefaultRoot
	}
	s := &Site{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		PageRoot: strings.Trim(pageRoot, "/"),
		Dataset:  ds,
		Prices:   prices,
	}

	funcs := template.FuncMap{
		"km":     calculator.FormatKm,
		"money":  calculator.FormatMoney,
		"approx": calculator.FormatApprox,
		"join":   strings.Join,
	}
	parse := func(name, body string) (*template.Template, error) {
		t, err := template.New(name).Funcs(funcs).Parse(layoutTemplate)
		if err != nil {
			return nil, err
		}
		return t.Parse(body)
	}

	var err error
	if s.home, err = parse("home", homeTemplate); err != nil {
		return nil, errors.Wrap(err, "failed to parse home template")
	}
	if s.route, err = parse("route", routeTemplate); err != nil {
		return nil, errors.Wrap(err, "failed to parse route template")
	}
	if s.static, err = parse("static", staticTemplate); err != nil {
		return nil, errors.Wrap(err, "failed to parse static template")
	}
	return s, nil
}

func (s *Site) RoutePath(slug string) string {
	return "/" + path.Join(s.PageRoot, slug)
}

func (s *Site) absolute(p string) string {
	return s.BaseURL + p
}

func (s *Site) nav() layoutData {
	links := make([]link, 0, len(s.Dataset.Routes))
	for _, r := range s.Dataset.Routes {
		links = append(links, link{Href: s.RoutePath(r.Slug), Route: r})
	}
	return layoutData{Nav: links}
}

func (s *Site) render(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (s *Site) HomePage() (Page, error) {
	guide, err := renderContent("guide")
	if err != nil {
		return Page{}, err
	}
	about, err := renderContent("about")
	if err != nil {
		return Page{}, err
	}

	data := homeData{
		layoutData: s.nav(),
		Prices:     s.Prices,
		Guide:      guide,
		About:      about,
		FAQ:        s.Dataset.FAQ,
	}
	for i := range s.Dataset.Routes {
		r := &s.Dataset.Routes[i]
		data.Popular = append(data.Popular, popular{
			link:     link{Href: s.RoutePath(r.Slug), Route: *r},
			Estimate: calculator.EstimateVariant(r, 0),
		})
	}

	body, err := s.render(s.home, data)
	if err != nil {
		return Page{}, errors.Wrap(err, "failed to render home page")
	}

	description := "Darmowy kalkulator kosztów przejazdu. Oblicz koszt paliwa na trasie, podziel go na pasażerów i porównaj Pb95, diesel, LPG i auto elektryczne."
	return Page{
		Path:        "/",
		Title:       "Kalkulator Kosztów Przejazdu 2026: Oblicz Koszt Paliwa na Trasie",
		Description: description,
		Canonical:   s.absolute("/"),
		Body:        body,
		StructuredData: []any{
			NewSoftwareApplication(s.BaseURL, description),
			NewFAQPage(s.Dataset.FAQ),
		},
	}, nil
}

func (s *Site) RoutePage(route *models.RouteData) (Page, error) {
	estimates := calculator.EstimateRoute(route)
	primary := estimates[0]

	data := routeData{
		layoutData:     s.nav(),
		Route:          route,
		Hero:           heroText(route, primary),
		CalculatorHref: calculatorHref(route),
		Variants:       estimates,
	}
	if len(estimates) > 1 {
		data.Comparison = comparisonText(primary, estimates[1])
	}
	for _, r := range s.Dataset.RelatedRoutes(route.Slug, relatedLimit) {
		data.Related = append(data.Related, link{Href: s.RoutePath(r.Slug), Route: r})
	}

	body, err := s.render(s.route, data)
	if err != nil {
		return Page{}, errors.Wrapf(err, "failed to render route page %s", route.Slug)
	}

	p := s.RoutePath(route.Slug)
	return Page{
		Path:  p,
		Title: fmt.Sprintf("Koszt przejazdu %s - %s | %s", route.From, route.To, siteName),
		Description: fmt.Sprintf("Oblicz koszt przejazdu na trasie %s - %s. Dystans %s km. Szacunkowy koszt: %.0f zł.",
			route.From, route.To, decimal(route.Distance), primary.FuelCost),
		Canonical: s.absolute(p),
		Body:      body,
		StructuredData: []any{
			NewBreadcrumbList(
				Crumb{Name: siteName, URL: s.absolute("/")},
				Crumb{Name: fmt.Sprintf("%s - %s", route.From, route.To), URL: s.absolute(p)},
			),
		},
	}, nil
}

func (s *Site) staticPage(p, name, title, description string) (Page, error) {
	content, err := renderContent(name)
	if err != nil {
		return Page{}, err
	}
	body, err := s.render(s.static, staticData{layoutData: s.nav(), Content: content})
	if err != nil {
		return Page{}, errors.Wrapf(err, "failed to render %s page", name)
	}
	return Page{
		Path:        p,
		Title:       title + " | " + siteName,
		Description: description,
		Canonical:   s.absolute(p),
		Body:        body,
		StructuredData: []any{
			NewBreadcrumbList(
				Crumb{Name: siteName, URL: s.absolute("/")},
				Crumb{Name: title, URL: s.absolute(p)},
			),
		},
	}, nil
}

func (s *Site) ContactPage() (Page, error) {
	return s.staticPage("/kontakt", "contact", "Kontakt",
		"Skontaktuj się z twórcami Kalkulatora Paliwa. Pytania, sugestie i zgłoszenia błędów.")
}

func (s *Site) PrivacyPage() (Page, error) {
	return s.staticPage("/polityka-prywatnosci", "privacy", "Polityka Prywatności",
		"Polityka prywatności Kalkulatora Paliwa: jakie dane przetwarzamy i w jakim celu.")
}

func (s *Site) TermsPage() (Page, error) {
	return s.staticPage("/regulamin", "terms", "Regulamin",
		"Regulamin korzystania z Kalkulatora Paliwa.")
}

// Pages returns the home page, one page per route in dataset order, then
// the static pages.
func (s *Site) Pages() ([]Page, error) {
	pages := make([]Page, 0, len(s.Dataset.Routes)+4)

	home, err := s.HomePage()
	if err != nil {
		return nil, err
	}
	pages = append(pages, home)

	for i := range s.Dataset.Routes {
		page, err := s.RoutePage(&s.Dataset.Routes[i])
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	for _, build := range []func() (Page, error){s.ContactPage, s.PrivacyPage, s.TermsPage} {
		page, err := build()
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func heroText(route *models.RouteData, primary models.VariantEstimate) string {
	text := fmt.Sprintf(
		"Szacunkowy koszt przejazdu na trasie %s – %s to %s (przy cenie paliwa %s za litr). Dystans wynosi %s, a obliczenia zakładają średnie spalanie %s L/100km.",
		route.From, route.To, calculator.FormatApprox(primary.FuelCost),
		calculator.FormatMoney(route.DefaultFuelPrice), calculator.FormatKm(primary.Variant.Distance),
		decimal(route.DefaultConsumption))
	if primary.TollCost > 0 {
		text += fmt.Sprintf(" Do tego dochodzą opłaty drogowe: %s, razem %s.",
			calculator.FormatMoney(primary.TollCost), calculator.FormatApprox(primary.Total))
	}
	return text
}

func comparisonText(primary, alt models.VariantEstimate) string {
	diff := calculator.Round2(alt.Total - primary.Total)
	var relation string
	switch {
	case diff > 0:
		relation = fmt.Sprintf("o %s więcej", calculator.FormatMoney(diff))
	case diff < 0:
		relation = fmt.Sprintf("o %s mniej", calculator.FormatMoney(-diff))
	default:
		relation = "tyle samo"
	}
	return fmt.Sprintf("Alternatywny wariant %s (%s) kosztuje %s łącznie z opłatami, czyli %s niż trasa podstawowa.",
		alt.Variant.Name, calculator.FormatKm(alt.Variant.Distance), calculator.FormatApprox(alt.Total), relation)
}

// calculatorHref links back into the interactive calculator with the
// route's endpoints filled in.
func calculatorHref(route *models.RouteData) string {
	q := url.Values{}
	q.Set("from", route.From)
	q.Set("to", route.To)
	return "/?" + q.Encode()
}

func decimal(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}
