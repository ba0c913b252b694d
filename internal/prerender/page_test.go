package prerender

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyText(t *testing.T, p Page) string {
	t.Helper()
	return strings.Join(strings.Fields(parse(t, string(p.Body)).Text()), " ")
}

func TestPagesOrderAndPaths(t *testing.T) {
	site := testSite(t)
	pages, err := site.Pages()
	require.NoError(t, err)

	require.Len(t, pages, len(site.Dataset.Routes)+4)
	assert.Equal(t, "/", pages[0].Path)
	assert.Equal(t, "/trasa/warszawa-krakow", pages[1].Path)
	assert.Equal(t, "/kontakt", pages[len(pages)-3].Path)
	assert.Equal(t, "/polityka-prywatnosci", pages[len(pages)-2].Path)
	assert.Equal(t, "/regulamin", pages[len(pages)-1].Path)

	seen := map[string]bool{}
	for _, p := range pages {
		assert.False(t, seen[p.Path], "duplicate path %s", p.Path)
		seen[p.Path] = true
		assert.Equal(t, "https://example.pl"+p.Path, p.Canonical)
		assert.NotEmpty(t, p.StructuredData)
	}
}

func TestHomePage(t *testing.T) {
	site := testSite(t)
	page, err := site.HomePage()
	require.NoError(t, err)

	assert.Equal(t, "Kalkulator Kosztów Przejazdu 2026: Oblicz Koszt Paliwa na Trasie", page.Title)
	require.Len(t, page.StructuredData, 2)
	assert.IsType(t, SoftwareApplication{}, page.StructuredData[0])
	faq, ok := page.StructuredData[1].(FAQPage)
	require.True(t, ok)
	assert.Len(t, faq.MainEntity, len(site.Dataset.FAQ))

	doc := parse(t, string(page.Body))
	assert.Equal(t, 1, doc.Find("h1").Length())
	assert.Equal(t, len(site.Dataset.Routes), doc.Find("header nav li").Length())
	assert.Equal(t, len(site.Dataset.FAQ), doc.Find("#faq h3").Length())
	assert.Equal(t, 1, doc.Find(`a[href="/polityka-prywatnosci"]`).Length())

	text := bodyText(t, page)
	assert.Contains(t, text, "Warszawa – Kraków (295 km)")
	assert.Contains(t, text, "Pb95 5,89 zł")
	assert.Contains(t, text, "Jak obliczyć koszt przejazdu samochodem?")
	assert.Contains(t, text, "© OpenStreetMap contributors")
}

func TestRoutePageWithTolls(t *testing.T) {
	site := testSite(t)
	route, ok := site.Dataset.RouteBySlug("warszawa-krakow")
	require.True(t, ok)

	page, err := site.RoutePage(route)
	require.NoError(t, err)

	assert.Equal(t, "Koszt przejazdu Warszawa - Kraków | Kalkulator Paliwa", page.Title)
	assert.Equal(t, "Oblicz koszt przejazdu na trasie Warszawa - Kraków. Dystans 295 km. Szacunkowy koszt: 122 zł.", page.Description)

	crumbs, ok := page.StructuredData[0].(BreadcrumbList)
	require.True(t, ok)
	require.Len(t, crumbs.ItemListElement, 2)
	assert.Equal(t, 2, crumbs.ItemListElement[1].Position)
	assert.Equal(t, "https://example.pl/trasa/warszawa-krakow", crumbs.ItemListElement[1].Item)

	text := bodyText(t, page)
	assert.Contains(t, text, "Warszawa → Kraków")
	assert.Contains(t, text, "to ~122 zł (przy cenie paliwa 5,89 zł za litr)")
	assert.Contains(t, text, "kosztuje ~170 zł łącznie z opłatami, czyli o 47,92 zł więcej")
	assert.Contains(t, text, "paliwo 152,55 zł + opłaty drogowe 17,00 zł (razem 169,55 zł)")
	assert.NotContains(t, text, "paliwo 121,63 zł +", "toll-free variant has no surcharge note")
	assert.Contains(t, text, "Suma opłat drogowych (max): 17,00 zł")

	doc := parse(t, string(page.Body))
	assert.Equal(t, len(route.Variants), doc.Find("main h3").Length())
	assert.Equal(t, 1, doc.Find(`a[href="/?from=Warszawa&to=Krak%C3%B3w"]`).Length())

	related := doc.Find("main section:last-of-type li a")
	assert.Equal(t, relatedLimit, related.Length())
	related.Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		assert.NotEqual(t, "/trasa/warszawa-krakow", href)
	})
}

func TestRoutePageWithoutTolls(t *testing.T) {
	site := testSite(t)
	route, ok := site.Dataset.RouteBySlug("wroclaw-poznan")
	require.True(t, ok)

	page, err := site.RoutePage(route)
	require.NoError(t, err)

	text := bodyText(t, page)
	assert.Contains(t, text, "nie ma płatnych odcinków")
	assert.NotContains(t, text, "Alternatywny wariant")
	assert.NotContains(t, text, "opłaty drogowe:")
	assert.NotContains(t, text, "Suma opłat drogowych")
}

func TestCustomPageRoot(t *testing.T) {
	site := testSite(t)
	site.PageRoot = "koszt"
	assert.Equal(t, "/koszt/wroclaw-poznan", site.RoutePath("wroclaw-poznan"))
}

func TestOutputFile(t *testing.T) {
	dist := filepath.Join("tmp", "dist")
	assert.Equal(t, filepath.Join(dist, "index.html"), Page{Path: "/"}.OutputFile(dist, "index.html"))
	assert.Equal(t, filepath.Join(dist, "trasa", "krakow-wieden", "index.html"),
		Page{Path: "/trasa/krakow-wieden"}.OutputFile(dist, "index.html"))
	assert.Equal(t, filepath.Join(dist, "kontakt", "index.html"), Page{Path: "/kontakt/"}.OutputFile(dist, "index.html"))
}

func TestStaticPages(t *testing.T) {
	site := testSite(t)
	for _, build := range []func() (Page, error){site.ContactPage, site.PrivacyPage, site.TermsPage} {
		page, err := build()
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(page.Title, " | Kalkulator Paliwa"))
		assert.Equal(t, 1, parse(t, string(page.Body)).Find("main h1").Length(), page.Path)
	}
}
