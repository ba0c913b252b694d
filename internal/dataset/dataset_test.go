package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

func TestLoad(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.Len(t, ds.Routes, 15)
	assert.Len(t, ds.FAQ, 5)
	assert.Len(t, ds.VehicleClasses, 5)
	assert.Equal(t, 5.89, ds.Prices.PB95)
	assert.Equal(t, 2.69, ds.Prices.LPG)
	assert.Equal(t, "2026-02-04", ds.Prices.LastUpdated.String())

	for _, slug := range []string{"warszawa-krakow", "krakow-katowice", "poznan-wroclaw", "warszawa-gdansk"} {
		_, ok := ds.RouteBySlug(slug)
		assert.True(t, ok, slug)
	}

	route, ok := ds.RouteBySlug("warszawa-krakow")
	require.True(t, ok)
	assert.Equal(t, 295.0, route.Distance)
	assert.True(t, route.HasTolls)
	assert.Len(t, route.Variants, 2)
	assert.Empty(t, route.Variants[0].TollIndices)
	assert.Equal(t, []int{0}, route.Variants[1].TollIndices)

	_, ok = ds.RouteBySlug("nowhere")
	assert.False(t, ok)
}

func validRoute() models.RouteData {
	return models.RouteData{
		From:               "A",
		To:                 "B",
		Slug:               "a-b",
		Distance:           100,
		DefaultConsumption: 7,
		DefaultFuelPrice:   5.89,
		Variants: []models.RouteVariant{
			{Name: "main", Distance: 100, TollIndices: []int{0}},
		},
		HasTolls:     true,
		TollSections: []models.TollSection{{Name: "gate", Cost: 10}},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([]models.RouteData{validRoute()}))

	tests := []struct {
		name   string
		mutate func(r *models.RouteData)
		want   string
	}{
		{"toll index out of range", func(r *models.RouteData) { r.Variants[0].TollIndices = []int{1} }, "toll index 1 out of range"},
		{"negative toll index", func(r *models.RouteData) { r.Variants[0].TollIndices = []int{-1} }, "toll index -1 out of range"},
		{"no variants", func(r *models.RouteData) { r.Variants = nil }, "at least one variant"},
		{"tolls without flag", func(r *models.RouteData) { r.HasTolls = false }, "has_tolls is false"},
		{"flag without tolls", func(r *models.RouteData) {
			r.TollSections = nil
			r.Variants[0].TollIndices = nil
		}, "has_tolls is true"},
		{"bad slug", func(r *models.RouteData) { r.Slug = "Kraków Warszawa" }, "not URL-safe"},
		{"distance mismatch", func(r *models.RouteData) { r.Distance = 120 }, "does not match primary"},
		{"zero consumption", func(r *models.RouteData) { r.DefaultConsumption = 0 }, "consumption must be positive"},
		{"negative toll", func(r *models.RouteData) { r.TollSections[0].Cost = -1 }, "negative cost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := validRoute()
			tt.mutate(&route)
			err := Validate([]models.RouteData{route})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("duplicate slugs", func(t *testing.T) {
		err := Validate([]models.RouteData{validRoute(), validRoute()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate slug detected: a-b")
	})

	t.Run("empty table", func(t *testing.T) {
		assert.Error(t, Validate(nil))
	})
}

func TestMatchRoute(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	tests := []struct {
		from, to     string
		wantSlug     string
		wantReversed bool
	}{
		{"Warszawa", "Kraków", "warszawa-krakow", false},
		{"warszawa", "krakow", "warszawa-krakow", false},
		{"Warszawa, województwo mazowieckie, Polska", "Kraków, Małopolska", "warszawa-krakow", false},
		{"Łódź", "Katowice", "katowice-lodz", true},
		{"Berlin", "Warszawa", "warszawa-berlin", true},
		{"Białystok", "Warszawa", "bialystok-warszawa", false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"-"+tt.to, func(t *testing.T) {
			route, reversed, ok := ds.MatchRoute(tt.from, tt.to)
			require.True(t, ok)
			assert.Equal(t, tt.wantSlug, route.Slug)
			assert.Equal(t, tt.wantReversed, reversed)
		})
	}

	t.Run("no match", func(t *testing.T) {
		_, _, ok := ds.MatchRoute("Zakopane", "Hel")
		assert.False(t, ok)
	})

	t.Run("blank input", func(t *testing.T) {
		_, _, ok := ds.MatchRoute("", "Kraków")
		assert.False(t, ok)
	})

	t.Run("fragments too short to match", func(t *testing.T) {
		_, _, ok := ds.MatchRoute("a", "k")
		assert.False(t, ok)

		_, _, ok = ds.MatchRoute("Wa", "Kraków")
		assert.False(t, ok)

		_, _, ok = ds.MatchRoute("Warszawa", "Kr")
		assert.False(t, ok)
	})

	t.Run("three letters is enough", func(t *testing.T) {
		route, reversed, ok := ds.MatchRoute("War", "Kra")
		require.True(t, ok)
		assert.Equal(t, "warszawa-krakow", route.Slug)
		assert.False(t, reversed)
	})
}

func TestRelatedRoutes(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	related := ds.RelatedRoutes("warszawa-krakow", 6)
	assert.Len(t, related, 6)
	for _, r := range related {
		assert.NotEqual(t, "warszawa-krakow", r.Slug)
	}
}

func TestVehicleClasses(t *testing.T) {
	classes, err := VehicleClasses()
	require.NoError(t, err)
	require.Len(t, classes, 5)
	assert.Equal(t, "small", classes[0].Key)
	assert.Equal(t, 5.5, classes[0].Consumption)
	assert.Equal(t, 11.0, classes[4].Consumption)

	ds, err := Load()
	require.NoError(t, err)
	vc, ok := ds.VehicleClass("suv")
	require.True(t, ok)
	assert.Equal(t, 9.0, vc.Consumption)
}

func TestLoadPrices(t *testing.T) {
	t.Run("bundled", func(t *testing.T) {
		prices, err := LoadPrices("")
		require.NoError(t, err)
		assert.Equal(t, 6.17, prices.Diesel)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prices.yaml")
		content := "pb95: 6.10\npb98: 6.80\ndiesel: 6.30\nlpg: 2.99\nelectric: 0.70\nlast_updated: \"2026-03-01\"\nsource: test\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		prices, err := LoadPrices(path)
		require.NoError(t, err)
		assert.Equal(t, 6.10, prices.PB95)
		assert.Equal(t, 0.70, prices.FastChargingPrice())
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prices.yaml")
		content := "pb95: 0\npb98: 6.80\ndiesel: 6.30\nlpg: 2.99\nelectric: 0.70\nlast_updated: \"2026-03-01\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := LoadPrices(path)
		assert.ErrorContains(t, err, "price for pb95 must be positive")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPrices(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
