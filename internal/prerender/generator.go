package prerender

import (
	"log"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/rm-hull/trip-cost-calculator/internal/dataset"
	"github.com/rm-hull/trip-cost-calculator/internal/models"
	"github.com/rm-hull/trip-cost-calculator/internal/progress"
)

const ShellFile = "index.html"

var ErrMissingBuildOutput = errors.New("build output not found, run the frontend build first")

type Generator struct {
	DistDir  string
	BaseURL  string
	PageRoot string
	Dataset  *dataset.Dataset
	Prices   models.FuelPrices
	Reporter progress.Reporter
}

func NewGenerator(distDir, baseURL, pageRoot string, ds *dataset.Dataset, prices models.FuelPrices) *Generator {
	return &Generator{
		DistDir:  distDir,
		BaseURL:  baseURL,
		PageRoot: pageRoot,
		Dataset:  ds,
		Prices:   prices,
		Reporter: progress.Discard,
	}
}

// Generate writes every page into the build output and returns how many
// were written. The first failing page aborts the run.
func (g *Generator) Generate() (int, error) {
	info, err := os.Stat(g.DistDir)
	if err != nil || !info.IsDir() {
		return 0, errors.Wrapf(ErrMissingBuildOutput, "directory %s", g.DistDir)
	}
	shellPath := filepath.Join(g.DistDir, ShellFile)
	if _, err := os.Stat(shellPath); err != nil {
		return 0, errors.Wrapf(ErrMissingBuildOutput, "shell %s", shellPath)
	}

	shell, err := LoadShell(shellPath)
	if err != nil {
		return 0, err
	}

	site, err := NewSite(g.BaseURL, g.PageRoot, g.Dataset, g.Prices)
	if err != nil {
		return 0, err
	}
	pages, err := site.Pages()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build pages")
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Discard
	}
	reporter.Start(len(pages))
	defer reporter.Finish()

	for i, page := range pages {
		html, err := shell.Apply(page)
		if err != nil {
			return i, errors.Wrapf(err, "failed to prerender %s", page.Path)
		}
		if err := Validate(html, page); err != nil {
			return i, errors.Wrap(err, "generated page failed validation")
		}

		outFile := page.OutputFile(g.DistDir, ShellFile)
		if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
			return i, errors.Wrapf(err, "failed to create directory for %s", page.Path)
		}
		if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
			return i, errors.Wrapf(err, "failed to write %s", outFile)
		}

		log.Printf("✓ %s -> %s (%.1f KB)", page.Path, outFile, float64(len(html))/1024)
		reporter.Update(i+1, page.Path)
	}

	log.Printf("Prerendered %d pages into %s", len(pages), g.DistDir)
	return len(pages), nil
}
