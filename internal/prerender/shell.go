package prerender

import (
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
)

const (
	MountID          = "root"
	ContentID        = "prerendered-content"
	styleID          = "prerender-style"
	jsonLDSelector   = `script[type="application/ld+json"]`
	ownJSONLDMarker  = "data-prerender"
	buildToolDefault = "Vite + React + TS"
)

var ErrMissingSlot = errors.New("missing slot in shell")

// metaSlot is one of the social/description tags every page must fill.
type metaSlot struct {
	attr  string
	key   string
	value func(Page) string
}

var metaSlots = []metaSlot{
	{attr: "name", key: "description", value: func(p Page) string { return p.Description }},
	{attr: "property", key: "og:title", value: func(p Page) string { return p.Title }},
	{attr: "property", key: "og:description", value: func(p Page) string { return p.Description }},
	{attr: "name", key: "twitter:title", value: func(p Page) string { return p.Title }},
	{attr: "name", key: "twitter:description", value: func(p Page) string { return p.Description }},
}

func (m metaSlot) selector() string {
	return `meta[name="` + m.key + `"], meta[property="` + m.key + `"]`
}

// Shell is the application's built index.html, treated as a template with
// named slots. It is parsed afresh for every page so output never carries
// state from a previous page.
type Shell struct {
	source string
}

func ParseShell(source string) (*Shell, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse shell")
	}
	if doc.Find("#"+MountID).Length() == 0 {
		return nil, errors.Wrapf(ErrMissingSlot, "mount point #%s", MountID)
	}
	return &Shell{source: source}, nil
}

func LoadShell(path string) (*Shell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read shell %s", path)
	}
	return ParseShell(string(data))
}

// Apply fills every slot from the page and returns the complete document.
// Applying to an already prerendered shell replaces the earlier output.
func (s *Shell) Apply(p Page) (string, error) {
	if err := checkPage(p); err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s.source))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse shell")
	}
	head := doc.Find("head").First()
	body := doc.Find("body").First()

	titles := head.Find("title")
	if titles.Length() == 0 {
		head.AppendHtml("<title></title>")
		titles = head.Find("title")
	}
	titles.Slice(1, goquery.ToEnd).Remove()
	titles.First().SetText(p.Title)

	for _, slot := range metaSlots {
		tag := head.Find(slot.selector())
		if tag.Length() == 0 {
			head.AppendHtml(`<meta ` + slot.attr + `="` + slot.key + `">`)
			tag = head.Find(slot.selector())
		}
		tag.SetAttr("content", slot.value(p))
	}

	canonical := head.Find(`link[rel="canonical"]`)
	if canonical.Length() == 0 {
		head.AppendHtml(`<link rel="canonical">`)
		canonical = head.Find(`link[rel="canonical"]`)
	}
	canonical.SetAttr("href", p.Canonical)

	if head.Find("#"+styleID).Length() == 0 {
		head.AppendHtml(`<style id="` + styleID + `">` + inlineCSS + `</style>`)
	}

	mount := doc.Find("#" + MountID).First()
	if mount.Length() == 0 {
		return "", errors.Wrapf(ErrMissingSlot, "mount point #%s", MountID)
	}
	mount.SetHtml(`<div id="` + ContentID + `" data-prerendered="true">` + string(p.Body) + `</div>`)

	body.Find(jsonLDSelector + "[" + ownJSONLDMarker + "]").Remove()
	for _, block := range p.StructuredData {
		data, err := marshalJSONLD(block)
		if err != nil {
			return "", errors.Wrapf(err, "failed to encode structured data for %s", p.Path)
		}
		body.AppendHtml(`<script type="application/ld+json" ` + ownJSONLDMarker + `="true">` + data + `</script>`)
	}

	html, err := doc.Html()
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize document")
	}
	return html, nil
}

func checkPage(p Page) error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return errors.Newf("page %s: title is empty", p.Path)
	case strings.TrimSpace(p.Description) == "":
		return errors.Newf("page %s: description is empty", p.Path)
	case strings.TrimSpace(p.Canonical) == "":
		return errors.Newf("page %s: canonical URL is empty", p.Path)
	case strings.TrimSpace(string(p.Body)) == "":
		return errors.Newf("page %s: body is empty", p.Path)
	case len(p.StructuredData) == 0:
		return errors.Newf("page %s: no structured data", p.Path)
	}
	return nil
}
