package prerender

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
)

// Validate checks a generated document against the page it was built from,
// so that no slot is left with shell placeholder content.
func Validate(html string, p Page) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return errors.Wrapf(err, "%s: unparseable output", p.Path)
	}

	titles := doc.Find("title")
	if titles.Length() != 1 {
		return errors.Newf("%s: expected one <title>, found %d", p.Path, titles.Length())
	}
	title := strings.TrimSpace(titles.Text())
	if title == "" || title == buildToolDefault {
		return errors.Newf("%s: placeholder title %q", p.Path, title)
	}
	if title != p.Title {
		return errors.Newf("%s: title is %q, want %q", p.Path, title, p.Title)
	}

	for _, slot := range metaSlots {
		tags := doc.Find(slot.selector())
		if tags.Length() == 0 {
			return errors.Newf("%s: missing meta %s", p.Path, slot.key)
		}
		content, _ := tags.First().Attr("content")
		if content != slot.value(p) {
			return errors.Newf("%s: meta %s is %q, want %q", p.Path, slot.key, content, slot.value(p))
		}
	}

	canonical := doc.Find(`link[rel="canonical"]`)
	if canonical.Length() != 1 {
		return errors.Newf("%s: expected one canonical link, found %d", p.Path, canonical.Length())
	}
	href, _ := canonical.Attr("href")
	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() {
		return errors.Newf("%s: canonical URL %q is not absolute", p.Path, href)
	}

	blocks := doc.Find(jsonLDSelector)
	if blocks.Length() == 0 {
		return errors.Newf("%s: no JSON-LD block", p.Path)
	}
	var invalid error
	blocks.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if !json.Valid([]byte(s.Text())) {
			invalid = errors.Newf("%s: JSON-LD block %d is not valid JSON", p.Path, i)
			return false
		}
		return true
	})
	if invalid != nil {
		return invalid
	}

	content := doc.Find("#" + MountID + " > #" + ContentID)
	if content.Length() != 1 {
		return errors.Newf("%s: mount point does not hold prerendered content", p.Path)
	}
	if content.Find("h1, h2").Length() == 0 {
		return errors.Newf("%s: prerendered content has no heading", p.Path)
	}
	return nil
}
