package prerender

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed content/*.md
var contentFS embed.FS

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// renderContent converts one of the embedded Markdown documents to HTML.
func renderContent(name string) (template.HTML, error) {
	src, err := contentFS.ReadFile("content/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("reading content %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
