package components

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/theme"
)

var layoutTemplate = fromTemplate("layout", `<!DOCTYPE html>
<html lang="en" class="{{if .Dark}}dark{{end}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
<meta name="title" content="{{.Meta.Title}}">
<meta name="description" content="{{.Meta.Description}}">
<meta name="keywords" content="{{.Meta.Keywords}}">
<meta property="og:type" content="{{.Meta.Type}}">
<meta property="og:url" content="{{.Meta.URL}}">
<meta property="og:title" content="{{.Meta.Title}}">
<meta property="og:description" content="{{.Meta.Description}}">
<meta property="og:image" content="{{.Meta.Image}}">
<meta property="twitter:card" content="summary_large_image">
<meta property="twitter:url" content="{{.Meta.URL}}">
<meta property="twitter:title" content="{{.Meta.Title}}">
<meta property="twitter:description" content="{{.Meta.Description}}">
<meta property="twitter:image" content="{{.Meta.Image}}">
<link rel="canonical" href="{{.Meta.URL}}">
<link rel="stylesheet" href="/static/site.css">
{{range .StructuredData}}<script type="application/ld+json">{{.}}</script>
{{end}}</head>
<body>
<main class="page">
{{.Body}}
</main>
<script src="/static/app.js" defer></script>
{{if .HotReload}}<script src="/static/reload.js" defer></script>{{end}}
</body>
</html>`)

type layoutData struct {
	Dark           bool
	Meta           interface{}
	StructuredData []template.JS
	Body           template.HTML
	HotReload      bool
}

// Layout wraps the joined sections in the document shell. The dark class on
// the root element is the single global theme marker.
func Layout(body templ.Component, opts PageOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		inner, err := Render(ctx, body)
		if err != nil {
			return err
		}

		blocks := make([]template.JS, 0, len(opts.StructuredData))
		for _, b := range opts.StructuredData {
			blocks = append(blocks, template.JS(b))
		}

		return layoutTemplate.Execute(w, layoutData{
			Dark:           opts.Theme == theme.Dark,
			Meta:           opts.Meta,
			StructuredData: blocks,
			Body:           template.HTML(inner),
			HotReload:      opts.HotReload,
		})
	})
}
