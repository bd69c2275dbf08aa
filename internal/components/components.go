// Package components renders the portfolio page. Each section is a
// templ.Component built from a parsed html/template via templ.FromGoHTML;
// the page handler joins them inside the layout shell. Content comes from
// the single portfolio.Data payload, theming from the resolved theme, and
// head metadata from the seo package.
package components

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/a-h/templ"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/seo"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/theme"
)

// PageOptions carries per-request rendering inputs.
type PageOptions struct {
	Theme theme.Theme
	Meta  seo.Meta
	// StructuredData holds the JSON-LD blocks injected into the head.
	StructuredData []string
	// HotReload enables the live-reload client in development.
	HotReload bool
	// ContactStatus drives the server-rendered success and error states of
	// the contact form (from the post-redirect-get flow).
	ContactStatus string
	ContactError  string
}

// Page assembles the full document: navbar, all content sections, footer,
// and the back-to-top affordance inside the layout shell.
func Page(data *portfolio.Data, opts PageOptions) templ.Component {
	sections := templ.Join(
		Navbar(data),
		Hero(data),
		About(data),
		Skills(data),
		Projects(data),
		Experience(data),
		Testimonials(data),
		Contact(data, opts),
		Footer(data),
		BackToTop(),
	)
	return Layout(sections, opts)
}

// Render writes a component to a string, used by the export command and the
// handlers that buffer output before writing.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("rendering component: %w", err)
	}
	return buf.String(), nil
}

// fromTemplate parses a section template at package init. Template parse
// failures are programmer errors and panic immediately.
func fromTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

// component wraps a template and its data as a templ.Component.
func component(t *template.Template, data interface{}) templ.Component {
	return templ.FromGoHTML(t, data)
}
