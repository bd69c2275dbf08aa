package components

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/seo"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/theme"
)

func renderPage(t *testing.T, opts PageOptions) string {
	t.Helper()
	data, err := portfolio.Load("")
	require.NoError(t, err)

	html, err := Render(context.Background(), Page(data, opts))
	require.NoError(t, err)
	return html
}

func defaultOpts() PageOptions {
	return PageOptions{
		Theme: theme.Light,
		Meta:  seo.PageMeta("https://techversey.com", "Dina", "Dina - Developer", "Bio.", []string{"Go"}),
	}
}

func TestPageRendersAllSectionAnchors(t *testing.T) {
	html := renderPage(t, defaultOpts())

	for _, id := range portfolio.SectionIDs {
		assert.Containsf(t, html, fmt.Sprintf(`id="%s"`, id), "missing section anchor %s", id)
	}
}

func TestPageHeadMetadata(t *testing.T) {
	html := renderPage(t, defaultOpts())

	assert.Contains(t, html, "<title>Dina - Developer</title>")
	assert.Contains(t, html, `property="og:title"`)
	assert.Contains(t, html, `property="twitter:card"`)
	assert.Contains(t, html, `rel="canonical" href="https://techversey.com/"`)
	assert.Contains(t, html, `href="/static/site.css"`)
	assert.Contains(t, html, `src="/static/app.js"`)
}

func TestPageThemeClass(t *testing.T) {
	light := renderPage(t, defaultOpts())
	assert.NotContains(t, light, `class="dark"`)

	opts := defaultOpts()
	opts.Theme = theme.Dark
	dark := renderPage(t, opts)
	assert.Contains(t, dark, `<html lang="en" class="dark">`)
}

func TestPageStructuredData(t *testing.T) {
	data, err := portfolio.Load("")
	require.NoError(t, err)

	blocks, err := seo.StructuredData(data, "https://techversey.com")
	require.NoError(t, err)

	opts := defaultOpts()
	opts.StructuredData = blocks
	html := renderPage(t, opts)

	assert.Contains(t, html, `<script type="application/ld+json">`)
	assert.Contains(t, html, `"@type":"Person"`)
	assert.Contains(t, html, `"@type":"WebSite"`)
	assert.Contains(t, html, `"@type":"ProfessionalService"`)
}

func TestPageHotReloadScript(t *testing.T) {
	plain := renderPage(t, defaultOpts())
	assert.NotContains(t, plain, "/static/reload.js")

	opts := defaultOpts()
	opts.HotReload = true
	dev := renderPage(t, opts)
	assert.Contains(t, dev, `src="/static/reload.js"`)
}

func TestPageContactStates(t *testing.T) {
	opts := defaultOpts()
	opts.ContactStatus = "success"
	success := renderPage(t, opts)
	assert.Contains(t, success, "Thank You!")
	assert.Contains(t, success, "data-contact-success")
	assert.NotContains(t, success, "data-contact-form")

	opts.ContactStatus = "error"
	opts.ContactError = "Something went wrong. Please try again later."
	failure := renderPage(t, opts)
	assert.Contains(t, failure, "Something went wrong. Please try again later.")
}

func TestPageContainsClientHooks(t *testing.T) {
	html := renderPage(t, defaultOpts())

	for _, hook := range []string{
		"data-theme-toggle",
		"data-contact-form",
		"data-back-to-top",
		"data-rotating-titles",
		"data-navbar",
	} {
		assert.Containsf(t, html, hook, "missing client hook %s", hook)
	}
}

func TestEmbeddedAssetsPresent(t *testing.T) {
	for _, name := range []string{
		"assets/site.css",
		"assets/app.js",
		"assets/reload.js",
	} {
		_, err := Assets.ReadFile(name)
		assert.NoErrorf(t, err, "missing embedded asset %s", name)
	}
}

func TestRecoveryPage(t *testing.T) {
	withDetail, err := Render(context.Background(), Recovery("boom at line 3"))
	require.NoError(t, err)
	assert.Contains(t, withDetail, "boom at line 3")

	without, err := Render(context.Background(), Recovery(""))
	require.NoError(t, err)
	assert.NotContains(t, without, "boom")
	assert.Contains(t, without, "Something went wrong")
}

func TestLoadingFallback(t *testing.T) {
	html, err := Render(context.Background(), LoadingFallback())
	require.NoError(t, err)
	assert.Contains(t, html, "loading-fallback")
	assert.Contains(t, html, "skeleton-hero")
}
