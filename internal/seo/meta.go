// Package seo shapes the document head metadata: title and description
// truncation, keyword lists, canonical URLs, Open Graph and Twitter card
// fields, and the JSON-LD structured data blocks.
package seo

import (
	"regexp"
	"strings"
)

const (
	maxTitleLength       = 60
	maxDescriptionLength = 160
)

// FormatTitle appends the site name when missing and truncates to the SEO
// title limit with an ellipsis.
func FormatTitle(title, siteName string) string {
	fullTitle := title
	if !strings.Contains(title, siteName) {
		fullTitle = title + " | " + siteName
	}
	if len(fullTitle) <= maxTitleLength {
		return fullTitle
	}
	return fullTitle[:maxTitleLength-3] + "..."
}

// MetaDescription truncates text to the meta description limit with an
// ellipsis.
func MetaDescription(text string) string {
	if len(text) <= maxDescriptionLength {
		return text
	}
	return text[:maxDescriptionLength-3] + "..."
}

// Keywords joins tags into a meta keywords value.
func Keywords(items []string) string {
	return strings.Join(items, ", ")
}

// CanonicalURL joins the base origin with a path.
func CanonicalURL(baseURL, path string) string {
	return strings.TrimSuffix(baseURL, "/") + path
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	specialRe    = regexp.MustCompile(`[^\w\s-]`)
)

// CleanText collapses whitespace and strips special characters.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Meta is the resolved head metadata for a page.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	URL         string
	Image       string
	Type        string
}

// PageMeta builds the head metadata for the single portfolio page.
func PageMeta(baseURL, siteName, title, description string, keywords []string) Meta {
	return Meta{
		Title:       FormatTitle(title, siteName),
		Description: MetaDescription(description),
		Keywords:    Keywords(keywords),
		URL:         CanonicalURL(baseURL, "/"),
		Image:       CanonicalURL(baseURL, "/og-image.jpg"),
		Type:        "website",
	}
}
