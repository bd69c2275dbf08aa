package seo

import (
	"encoding/json"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
)

// schemaContext is the JSON-LD context for every block.
const schemaContext = "https://schema.org"

type personSchema struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	JobTitle    string   `json:"jobTitle"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	SameAs      []string `json:"sameAs"`
	KnowsAbout  []string `json:"knowsAbout"`
}

type websiteSchema struct {
	Context     string       `json:"@context"`
	Type        string       `json:"@type"`
	Name        string       `json:"name"`
	URL         string       `json:"url"`
	Description string       `json:"description"`
	Author      schemaAuthor `json:"author"`
}

type schemaAuthor struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type professionalServiceSchema struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	PriceRange  string   `json:"priceRange"`
	AreaServed  string   `json:"areaServed"`
	ServiceType []string `json:"serviceType"`
}

type breadcrumbSchema struct {
	Context  string           `json:"@context"`
	Type     string           `json:"@type"`
	Elements []breadcrumbItem `json:"itemListElement"`
}

type breadcrumbItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// Breadcrumb is one path element for breadcrumb structured data.
type Breadcrumb struct {
	Name string
	URL  string
}

// StructuredData renders the JSON-LD blocks for the portfolio page, in
// injection order: Person, WebSite, ProfessionalService.
func StructuredData(data *portfolio.Data, baseURL string) ([]string, error) {
	social := make([]string, 0, len(data.SocialLinks))
	for _, link := range data.SocialLinks {
		social = append(social, link.Href)
	}

	knows := make([]string, 0)
	knows = append(knows, data.Skills.Languages...)
	knows = append(knows, data.Skills.Frontend...)
	knows = append(knows, data.Skills.DevOps...)

	blocks := []interface{}{
		personSchema{
			Context:     schemaContext,
			Type:        "Person",
			Name:        data.Name,
			JobTitle:    data.Title,
			Description: data.Bio,
			URL:         baseURL,
			SameAs:      social,
			KnowsAbout:  knows,
		},
		websiteSchema{
			Context:     schemaContext,
			Type:        "WebSite",
			Name:        data.Name + " Portfolio",
			URL:         baseURL,
			Description: "Professional portfolio showcasing frontend development and DevOps engineering projects",
			Author:      schemaAuthor{Type: "Person", Name: data.Name},
		},
		professionalServiceSchema{
			Context:     schemaContext,
			Type:        "ProfessionalService",
			Name:        data.Name + " - Web Development Services",
			Description: data.Bio,
			URL:         baseURL,
			PriceRange:  "$$",
			AreaServed:  "Worldwide",
			ServiceType: []string{
				"Frontend Development",
				"DevOps Engineering",
				"Web Application Development",
				"CI/CD Pipeline Setup",
				"Cloud Infrastructure",
			},
		},
	}

	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		raw, err := json.Marshal(block)
		if err != nil {
			return nil, err
		}
		out = append(out, string(raw))
	}
	return out, nil
}

// Breadcrumbs renders breadcrumb structured data for the given trail.
func Breadcrumbs(paths []Breadcrumb) (string, error) {
	items := make([]breadcrumbItem, 0, len(paths))
	for i, p := range paths {
		items = append(items, breadcrumbItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     p.Name,
			Item:     p.URL,
		})
	}
	raw, err := json.Marshal(breadcrumbSchema{
		Context:  schemaContext,
		Type:     "BreadcrumbList",
		Elements: items,
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
