package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
)

func TestStructuredData(t *testing.T) {
	data := portfolio.Default()

	blocks, err := StructuredData(data, "https://techversey.com")
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	var person map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(blocks[0]), &person))
	assert.Equal(t, "https://schema.org", person["@context"])
	assert.Equal(t, "Person", person["@type"])
	assert.Equal(t, data.Name, person["name"])
	assert.Equal(t, data.Title, person["jobTitle"])
	assert.NotEmpty(t, person["sameAs"])
	assert.NotEmpty(t, person["knowsAbout"])

	var site map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(blocks[1]), &site))
	assert.Equal(t, "WebSite", site["@type"])
	assert.Equal(t, data.Name+" Portfolio", site["name"])

	var service map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(blocks[2]), &service))
	assert.Equal(t, "ProfessionalService", service["@type"])
	assert.Equal(t, "Worldwide", service["areaServed"])
}

func TestBreadcrumbs(t *testing.T) {
	raw, err := Breadcrumbs([]Breadcrumb{
		{Name: "Home", URL: "https://techversey.com/"},
		{Name: "Projects", URL: "https://techversey.com/#projects"},
	})
	require.NoError(t, err)

	var crumb map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &crumb))
	assert.Equal(t, "BreadcrumbList", crumb["@type"])

	items, ok := crumb["itemListElement"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["position"])
	assert.Equal(t, "Home", first["name"])
}
