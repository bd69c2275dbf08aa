package portfolio

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

var markdown = goldmark.New()

// Load returns the content payload: the built-in defaults, or the YAML file
// at path when non-empty. Long-form fields are rendered from markdown to
// HTML before the data is handed to the components.
func Load(path string) (*Data, error) {
	data := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading content file: %w", err)
		}
		if err := yaml.Unmarshal(raw, data); err != nil {
			return nil, fmt.Errorf("parsing content file %s: %w", path, err)
		}
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	if err := data.renderMarkdown(); err != nil {
		return nil, err
	}

	return data, nil
}

// Validate checks the invariants the sections rely on.
func (d *Data) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("content: name is required")
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("content: title is required")
	}
	if len(d.JobTitles) == 0 {
		return fmt.Errorf("content: at least one job title is required")
	}
	for _, link := range d.NavLinks {
		if link.Name == "" || link.Href == "" {
			return fmt.Errorf("content: nav link needs both name and href")
		}
	}
	for i, p := range d.Projects {
		if p.Title == "" {
			return fmt.Errorf("content: project %d has no title", i)
		}
	}
	return nil
}

// renderMarkdown fills in the HTML fields from their markdown sources.
func (d *Data) renderMarkdown() error {
	fields := []struct {
		src string
		dst *template.HTML
	}{
		{d.About.Bio, &d.About.BioHTML},
		{d.About.SubBio, &d.About.SubBioHTML},
		{d.About.Description, &d.About.DescriptionHTML},
		{d.About.ShortDescription, &d.About.ShortDescHTML},
	}
	for _, f := range fields {
		html, err := renderMarkdown(f.src)
		if err != nil {
			return err
		}
		*f.dst = html
	}

	for i := range d.Projects {
		html, err := renderMarkdown(d.Projects[i].Description)
		if err != nil {
			return err
		}
		d.Projects[i].DescriptionHTML = html
	}

	return nil
}

func renderMarkdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
