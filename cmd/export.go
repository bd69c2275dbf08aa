package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/components"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/config"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/seo"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/theme"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-dir]",
	Short: "Render the site to static files",
	Long: `Render the portfolio page and its assets to a directory suitable for
static hosting. The exported page carries the same head metadata and
structured data as the served one; the contact form posts to the
configured base URL.

Examples:
  portfolio export ./dist
  portfolio export ./dist --content content.yml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("content", "c", "", "Portfolio content file (YAML)")
	exportCmd.Flags().String("theme", "light", "Theme baked into the exported page (light, dark)")
}

func runExport(cmd *cobra.Command, args []string) error {
	outDir := "dist"
	if len(args) > 0 {
		outDir = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	contentFile, _ := cmd.Flags().GetString("content")
	if contentFile == "" {
		contentFile = cfg.Site.ContentFile
	}
	data, err := portfolio.Load(contentFile)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	themeFlag, _ := cmd.Flags().GetString("theme")
	active, ok := theme.Parse(themeFlag)
	if !ok {
		return fmt.Errorf("unknown theme %q (expected light or dark)", themeFlag)
	}

	meta := seo.PageMeta(cfg.Site.BaseURL, data.Name, data.Name+" - "+data.Title, data.Bio, data.Skills.All())
	structured, err := seo.StructuredData(data, cfg.Site.BaseURL)
	if err != nil {
		return fmt.Errorf("building structured data: %w", err)
	}

	page := components.Page(data, components.PageOptions{
		Theme:          active,
		Meta:           meta,
		StructuredData: structured,
	})

	html, err := components.Render(context.Background(), page)
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	if err := exportAssets(outDir); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported site to %s\n", outDir)
	return nil
}

// exportAssets copies the embedded static assets under <outDir>/static so
// the exported page resolves the same /static/ paths as the server.
func exportAssets(outDir string) error {
	sub, err := fs.Sub(components.Assets, components.AssetsRoot)
	if err != nil {
		return fmt.Errorf("opening embedded assets: %w", err)
	}

	return fs.WalkDir(sub, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(outDir, "static", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		contents, err := fs.ReadFile(sub, path)
		if err != nil {
			return fmt.Errorf("reading embedded asset %s: %w", path, err)
		}
		return os.WriteFile(target, contents, 0o644)
	})
}
