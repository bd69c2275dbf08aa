package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/config"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Start the portfolio web server.

Serves the rendered site, the contact and web vitals APIs, and the theme
toggle. In development the content file is watched and connected browsers
reload on change.

Examples:
  portfolio serve                          # Defaults, built-in content
  portfolio serve --port 3000              # Custom port
  portfolio serve --content content.yml    # Content override with hot reload`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to serve on")
	serveCmd.Flags().String("host", "localhost", "Host to bind to")
	serveCmd.Flags().Bool("no-open", false, "Don't open browser automatically")
	serveCmd.Flags().StringP("content", "c", "", "Portfolio content file (YAML)")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	viper.BindPFlag("server.no-open", serveCmd.Flags().Lookup("no-open"))
	viper.BindPFlag("site.content_file", serveCmd.Flags().Lookup("content"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	content, err := portfolio.Load(cfg.Site.ContentFile)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	if missing := cfg.Email.Missing(); len(missing) > 0 {
		logger.Warn(ctx, nil, "email delivery secrets missing, contact submissions will fail",
			"missing", fmt.Sprintf("%v", missing))
	}

	srv, err := server.New(cfg, content, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Graceful shutdown on interrupt.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info(ctx, "shutting down")
		cancel()
	}()

	return srv.Start(ctx)
}
