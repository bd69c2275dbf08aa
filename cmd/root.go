// Package cmd provides the command-line interface for the portfolio server
// with configuration from multiple sources.
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags (--config, --port, etc.)
//  2. PORTFOLIO_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (PORTFOLIO_SERVER_PORT, etc.)
//  4. Configuration file (.portfolio.yml)
//
// Environment variables follow the PORTFOLIO_<SECTION>_<OPTION> pattern,
// e.g. PORTFOLIO_EMAIL_SERVICE_ID for the email delivery secrets.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "A server-rendered personal portfolio website",
	Long: `Portfolio serves a single-page personal portfolio site: themed, animated
sections rendered from one content payload, with a contact form delivered
through an email relay and live reload during development.

Quick Start:
  portfolio serve                 Start the web server
  portfolio check                 Validate configuration and content
  portfolio export ./dist        Render the site to static files`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .portfolio.yml, can also use PORTFOLIO_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig initializes the configuration system.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PORTFOLIO_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".portfolio")
	}

	viper.SetEnvPrefix("PORTFOLIO")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing or malformed config files degrade to defaults without failing.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the process logger from the shared flags.
func newLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(viper.GetString("log-level")),
		Format: viper.GetString("log-format"),
		Output: os.Stderr,
	})
}
