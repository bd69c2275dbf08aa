// Package config provides configuration management for the portfolio site
// using Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files and environment variable
// overrides with the PORTFOLIO_ prefix. It manages server settings, site
// metadata, email delivery secrets, the optional analytics tracking id, and
// development options like hot reload.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Site        SiteConfig        `yaml:"site"`
	Email       EmailConfig       `yaml:"email"`
	Analytics   AnalyticsConfig   `yaml:"analytics"`
	Development DevelopmentConfig `yaml:"development"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	Host           string   `yaml:"host"`
	Open           bool     `yaml:"open"`
	NoOpen         bool     `yaml:"no-open"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Environment    string   `yaml:"environment"`
}

type SiteConfig struct {
	// BaseURL is the canonical origin used for absolute links, Open Graph
	// URLs and structured data.
	BaseURL string `yaml:"base_url"`
	// ContentFile optionally overrides the built-in portfolio content.
	ContentFile string `yaml:"content_file"`
}

// EmailConfig holds the delivery secrets for the email relay. All three are
// required before a contact submission can be attempted.
type EmailConfig struct {
	ServiceID  string `yaml:"service_id"`
	TemplateID string `yaml:"template_id"`
	PublicKey  string `yaml:"public_key"`
}

// Missing returns the names of delivery secrets that are not configured.
func (e EmailConfig) Missing() []string {
	var missing []string
	if e.ServiceID == "" {
		missing = append(missing, "email.service_id")
	}
	if e.TemplateID == "" {
		missing = append(missing, "email.template_id")
	}
	if e.PublicKey == "" {
		missing = append(missing, "email.public_key")
	}
	return missing
}

type AnalyticsConfig struct {
	TrackingID string `yaml:"tracking_id"`
}

type DevelopmentConfig struct {
	HotReload bool `yaml:"hot_reload"`
}

// IsDevelopment reports whether the server runs in development mode, which
// enables the live reload hub and raw error output on the recovery page.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment != "production"
}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Apply defaults only if not explicitly set
	if config.Server.Port == 0 && !viper.IsSet("server.port") {
		config.Server.Port = 8080
	}
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Server.Environment == "" {
		config.Server.Environment = "development"
	}
	if config.Site.BaseURL == "" {
		config.Site.BaseURL = "https://techversey.com"
	}

	// Underscored keys don't unmarshal through struct field matching, so read
	// them explicitly (workaround for viper key handling)
	if viper.IsSet("site.base_url") {
		config.Site.BaseURL = viper.GetString("site.base_url")
	}
	if viper.IsSet("site.content_file") {
		config.Site.ContentFile = viper.GetString("site.content_file")
	}
	if viper.IsSet("email.service_id") {
		config.Email.ServiceID = viper.GetString("email.service_id")
	}
	if viper.IsSet("email.template_id") {
		config.Email.TemplateID = viper.GetString("email.template_id")
	}
	if viper.IsSet("email.public_key") {
		config.Email.PublicKey = viper.GetString("email.public_key")
	}
	if viper.IsSet("analytics.tracking_id") {
		config.Analytics.TrackingID = viper.GetString("analytics.tracking_id")
	}

	// Handle development settings set via viper (workaround for viper bool handling)
	if viper.IsSet("development.hot_reload") {
		config.Development.HotReload = viper.GetBool("development.hot_reload")
	} else {
		config.Development.HotReload = config.IsDevelopment()
	}

	// Handle allowed origins set via viper (workaround for viper slice handling)
	if viper.IsSet("server.allowed_origins") && len(config.Server.AllowedOrigins) == 0 {
		origins := viper.GetStringSlice("server.allowed_origins")
		if len(origins) > 0 {
			config.Server.AllowedOrigins = origins
		}
	}

	// Override no-open if explicitly set via flag
	if viper.IsSet("server.no-open") && viper.GetBool("server.no-open") {
		config.Server.Open = false
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := validateSiteConfig(&config.Site); err != nil {
		return fmt.Errorf("site config: %w", err)
	}
	return nil
}

// validateServerConfig validates server configuration values
func validateServerConfig(config *ServerConfig) error {
	// Allow 0 for system-assigned ports in testing
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	if config.Host != "" {
		dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
		for _, char := range dangerousChars {
			if strings.Contains(config.Host, char) {
				return fmt.Errorf("host contains dangerous character: %s", char)
			}
		}
	}

	switch config.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("unknown environment %q", config.Environment)
	}

	return nil
}

// validateSiteConfig validates site configuration values
func validateSiteConfig(config *SiteConfig) error {
	if !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an absolute http(s) URL: %s", config.BaseURL)
	}

	if config.ContentFile != "" {
		cleanPath := filepath.Clean(config.ContentFile)
		if strings.Contains(cleanPath, "..") {
			return fmt.Errorf("content_file contains path traversal: %s", config.ContentFile)
		}
	}

	return nil
}
