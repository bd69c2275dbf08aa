package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/config"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and content",
	Long: `Validate the effective configuration and the portfolio content without
starting the server. Reports missing email delivery secrets, since the
contact form fails submissions until all three are set.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("content", "c", "", "Portfolio content file (YAML)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := false

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "✗ configuration: %v\n", err)
		return fmt.Errorf("configuration is invalid")
	}
	fmt.Fprintf(out, "✓ configuration valid (environment: %s, base URL: %s)\n",
		cfg.Server.Environment, cfg.Site.BaseURL)

	contentFile, _ := cmd.Flags().GetString("content")
	if contentFile == "" {
		contentFile = cfg.Site.ContentFile
	}
	if contentFile == "" {
		fmt.Fprintln(out, "✓ content: built-in defaults")
	} else if _, statErr := os.Stat(contentFile); statErr != nil {
		fmt.Fprintf(out, "✗ content file: %v\n", statErr)
		failed = true
	} else if _, loadErr := portfolio.Load(contentFile); loadErr != nil {
		fmt.Fprintf(out, "✗ content file %s: %v\n", contentFile, loadErr)
		failed = true
	} else {
		fmt.Fprintf(out, "✓ content file %s valid\n", contentFile)
	}

	if missing := cfg.Email.Missing(); len(missing) > 0 {
		fmt.Fprintf(out, "! email delivery secrets missing: %v\n", missing)
		fmt.Fprintln(out, "  contact submissions will fail until these are configured")
	} else {
		fmt.Fprintln(out, "✓ email delivery configured")
	}

	if cfg.Analytics.TrackingID == "" {
		fmt.Fprintln(out, "! analytics tracking id not set, web vitals are logged only")
	} else {
		fmt.Fprintln(out, "✓ analytics tracking configured")
	}

	if failed {
		return fmt.Errorf("check found problems")
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}
