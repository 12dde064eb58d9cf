// Package main provides the vocval binary entry point.
// Vocval validates published IVOA vocabularies against the MUST-level
// structural requirements of the Vocabularies in the VO recommendation.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/vocval/config"
	"github.com/c360studio/vocval/report"
	"github.com/c360studio/vocval/runner"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "vocval"
)

// errValidationFailed signals a clean run in which at least one vocabulary
// had violations. The report already said everything; main only sets the
// exit status.
var errValidationFailed = errors.New("validation failed")

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		timeout    time.Duration
		match      string
		listingURL string
	)

	cmd := &cobra.Command{
		Use:   "vocval [URI ...]",
		Short: "Validate IVOA vocabularies",
		Long: `Vocval checks published IVOA vocabularies against the structural
MUST-requirements of the Vocabularies in the VO recommendation.

Pass one or more vocabulary URIs to check them; without arguments every
vocabulary listed in the IVOA vocabulary repository is checked. The exit
status is non-zero when any vocabulary has violations or could not be
fetched or parsed.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, configPath, logLevel, timeout, match, listingURL)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request HTTP timeout (overrides config)")
	cmd.Flags().StringVar(&match, "match", "", "Only check discovered vocabularies matching this glob")
	cmd.Flags().StringVar(&listingURL, "registry", "", "Registry listing URL (overrides config)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	// Rules and export commands
	cmd.AddCommand(rulesCmd())
	cmd.AddCommand(exportCmd())

	return cmd
}

func run(uris []string, configPath, logLevel string, timeout time.Duration, match, listingURL string) error {
	// Configure logging
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.DefaultConfig()
	if configPath != "" {
		fileCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.Merge(fileCfg)
	}
	if timeout != 0 {
		cfg.HTTP.Timeout = timeout
	}
	if listingURL != "" {
		cfg.Registry.ListingURL = listingURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r := runner.New(cfg, runner.WithLogger(logger), runner.WithMatch(match))
	rep, err := r.Run(context.Background(), uris)
	if err != nil {
		return fmt.Errorf("cannot reach the vocabulary registry: %w", err)
	}

	if err := report.Format(os.Stdout, rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if rep.Failed() {
		return errValidationFailed
	}
	return nil
}
