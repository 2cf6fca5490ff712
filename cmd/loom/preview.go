package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/loomui-dev/loom/internal/preview"
)

func previewCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		overrides  string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run the component preview server",
		Long: `Start a local server that renders every component with sample
data. When an override file is given it is watched for changes; edits
rebuild the kit and reload connected browsers.

Examples:
  loom preview
  loom preview --addr 127.0.0.1:8080
  loom preview --overrides loom.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := preview.DefaultConfig()
			if configPath != "" {
				loaded, err := preview.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("overrides") {
				cfg.Overrides = overrides
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}

			srv, err := preview.NewServer(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success("preview server on http://%s", cfg.Addr)
			if cfg.Overrides != "" {
				info("watching %s", cfg.Overrides)
			}
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:4500", "Listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Preview config file (YAML)")
	cmd.Flags().StringVar(&overrides, "overrides", "", "Override table to apply and watch (YAML)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	return cmd
}

// newLogger builds a console zerolog logger at the named level.
func newLogger(level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	console := zerolog.NewConsoleWriter()
	console.Out = os.Stderr
	console.TimeFormat = time.RFC3339
	return zerolog.New(console).Level(parsed).With().Timestamp().Logger(), nil
}
