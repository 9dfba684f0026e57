package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/quill-ui/quill/internal/config"
	"github.com/quill-ui/quill/pkg/inspect"
	"github.com/quill-ui/quill/pkg/template"
)

func inspectCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Start the inspect server",
		Long: `Start the inspect server over an empty registry.

The inspect server exposes registry state over HTTP:

  GET /healthz          Liveness check
  GET /templates        List compiled templates
  GET /templates/{id}   Full node table of one template
  GET /watch            WebSocket stream of compile events

Embedded applications serve their own registry; this command is
useful for probing the API surface and for demos.

Examples:
  quill inspect
  quill inspect --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from quill.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from quill.json)")

	return cmd
}

func runInspect(port int, host string) error {
	cfg := loadConfigOrDefault()
	if port > 0 {
		cfg.Inspect.Port = port
	}
	if host != "" {
		cfg.Inspect.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	reg := newRegistry(cfg)

	printBanner()
	info("inspect")
	info("listening on http://" + cfg.InspectAddress())
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := inspect.NewServer(reg, inspect.WithLogger(log))
	return srv.ListenAndServe(ctx, cfg.InspectAddress())
}

// loadConfigOrDefault loads quill.json from the working directory,
// falling back to defaults when there is no project.
func loadConfigOrDefault() *config.Config {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return config.New()
	}
	return cfg
}

func newRegistry(cfg *config.Config) *template.Registry {
	var opts []template.Option
	if cfg.Templates.ValidateSlots {
		opts = append(opts, template.WithSlotValidation())
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, template.WithMetrics(prometheus.DefaultRegisterer))
	}
	return template.NewRegistry(opts...)
}
