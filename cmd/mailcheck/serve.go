package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/mailcheck/internal/config"
	"github.com/dropDatabas3/mailcheck/internal/http/server"
	"github.com/dropDatabas3/mailcheck/internal/observability/logger"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts.cfg)
		},
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.L()

	h, err := server.BuildHandler(cfg, server.Options{})
	if err != nil {
		return fmt.Errorf("wiring failed: %w", err)
	}

	l, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr, err)
	}

	base := cfg.Server.PublicURL
	log.Info("🚀 Email test server running on " + base)
	log.Info("📧 Test email endpoint: " + base + "/test-email")
	log.Info("💚 Health check: " + base + "/health")
	if cfg.MetricsEnabled() {
		log.Info("📈 Metrics: " + base + "/metrics")
	}
	log.Info("📝 Configuration",
		logger.Service(cfg.Mail.Service),
		logger.String("user", cfg.Mail.User),
		logger.String("sender", cfg.Mail.SenderEmail),
	)

	srv := server.NewHTTPServer(cfg, h)
	if err := server.Run(ctx, srv, l, cfg.Server.ShutdownTimeout); err != nil {
		return err
	}
	log.Info("👋 server stopped")
	return nil
}
