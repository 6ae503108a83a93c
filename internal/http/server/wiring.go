// Package server arma el handler HTTP completo y controla su ciclo de vida.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/mailcheck/internal/config"
	"github.com/dropDatabas3/mailcheck/internal/email"
	"github.com/dropDatabas3/mailcheck/internal/http/controllers"
	"github.com/dropDatabas3/mailcheck/internal/http/router"
	"github.com/dropDatabas3/mailcheck/internal/http/services"
	"github.com/dropDatabas3/mailcheck/internal/metrics"
	"github.com/dropDatabas3/mailcheck/internal/observability/logger"
)

// Options permite reemplazar dependencias en tests.
type Options struct {
	Transport email.Factory        // nil => SMTP real
	Registry  *prometheus.Registry // nil => registry global
	Now       func() time.Time     // nil => time.Now
}

// BuildHandler construye services → controllers → router a partir de cfg.
func BuildHandler(cfg config.Config, opts Options) (http.Handler, error) {
	var metricsHandler http.Handler
	if cfg.MetricsEnabled() {
		h, err := metrics.Register(opts.Registry)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		metricsHandler = h
	}

	svcs := services.New(services.Deps{
		Mail:      cfg.Mail,
		Transport: opts.Transport,
		Now:       opts.Now,
	})
	ctrls := controllers.New(svcs, cfg.Server.PublicURL)

	return router.New(router.Deps{
		Controllers: ctrls,
		Metrics:     metricsHandler,
	}), nil
}

// NewHTTPServer crea el *http.Server con los timeouts de cfg.
func NewHTTPServer(cfg config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}
}

// Run sirve en l hasta que ctx se cancele y después hace Shutdown con
// shutdownTimeout. Devuelve nil en un apagado limpio.
func Run(ctx context.Context, srv *http.Server, l net.Listener, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info("shutting down http server", logger.Any("timeout", shutdownTimeout))

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
