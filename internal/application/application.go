package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"product_viewer/internal/config"
	"product_viewer/pkg/application/modules"
	"product_viewer/pkg/contextx"
	"product_viewer/pkg/logx"
)

const httpServerReadHeaderTimeout = 5 * time.Second

// Run wires the application, starts the renderer, probe and metrics servers
// and triggers the first deals load. It returns once ctx is done and every
// server has stopped.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	c := assemble(cfg, log)
	defer c.close()

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           c.router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready:         c.ready,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
	}.Run(ctx, g)

	c.list.ViewDidLoad(ctx)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}
