package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"product_viewer/pkg/contextx"
	"product_viewer/pkg/logx"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type PrometheusServer struct {
	listenAddress string
	gatherer      prometheus.Gatherer
}

// NewPrometheusServer exposes gatherer on /metrics, falling back to the
// default registry where promauto registers transport and cache metrics.
func NewPrometheusServer(
	listenAddress string,
	gatherer prometheus.Gatherer,
) PrometheusServer {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return PrometheusServer{
		listenAddress: listenAddress,
		gatherer:      gatherer,
	}
}

func (p PrometheusServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{ //nolint:exhaustruct
		ErrorLog: slog.NewLogLogger(logger(ctx).Handler(), slog.LevelError),
	}))

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              p.listenAddress,
		Handler:           mux,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("prometheus server started", slog.String("address", p.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("prometheus server stopped")

	return nil
}
