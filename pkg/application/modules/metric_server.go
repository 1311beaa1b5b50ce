package modules

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"product_viewer/pkg/metrics"
)

type MetricServer struct {
	ListenAddress string
	// Gatherer defaults to the prometheus default registry.
	Gatherer prometheus.Gatherer
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	prometheusServer := metrics.NewPrometheusServer(
		m.ListenAddress,
		m.Gatherer,
	)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
