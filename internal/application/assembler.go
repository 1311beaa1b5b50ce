package application

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"product_viewer/internal/config"
	"product_viewer/internal/infrastructure/cache"
	"product_viewer/internal/infrastructure/network"
	"product_viewer/internal/infrastructure/repository"
	"product_viewer/internal/server"
	"product_viewer/internal/usecase"
	"product_viewer/internal/viewmodel"
	"product_viewer/pkg/httpx"
	"product_viewer/pkg/logx"
	"product_viewer/pkg/middlewarex"
)

// container holds everything built once at start up. Nothing in it is
// global: each dependency is passed to its consumers explicitly.
type container struct {
	imageCache  *cache.ImageCache
	coordinator *Coordinator
	list        *viewmodel.List
	router      http.Handler
}

func assemble(cfg config.Config, log *slog.Logger) *container {
	masker := logx.NewSensitiveDataMasker()

	httpClient := &http.Client{ //nolint:exhaustruct
		Timeout: cfg.API.RequestTimeout,
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithLogFieldMaxLen(cfg.API.LogFieldMaxLen),
			httpx.WithSensitiveDataMasker(masker),
		),
	}

	networkClient := network.NewClient(cfg.API.BaseURL, httpClient)
	dealsRepo := repository.NewDealsRepository(networkClient)

	imageCache := cache.NewImageCache(
		cache.WithCountLimit(cfg.ImageCache.CountLimit),
		cache.WithTotalCostLimit(cfg.ImageCache.TotalCostLimit),
		cache.WithLogger(log),
	)

	fetchDeals := usecase.NewFetchDeals(dealsRepo)
	getDealDetail := usecase.NewGetDealDetail(dealsRepo)
	loadImage := usecase.NewLoadImage(dealsRepo, imageCache, usecase.WithPayloadCheck(usecase.CheckImage))

	coordinator := NewCoordinator(getDealDetail)
	list := viewmodel.NewList(fetchDeals, coordinator)

	srv := server.NewServer(
		server.NewDealsServer(list, coordinator),
		server.NewImagesServer(loadImage),
	)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.API.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.API.LogFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	return &container{
		imageCache:  imageCache,
		coordinator: coordinator,
		list:        list,
		router:      router,
	}
}

// ready reports whether the first deals load has finished, successfully or not.
func (c *container) ready() bool {
	kind := c.list.State().Kind

	return kind != viewmodel.ListIdle && kind != viewmodel.ListLoading
}

func (c *container) close() {
	c.list.Close()
	c.coordinator.Close()
}
