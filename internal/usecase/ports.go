package usecase

import (
	"context"
	"net/url"

	"product_viewer/internal/domain/entity"
)

// DealsRepository is the seam between use cases and the remote service.
// Implementations return *domain.Error on failure.
type DealsRepository interface {
	FetchDeals(ctx context.Context) ([]entity.Deal, error)
	FetchDealDetail(ctx context.Context, id int64) (entity.Deal, error)
	FetchImageBytes(ctx context.Context, u *url.URL) ([]byte, error)
}

type ImageCache interface {
	Get(key string) ([]byte, bool)
	Put(key string, data []byte)
}
