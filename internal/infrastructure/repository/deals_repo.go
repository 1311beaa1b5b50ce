package repository

import (
	"context"
	"net/url"

	"product_viewer/internal/domain/entity"
	"product_viewer/internal/infrastructure/network"
)

type networkService interface {
	network.Fetcher
	FetchBytes(ctx context.Context, u *url.URL) ([]byte, error)
}

// DealsRepository exposes the deals service in domain terms. Every error it
// returns is a *domain.Error.
type DealsRepository struct {
	networkService networkService
}

func NewDealsRepository(networkService networkService) *DealsRepository {
	return &DealsRepository{networkService: networkService}
}

func (r *DealsRepository) FetchDeals(ctx context.Context) ([]entity.Deal, error) {
	resp, err := network.Fetch[entity.DealsResponse](ctx, r.networkService, network.DealsEndpoint())
	if err != nil {
		return nil, network.MapToDomain(err)
	}

	return resp.Products, nil
}

func (r *DealsRepository) FetchDealDetail(ctx context.Context, id int64) (entity.Deal, error) {
	deal, err := network.Fetch[entity.Deal](ctx, r.networkService, network.DealDetailEndpoint(id))
	if err != nil {
		return entity.Deal{}, network.MapToDomain(err)
	}

	return deal, nil
}

func (r *DealsRepository) FetchImageBytes(ctx context.Context, u *url.URL) ([]byte, error) {
	data, err := r.networkService.FetchBytes(ctx, u)
	if err != nil {
		return nil, network.MapToDomain(err)
	}

	return data, nil
}
