package usecase

import (
	"context"

	"product_viewer/internal/domain/entity"
)

// FetchDeals loads the deal list.
type FetchDeals struct {
	repo DealsRepository
}

func NewFetchDeals(repo DealsRepository) FetchDeals {
	return FetchDeals{repo: repo}
}

func (uc FetchDeals) Execute(ctx context.Context) ([]entity.Deal, error) {
	deals, err := uc.repo.FetchDeals(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck // domain errors pass through untouched
	}

	return deals, nil
}
