package usecase

import (
	"context"

	"product_viewer/internal/domain/entity"
)

// GetDealDetail loads a single deal by id.
type GetDealDetail struct {
	repo DealsRepository
}

func NewGetDealDetail(repo DealsRepository) GetDealDetail {
	return GetDealDetail{repo: repo}
}

func (uc GetDealDetail) Execute(ctx context.Context, id int64) (entity.Deal, error) {
	deal, err := uc.repo.FetchDealDetail(ctx, id)
	if err != nil {
		return entity.Deal{}, err //nolint:wrapcheck // domain errors pass through untouched
	}

	return deal, nil
}
