package server

import (
	"github.com/samber/lo"

	"product_viewer/internal/domain/entity"
	"product_viewer/internal/viewmodel"
	"product_viewer/pkg/lox"
	"product_viewer/pkg/rest"
)

func newRESTPrice(price entity.Price) rest.Price {
	return rest.Price{
		AmountInCents:  price.AmountInCents,
		Amount:         price.Amount().StringFixed(2),
		CurrencySymbol: price.CurrencySymbol,
		DisplayString:  price.DisplayString,
	}
}

func newRESTDeal(deal entity.Deal) rest.Deal {
	result := rest.Deal{
		ID:                 deal.ID,
		Title:              deal.Title,
		Description:        deal.Description,
		Aisle:              deal.Aisle,
		ImageURL:           deal.ImageURL,
		RegularPrice:       newRESTPrice(deal.RegularPrice),
		DisplayPrice:       deal.DisplayPrice(),
		IsOnSale:           deal.IsOnSale(),
		DiscountPercentage: deal.DiscountPercentage(),
		Fulfillment:        deal.Fulfillment,
		FulfillmentText:    deal.FulfillmentType().Text(),
		Availability:       deal.Availability,
		AvailabilityText:   deal.AvailabilityStatus().Text(),
		IsAvailable:        deal.IsAvailable(),
	}

	if deal.SalePrice != nil {
		result.SalePrice = lo.ToPtr(newRESTPrice(*deal.SalePrice))
	}

	if aisle, ok := deal.AisleText(); ok {
		result.AisleText = &aisle
	}

	if regular, ok := deal.DisplayRegularPrice(); ok {
		result.DisplayRegularPrice = &regular
	}

	if savings, ok := deal.Savings(); ok {
		result.Savings = lo.ToPtr(savings.StringFixed(2))
	}

	return result
}

func newRESTListState(state viewmodel.ListState) rest.ListState {
	return rest.ListState{
		State:   state.Kind.String(),
		Deals:   lox.Map(state.Deals, newRESTDeal),
		Message: state.Message,
	}
}

func newRESTDetailState(state viewmodel.DetailState) rest.DetailState {
	result := rest.DetailState{
		State:        state.Kind.String(),
		Deal:         newRESTDeal(state.Deal),
		Quantity:     state.Quantity,
		IsInCart:     state.IsInCart(),
		CanIncrement: state.CanIncrement(),
		CanDecrement: state.CanDecrement(),
	}

	if state.Err != nil {
		result.Error = &rest.DetailError{
			Title:    state.Err.Title,
			Message:  state.Err.Message,
			Icon:     state.Err.Icon,
			CanRetry: state.Err.Retry,
		}
	}

	return result
}
