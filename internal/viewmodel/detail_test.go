package viewmodel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"product_viewer/internal/domain"
	"product_viewer/internal/viewmodel"
)

func waitDetailKind(t *testing.T, detail *viewmodel.Detail, kind viewmodel.DetailStateKind) viewmodel.DetailState {
	t.Helper()

	require.Eventually(t, func() bool {
		return detail.State().Kind == kind
	}, waitFor, tick, "want state %s, got %s", kind, detail.State().Kind)

	return detail.State()
}

func TestDetailInitialState(t *testing.T) {
	rq := require.New(t)

	deal := testDeals()[0]
	detail := viewmodel.NewDetail(deal, stubDetailGetter{})
	defer detail.Close()

	state := detail.State()
	rq.Equal(viewmodel.DetailIdle, state.Kind)
	rq.Equal(deal, state.Deal)
	rq.Nil(state.Err)
	rq.Zero(state.Quantity)
	rq.False(state.IsInCart())
	rq.Equal(deal.ID, detail.DealID())
}

func TestDetailLoadReplacesDeal(t *testing.T) {
	rq := require.New(t)

	deal := testDeals()[0]
	detailed := deal
	detailed.Description = "A bright lamp"

	detail := viewmodel.NewDetail(deal, stubDetailGetter{deal: detailed})
	defer detail.Close()

	detail.Load(context.Background())

	state := waitDetailKind(t, detail, viewmodel.DetailLoaded)
	rq.Equal("A bright lamp", state.Deal.Description)
	rq.Nil(state.Err)
}

func TestDetailLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want viewmodel.DetailError
	}{
		{
			name: "not found",
			err:  domain.NewNotFound(nil),
			want: viewmodel.DetailError{
				Kind:    viewmodel.DetailErrorNotFound,
				Title:   "Product Unavailable",
				Message: "This product is no longer available.",
				Icon:    "tag.slash",
				Retry:   false,
			},
		},
		{
			name: "network unavailable",
			err:  domain.NewNetworkUnavailable(nil),
			want: viewmodel.DetailError{
				Kind:    viewmodel.DetailErrorNetworkUnavailable,
				Title:   "No Connection",
				Message: "Please check your internet connection and try again.",
				Icon:    "wifi.slash",
				Retry:   true,
			},
		},
		{
			name: "invalid data",
			err:  domain.NewInvalidData(nil),
			want: viewmodel.DetailError{
				Kind:    viewmodel.DetailErrorGeneric,
				Title:   "Something Went Wrong",
				Message: "Unable to load product details.",
				Icon:    "exclamationmark.triangle",
				Retry:   true,
			},
		},
		{
			name: "unknown",
			err:  domain.NewUnknown("server-error: status 503", nil),
			want: viewmodel.DetailError{
				Kind:    viewmodel.DetailErrorGeneric,
				Title:   "Something Went Wrong",
				Message: "server-error: status 503",
				Icon:    "exclamationmark.triangle",
				Retry:   true,
			},
		},
		{
			name: "non domain error",
			err:  errors.New("boom"),
			want: viewmodel.DetailError{
				Kind:    viewmodel.DetailErrorGeneric,
				Title:   "Something Went Wrong",
				Message: "boom",
				Icon:    "exclamationmark.triangle",
				Retry:   true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			deal := testDeals()[1]
			detail := viewmodel.NewDetail(deal, stubDetailGetter{err: tc.err})
			defer detail.Close()

			detail.Load(context.Background())

			state := waitDetailKind(t, detail, viewmodel.DetailFailed)
			rq.NotNil(state.Err)
			rq.Equal(tc.want, *state.Err)
			rq.Equal(deal, state.Deal)
		})
	}
}

func TestDetailRetry(t *testing.T) {
	rq := require.New(t)

	uc := gatedDetailUseCase{newGatedUseCase()}
	deal := testDeals()[0]
	detail := viewmodel.NewDetail(deal, uc)
	defer detail.Close()

	detail.Load(context.Background())

	call := <-uc.calls
	rq.Equal(deal.ID, call.id)
	call.resolve(result{err: domain.NewNetworkUnavailable(nil)})

	state := waitDetailKind(t, detail, viewmodel.DetailFailed)
	rq.True(state.Err.Retry)

	detail.Retry(context.Background())

	state = detail.State()
	rq.Equal(viewmodel.DetailLoading, state.Kind)
	rq.Nil(state.Err)

	(<-uc.calls).resolve(result{deal: deal})
	waitDetailKind(t, detail, viewmodel.DetailLoaded)
}

func TestDetailSupersededLoadIsDiscarded(t *testing.T) {
	rq := require.New(t)

	uc := gatedDetailUseCase{newGatedUseCase()}
	deal := testDeals()[0]
	detail := viewmodel.NewDetail(deal, uc)
	defer detail.Close()

	detail.Load(context.Background())
	first := <-uc.calls

	detail.Retry(context.Background())
	second := <-uc.calls

	first.resolve(result{err: domain.NewNotFound(nil)})

	rq.Never(func() bool {
		return detail.State().Kind != viewmodel.DetailLoading
	}, 100*time.Millisecond, tick)

	updated := deal
	updated.Title = "Desk lamp"
	second.resolve(result{deal: updated})

	state := waitDetailKind(t, detail, viewmodel.DetailLoaded)
	rq.Equal("Desk lamp", state.Deal.Title)
}

func TestDetailCart(t *testing.T) {
	rq := require.New(t)

	detail := viewmodel.NewDetail(testDeals()[0], stubDetailGetter{})
	defer detail.Close()

	detail.DecrementQuantity()
	rq.Zero(detail.State().Quantity)
	rq.False(detail.State().CanDecrement())

	detail.AddToCart()
	rq.Equal(1, detail.State().Quantity)
	rq.True(detail.State().IsInCart())

	for range 20 {
		detail.IncrementQuantity()
	}

	state := detail.State()
	rq.Equal(viewmodel.MaxQuantity, state.Quantity)
	rq.False(state.CanIncrement())
	rq.True(state.CanDecrement())

	detail.DecrementQuantity()
	rq.Equal(viewmodel.MaxQuantity-1, detail.State().Quantity)

	detail.RemoveFromCart()
	rq.Zero(detail.State().Quantity)
	rq.False(detail.State().IsInCart())
	rq.True(detail.State().CanIncrement())
}

func TestDetailQuantitySurvivesLoad(t *testing.T) {
	rq := require.New(t)

	deal := testDeals()[0]
	detail := viewmodel.NewDetail(deal, stubDetailGetter{deal: deal})
	defer detail.Close()

	detail.AddToCart()
	detail.IncrementQuantity()
	detail.Load(context.Background())

	state := waitDetailKind(t, detail, viewmodel.DetailLoaded)
	rq.Equal(2, state.Quantity)
}
