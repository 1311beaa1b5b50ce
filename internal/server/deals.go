package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"product_viewer/internal/viewmodel"
	"product_viewer/pkg/errcodes"
	"product_viewer/pkg/httpx/reply"
	"product_viewer/pkg/httpx/req"
	"product_viewer/pkg/rest"
)

type listScreen interface {
	State() viewmodel.ListState
	Refresh(ctx context.Context)
	DidSelectDeal(ctx context.Context, index int) bool
}

type detailScreens interface {
	Detail(id int64) (*viewmodel.Detail, bool)
}

type DealsServer struct {
	list    listScreen
	details detailScreens
}

func NewDealsServer(list listScreen, details detailScreens) DealsServer {
	return DealsServer{
		list:    list,
		details: details,
	}
}

func (s DealsServer) getV1Deals(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTListState(s.list.State()))

	return nil
}

func (s DealsServer) postV1DealsRefresh(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	s.list.Refresh(ctx)

	reply.JSON(ctx, w, http.StatusAccepted, newRESTListState(s.list.State()))

	return nil
}

func (s DealsServer) postV1DealsSelect(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.Atoi: %w", err),
			failure.WithCode(errcodes.InvalidDealIndex),
			failure.WithDescription("Deal index must be an integer"),
		)
	}

	if !s.list.DidSelectDeal(ctx, index) {
		return failure.NewInvalidArgumentError(
			fmt.Sprintf("deal index %d out of range", index),
			failure.WithCode(errcodes.InvalidDealIndex),
			failure.WithDescription("No deal at this position"),
		)
	}

	reply.OK(w)

	return nil
}

func (s DealsServer) getV1Deal(w http.ResponseWriter, r *http.Request) error {
	detail, err := s.openedDetail(r)
	if err != nil {
		return err
	}

	reply.JSON(r.Context(), w, http.StatusOK, newRESTDetailState(detail.State()))

	return nil
}

func (s DealsServer) postV1DealRetry(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	detail, err := s.openedDetail(r)
	if err != nil {
		return err
	}

	detail.Retry(ctx)

	reply.JSON(ctx, w, http.StatusAccepted, newRESTDetailState(detail.State()))

	return nil
}

func (s DealsServer) postV1DealCart(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	detail, err := s.openedDetail(r)
	if err != nil {
		return err
	}

	var request rest.CartRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	switch request.Action {
	case rest.CartActionAdd:
		detail.AddToCart()
	case rest.CartActionIncrement:
		detail.IncrementQuantity()
	case rest.CartActionDecrement:
		detail.DecrementQuantity()
	case rest.CartActionRemove:
		detail.RemoveFromCart()
	default:
		return failure.NewInvalidArgumentError(
			"unsupported cart action "+string(request.Action),
			failure.WithCode(errcodes.InvalidCartAction),
		)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDetailState(detail.State()))

	return nil
}

func (s DealsServer) openedDetail(r *http.Request) (*viewmodel.Detail, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.ParseInt: %w", err),
			failure.WithCode(errcodes.InvalidDealID),
			failure.WithDescription("Deal id must be an integer"),
		)
	}

	detail, ok := s.details.Detail(id)
	if !ok {
		return nil, failure.NewNotFoundError(
			fmt.Sprintf("detail screen for deal %d is not open", id),
			failure.WithCode(errcodes.ScreenNotOpen),
			failure.WithDescription("Select the deal first"),
		)
	}

	return detail, nil
}
