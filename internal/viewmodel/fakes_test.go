package viewmodel_test

import (
	"context"
	"sync"

	"product_viewer/internal/domain/entity"
)

type result struct {
	deals []entity.Deal
	deal  entity.Deal
	err   error
}

// pendingCall is one blocked use case invocation released by resolve.
type pendingCall struct {
	id     int64
	result chan result
}

func (p *pendingCall) resolve(r result) {
	p.result <- r
}

// gatedUseCase blocks every Execute until the test resolves the matching
// pending call taken from calls. With ignoreCancel set a call keeps
// waiting after its context is cancelled, like a fetcher that never
// checks ctx.
type gatedUseCase struct {
	calls        chan *pendingCall
	ignoreCancel bool
}

func newGatedUseCase() *gatedUseCase {
	return &gatedUseCase{calls: make(chan *pendingCall, 8)}
}

func (g *gatedUseCase) wait(ctx context.Context, id int64) (result, error) {
	p := &pendingCall{id: id, result: make(chan result, 1)}
	g.calls <- p

	if g.ignoreCancel {
		return <-p.result, nil
	}

	select {
	case r := <-p.result:
		return r, nil
	case <-ctx.Done():
		return result{}, ctx.Err()
	}
}

func (g *gatedUseCase) Execute(ctx context.Context) ([]entity.Deal, error) {
	r, err := g.wait(ctx, 0)
	if err != nil {
		return nil, err
	}

	return r.deals, r.err
}

type gatedDetailUseCase struct {
	*gatedUseCase
}

func (g gatedDetailUseCase) Execute(ctx context.Context, id int64) (entity.Deal, error) {
	r, err := g.wait(ctx, id)
	if err != nil {
		return entity.Deal{}, err
	}

	return r.deal, r.err
}

// stubFetcher answers immediately.
type stubFetcher struct {
	deals []entity.Deal
	err   error
}

func (s stubFetcher) Execute(context.Context) ([]entity.Deal, error) {
	return s.deals, s.err
}

type stubDetailGetter struct {
	deal entity.Deal
	err  error
}

func (s stubDetailGetter) Execute(context.Context, int64) (entity.Deal, error) {
	return s.deal, s.err
}

type recordingSelection struct {
	mu       sync.Mutex
	selected []entity.Deal
}

func (r *recordingSelection) DealSelected(_ context.Context, deal entity.Deal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selected = append(r.selected, deal)
}

func (r *recordingSelection) deals() []entity.Deal {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Deal(nil), r.selected...)
}

func testDeals() []entity.Deal {
	sale := entity.Price{AmountInCents: 1499, CurrencySymbol: "$", DisplayString: "$14.99"}

	return []entity.Deal{
		{
			ID:           1,
			Title:        "Lamp",
			RegularPrice: entity.Price{AmountInCents: 1999, CurrencySymbol: "$", DisplayString: "$19.99"},
			SalePrice:    &sale,
			Availability: "In stock",
		},
		{
			ID:           2,
			Title:        "Chair",
			RegularPrice: entity.Price{AmountInCents: 4999, CurrencySymbol: "$", DisplayString: "$49.99"},
			Availability: "Out of stock",
		},
	}
}
