package usecase_test

import (
	"context"
	"net/url"
	"sync"

	"product_viewer/internal/domain/entity"
)

type fakeRepository struct {
	mu sync.Mutex

	deals      []entity.Deal
	deal       entity.Deal
	image      []byte
	err        error
	imageGate  chan struct{}
	imageStart chan struct{}

	fetchDealsCalls int
	detailIDs       []int64
	imageFetchCalls int
}

func (f *fakeRepository) FetchDeals(context.Context) ([]entity.Deal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetchDealsCalls++

	return f.deals, f.err
}

func (f *fakeRepository) FetchDealDetail(_ context.Context, id int64) (entity.Deal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.detailIDs = append(f.detailIDs, id)

	return f.deal, f.err
}

func (f *fakeRepository) FetchImageBytes(context.Context, *url.URL) ([]byte, error) {
	f.mu.Lock()
	f.imageFetchCalls++
	gate, start := f.imageGate, f.imageStart
	f.mu.Unlock()

	if start != nil {
		start <- struct{}{}
	}

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	return f.image, nil
}

func (f *fakeRepository) imageCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.imageFetchCalls
}

func (f *fakeRepository) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
}
