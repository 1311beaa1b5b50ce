package application

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"product_viewer/internal/domain/entity"
	"product_viewer/internal/viewmodel"
)

type countingDetailGetter struct {
	calls atomic.Int32
}

func (g *countingDetailGetter) Execute(_ context.Context, id int64) (entity.Deal, error) {
	g.calls.Add(1)

	return entity.Deal{ID: id, Title: "detailed"}, nil
}

func TestCoordinatorOpensDetail(t *testing.T) {
	rq := require.New(t)

	getter := &countingDetailGetter{}
	c := NewCoordinator(getter)
	defer c.Close()

	_, ok := c.Detail(7)
	rq.False(ok)

	c.DealSelected(context.Background(), entity.Deal{ID: 7, Title: "listed"})

	detail, ok := c.Detail(7)
	rq.True(ok)
	rq.Eventually(func() bool {
		return detail.State().Kind == viewmodel.DetailLoaded
	}, time.Second, 5*time.Millisecond)
	rq.Equal("detailed", detail.State().Deal.Title)
	rq.Equal(int32(1), getter.calls.Load())
}

func TestCoordinatorReplacesReopenedDetail(t *testing.T) {
	rq := require.New(t)

	c := NewCoordinator(&countingDetailGetter{})
	defer c.Close()

	c.DealSelected(context.Background(), entity.Deal{ID: 7})

	first, ok := c.Detail(7)
	rq.True(ok)

	first.AddToCart()

	c.DealSelected(context.Background(), entity.Deal{ID: 7})

	second, ok := c.Detail(7)
	rq.True(ok)
	rq.NotSame(first, second)
	rq.Zero(second.State().Quantity)

	// a closed screen ignores further loads
	before := first.State()
	first.Load(context.Background())
	rq.Equal(before, first.State())
}

func TestCoordinatorKeepsOnlySelectedDetail(t *testing.T) {
	rq := require.New(t)

	c := NewCoordinator(&countingDetailGetter{})
	defer c.Close()

	c.DealSelected(context.Background(), entity.Deal{ID: 7})

	first, ok := c.Detail(7)
	rq.True(ok)

	c.DealSelected(context.Background(), entity.Deal{ID: 8})

	_, ok = c.Detail(7)
	rq.False(ok)

	_, ok = c.Detail(8)
	rq.True(ok)

	// the replaced screen is closed and ignores further loads
	before := first.State()
	first.Load(context.Background())
	rq.Equal(before, first.State())
}
