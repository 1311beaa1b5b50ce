package application

import (
	"context"
	"log/slog"
	"sync"

	"product_viewer/internal/domain/entity"
	"product_viewer/internal/viewmodel"
	"product_viewer/pkg/logx"
)

// Coordinator opens a detail screen for the deal selected on the list
// screen. At most one detail screen is open: selecting a deal closes the
// previous screen, including one for the same deal.
type Coordinator struct {
	getDealDetail viewmodel.DealDetailGetter

	mu      sync.Mutex
	details map[int64]*viewmodel.Detail
}

func NewCoordinator(getDealDetail viewmodel.DealDetailGetter) *Coordinator {
	return &Coordinator{
		getDealDetail: getDealDetail,
		details:       make(map[int64]*viewmodel.Detail),
	}
}

func (c *Coordinator) DealSelected(ctx context.Context, deal entity.Deal) {
	detail := viewmodel.NewDetail(deal, c.getDealDetail)

	c.mu.Lock()
	previous := c.details
	c.details = map[int64]*viewmodel.Detail{deal.ID: detail}
	c.mu.Unlock()

	for _, screen := range previous {
		screen.Close()
	}

	logger(ctx).Info("detail screen opened", slog.Int64(logx.FieldDealID, deal.ID))

	detail.Load(ctx)
}

func (c *Coordinator) Detail(id int64) (*viewmodel.Detail, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	detail, ok := c.details[id]

	return detail, ok
}

// Close closes every open detail screen.
func (c *Coordinator) Close() {
	c.mu.Lock()
	details := c.details
	c.details = make(map[int64]*viewmodel.Detail)
	c.mu.Unlock()

	for _, detail := range details {
		detail.Close()
	}
}
